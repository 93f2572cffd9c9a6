package validation

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrTextRequired текст версии отсутствует или пуст
	ErrTextRequired = errors.New("newText is required")

	// ErrTextTooLarge текст версии превышает допустимый размер
	ErrTextTooLarge = errors.New("newText is too large")

	// ErrTextNotUTF8 текст версии не является корректной UTF-8 строкой
	ErrTextNotUTF8 = errors.New("newText must be valid UTF-8")
)

// ValidateText проверяет текст, присланный для сохранения новой версии.
// Пустая строка отклоняется. Строка только из пробелов допустима:
// она дает версию с нулем токенов.
// maxBytes <= 0 отключает проверку размера.
func ValidateText(text string, maxBytes int) error {
	if text == "" {
		return ErrTextRequired
	}

	if maxBytes > 0 && len(text) > maxBytes {
		return fmt.Errorf("%w: %d bytes, limit is %d", ErrTextTooLarge, len(text), maxBytes)
	}

	if !utf8.ValidString(text) {
		return ErrTextNotUTF8
	}

	return nil
}

// ValidateVersionID проверяет идентификатор версии из URL.
func ValidateVersionID(id string) error {
	if id == "" {
		return fmt.Errorf("version id cannot be empty")
	}

	if len(id) > MaxVersionIDLen {
		return fmt.Errorf("version id must not exceed %d characters", MaxVersionIDLen)
	}

	return nil
}

// MaxVersionIDLen максимальная длина идентификатора версии
const MaxVersionIDLen = 64
