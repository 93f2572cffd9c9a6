package iocli

//go:generate moq -out io_mock.go . IO

// IO ввод и вывод CLI
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	// ReadInput печатает prompt и читает одну строку без завершающих пробелов
	ReadInput(prompt string) (string, error)
	// ReadAll читает весь ввод до EOF (текст версии из pipe)
	ReadAll() (string, error)
	// IsTerminal сообщает, подключен ли ввод к терминалу
	IsTerminal() bool
	Write(p []byte) (n int, err error)
}
