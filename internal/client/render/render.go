// Package render форматирует версии для терминала: подсветка изменившихся
// слов, таблица истории и машиночитаемые форматы.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/iudanet/versioneditor/internal/models"
)

// Форматы вывода списка версий
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// EmptyText показывается вместо пустого текста версии
const EmptyText = "(empty)"

var (
	addedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("22")).
			Background(lipgloss.Color("194"))

	removedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("88")).
			Background(lipgloss.Color("224")).
			Strikethrough(true)

	headerStyle = lipgloss.NewStyle().Bold(true)

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Renderer форматирует версии. Без цвета изменения отмечаются
// маркерами [+слово] и [-слово].
type Renderer struct {
	now   func() time.Time
	color bool
}

// New создает Renderer
func New(color bool) *Renderer {
	return &Renderer{color: color, now: time.Now}
}

// Normalize приводит слово к форме для сравнения при подсветке:
// нижний регистр, без пунктуации по краям
func Normalize(word string) string {
	trimmed := strings.TrimFunc(word, func(r rune) bool {
		return !isWordRune(r)
	})
	return strings.ToLower(trimmed)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func wordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if n := Normalize(w); n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

// Highlight возвращает text с выделенными добавленными и удаленными словами.
// Пробельные символы сохраняются как есть. Совпадение проверяется без учета
// регистра и пунктуации по краям. Только для отображения: diff версии
// вычисляется сервером по точному совпадению.
func (r *Renderer) Highlight(text string, added, removed []string) string {
	if text == "" {
		return r.muted(EmptyText)
	}

	addedSet := wordSet(added)
	removedSet := wordSet(removed)

	var b strings.Builder
	for _, tok := range splitKeepSpace(text) {
		if strings.TrimSpace(tok) == "" {
			b.WriteString(tok)
			continue
		}

		key := Normalize(tok)
		if _, ok := addedSet[key]; ok && key != "" {
			b.WriteString(r.added(tok))
			continue
		}
		if _, ok := removedSet[key]; ok && key != "" {
			b.WriteString(r.removed(tok))
			continue
		}
		b.WriteString(tok)
	}

	return b.String()
}

// splitKeepSpace делит text на чередующиеся слова и пробельные участки
func splitKeepSpace(text string) []string {
	var (
		tokens  []string
		start   int
		inSpace bool
	)

	for i, r := range text {
		space := unicode.IsSpace(r)
		if i == 0 {
			inSpace = space
			continue
		}
		if space != inSpace {
			tokens = append(tokens, text[start:i])
			start = i
			inSpace = space
		}
	}
	if start < len(text) {
		tokens = append(tokens, text[start:])
	}

	return tokens
}

func (r *Renderer) added(s string) string {
	if !r.color {
		return "[+" + s + "]"
	}
	return addedStyle.Render(s)
}

func (r *Renderer) removed(s string) string {
	if !r.color {
		return "[-" + s + "]"
	}
	return removedStyle.Render(s)
}

func (r *Renderer) muted(s string) string {
	if !r.color {
		return s
	}
	return mutedStyle.Render(s)
}

func (r *Renderer) header(s string) string {
	if !r.color {
		return s
	}
	return headerStyle.Render(s)
}

// Version печатает полную карточку версии: метаданные, счетчики
// и текст с подсветкой
func (r *Renderer) Version(w io.Writer, v *models.Version) error {
	text := v.NewText
	if text == "" {
		text = v.PreviousText
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", r.header("Version"), v.ID)
	fmt.Fprintf(&b, "Saved:   %s (%s)\n", v.Timestamp.Local().Format(time.RFC3339), r.age(v.Timestamp))
	fmt.Fprintf(&b, "Added:   %d   Removed: %d\n", len(v.AddedWords), len(v.RemovedWords))
	fmt.Fprintf(&b, "Words:   %d -> %d\n", v.OldLength, v.NewLength)
	b.WriteString("\n")
	b.WriteString(r.Highlight(text, v.AddedWords, v.RemovedWords))
	b.WriteString("\n")

	if len(v.RemovedWords) > 0 {
		b.WriteString("\n")
		b.WriteString(r.header("Removed:"))
		for _, word := range v.RemovedWords {
			b.WriteString(" ")
			b.WriteString(r.removed(word))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// List печатает историю в выбранном формате
func (r *Renderer) List(w io.Writer, versions []*models.Version, format string) error {
	if versions == nil {
		versions = []*models.Version{}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(versions)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toYAML(versions)); err != nil {
			return err
		}
		return enc.Close()
	case FormatTable, "":
		return r.table(w, versions)
	default:
		return fmt.Errorf("unknown output format %q (want %s, %s or %s)", format, FormatTable, FormatJSON, FormatYAML)
	}
}

func (r *Renderer) table(w io.Writer, versions []*models.Version) error {
	if len(versions) == 0 {
		_, err := fmt.Fprintln(w, "No versions saved yet.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSAVED\tADDED\tREMOVED\tWORDS\tPREVIEW")
	for _, v := range versions {
		fmt.Fprintf(tw, "%s\t%s\t+%d\t-%d\t%s\t%s\n",
			v.ID,
			r.age(v.Timestamp),
			len(v.AddedWords),
			len(v.RemovedWords),
			humanize.Comma(int64(v.NewLength)),
			Preview(v.NewText, 40),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n%s\n", r.muted(fmt.Sprintf("%d version(s)", len(versions))))
	return err
}

func (r *Renderer) age(t time.Time) string {
	return humanize.RelTime(t, r.now(), "ago", "from now")
}

// Preview первая строка текста, обрезанная до limit символов
func Preview(text string, limit int) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	runes := []rune(line)
	if len(runes) > limit {
		return string(runes[:limit-1]) + "…"
	}
	if line == "" {
		return EmptyText
	}
	return line
}

// yamlVersion порядок и имена полей YAML совпадают с JSON API
type yamlVersion struct {
	ID           string   `yaml:"id"`
	Timestamp    string   `yaml:"timestamp"`
	PreviousText string   `yaml:"previousText"`
	NewText      string   `yaml:"newText"`
	AddedWords   []string `yaml:"addedWords"`
	RemovedWords []string `yaml:"removedWords"`
	OldLength    int      `yaml:"oldLength"`
	NewLength    int      `yaml:"newLength"`
}

func toYAML(versions []*models.Version) []yamlVersion {
	out := make([]yamlVersion, 0, len(versions))
	for _, v := range versions {
		out = append(out, yamlVersion{
			ID:           v.ID,
			Timestamp:    v.Timestamp.UTC().Format(time.RFC3339Nano),
			PreviousText: v.PreviousText,
			NewText:      v.NewText,
			AddedWords:   nonNil(v.AddedWords),
			RemovedWords: nonNil(v.RemovedWords),
			OldLength:    v.OldLength,
			NewLength:    v.NewLength,
		})
	}
	return out
}

func nonNil(words []string) []string {
	if words == nil {
		return []string{}
	}
	return words
}
