// Package diff вычисляет пословные различия между двумя версиями текста.
//
// Сравнение идет по множеству слов, а не по позициям: слово считается
// добавленным, если его нет нигде в старом тексте, и удаленным, если его
// нет нигде в новом. Перестановка слов без добавления или удаления дает
// пустой результат.
package diff

import "strings"

// Result содержит добавленные и удаленные слова.
type Result struct {
	Added   []string `json:"added"`
	Removed []string `json:"removed"`
}

// Summary is a Result together with token counts of both inputs.
type Summary struct {
	Result
	OldLength int `json:"oldLength"`
	NewLength int `json:"newLength"`
}

// Tokenize splits text on runs of whitespace and drops empty tokens.
// Empty input yields an empty, non-nil slice.
func Tokenize(text string) []string {
	fields := strings.Fields(text)
	if fields == nil {
		return []string{}
	}
	return fields
}

// Words returns the tokens of newText absent from oldText (Added) and the
// tokens of oldText absent from newText (Removed).
// Order and duplicates of the source token list are preserved.
func Words(oldText, newText string) Result {
	return compare(Tokenize(oldText), Tokenize(newText))
}

// Compute is Words plus token counts. The save path uses it so that
// lengths and word sets always come from the same tokenization.
func Compute(oldText, newText string) Summary {
	oldWords := Tokenize(oldText)
	newWords := Tokenize(newText)

	return Summary{
		Result:    compare(oldWords, newWords),
		OldLength: len(oldWords),
		NewLength: len(newWords),
	}
}

func compare(oldWords, newWords []string) Result {
	return Result{
		Added:   missingFrom(newWords, set(oldWords)),
		Removed: missingFrom(oldWords, set(newWords)),
	}
}

// missingFrom возвращает токены из words, которых нет в other
func missingFrom(words []string, other map[string]struct{}) []string {
	out := make([]string, 0)
	for _, w := range words {
		if _, ok := other[w]; !ok {
			out = append(out, w)
		}
	}
	return out
}

func set(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
