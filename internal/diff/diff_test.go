package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty string", input: "", want: []string{}},
		{name: "only whitespace", input: " \t\n  ", want: []string{}},
		{name: "single word", input: "hello", want: []string{"hello"}},
		{name: "leading and trailing spaces", input: "  hello world  ", want: []string{"hello", "world"}},
		{name: "mixed whitespace runs", input: "a\t\tb\n\nc  d", want: []string{"a", "b", "c", "d"}},
		{name: "punctuation kept", input: "Hello, world!", want: []string{"Hello,", "world!"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		name        string
		oldText     string
		newText     string
		wantAdded   []string
		wantRemoved []string
	}{
		{
			name:        "empty to text",
			oldText:     "",
			newText:     "hello world",
			wantAdded:   []string{"hello", "world"},
			wantRemoved: []string{},
		},
		{
			name:        "text to empty",
			oldText:     "hello world",
			newText:     "",
			wantAdded:   []string{},
			wantRemoved: []string{"hello", "world"},
		},
		{
			name:        "both empty",
			oldText:     "",
			newText:     "",
			wantAdded:   []string{},
			wantRemoved: []string{},
		},
		{
			name:        "word appended",
			oldText:     "hello",
			newText:     "hello world",
			wantAdded:   []string{"world"},
			wantRemoved: []string{},
		},
		{
			name:        "word replaced",
			oldText:     "the quick fox",
			newText:     "the slow fox",
			wantAdded:   []string{"slow"},
			wantRemoved: []string{"quick"},
		},
		{
			name:        "reordering is not a change",
			oldText:     "one two three",
			newText:     "three one two",
			wantAdded:   []string{},
			wantRemoved: []string{},
		},
		{
			name:        "repeated known word is not added",
			oldText:     "go",
			newText:     "go go go",
			wantAdded:   []string{},
			wantRemoved: []string{},
		},
		{
			name:        "duplicates of new word are kept",
			oldText:     "a",
			newText:     "b a b",
			wantAdded:   []string{"b", "b"},
			wantRemoved: []string{},
		},
		{
			name:        "case sensitive",
			oldText:     "Hello",
			newText:     "hello",
			wantAdded:   []string{"hello"},
			wantRemoved: []string{"Hello"},
		},
		{
			name:        "punctuation sensitive",
			oldText:     "end",
			newText:     "end.",
			wantAdded:   []string{"end."},
			wantRemoved: []string{"end"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Words(tt.oldText, tt.newText)
			assert.Equal(t, tt.wantAdded, got.Added)
			assert.Equal(t, tt.wantRemoved, got.Removed)
		})
	}
}

func TestWords_Idempotent(t *testing.T) {
	texts := []string{
		"",
		"single",
		"a b c a b c",
		"Lorem ipsum dolor sit amet,\nconsectetur adipiscing elit.",
	}

	for _, text := range texts {
		got := Words(text, text)
		assert.Empty(t, got.Added, "text %q", text)
		assert.Empty(t, got.Removed, "text %q", text)
	}
}

func TestWords_DisjointFromOtherSide(t *testing.T) {
	pairs := [][2]string{
		{"a b c", "b c d"},
		{"the cat sat on the mat", "a dog sat on a log"},
		{"", "x y"},
		{"x y", "y y y z"},
	}

	for _, p := range pairs {
		got := Words(p[0], p[1])

		oldSet := set(Tokenize(p[0]))
		newSet := set(Tokenize(p[1]))

		for _, w := range got.Added {
			_, inOld := oldSet[w]
			assert.False(t, inOld, "added word %q appears in old text", w)
		}
		for _, w := range got.Removed {
			_, inNew := newSet[w]
			assert.False(t, inNew, "removed word %q appears in new text", w)
		}
	}
}

func TestCompute(t *testing.T) {
	got := Compute("", "a b c")

	assert.Equal(t, 0, got.OldLength)
	assert.Equal(t, 3, got.NewLength)
	assert.Equal(t, []string{"a", "b", "c"}, got.Added)
	assert.Equal(t, []string{}, got.Removed)

	got = Compute("hello   world", "hello")
	assert.Equal(t, 2, got.OldLength)
	assert.Equal(t, 1, got.NewLength)
	assert.Empty(t, got.Added)
	assert.Equal(t, []string{"world"}, got.Removed)
}
