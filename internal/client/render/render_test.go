package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/iudanet/versioneditor/internal/models"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestRenderer() *Renderer {
	r := New(false)
	r.now = func() time.Time { return fixedNow }
	return r
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Hello", want: "hello"},
		{in: "world!", want: "world"},
		{in: "(quoted),", want: "quoted"},
		{in: "don't", want: "don't"},
		{in: "snake_case", want: "snake_case"},
		{in: "Привет!", want: "привет"},
		{in: "...", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestSplitKeepSpace(t *testing.T) {
	assert.Equal(t, []string{"a", " ", "b", "\n\t", "c"}, splitKeepSpace("a b\n\tc"))
	assert.Equal(t, []string{"  ", "a", " "}, splitKeepSpace("  a "))
	assert.Nil(t, splitKeepSpace(""))
	assert.Equal(t, "x  y\nz", strings.Join(splitKeepSpace("x  y\nz"), ""))
}

func TestHighlight(t *testing.T) {
	r := newTestRenderer()

	tests := []struct {
		name    string
		text    string
		added   []string
		removed []string
		want    string
	}{
		{
			name:  "added words marked",
			text:  "the slow brown dog",
			added: []string{"slow", "dog"},
			want:  "the [+slow] brown [+dog]",
		},
		{
			name:  "case and punctuation insensitive",
			text:  "Hello, World!",
			added: []string{"hello", "world"},
			want:  "[+Hello,] [+World!]",
		},
		{
			name:    "removed words struck",
			text:    "keep drop",
			removed: []string{"drop"},
			want:    "keep [-drop]",
		},
		{
			name:  "whitespace preserved",
			text:  "a\n\n  b",
			added: []string{"b"},
			want:  "a\n\n  [+b]",
		},
		{
			name:  "punctuation only token not matched",
			text:  "a -- b",
			added: []string{"--"},
			want:  "a -- b",
		},
		{
			name: "empty text",
			text: "",
			want: EmptyText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Highlight(tt.text, tt.added, tt.removed))
		})
	}
}

func TestHighlight_Color(t *testing.T) {
	r := New(true)
	out := r.Highlight("the quick fox", []string{"quick"}, nil)

	// Цветовой профиль зависит от терминала, текст сохраняется в любом случае
	assert.Contains(t, out, "quick")
	assert.Contains(t, out, "the")
	assert.NotContains(t, out, "[+")
}

func testVersions() []*models.Version {
	return []*models.Version{
		models.NewVersion("v2", fixedNow.Add(-time.Minute), "the quick brown fox", "the slow brown dog"),
		models.NewVersion("v1", fixedNow.Add(-2*time.Hour), "", "the quick brown fox"),
	}
}

func TestList_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestRenderer().List(&buf, testVersions(), FormatTable))

	out := buf.String()
	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[0], "ID")
	assert.Contains(t, lines[0], "PREVIEW")
	assert.Contains(t, lines[1], "v2")
	assert.Contains(t, lines[1], "1 minute ago")
	assert.Contains(t, lines[1], "+2")
	assert.Contains(t, lines[1], "-2")
	assert.Contains(t, lines[2], "v1")
	assert.Contains(t, lines[2], "2 hours ago")
	assert.Contains(t, out, "2 version(s)")
}

func TestList_TableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestRenderer().List(&buf, nil, FormatTable))
	assert.Equal(t, "No versions saved yet.\n", buf.String())
}

func TestList_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestRenderer().List(&buf, testVersions(), FormatJSON))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "v2", got[0]["id"])
	assert.Equal(t, []any{"slow", "dog"}, got[0]["addedWords"])
}

func TestList_JSONEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestRenderer().List(&buf, nil, FormatJSON))
	assert.Equal(t, "[]\n", buf.String())
}

func TestList_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestRenderer().List(&buf, testVersions(), FormatYAML))

	var got []yamlVersion
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "v1", got[1].ID)
	assert.Equal(t, []string{}, got[1].RemovedWords)
	assert.Equal(t, []string{"the", "quick", "brown", "fox"}, got[1].AddedWords)
	assert.Equal(t, fixedNow.Add(-2*time.Hour).Format(time.RFC3339Nano), got[1].Timestamp)
	assert.Contains(t, buf.String(), "previousText:")
}

func TestList_UnknownFormat(t *testing.T) {
	err := newTestRenderer().List(&bytes.Buffer{}, nil, "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestVersion(t *testing.T) {
	var buf bytes.Buffer
	v := testVersions()[0]

	require.NoError(t, newTestRenderer().Version(&buf, v))

	out := buf.String()
	assert.Contains(t, out, "Version v2")
	assert.Contains(t, out, "Added:   2   Removed: 2")
	assert.Contains(t, out, "Words:   4 -> 4")
	assert.Contains(t, out, "the [+slow] brown [+dog]")
	assert.Contains(t, out, "Removed: [-quick] [-fox]")
}

func TestVersion_EmptyNewTextFallsBackToPrevious(t *testing.T) {
	var buf bytes.Buffer
	v := &models.Version{ID: "v3", Timestamp: fixedNow, PreviousText: "old text"}

	require.NoError(t, newTestRenderer().Version(&buf, v))
	assert.Contains(t, buf.String(), "old text")
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "first line", Preview("first line\nsecond", 40))
	assert.Equal(t, EmptyText, Preview("   ", 40))
	assert.Equal(t, "abcd…", Preview("abcdefgh", 5))
	assert.Equal(t, "привет", Preview("привет", 6))
}
