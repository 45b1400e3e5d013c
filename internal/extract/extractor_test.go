package extract_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/lessongen/internal/domain"
	"github.com/davidbz/lessongen/internal/extract"
)

const wordsShape = "JSON {'words': [{'word': str, 'translation': str}]}"

func TestExtractor_Extract(t *testing.T) {
	extractor := extract.NewExtractor()

	tests := []struct {
		name     string
		raw      string
		expected any
	}{
		{
			name:     "json code fence",
			raw:      "```json\n{\"title\":\"A\"}\n```",
			expected: map[string]any{"title": "A"},
		},
		{
			name:     "untagged code fence",
			raw:      "Here you go:\n```\n[{\"q\": \"1+1\", \"a\": 2}]\n```\nEnjoy!",
			expected: []any{map[string]any{"q": "1+1", "a": float64(2)}},
		},
		{
			name:     "upper-case json tag",
			raw:      "```JSON\n{\"ok\": true}\n```",
			expected: map[string]any{"ok": true},
		},
		{
			name:     "nested brackets inside prose",
			raw:      `Sure! {"a": [1,2,{"b":3}]} done`,
			expected: map[string]any{"a": []any{float64(1), float64(2), map[string]any{"b": float64(3)}}},
		},
		{
			name: "direct json without fence",
			raw:  `{"words":[{"word":"cat","translation":"кот"}]}`,
			expected: map[string]any{"words": []any{
				map[string]any{"word": "cat", "translation": "кот"},
			}},
		},
		{
			name:     "python booleans",
			raw:      "```json\n{\"correct\": True, \"skipped\": False}\n```",
			expected: map[string]any{"correct": true, "skipped": false},
		},
		{
			name:     "multi-line string value",
			raw:      "{\"text\": \"\n  The cat sat\n  on the mat.\n\"}",
			expected: map[string]any{"text": "The cat sat on the mat."},
		},
		{
			name:     "brackets inside strings do not confuse the scan",
			raw:      `Result: {"pattern": "a]b}c", "n": 1} trailing`,
			expected: map[string]any{"pattern": "a]b}c", "n": float64(1)},
		},
		{
			name:     "skips unparseable candidate and keeps scanning",
			raw:      `First [not json] then {"answer": 42}`,
			expected: map[string]any{"answer": float64(42)},
		},
		{
			name:     "unclosed bracket does not stop the scan",
			raw:      `[ note: {"answer": 42}`,
			expected: map[string]any{"answer": float64(42)},
		},
		{
			name:     "fence preferred over earlier prose object",
			raw:      "{bad} text\n```json\n{\"from\": \"fence\"}\n```",
			expected: map[string]any{"from": "fence"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractor.Extract(tt.raw, wordsShape, true)

			require.Equal(t, domain.ExtractedValue, result.Kind)
			require.True(t, result.Structured())
			require.Equal(t, tt.expected, result.Value)
		})
	}
}

func TestExtractor_RepairBound(t *testing.T) {
	extractor := extract.NewExtractor()
	broken := "I could not produce the list, sorry: {word: cat"

	first := extractor.Extract(broken, wordsShape, true)
	require.Equal(t, domain.ExtractedRetryHint, first.Kind)
	require.Equal(t, wordsShape+" Incorrect the following and write only json: "+broken, first.Hint)
	require.False(t, first.Structured())

	second := extractor.Extract(broken, wordsShape, false)
	require.Equal(t, domain.ExtractedRaw, second.Kind)
	require.Equal(t, broken, second.Raw)
	require.Empty(t, second.Hint)
	require.False(t, second.Structured())
}

func TestExtractor_ScalarIsNotStructured(t *testing.T) {
	extractor := extract.NewExtractor()

	result := extractor.Extract("```json\n\"just a string\"\n```", wordsShape, false)

	require.Equal(t, domain.ExtractedRaw, result.Kind)
}

func TestExtractor_RepairPromptKeepsShapeVerbatim(t *testing.T) {
	shape := "JSON [{'task_type': str, 'instruction': str}]"
	require.Equal(t,
		"JSON [{'task_type': str, 'instruction': str}] Incorrect the following and write only json: oops",
		extract.RepairPrompt(shape, "oops"))
}
