package extract_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/lessongen/internal/domain"
	"github.com/davidbz/lessongen/internal/extract"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "valid json is untouched",
			input:    `{"a": "  padded  ", "b": [1, 2], "c": "tab\there"}`,
			expected: `{"a": "  padded  ", "b": [1, 2], "c": "tab\there"}`,
		},
		{
			name:     "bare booleans lower-cased",
			input:    `{"a": True, "b": [False, True]}`,
			expected: `{"a": true, "b": [false, true]}`,
		},
		{
			name:     "booleans inside strings are kept",
			input:    `{"statement": "True or False?", "answer": True}`,
			expected: `{"statement": "True or False?", "answer": true}`,
		},
		{
			name:     "word boundaries respected",
			input:    `{"a": Truely, "b": IsFalse}`,
			expected: `{"a": Truely, "b": IsFalse}`,
		},
		{
			name:     "multi-line value collapsed",
			input:    "{\"text\": \"line one\n    line two\r\n line three\"}",
			expected: `{"text": "line one line two line three"}`,
		},
		{
			name:     "leading and trailing line breaks dropped",
			input:    "{\"text\": \"\n  hello\n\"}",
			expected: `{"text": "hello"}`,
		},
		{
			name:     "whitespace between tokens preserved",
			input:    "{\n  \"a\": 1,\n  \"b\": 2\n}",
			expected: "{\n  \"a\": 1,\n  \"b\": 2\n}",
		},
		{
			name:     "escaped quotes do not end the string",
			input:    "{\"q\": \"say \\\"True\\\"\nnow\", \"ok\": True}",
			expected: `{"q": "say \"True\" now", "ok": true}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, extract.Normalize(tt.input))
		})
	}
}

func TestFindBalanced(t *testing.T) {
	value, ok := extract.FindBalanced(`prefix [1, [2, 3]] suffix`)
	require.True(t, ok)
	require.Equal(t, []any{float64(1), []any{float64(2), float64(3)}}, value)

	_, ok = extract.FindBalanced(`{"a": [1, 2}`)
	require.False(t, ok)

	_, ok = extract.FindBalanced(`no brackets at all`)
	require.False(t, ok)
}

func TestFindBalanced_NestedInsideUnclosedSpan(t *testing.T) {
	value, ok := extract.FindBalanced(`[ [ note {"a": "x]"} and ["b"]`)
	require.True(t, ok)
	require.Equal(t, map[string]any{"a": "x]"}, value)
}

func TestFindBalanced_MismatchAbandonsOpenSpans(t *testing.T) {
	value, ok := extract.FindBalanced(`{ "a": [1, 2} then {"b": 2}`)
	require.True(t, ok)
	require.Equal(t, map[string]any{"b": float64(2)}, value)
}

func TestFindBalanced_LinearOnUnclosedInput(t *testing.T) {
	extractor := extract.NewExtractor()

	for _, input := range []string{
		strings.Repeat("{", 200000),
		strings.Repeat("[", 100000) + strings.Repeat(`"x`, 50000),
		strings.Repeat(`{"a": [`, 30000),
	} {
		start := time.Now()
		result := extractor.Extract(input, "JSON {'a': list}", true)
		elapsed := time.Since(start)

		require.Equal(t, domain.ExtractedRetryHint, result.Kind)
		require.Less(t, elapsed, 2*time.Second)
	}
}
