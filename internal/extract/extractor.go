// Package extract recovers JSON objects and arrays from free-form model output.
//
// Models asked for JSON routinely wrap it in prose, put it in markdown fences,
// break string values across lines or emit Python-style booleans. Extractor
// tries, in order:
//
//  1. fenced code blocks (```json first, then any ```), balanced-scanning each
//  2. a balanced-bracket scan over the whole text
//  3. a direct slice from the first '{' to the last '}'
//
// and, when all of them fail, either asks for one repair round-trip or gives
// the raw text back.
package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/davidbz/lessongen/internal/domain"
)

// Extractor implements domain.ResponseExtractor.
type Extractor struct {
	// jsonFenceRegex matches ```json fenced blocks.
	jsonFenceRegex *regexp.Regexp
	// anyFenceRegex matches any fenced block.
	anyFenceRegex *regexp.Regexp
}

// NewExtractor creates an extractor with compiled regexes.
func NewExtractor() *Extractor {
	return &Extractor{
		jsonFenceRegex: regexp.MustCompile("(?is)```json(.*?)```"),
		anyFenceRegex:  regexp.MustCompile("(?s)```(.*?)```"),
	}
}

// Extract returns the first object or array recoverable from raw.
// When nothing parses it returns a repair hint if allowRepair is set,
// and the raw text unchanged otherwise.
func (e *Extractor) Extract(raw, desiredShape string, allowRepair bool) domain.Extraction {
	for _, block := range e.codeBlocks(raw) {
		if value, ok := FindBalanced(block); ok {
			return domain.Extraction{Kind: domain.ExtractedValue, Value: value}
		}
	}

	if value, ok := FindBalanced(raw); ok {
		return domain.Extraction{Kind: domain.ExtractedValue, Value: value}
	}

	if value, ok := directSlice(raw); ok {
		return domain.Extraction{Kind: domain.ExtractedValue, Value: value}
	}

	if allowRepair {
		return domain.Extraction{Kind: domain.ExtractedRetryHint, Hint: RepairPrompt(desiredShape, raw)}
	}

	return domain.Extraction{Kind: domain.ExtractedRaw, Raw: raw}
}

// RepairPrompt builds the corrective prompt sent back to the same model.
// desiredShape is embedded verbatim, including Python-dict style hints.
func RepairPrompt(desiredShape, raw string) string {
	return desiredShape + " Incorrect the following and write only json: " + raw
}

// codeBlocks returns fenced block contents, ```json blocks first.
func (e *Extractor) codeBlocks(text string) []string {
	var blocks []string
	for _, match := range e.jsonFenceRegex.FindAllStringSubmatch(text, -1) {
		blocks = append(blocks, match[1])
	}
	for _, match := range e.anyFenceRegex.FindAllStringSubmatch(text, -1) {
		blocks = append(blocks, match[1])
	}
	return blocks
}

// directSlice parses text between the first '{' and the last '}'.
func directSlice(text string) (any, bool) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return nil, false
	}
	return decode(text[start : end+1])
}

// decode normalizes and parses a candidate, accepting only objects and arrays.
func decode(candidate string) (any, bool) {
	var value any
	if err := json.Unmarshal([]byte(Normalize(candidate)), &value); err != nil {
		return nil, false
	}

	switch value.(type) {
	case map[string]any, []any:
		return value, true
	default:
		return nil, false
	}
}
