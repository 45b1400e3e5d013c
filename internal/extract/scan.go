package extract

// FindBalanced returns the first bracket-balanced {...} or [...] span of
// text that parses as JSON after normalization.
//
// Brackets inside string literals of an open span do not count. A span
// that closes but does not parse is skipped as a whole. A span that never
// closes is abandoned and the spans nested in it are still tried; a wrong
// closing bracket abandons every span open at that point. The scan is a
// single pass, so cost stays linear in len(text).
func FindBalanced(text string) (any, bool) {
	closers := matchBrackets(text)
	if len(closers) == 0 {
		return nil, false
	}

	for i := 0; i < len(text); i++ {
		end, ok := closers[i]
		if !ok {
			continue
		}
		if value, ok := decode(text[i : end+1]); ok {
			return value, true
		}
		i = end
	}
	return nil, false
}

// matchBrackets maps the index of every opening bracket that gets closed
// to the index of its closing bracket.
func matchBrackets(text string) map[int]int {
	closers := make(map[int]int)
	stack := make([]int, 0, 8)
	inString := false
	escaped := false

	for j := 0; j < len(text); j++ {
		c := text[j]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			// Quotes in prose between spans do not open strings.
			if len(stack) > 0 {
				inString = true
			}
		case '{', '[':
			stack = append(stack, j)
		case '}', ']':
			if len(stack) == 0 {
				continue
			}
			opening := stack[len(stack)-1]
			if (text[opening] == '{' && c != '}') || (text[opening] == '[' && c != ']') {
				stack = stack[:0]
				continue
			}
			stack = stack[:len(stack)-1]
			closers[opening] = j
		}
	}

	return closers
}
