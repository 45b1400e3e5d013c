package extract

import "strings"

// Normalize repairs the two defects models most often introduce into JSON:
// string values broken across lines, and bare Python True/False literals.
//
// Inside a string literal, every whitespace run that contains a line break
// becomes a single space, or disappears at either end of the string.
// Strings without raw line breaks are copied unchanged. Outside string
// literals, the bare words True and False are lower-cased.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inString := false
	escaped := false
	atStringStart := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			case isSpace(c):
				j := i
				for j < len(s) && isSpace(s[j]) {
					j++
				}
				run := s[i:j]
				if strings.ContainsAny(run, "\r\n") {
					closing := j < len(s) && s[j] == '"'
					if !atStringStart && !closing {
						b.WriteByte(' ')
					}
				} else {
					b.WriteString(run)
				}
				i = j - 1
				atStringStart = false
				continue
			}
			b.WriteByte(c)
			atStringStart = false
			continue
		}

		if c == '"' {
			inString = true
			atStringStart = true
			b.WriteByte(c)
			continue
		}

		if word, ok := pythonBool(s, i); ok {
			b.WriteString(strings.ToLower(word))
			i += len(word) - 1
			continue
		}

		b.WriteByte(c)
	}

	return b.String()
}

// pythonBool reports a bare True or False word starting at i.
func pythonBool(s string, i int) (string, bool) {
	if s[i] != 'T' && s[i] != 'F' {
		return "", false
	}
	if i > 0 && isWordByte(s[i-1]) {
		return "", false
	}

	for _, word := range []string{"True", "False"} {
		if !strings.HasPrefix(s[i:], word) {
			continue
		}
		end := i + len(word)
		if end < len(s) && isWordByte(s[end]) {
			return "", false
		}
		return word, true
	}
	return "", false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}
