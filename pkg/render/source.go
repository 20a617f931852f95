package render

import "unicode"

// hasGraph reports whether source contains anything besides whitespace and
// comments. Graphviz reports no fresh error for such input, only whatever
// message an earlier parse left behind.
func hasGraph(source string) bool {
	s := []rune(source)
	lineStart := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\n':
			lineStart = true
			continue
		case unicode.IsSpace(c):
			continue
		case c == '#' && lineStart:
			i = skipLine(s, i)
			lineStart = true
			continue
		case c == '/' && i+1 < len(s) && s[i+1] == '/':
			i = skipLine(s, i)
			lineStart = true
			continue
		case c == '/' && i+1 < len(s) && s[i+1] == '*':
			end := i + 2
			for end+1 < len(s) && !(s[end] == '*' && s[end+1] == '/') {
				end++
			}
			if end+1 >= len(s) {
				// Unterminated comment; let Graphviz report it.
				return true
			}
			i = end + 1
			lineStart = false
			continue
		}
		return true
	}
	return false
}

// skipLine returns the index of the newline ending the line at i, or
// len(s) on the last line.
func skipLine(s []rune, i int) int {
	for i < len(s) && s[i] != '\n' {
		i++
	}
	return i
}
