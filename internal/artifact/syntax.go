package artifact

import "strings"

// pythonSyntaxOK performs a lightweight structural check on generated Python
// source: bracket pairs must balance and string literals must terminate. It
// is not a parser — the goal is to flag obviously truncated or garbled model
// output before a student tries to run it.
func pythonSyntaxOK(code string) bool {
	if strings.TrimSpace(code) == "" {
		return false
	}

	var stack []byte
	i := 0
	n := len(code)
	for i < n {
		c := code[i]
		switch c {
		case '#':
			for i < n && code[i] != '\n' {
				i++
			}
			continue
		case '\'', '"':
			end, ok := skipString(code, i)
			if !ok {
				return false
			}
			i = end
			continue
		case '(', '[', '{':
			stack = append(stack, c)
		case ')', ']', '}':
			if len(stack) == 0 || stack[len(stack)-1] != opener(c) {
				return false
			}
			stack = stack[:len(stack)-1]
		}
		i++
	}
	return len(stack) == 0
}

// skipString advances past the string literal starting at i and returns the
// index just after its closing quote. Handles single, double, and triple
// quotes plus backslash escapes.
func skipString(code string, i int) (int, bool) {
	q := code[i]
	n := len(code)

	// Triple-quoted string.
	if i+2 < n && code[i+1] == q && code[i+2] == q {
		term := strings.Repeat(string(q), 3)
		end := strings.Index(code[i+3:], term)
		if end < 0 {
			return 0, false
		}
		return i + 3 + end + 3, true
	}

	for j := i + 1; j < n; j++ {
		switch code[j] {
		case '\\':
			j++
		case '\n':
			// Single-quoted strings cannot span lines.
			return 0, false
		case q:
			return j + 1, true
		}
	}
	return 0, false
}

func opener(closer byte) byte {
	switch closer {
	case ')':
		return '('
	case ']':
		return '['
	default:
		return '{'
	}
}
