package genpipe

import "strings"

// CompletePartialJSON closes the open strings, objects and arrays of a
// JSON prefix so that it parses as a best-effort snapshot of the full
// document. A prefix that cannot be closed into valid JSON (e.g. one that
// ends right after a key's colon) is returned nearly as-is and the caller
// is expected to skip the snapshot when parsing fails.
func CompletePartialJSON(s string) string {
	var stack []byte
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			if escaped {
				escaped = false
				continue
			}
			switch c {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			stack = append(stack, c)
		case '}', ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	out := s
	if inString {
		if escaped {
			// Drop a dangling backslash so the closing quote is not escaped.
			out = out[:len(out)-1]
		}
		out += `"`
	} else {
		trimmed := strings.TrimRight(out, " \t\r\n")
		// A trailing comma would make the closed document invalid.
		out = strings.TrimSuffix(trimmed, ",")
	}

	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '{' {
			out += "}"
		} else {
			out += "]"
		}
	}
	return out
}
