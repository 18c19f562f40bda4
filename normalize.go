package quizdoc

import "strings"

// CleanString collapses runs of whitespace, including newlines, into single
// spaces and trims the result.
func CleanString(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// CleanList cleans every item, drops items that are empty after cleaning and
// removes duplicates, keeping the first occurrence. It always returns a new
// slice; the input is left untouched.
func CleanList(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = CleanString(item)
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// CleanMap trims keys and values and drops entries whose key or value is
// empty after trimming.
func CleanMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if k == "" || v == "" {
			continue
		}
		out[k] = v
	}
	return out
}

// SplitSentences inserts a newline after every '.', '!' or '?' that is not
// enclosed in parentheses. Spaces following an inserted newline are dropped.
func SplitSentences(text string) string {
	var sb strings.Builder
	sb.Grow(len(text) + 8)

	depth := 0
	lineStart := false
	for _, r := range text {
		if lineStart && r == ' ' {
			continue
		}
		lineStart = false

		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case '.', '!', '?':
			if depth == 0 {
				sb.WriteRune(r)
				sb.WriteByte('\n')
				lineStart = true
				continue
			}
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
