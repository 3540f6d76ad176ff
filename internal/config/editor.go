package config

import "strings"

// lineKey reports the key of a key=value line, skipping blanks and comments.
func lineKey(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", false
	}

	key, _, ok := strings.Cut(trimmed, "=")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(key), true
}

// Set replaces the line for key, or appends one. It reports whether an
// existing line was replaced.
func Set(lines []string, key, value string) ([]string, bool) {
	for i, line := range lines {
		if k, ok := lineKey(line); ok && k == key {
			lines[i] = key + "=" + value
			return lines, true
		}
	}

	return append(lines, key+"="+value), false
}

// Unset drops every line for key and reports whether anything was removed.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		if k, ok := lineKey(line); ok && k == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}
