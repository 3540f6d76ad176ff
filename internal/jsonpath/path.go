package jsonpath

import (
	"strings"
)

const separator = "."

// split breaks a dot-path into its segments. Empty segments are rejected.
func split(path string) ([]string, error) {
	if path == "" {
		return nil, &PathError{Path: path, Reason: "empty path"}
	}

	segments := strings.Split(path, separator)
	for _, seg := range segments {
		if seg == "" {
			return nil, &PathError{Path: path, Reason: "empty path segment"}
		}
	}
	return segments, nil
}

// escape makes a key literal for gjson/sjson path syntax.
func escape(segment string) string {
	var b strings.Builder
	b.Grow(len(segment))
	for i := 0; i < len(segment); i++ {
		c := segment[i]
		if isPathMeta(c) {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isPathMeta(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return false
	case c == '_' || c == ' ':
		return false
	case c > '~' || c < ' ':
		return false
	}
	return true
}

func join(segments []string) string {
	escaped := make([]string, len(segments))
	for i, seg := range segments {
		escaped[i] = escape(seg)
	}
	return strings.Join(escaped, separator)
}
