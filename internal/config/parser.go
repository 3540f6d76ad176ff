package config

import (
	"fmt"
	"strings"
)

const bom = "\uFEFF"

// Parse turns settings lines into a key/value map.
// Blank lines and lines starting with # are skipped; the last duplicate wins.
// A value wrapped in double quotes is unquoted.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, bom)
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			return nil, fmt.Errorf("config: line %d: expected key=value", i+1)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}

		value = strings.TrimSpace(value)
		if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
			value = value[1 : len(value)-1]
		}

		cfg[key] = value
	}

	return cfg, nil
}
