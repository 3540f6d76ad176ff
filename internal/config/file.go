package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/footprint-tools/chunky/internal/domain"
	"github.com/footprint-tools/chunky/internal/log"
)

const fileHeader = "# Chunky settings"

// Lines returns the settings file line by line. A missing or empty file
// is seeded with the defaults, which are written back best-effort.
func (p *Provider) Lines() ([]string, error) {
	data, err := p.files.ReadBytes(p.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	lines := splitLines(string(data))
	if len(lines) == 0 {
		lines = initializeDefaults()
		if err := p.writeLines(lines); err != nil {
			log.Warn("config: could not write default settings to %s: %v", p.path, err)
		}
	}
	return lines, nil
}

func (p *Provider) writeLines(lines []string) error {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return p.files.WriteBytes(p.path, []byte(b.String()))
}

// splitLines drops the terminator of the last line and any CR before a LF.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// initializeDefaults creates config lines with default values for visible keys.
func initializeDefaults() []string {
	lines := []string{
		fileHeader,
		"# Edit values below or use: chunky -set <key> <value>",
		"",
	}

	for _, key := range domain.ConfigKeys {
		if key.Hidden {
			continue
		}

		value := key.Default
		if v, ok := defaultValue(key.Name); ok {
			value = v
		}
		if value == "" {
			lines = append(lines, "# "+key.Name+"=")
			continue
		}

		if strings.Contains(value, " ") {
			value = "\"" + value + "\""
		}
		lines = append(lines, key.Name+"="+value)
	}

	return lines
}
