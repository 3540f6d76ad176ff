// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place where lipgloss is imported. All styling
// is semantic (Success, Warning, Error, etc.) rather than visual (RedBold, etc.).
//
// When disabled, all helpers return the input string unchanged with no ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorConfig holds the ANSI color (0-255) or "bold" for each semantic role.
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
}

// DefaultColors is used for any role without an override.
var DefaultColors = ColorConfig{
	Success: "2",
	Warning: "3",
	Error:   "1",
	Info:    "6",
	Muted:   "8",
	Header:  "bold",
}

var (
	enabled bool

	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
)

// Init initializes the style package with the given enabled state and overrides.
// It also respects NO_COLOR and CHUNKY_NO_COLOR environment variables;
// if either is set (to any non-empty value), styling is disabled
// regardless of the enabled parameter.
//
// Overrides use the settings keys color_success, color_warning, color_error,
// color_info, color_muted and color_header. A nil map keeps the defaults.
func Init(enable bool, overrides map[string]string) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("CHUNKY_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable

	if enabled {
		initStyles(LoadColorConfig(overrides))
	}
}

// LoadColorConfig applies settings overrides on top of DefaultColors.
func LoadColorConfig(overrides map[string]string) ColorConfig {
	c := DefaultColors
	apply := func(key string, dst *string) {
		if v := overrides["color_"+key]; v != "" {
			*dst = v
		}
	}
	apply("success", &c.Success)
	apply("warning", &c.Warning)
	apply("error", &c.Error)
	apply("info", &c.Info)
	apply("muted", &c.Muted)
	apply("header", &c.Header)
	return c
}

// initStyles creates the lipgloss styles from the given color configuration.
func initStyles(colors ColorConfig) {
	// Force lipgloss to use ANSI256 colors regardless of TTY detection.
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(colors.Success)
	warningStyle = makeStyle(colors.Warning)
	errorStyle = makeStyle(colors.Error)
	infoStyle = makeStyle(colors.Info)
	mutedStyle = makeStyle(colors.Muted)
	headerStyle = makeStyle(colors.Header)
}

// makeStyle creates a lipgloss style from a color value.
// The value can be "bold" for bold styling, or an ANSI color number (0-255).
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

// Success styles text for successful operations.
func Success(text string) string {
	if !enabled {
		return text
	}
	return successStyle.Render(text)
}

// Warning styles text for warning messages.
func Warning(text string) string {
	if !enabled {
		return text
	}
	return warningStyle.Render(text)
}

// Error styles text for error messages.
func Error(text string) string {
	if !enabled {
		return text
	}
	return errorStyle.Render(text)
}

// Info styles text for informational messages.
func Info(text string) string {
	if !enabled {
		return text
	}
	return infoStyle.Render(text)
}

// Header styles text for section headers or titles.
func Header(text string) string {
	if !enabled {
		return text
	}
	return headerStyle.Render(text)
}

// Muted styles text for less important or secondary information.
func Muted(text string) string {
	if !enabled {
		return text
	}
	return mutedStyle.Render(text)
}
