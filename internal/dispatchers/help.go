package dispatchers

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/footprint-tools/chunky/internal/ui/style"
)

// flagColumnWidth is where descriptions start in the flag table.
const flagColumnWidth = 24

// HelpPage holds the fixed parts of the usage text.
type HelpPage struct {
	Banner []string
	Usage  string
	Notes  []string
}

// formatUsage styles the usage line with the program in Info color and the rest muted.
func formatUsage(usage string) string {
	cmdEnd := len(usage)
	for i, c := range usage {
		if c == '[' || c == '<' {
			cmdEnd = i
			break
		}
	}

	cmd := strings.TrimSpace(usage[:cmdEnd])
	rest := ""
	if cmdEnd < len(usage) {
		rest = usage[cmdEnd:]
	}

	if rest == "" {
		return style.Info(cmd)
	}
	return style.Info(cmd) + " " + style.Muted(rest)
}

// flagLabel renders the left column for a flag, e.g. "-set <NAME> <VALUE>".
func flagLabel(f FlagDescriptor) string {
	name := strings.Join(f.Names, ", ")
	if f.ValueHint != "" {
		name = name + " " + f.ValueHint
	}
	return name
}

// FormatHelp renders the usage page for the given flags in registration order.
// Labels too wide for the flag column get the description on the next line.
func FormatHelp(page HelpPage, flags []FlagDescriptor) string {
	var out bytes.Buffer

	for _, line := range page.Banner {
		out.WriteString(line)
		out.WriteString("\n")
	}
	if len(page.Banner) > 0 {
		out.WriteString("\n")
	}

	out.WriteString(style.Header("Usage:"))
	out.WriteString(" ")
	out.WriteString(formatUsage(page.Usage))
	out.WriteString("\n")

	out.WriteString(style.Header("Options:"))
	out.WriteString("\n")
	for _, f := range flags {
		label := flagLabel(f)
		if len(label) >= flagColumnWidth-1 {
			fmt.Fprintf(&out, "  %s\n", style.Info(label))
			fmt.Fprintf(&out, "  %s %s\n", strings.Repeat(" ", flagColumnWidth-1), f.Description)
			continue
		}
		fmt.Fprintf(&out, "  %s %s\n", style.Info(fmt.Sprintf("%-*s", flagColumnWidth-1, label)), f.Description)
	}

	if len(page.Notes) > 0 {
		out.WriteString("\n")
		out.WriteString(style.Header("Notes:"))
		out.WriteString("\n")
		for _, line := range page.Notes {
			out.WriteString(line)
			out.WriteString("\n")
		}
	}

	return out.String()
}

// Usage renders the help page for every flag in the registry.
func (r *Registry[O]) Usage(page HelpPage) string {
	return FormatHelp(page, r.Descriptors())
}
