package testutil

import (
	"strings"
	"sync"

	"github.com/footprint-tools/chunky/internal/domain"
)

// Sink records diagnostics lines per channel.
type Sink struct {
	mu  sync.Mutex
	Out []string
	Err []string
}

func (s *Sink) PrintLine(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Out = append(s.Out, line)
}

func (s *Sink) ErrorLine(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Err = append(s.Err, line)
}

// Stdout joins the standard channel lines.
func (s *Sink) Stdout() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strings.Join(s.Out, "\n")
}

// Stderr joins the error channel lines.
func (s *Sink) Stderr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strings.Join(s.Err, "\n")
}

var _ domain.DiagnosticsSink = (*Sink)(nil)
