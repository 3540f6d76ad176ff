package dispatchers

import (
	"github.com/footprint-tools/chunky/internal/domain"
	"github.com/footprint-tools/chunky/internal/log"
)

const defaultSuggestionsCount = 3

// UsageFunc renders the usage text printed after a parse error.
type UsageFunc func() string

// FinalizeFunc adjusts the outcome once all tokens are consumed.
type FinalizeFunc[O any] func(Outcome[O]) Outcome[O]

// Dispatcher walks a token list and delegates each flag to its handler.
type Dispatcher[O any] struct {
	registry *Registry[O]
	diag     domain.DiagnosticsSink
	usage    UsageFunc
	finalize FinalizeFunc[O]
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption[O any] func(*Dispatcher[O])

// WithUsage sets the usage text printed after parse errors.
func WithUsage[O any](fn UsageFunc) DispatcherOption[O] {
	return func(d *Dispatcher[O]) {
		d.usage = fn
	}
}

// WithFinalizer sets a hook run on the outcome after the loop ends.
func WithFinalizer[O any](fn FinalizeFunc[O]) DispatcherOption[O] {
	return func(d *Dispatcher[O]) {
		d.finalize = fn
	}
}

// NewDispatcher creates a Dispatcher over a fully built registry.
func NewDispatcher[O any](registry *Registry[O], diag domain.DiagnosticsSink, opts ...DispatcherOption[O]) *Dispatcher[O] {
	d := &Dispatcher[O]{
		registry: registry,
		diag:     diag,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run consumes tokens until they are exhausted, a configuration error is
// recorded or a handler completes the operation. Parse errors are printed
// and reported through Outcome.ConfigurationError; Run never returns them.
func (d *Dispatcher[O]) Run(tokens []string, options O) Outcome[O] {
	out := Outcome[O]{State: State[O]{Mode: ModeGUI, Options: options}}

	remaining := make([]string, len(tokens))
	copy(remaining, tokens)

	var pos positional
	for len(remaining) > 0 && !out.ConfigurationError && !out.Mode.Terminal() {
		tok := remaining[0]
		remaining = remaining[1:]

		if handler, ok := d.registry.Lookup(tok); ok {
			st, rest, err := handler.Consume(out.State, remaining, d.registry.Has)
			if err != nil {
				log.Debug("dispatch: %s: %v", tok, err)
				d.fail(err)
				out.ConfigurationError = true
				continue
			}
			log.Debug("dispatch: %s consumed %d token(s), mode=%s", tok, len(remaining)-len(rest), st.Mode)
			out.State = st
			remaining = rest
			continue
		}

		if !LooksLikeFlag(tok) && pos.accept(&out.Positional, tok) {
			out.HasPositional = true
			continue
		}

		d.fail(d.unrecognized(tok))
		out.ConfigurationError = true
	}

	if d.finalize != nil {
		out = d.finalize(out)
	}
	return out
}

func (d *Dispatcher[O]) unrecognized(tok string) *UnrecognizedFlagError {
	err := &UnrecognizedFlagError{Token: tok}
	if LooksLikeFlag(tok) {
		err.Suggestions = FindSimilarFlags(tok, d.registry.Names(), defaultSuggestionsCount)
	}
	return err
}

func (d *Dispatcher[O]) fail(err error) {
	if d.diag == nil {
		return
	}
	d.diag.ErrorLine(err.Error())
	if d.usage != nil {
		d.diag.PrintLine(d.usage())
	}
}
