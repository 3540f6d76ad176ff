package dispatchers

// State is the per-run dispatch state handed to and returned from flag handlers.
// O is the program's option record collected while parsing.
type State[O any] struct {
	Mode               Mode
	ExitCode           int
	ConfigurationError bool
	Options            O
}

// Operation returns a copy of st in ModeOperation.
func (st State[O]) Operation() State[O] {
	st.Mode = ModeOperation
	return st
}

// Fail returns a copy of st marked as a configuration error with the given exit code.
func (st State[O]) Fail(exitCode int) State[O] {
	st.ConfigurationError = true
	st.ExitCode = exitCode
	return st
}

// Outcome is the terminal result of a dispatch run.
type Outcome[O any] struct {
	State[O]

	// Positional is the single bare token, when one was given.
	Positional    string
	HasPositional bool
}

// positional tracks whether the one allowed bare token was already seen.
type positional int

const (
	positionalPending positional = iota
	positionalSeen
)

// accept records tok as the positional argument. It returns false when one
// was already accepted.
func (p *positional) accept(out *string, tok string) bool {
	if *p == positionalSeen {
		return false
	}
	*out = tok
	*p = positionalSeen
	return true
}
