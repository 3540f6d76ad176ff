package dispatchers

// SuccessFunc receives the tokens consumed by a flag and returns the updated state.
// args is a private copy; handlers may keep or modify it.
type SuccessFunc[O any] func(st State[O], args []string) State[O]

// ArityErrorFunc replaces the default arity failure for a flag.
// The returned state is always marked as a configuration error and the rest
// of the command line is discarded.
type ArityErrorFunc[O any] func(st State[O]) State[O]

// FlagSpec describes a flag at registration time.
type FlagSpec[O any] struct {
	Names            []string // first name is used in messages
	ValueHint        string
	Description      string
	Arity            Arity
	NumericPositions []int
	OnSuccess        SuccessFunc[O]
	OnArityError     ArityErrorFunc[O]
}

// FlagHandler binds a flag's arity and numeric positions to its callbacks.
// It is immutable once built; aliases share one handler.
type FlagHandler[O any] struct {
	name         string
	arity        Arity
	numeric      NumericPositions
	onSuccess    SuccessFunc[O]
	onArityError ArityErrorFunc[O]
}

// NewFlagHandler validates the arity and numeric positions and builds a handler.
func NewFlagHandler[O any](name string, arity Arity, numeric []int, onSuccess SuccessFunc[O], onArityError ArityErrorFunc[O]) (*FlagHandler[O], error) {
	if err := arity.Validate(); err != nil {
		return nil, err
	}
	positions, err := NewNumericPositions(arity, numeric...)
	if err != nil {
		return nil, err
	}
	return &FlagHandler[O]{
		name:         name,
		arity:        arity,
		numeric:      positions,
		onSuccess:    onSuccess,
		onArityError: onArityError,
	}, nil
}

// Name returns the primary flag name.
func (h *FlagHandler[O]) Name() string {
	return h.name
}

// Arity returns the accepted token count range.
func (h *FlagHandler[O]) Arity() Arity {
	return h.arity
}

// Consume takes up to Arity().Max tokens from the front of tokens and runs the
// success callback with them. isFlag reports registered flag names; such a
// token always ends consumption, even at a numeric position.
//
// On an arity failure with an arity error callback, the callback's state is
// returned with ConfigurationError set and no remaining tokens. Without one,
// an *ArityError is returned and st is unchanged.
func (h *FlagHandler[O]) Consume(st State[O], tokens []string, isFlag func(string) bool) (State[O], []string, error) {
	taken := 0
	for i := 0; i < h.arity.Max && taken < len(tokens); i++ {
		tok := tokens[taken]
		if !LooksLikeFlag(tok) {
			taken++
			continue
		}
		if h.numeric.Contains(i) && IsNumber(tok) && (isFlag == nil || !isFlag(tok)) {
			taken++
			continue
		}
		// start of the next flag
		break
	}

	if taken < h.arity.Min {
		if h.onArityError != nil {
			st = h.onArityError(st)
			st.ConfigurationError = true
			return st, nil, nil
		}
		return st, tokens, &ArityError{Flag: h.name, Found: taken, Expected: h.arity.Min}
	}

	args := make([]string, taken)
	copy(args, tokens[:taken])
	if h.onSuccess != nil {
		st = h.onSuccess(st, args)
	}
	return st, tokens[taken:], nil
}
