package dispatchers

import (
	"errors"
	"fmt"
)

// ErrDuplicateFlag is returned when a flag name is registered twice.
var ErrDuplicateFlag = errors.New("flag already registered")

// FlagDescriptor is the help-facing description of a registered flag.
type FlagDescriptor struct {
	Names       []string
	ValueHint   string
	Description string
}

// Registry maps flag names, aliases included, to their handlers.
// It is built once before parsing and only read during dispatch.
type Registry[O any] struct {
	handlers    map[string]*FlagHandler[O]
	descriptors []FlagDescriptor
}

// NewRegistry returns an empty registry.
func NewRegistry[O any]() *Registry[O] {
	return &Registry[O]{handlers: make(map[string]*FlagHandler[O])}
}

// Register adds a flag and its aliases. All names share one handler.
func (r *Registry[O]) Register(spec FlagSpec[O]) error {
	if len(spec.Names) == 0 {
		return errors.New("flag spec without names")
	}
	for _, name := range spec.Names {
		if !LooksLikeFlag(name) {
			return fmt.Errorf("flag %q must start with %q", name, Prefix)
		}
		if _, exists := r.handlers[name]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateFlag, name)
		}
	}

	handler, err := NewFlagHandler[O](spec.Names[0], spec.Arity, spec.NumericPositions, spec.OnSuccess, spec.OnArityError)
	if err != nil {
		return fmt.Errorf("register %s: %w", spec.Names[0], err)
	}

	for _, name := range spec.Names {
		r.handlers[name] = handler
	}
	r.descriptors = append(r.descriptors, FlagDescriptor{
		Names:       append([]string(nil), spec.Names...),
		ValueHint:   spec.ValueHint,
		Description: spec.Description,
	})
	return nil
}

// MustRegister is like Register but panics on error. For static flag tables.
func (r *Registry[O]) MustRegister(spec FlagSpec[O]) {
	if err := r.Register(spec); err != nil {
		panic(err)
	}
}

// Lookup returns the handler registered under name.
func (r *Registry[O]) Lookup(name string) (*FlagHandler[O], bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Has reports whether name is a registered flag or alias.
func (r *Registry[O]) Has(name string) bool {
	_, ok := r.handlers[name]
	return ok
}

// Names returns every registered name, aliases included.
func (r *Registry[O]) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	return names
}

// Descriptors returns the flags in registration order.
func (r *Registry[O]) Descriptors() []FlagDescriptor {
	return r.descriptors
}
