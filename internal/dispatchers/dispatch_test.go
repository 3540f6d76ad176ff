package dispatchers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// createTestRegistry registers a small flag table shaped like the real one.
func createTestRegistry(t *testing.T) *Registry[testOptions] {
	t.Helper()
	r := NewRegistry[testOptions]()

	require.NoError(t, r.Register(FlagSpec[testOptions]{
		Names:            []string{"-set"},
		ValueHint:        "<NAME> <VALUE> [SCENE]",
		Description:      "set an option",
		Arity:            Between(2, 3),
		NumericPositions: []int{1},
		OnSuccess: func(st State[testOptions], args []string) State[testOptions] {
			st = recordCall(st, args)
			return st.Operation()
		},
	}))
	require.NoError(t, r.Register(FlagSpec[testOptions]{
		Names:            []string{"-threads"},
		ValueHint:        "<NUM>",
		Description:      "render threads",
		Arity:            Exactly(1),
		NumericPositions: []int{0},
		OnSuccess: func(st State[testOptions], args []string) State[testOptions] {
			st.Options.threads = args[0]
			return st
		},
	}))
	require.NoError(t, r.Register(FlagSpec[testOptions]{
		Names:       []string{"-render"},
		ValueHint:   "<SCENE>",
		Description: "render a scene",
		Arity:       Exactly(1),
		OnSuccess: func(st State[testOptions], args []string) State[testOptions] {
			st.Mode = ModeRender
			st.Options.scene = args[0]
			return st
		},
		OnArityError: func(st State[testOptions]) State[testOptions] {
			st.ExitCode = 2
			return st
		},
	}))
	require.NoError(t, r.Register(FlagSpec[testOptions]{
		Names:       []string{"-f"},
		Description: "force",
		Arity:       Exactly(0),
		OnSuccess: func(st State[testOptions], _ []string) State[testOptions] {
			st.Options.force = true
			return st
		},
	}))
	require.NoError(t, r.Register(FlagSpec[testOptions]{
		Names:       []string{"-help", "-h", "-?", "--help"},
		Description: "show help",
		Arity:       Exactly(0),
		OnSuccess: func(st State[testOptions], args []string) State[testOptions] {
			return recordCall(st, args).Operation()
		},
	}))

	return r
}

func newTestDispatcher(t *testing.T, opts ...DispatcherOption[testOptions]) (*Dispatcher[testOptions], *recordingSink) {
	t.Helper()
	sink := &recordingSink{}
	opts = append([]DispatcherOption[testOptions]{WithUsage[testOptions](func() string { return "USAGE" })}, opts...)
	return NewDispatcher(createTestRegistry(t), sink, opts...), sink
}

func TestDispatch_EmptyTokens(t *testing.T) {
	d, sink := newTestDispatcher(t)

	out := d.Run(nil, testOptions{})

	require.False(t, out.ConfigurationError)
	require.Equal(t, ModeGUI, out.Mode)
	require.Equal(t, 0, out.ExitCode)
	require.False(t, out.HasPositional)
	require.Empty(t, sink.lines)
}

func TestDispatch_SetConsumesThreeArgs(t *testing.T) {
	d, _ := newTestDispatcher(t)

	out := d.Run([]string{"-set", "render.spp", "400", "myscene"}, testOptions{})

	require.False(t, out.ConfigurationError)
	require.Equal(t, ModeOperation, out.Mode)
	require.Equal(t, [][]string{{"render.spp", "400", "myscene"}}, out.Options.calls)
	require.False(t, out.HasPositional)
}

func TestDispatch_NegativeNumberValue(t *testing.T) {
	d, sink := newTestDispatcher(t)

	out := d.Run([]string{"-threads", "-4"}, testOptions{})

	require.False(t, out.ConfigurationError)
	require.Equal(t, "-4", out.Options.threads)
	require.Empty(t, sink.errors())
}

func TestDispatch_ArityErrorWithoutCallback(t *testing.T) {
	d, sink := newTestDispatcher(t)

	out := d.Run([]string{"-threads", "-unknown-flag"}, testOptions{})

	require.True(t, out.ConfigurationError)
	require.Equal(t, []string{"Missing argument for -threads option. Found 0 arguments, expected 1."}, sink.errors())
	require.Equal(t, []string{"USAGE"}, sink.printed())
}

func TestDispatch_ArityErrorCallbackDiscardsRest(t *testing.T) {
	d, sink := newTestDispatcher(t)

	out := d.Run([]string{"-render", "-f", "world"}, testOptions{})

	require.True(t, out.ConfigurationError)
	require.Equal(t, 2, out.ExitCode)
	require.False(t, out.Options.force, "tokens after the failed flag must be discarded")
	require.False(t, out.HasPositional)
	require.Empty(t, sink.lines, "callback owns the diagnostics")
}

func TestDispatch_Positional(t *testing.T) {
	d, _ := newTestDispatcher(t)

	out := d.Run([]string{"-f", "/worlds/w1", "-render", "scene1"}, testOptions{})

	require.False(t, out.ConfigurationError)
	require.True(t, out.HasPositional)
	require.Equal(t, "/worlds/w1", out.Positional)
	require.True(t, out.Options.force)
	require.Equal(t, ModeRender, out.Mode)
	require.Equal(t, "scene1", out.Options.scene)
}

func TestDispatch_SecondPositionalIsUnrecognized(t *testing.T) {
	d, sink := newTestDispatcher(t)

	out := d.Run([]string{"world1", "world2", "-f"}, testOptions{})

	require.True(t, out.ConfigurationError)
	require.Equal(t, "world1", out.Positional)
	require.Equal(t, []string{"Unrecognized option: world2"}, sink.errors())
	require.False(t, out.Options.force)
}

func TestDispatch_UnrecognizedFlag(t *testing.T) {
	d, sink := newTestDispatcher(t)

	out := d.Run([]string{"-thread", "4"}, testOptions{})

	require.True(t, out.ConfigurationError)
	require.Len(t, sink.errors(), 1)
	require.True(t, strings.HasPrefix(sink.errors()[0], "Unrecognized option: -thread"))
	require.Contains(t, sink.errors()[0], "-threads")
	require.Equal(t, []string{"USAGE"}, sink.printed())
	require.False(t, out.HasPositional, "loop stops before the value token")
}

func TestDispatch_TerminalOperationStopsConsumption(t *testing.T) {
	d, sink := newTestDispatcher(t)

	out := d.Run([]string{"-help", "-bogus", "-f"}, testOptions{})

	require.False(t, out.ConfigurationError)
	require.Equal(t, ModeOperation, out.Mode)
	require.False(t, out.Options.force)
	require.Empty(t, sink.errors())
}

func TestDispatch_AliasesShareHandler(t *testing.T) {
	r := createTestRegistry(t)

	first, ok := r.Lookup("-help")
	require.True(t, ok)
	for _, alias := range []string{"-h", "-?", "--help"} {
		h, ok := r.Lookup(alias)
		require.True(t, ok, alias)
		require.Same(t, first, h)
	}
	require.Equal(t, "-help", first.Name())
}

func TestDispatch_InputNotModified(t *testing.T) {
	d, _ := newTestDispatcher(t)
	tokens := []string{"-threads", "8", "world"}

	d.Run(tokens, testOptions{})

	require.Equal(t, []string{"-threads", "8", "world"}, tokens)
}

func TestDispatch_Finalizer(t *testing.T) {
	d, _ := newTestDispatcher(t, WithFinalizer[testOptions](func(out Outcome[testOptions]) Outcome[testOptions] {
		out.Options.scene = strings.TrimSuffix(out.Options.scene, ".json")
		return out
	}))

	out := d.Run([]string{"-render", "scene.json"}, testOptions{})

	require.Equal(t, "scene", out.Options.scene)
}

func TestDispatch_ArityBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		tokens    []string
		wantError bool
		wantCalls [][]string
	}{
		{"below min", []string{"-set", "only"}, true, nil},
		{"min followed by flag", []string{"-set", "a", "1", "-f"}, false, [][]string{{"a", "1"}}},
		{"max", []string{"-set", "a", "1", "s"}, false, [][]string{{"a", "1", "s"}}},
		{"negative value at numeric position", []string{"-set", "a", "-1.5"}, false, [][]string{{"a", "-1.5"}}},
		{"negative scene at non-numeric position", []string{"-set", "a", "1", "-2"}, false, [][]string{{"a", "1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := newTestDispatcher(t)

			out := d.Run(tt.tokens, testOptions{})

			require.Equal(t, tt.wantError, out.ConfigurationError)
			require.Equal(t, tt.wantCalls, out.Options.calls)
		})
	}
}

func TestRegistry_RegisterErrors(t *testing.T) {
	r := createTestRegistry(t)

	err := r.Register(FlagSpec[testOptions]{Names: []string{"-f"}, Arity: Exactly(0)})
	require.ErrorIs(t, err, ErrDuplicateFlag)

	err = r.Register(FlagSpec[testOptions]{Names: []string{"noprefix"}, Arity: Exactly(0)})
	require.Error(t, err)

	err = r.Register(FlagSpec[testOptions]{Names: []string{"-x"}, Arity: Exactly(1), NumericPositions: []int{1}})
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	require.False(t, r.Has("-x"), "failed registration must not leave a name behind")

	err = r.Register(FlagSpec[testOptions]{})
	require.Error(t, err)
}
