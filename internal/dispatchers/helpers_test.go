package dispatchers

// recordedLine is one line written to a recordingSink.
type recordedLine struct {
	channel string
	text    string
}

// recordingSink captures diagnostics for assertions.
type recordingSink struct {
	lines []recordedLine
}

func (s *recordingSink) PrintLine(line string) {
	s.lines = append(s.lines, recordedLine{channel: "out", text: line})
}

func (s *recordingSink) ErrorLine(line string) {
	s.lines = append(s.lines, recordedLine{channel: "err", text: line})
}

func (s *recordingSink) errors() []string {
	var out []string
	for _, l := range s.lines {
		if l.channel == "err" {
			out = append(out, l.text)
		}
	}
	return out
}

func (s *recordingSink) printed() []string {
	var out []string
	for _, l := range s.lines {
		if l.channel == "out" {
			out = append(out, l.text)
		}
	}
	return out
}

// testOptions is the option record used by the dispatcher tests.
type testOptions struct {
	calls   [][]string
	threads string
	scene   string
	force   bool
}

func recordCall(st State[testOptions], args []string) State[testOptions] {
	st.Options.calls = append(st.Options.calls, args)
	return st
}
