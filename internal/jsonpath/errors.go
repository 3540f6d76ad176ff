package jsonpath

import "fmt"

// PathError reports a dot-path that does not address a key inside an object.
type PathError struct {
	Path    string
	Segment string
	Reason  string
}

func (e *PathError) Error() string {
	if e.Segment == "" {
		return fmt.Sprintf("invalid path %q: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("invalid path %q at %q: %s", e.Path, e.Segment, e.Reason)
}

// SyntaxError reports malformed JSON, either a whole document or an
// embedded value given on the command line.
type SyntaxError struct {
	What  string
	Input string
}

func (e *SyntaxError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("malformed JSON %s", e.What)
	}
	return fmt.Sprintf("malformed JSON %s: %s", e.What, e.Input)
}
