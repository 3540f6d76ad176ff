package dispatchers

import (
	"fmt"
	"strings"
)

// ArityError is returned when a flag receives fewer tokens than its minimum arity.
type ArityError struct {
	Flag     string
	Found    int
	Expected int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("Missing argument for %s option. Found %d arguments, expected %d.", e.Flag, e.Found, e.Expected)
}

// UnrecognizedFlagError is returned for a flag-like token without a handler,
// or for a second bare token once the positional argument is taken.
type UnrecognizedFlagError struct {
	Token       string
	Suggestions []string
}

func (e *UnrecognizedFlagError) Error() string {
	msg := "Unrecognized option: " + e.Token
	if len(e.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(e.Suggestions, ", ") + "?)"
	}
	return msg
}

var (
	_ error = (*ArityError)(nil)
	_ error = (*UnrecognizedFlagError)(nil)
)
