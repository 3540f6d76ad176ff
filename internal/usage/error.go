package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrInvalidValue
	ErrInvalidPath
	ErrSyntax
	ErrIO
	ErrInvalidScene
	ErrInvalidDump
	ErrUnavailable
)

// Exit codes:
//
//	Exit 1: every failure surfaced to the top level
//	  - Invalid flag value
//	  - Invalid JSON path
//	  - JSON syntax error
//	  - File read/write failure
//	  - Invalid scene or render dump
//	  - Operation not available in this build
var exitCodes = map[ErrorKind]int{
	ErrUnknown:      1,
	ErrInvalidValue: 1,
	ErrInvalidPath:  1,
	ErrSyntax:       1,
	ErrIO:           1,
	ErrInvalidScene: 1,
	ErrInvalidDump:  1,
	ErrUnavailable:  1,
}

// Error represents a user-facing error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // computed from Kind if zero
	Err      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// GetExitCode returns the appropriate exit code for this error.
// If ExitCode is explicitly set, it is returned; otherwise, the code is derived from Kind.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
