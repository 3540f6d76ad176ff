package usage

import "fmt"

// InvalidValue is returned when a flag received a value it cannot use.
func InvalidValue(flag, value string) *Error {
	return &Error{
		Kind:    ErrInvalidValue,
		Message: fmt.Sprintf("Invalid value for %s option: %s", flag, value),
	}
}

// InvalidPath is returned when a dot-path cannot be resolved in a document.
func InvalidPath(err error) *Error {
	return &Error{
		Kind:    ErrInvalidPath,
		Message: err.Error(),
		Err:     err,
	}
}

// Syntax is returned for malformed JSON input.
func Syntax(err error) *Error {
	return &Error{
		Kind:    ErrSyntax,
		Message: err.Error(),
		Err:     err,
	}
}

// IO is returned when reading or writing a file fails.
func IO(what string, err error) *Error {
	return &Error{
		Kind:    ErrIO,
		Message: fmt.Sprintf("Failed to write/load %s: %v", what, err),
		Err:     err,
	}
}

// InvalidScene is returned when a scene name does not resolve to a description file.
func InvalidScene(name string) *Error {
	return &Error{
		Kind:    ErrInvalidScene,
		Message: fmt.Sprintf("Not a valid scene: %s", name),
	}
}

// InvalidDump is returned when a render dump path is not a regular file.
func InvalidDump(path string) *Error {
	return &Error{
		Kind:    ErrInvalidDump,
		Message: fmt.Sprintf("Not a valid render dump file: %s", path),
	}
}

// Unavailable is returned by collaborators that are not part of this build.
func Unavailable(what string) *Error {
	return &Error{
		Kind:    ErrUnavailable,
		Message: fmt.Sprintf("%s is not available in this build", what),
	}
}
