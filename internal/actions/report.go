package actions

import (
	"errors"
	"fmt"

	"github.com/footprint-tools/chunky/internal/jsonpath"
	"github.com/footprint-tools/chunky/internal/usage"
)

func sprintf(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// classify maps an error from a document edit or a collaborator to the
// user-facing error printed for it.
func classify(what string, err error) *usage.Error {
	var (
		ue        *usage.Error
		pathErr   *jsonpath.PathError
		syntaxErr *jsonpath.SyntaxError
	)

	switch {
	case errors.As(err, &ue):
		return ue
	case errors.As(err, &pathErr):
		return usage.InvalidPath(pathErr)
	case errors.As(err, &syntaxErr):
		return usage.Syntax(syntaxErr)
	default:
		return usage.IO(what, err)
	}
}

// report prints err on the error channel and records its exit code.
func report(deps Deps, st State, what string, err error) State {
	ue := classify(what, err)
	deps.Diagnostics.ErrorLine(ue.Message)
	deps.Logger.Error("%s: %v", what, err)
	st.ExitCode = ue.GetExitCode()
	return st
}

// fail prints ue and marks the run as a configuration error.
func fail(deps Deps, st State, ue *usage.Error) State {
	deps.Diagnostics.ErrorLine(ue.Message)
	deps.Logger.Warn("%s", ue.Message)
	return st.Fail(ue.GetExitCode())
}
