package cli

import (
	"errors"

	"github.com/yaklabco/srcmine/internal/configloader"
	"github.com/yaklabco/srcmine/pkg/extract"
	"github.com/yaklabco/srcmine/pkg/lang"
	"github.com/yaklabco/srcmine/pkg/reporter"
	"github.com/yaklabco/srcmine/pkg/runner"
)

// Exit codes for srcmine.
const (
	// ExitSuccess indicates at least one input was processed.
	ExitSuccess = 0

	// ExitNothingProcessed indicates that no input could be processed.
	ExitNothingProcessed = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70
)

// ErrUsage marks malformed command lines: bad arguments, flags or values.
var ErrUsage = errors.New("invalid usage")

// ExitCode maps an error returned by a command to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, runner.ErrNothingProcessed):
		return ExitNothingProcessed
	case errors.Is(err, configloader.ErrInvalidConfig),
		errors.Is(err, extract.ErrUnsupportedTag):
		return ExitConfigError
	case errors.Is(err, ErrUsage),
		errors.Is(err, lang.ErrUnknownTag),
		errors.Is(err, lang.ErrNoTags),
		errors.Is(err, lang.ErrUnknownLanguage),
		errors.Is(err, extract.ErrInvalidPattern),
		errors.Is(err, reporter.ErrUnsupportedFormat),
		errors.Is(err, runner.ErrInvalidExclude):
		return ExitInvalidUsage
	default:
		return ExitInternalError
	}
}
