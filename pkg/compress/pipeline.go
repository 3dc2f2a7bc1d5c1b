package compress

import (
	"context"
	"errors"

	"github.com/yaklabco/srcmine/pkg/fsutil"
	"github.com/yaklabco/srcmine/pkg/lang"
	"github.com/yaklabco/srcmine/pkg/runner"
	"github.com/yaklabco/srcmine/pkg/scanner"
	"github.com/yaklabco/srcmine/pkg/source"
)

// Request describes one compress invocation.
type Request struct {
	Targets     []string
	LineNumbers bool
	Jobs        int
	Options     Options
}

// FileOutcome is the result for one target.
type FileOutcome struct {
	Path        string        `json:"path"`
	Language    string        `json:"language,omitempty"`
	Status      runner.Status `json:"status"`
	Fingerprint string        `json:"fingerprint,omitempty"`
	File        *File         `json:"file,omitempty"`
	Err         error         `json:"-"`
}

// Reason returns the status-line reason, or "".
func (o *FileOutcome) Reason() string {
	switch {
	case o.Err == nil:
		return ""
	case errors.Is(o.Err, lang.ErrUnrecognizedLanguage):
		return "unrecognized language"
	default:
		return fsutil.Reason(o.Err)
	}
}

// Report is the result of one compress invocation, in target order.
type Report struct {
	LineNumbers bool          `json:"-"`
	Files       []FileOutcome `json:"files"`
	Stats       runner.Stats  `json:"stats"`
}

// Pipeline compresses many files.
type Pipeline struct {
	Registry *lang.Registry
}

// New creates a pipeline. A nil registry selects the default.
func New(registry *lang.Registry) *Pipeline {
	if registry == nil {
		registry = lang.Default()
	}
	return &Pipeline{Registry: registry}
}

// Compress processes every target. The error is reserved for cancellation.
func (p *Pipeline) Compress(ctx context.Context, req Request) (*Report, error) {
	outcomes, err := runner.Run(ctx, req.Targets, runner.Options{Jobs: req.Jobs},
		func(ctx context.Context, path string) FileOutcome {
			return p.compressFile(ctx, path, req.Options)
		})

	report := &Report{LineNumbers: req.LineNumbers, Files: outcomes}
	for i := range report.Files {
		report.Stats.Add(report.Files[i].Status)
	}
	return report, err
}

func (p *Pipeline) compressFile(ctx context.Context, path string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path, Status: runner.StatusFail}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.Fingerprint = info.FingerprintHex()

	profile, err := p.Registry.Detect(path, content)
	if err != nil {
		outcome.Err = err
		if errors.Is(err, lang.ErrUnrecognizedLanguage) {
			outcome.Status = runner.StatusSkip
		}
		return outcome
	}
	outcome.Language = profile.Name

	file := source.New(path, content)
	outcome.File = Compress(file, scanner.Scan(content, profile), profile, opts)
	outcome.Status = runner.StatusOK
	return outcome
}
