package refs

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/srcmine/pkg/fsutil"
	"github.com/yaklabco/srcmine/pkg/lang"
	"github.com/yaklabco/srcmine/pkg/matcher"
	"github.com/yaklabco/srcmine/pkg/runner"
	"github.com/yaklabco/srcmine/pkg/source"
)

// Request describes one references invocation.
type Request struct {
	Targets []string
	Jobs    int

	// Headline overrides the definition tags. Empty selects lang.HeadlineTags.
	Headline []lang.Tag
}

// FileOutcome is the result for one target.
type FileOutcome struct {
	Path        string        `json:"path"`
	Status      runner.Status `json:"status"`
	Fingerprint string        `json:"fingerprint,omitempty"`
	Catalog     *File         `json:"catalog,omitempty"`
	Err         error         `json:"-"`
}

// Reason returns the status-line reason, or "".
func (o *FileOutcome) Reason() string {
	switch {
	case o.Err != nil && errors.Is(o.Err, lang.ErrUnrecognizedLanguage):
		return "unrecognized language"
	case o.Err != nil:
		return fsutil.Reason(o.Err)
	case o.Catalog != nil && len(o.Catalog.Failures) > 0:
		return fmt.Sprintf("%d unresolved", len(o.Catalog.Failures))
	default:
		return ""
	}
}

// Report is the result of one references invocation, in target order.
type Report struct {
	Files []FileOutcome `json:"files"`
	Stats runner.Stats  `json:"stats"`
}

// Catalogs returns the catalogs of the processed files.
func (r *Report) Catalogs() []*File {
	var out []*File
	for i := range r.Files {
		if r.Files[i].Status == runner.StatusOK && r.Files[i].Catalog != nil {
			out = append(out, r.Files[i].Catalog)
		}
	}
	return out
}

// Pipeline catalogs many files.
type Pipeline struct {
	Registry *lang.Registry
	Rules    *matcher.Set
}

// New creates a pipeline. Nil arguments select the shared defaults.
func New(registry *lang.Registry, rules *matcher.Set) *Pipeline {
	if registry == nil {
		registry = lang.Default()
	}
	if rules == nil {
		rules = matcher.Default()
	}
	return &Pipeline{Registry: registry, Rules: rules}
}

// Build catalogs every target. The error is reserved for cancellation.
func (p *Pipeline) Build(ctx context.Context, req Request) (*Report, error) {
	headline := req.Headline
	if len(headline) == 0 {
		headline = lang.HeadlineTags()
	}

	outcomes, err := runner.Run(ctx, req.Targets, runner.Options{Jobs: req.Jobs},
		func(ctx context.Context, path string) FileOutcome {
			return p.buildFile(ctx, path, headline)
		})

	report := &Report{Files: outcomes}
	for i := range report.Files {
		report.Stats.Add(report.Files[i].Status)
	}
	return report, err
}

func (p *Pipeline) buildFile(ctx context.Context, path string, headline []lang.Tag) FileOutcome {
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

	catalog := BuildWith(source.New(path, content), profile, p.Rules, headline)
	outcome.Catalog = catalog
	if len(catalog.Failures) > 0 && len(catalog.Definitions) == 0 && len(catalog.Imports) == 0 {
		return outcome
	}
	outcome.Status = runner.StatusOK
	return outcome
}
