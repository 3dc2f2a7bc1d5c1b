// Package extract implements the find operation: it resolves each target's
// language, scans it and collects the constructs matching a tag filter and
// a name pattern.
package extract

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/yaklabco/srcmine/pkg/fsutil"
	"github.com/yaklabco/srcmine/pkg/lang"
	"github.com/yaklabco/srcmine/pkg/matcher"
	"github.com/yaklabco/srcmine/pkg/runner"
	"github.com/yaklabco/srcmine/pkg/scanner"
	"github.com/yaklabco/srcmine/pkg/source"
)

// Request describes one find invocation.
type Request struct {
	// Targets are file paths in caller order.
	Targets []string

	// Tags is the tag filter. At least one tag is required.
	Tags []lang.Tag

	// Pattern filters construct names. Empty matches every name.
	Pattern string

	// LineNumbers asks renderers to prefix each line with its number.
	LineNumbers bool

	// Jobs bounds the worker pool. 0 means NumCPU.
	Jobs int
}

// FileOutcome is the result for one target.
type FileOutcome struct {
	Path        string            `json:"path"`
	Language    string            `json:"language,omitempty"`
	Status      runner.Status     `json:"status"`
	Fingerprint string            `json:"fingerprint,omitempty"`
	Matches     []matcher.Match   `json:"matches"`
	Failures    []matcher.Failure `json:"failures,omitempty"`
	Err         error             `json:"-"`
}

// Reason returns the status-line reason, or "" when there is nothing to
// add.
func (o *FileOutcome) Reason() string {
	switch {
	case o.Err != nil && errors.Is(o.Err, lang.ErrUnrecognizedLanguage):
		return "unrecognized language"
	case o.Err != nil && errors.Is(o.Err, ErrUnsupportedTag):
		return o.Err.Error()
	case o.Err != nil:
		return fsutil.Reason(o.Err)
	case len(o.Failures) > 0:
		return fmt.Sprintf("%d unresolved", len(o.Failures))
	default:
		return ""
	}
}

// Report is the result of one find invocation, in target order.
type Report struct {
	Tags        []lang.Tag    `json:"tags"`
	Pattern     string        `json:"pattern,omitempty"`
	LineNumbers bool          `json:"-"`
	Files       []FileOutcome `json:"files"`
	Stats       runner.Stats  `json:"stats"`
}

// Constructs returns the number of matches across all files.
func (r *Report) Constructs() int {
	total := 0
	for i := range r.Files {
		total += len(r.Files[i].Matches)
	}
	return total
}

// Pipeline runs find over many files.
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

// query is a validated request.
type query struct {
	tags    []lang.Tag
	pattern *regexp.Regexp
}

func compile(req Request) (*query, error) {
	if len(req.Tags) == 0 {
		return nil, ErrNoTags
	}

	q := &query{tags: req.Tags}
	if req.Pattern != "" {
		re, err := regexp.Compile(req.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
		}
		q.pattern = re
	}
	return q, nil
}

// Extract processes every target. Per-file problems land in the outcomes.
// The returned error is reserved for an invalid request or cancellation.
func (p *Pipeline) Extract(ctx context.Context, req Request) (*Report, error) {
	q, err := compile(req)
	if err != nil {
		return nil, err
	}

	outcomes, err := runner.Run(ctx, req.Targets, runner.Options{Jobs: req.Jobs},
		func(ctx context.Context, path string) FileOutcome {
			return p.extractFile(ctx, path, q)
		})

	report := &Report{
		Tags:        req.Tags,
		Pattern:     req.Pattern,
		LineNumbers: req.LineNumbers,
		Files:       outcomes,
	}
	for i := range report.Files {
		report.Stats.Add(report.Files[i].Status)
	}
	return report, err
}

func (p *Pipeline) extractFile(ctx context.Context, path string, q *query) FileOutcome {
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

	tags, err := supportedTags(profile, q.tags)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	file := source.New(path, content)
	regions := scanner.Scan(content, profile)
	matches, failures := p.Rules.FindAll(tags, file, regions, profile)

	outcome.Matches = filterMatches(matches, q.pattern)
	outcome.Failures = filterFailures(failures, q.pattern)

	if len(outcome.Failures) > 0 && len(outcome.Matches) == 0 {
		return outcome
	}
	outcome.Status = runner.StatusOK
	return outcome
}

// supportedTags keeps the requested tags the language defines. A request
// with none of them is a configuration error for this file.
func supportedTags(p *lang.Profile, requested []lang.Tag) ([]lang.Tag, error) {
	var tags []lang.Tag
	for _, tag := range requested {
		if p.Supports(tag) {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return nil, &UnsupportedTagError{
			Tag:       requested[0],
			Language:  p.Name,
			Supported: p.SupportedTags(),
		}
	}
	return tags, nil
}

func filterMatches(matches []matcher.Match, pattern *regexp.Regexp) []matcher.Match {
	if pattern == nil {
		return matches
	}
	kept := matches[:0]
	for _, m := range matches {
		if pattern.MatchString(m.Name) {
			kept = append(kept, m)
		}
	}
	return kept
}

func filterFailures(failures []matcher.Failure, pattern *regexp.Regexp) []matcher.Failure {
	if pattern == nil {
		return failures
	}
	kept := failures[:0]
	for _, f := range failures {
		if pattern.MatchString(f.Name) {
			kept = append(kept, f)
		}
	}
	return kept
}
