package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/srcmine/pkg/compress"
	"github.com/yaklabco/srcmine/pkg/extract"
	"github.com/yaklabco/srcmine/pkg/lang"
	"github.com/yaklabco/srcmine/pkg/matcher"
	"github.com/yaklabco/srcmine/pkg/refs"
	"github.com/yaklabco/srcmine/pkg/runner"
	"github.com/yaklabco/srcmine/pkg/tokens"
)

// jsonVersion is the schema version of every JSON document.
const jsonVersion = "1.0.0"

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	OK         int  `json:"ok"`
	Skipped    int  `json:"skipped"`
	Failed     int  `json:"failed"`
	Constructs *int `json:"constructs,omitempty"`
}

func newJSONSummary(stats runner.Stats) JSONSummary {
	return JSONSummary{OK: stats.OK, Skipped: stats.Skipped, Failed: stats.Failed}
}

// JSONFindOutput is the top-level find document.
type JSONFindOutput struct {
	Version string         `json:"version"`
	Tags    []lang.Tag     `json:"tags"`
	Pattern string         `json:"pattern,omitempty"`
	Files   []JSONFindFile `json:"files"`
	Summary JSONSummary    `json:"summary"`
}

// JSONFindFile is one file of a find document.
type JSONFindFile struct {
	Path        string            `json:"path"`
	Language    string            `json:"language,omitempty"`
	Status      runner.Status     `json:"status"`
	Reason      string            `json:"reason,omitempty"`
	Fingerprint string            `json:"fingerprint,omitempty"`
	Matches     []matcher.Match   `json:"matches"`
	Failures    []matcher.Failure `json:"failures"`
}

// JSONCompressOutput is the top-level compress document.
type JSONCompressOutput struct {
	Version string             `json:"version"`
	Files   []JSONCompressFile `json:"files"`
	Summary JSONSummary        `json:"summary"`
}

// JSONCompressFile is one file of a compress document.
type JSONCompressFile struct {
	Path          string          `json:"path"`
	Language      string          `json:"language,omitempty"`
	Status        runner.Status   `json:"status"`
	Reason        string          `json:"reason,omitempty"`
	Fingerprint   string          `json:"fingerprint,omitempty"`
	OriginalLines int             `json:"original_lines"`
	FirstLine     int             `json:"first_line"`
	LastLine      int             `json:"last_line"`
	Lines         []compress.Line `json:"lines"`
}

// JSONReferencesOutput is the top-level references document.
type JSONReferencesOutput struct {
	Version string               `json:"version"`
	Files   []JSONReferencesFile `json:"files"`
	Summary JSONSummary          `json:"summary"`
}

// JSONReferencesFile is one file of a references document.
type JSONReferencesFile struct {
	Path        string        `json:"path"`
	Status      runner.Status `json:"status"`
	Reason      string        `json:"reason,omitempty"`
	Fingerprint string        `json:"fingerprint,omitempty"`
	Catalog     *refs.File    `json:"catalog,omitempty"`
}

// JSONTokensOutput is the top-level tokens document.
type JSONTokensOutput struct {
	Version string `json:"version"`
	*tokens.Report
}

// JSONReporter formats reports as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

func (r *JSONReporter) encode(v any) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil && flushErr != nil {
			err = fmt.Errorf("flush output: %w", flushErr)
		}
	}()

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

// Find implements Reporter.
func (r *JSONReporter) Find(_ context.Context, report *extract.Report) error {
	constructs := report.Constructs()
	output := &JSONFindOutput{
		Version: jsonVersion,
		Tags:    report.Tags,
		Pattern: report.Pattern,
		Files:   make([]JSONFindFile, 0, len(report.Files)),
		Summary: newJSONSummary(report.Stats),
	}
	output.Summary.Constructs = &constructs

	for i := range report.Files {
		outcome := &report.Files[i]
		file := JSONFindFile{
			Path:        outcome.Path,
			Language:    outcome.Language,
			Status:      outcome.Status,
			Reason:      outcome.Reason(),
			Fingerprint: outcome.Fingerprint,
			Matches:     outcome.Matches,
			Failures:    outcome.Failures,
		}
		if file.Matches == nil {
			file.Matches = make([]matcher.Match, 0)
		}
		if file.Failures == nil {
			file.Failures = make([]matcher.Failure, 0)
		}
		output.Files = append(output.Files, file)
	}

	return r.encode(output)
}

// Compress implements Reporter.
func (r *JSONReporter) Compress(_ context.Context, report *compress.Report) error {
	output := &JSONCompressOutput{
		Version: jsonVersion,
		Files:   make([]JSONCompressFile, 0, len(report.Files)),
		Summary: newJSONSummary(report.Stats),
	}

	for i := range report.Files {
		outcome := &report.Files[i]
		file := JSONCompressFile{
			Path:        outcome.Path,
			Language:    outcome.Language,
			Status:      outcome.Status,
			Reason:      outcome.Reason(),
			Fingerprint: outcome.Fingerprint,
			Lines:       make([]compress.Line, 0),
		}
		if outcome.File != nil {
			file.OriginalLines = outcome.File.OriginalLines
			file.FirstLine, file.LastLine = outcome.File.Span()
			if outcome.File.Lines != nil {
				file.Lines = outcome.File.Lines
			}
		}
		output.Files = append(output.Files, file)
	}

	return r.encode(output)
}

// References implements Reporter.
func (r *JSONReporter) References(_ context.Context, report *refs.Report) error {
	output := &JSONReferencesOutput{
		Version: jsonVersion,
		Files:   make([]JSONReferencesFile, 0, len(report.Files)),
		Summary: newJSONSummary(report.Stats),
	}

	for i := range report.Files {
		outcome := &report.Files[i]
		output.Files = append(output.Files, JSONReferencesFile{
			Path:        outcome.Path,
			Status:      outcome.Status,
			Reason:      outcome.Reason(),
			Fingerprint: outcome.Fingerprint,
			Catalog:     outcome.Catalog,
		})
	}

	return r.encode(output)
}

// Tokens implements Reporter.
func (r *JSONReporter) Tokens(_ context.Context, report *tokens.Report) error {
	return r.encode(&JSONTokensOutput{Version: jsonVersion, Report: report})
}
