package tokens

import (
	"context"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/yaklabco/srcmine/pkg/fsutil"
	"github.com/yaklabco/srcmine/pkg/runner"
)

// FileMetrics are the counts for one target.
type FileMetrics struct {
	Path        string        `json:"path"`
	Status      runner.Status `json:"status"`
	Fingerprint string        `json:"fingerprint,omitempty"`
	Metrics
	Error string `json:"error,omitempty"`
}

// Totals are the pack-wide sums.
type Totals struct {
	Files  int `json:"files"`
	Tokens int `json:"tokens"`
	Chars  int `json:"chars"`
}

// Report is the result of one tokens invocation, in target order.
type Report struct {
	Encoding  string        `json:"encoding"`
	Estimated bool          `json:"estimated,omitempty"`
	Files     []FileMetrics `json:"files"`
	Totals    Totals        `json:"totals"`
	Stats     runner.Stats  `json:"-"`
}

// Count reads every target and counts it with counter. Any readable UTF-8
// file is counted, whatever its language. The error is reserved for
// cancellation.
func Count(ctx context.Context, counter *Counter, targets []string, jobs int) (*Report, error) {
	files, err := runner.Run(ctx, targets, runner.Options{Jobs: jobs},
		func(ctx context.Context, path string) FileMetrics {
			fm := FileMetrics{Path: path, Status: runner.StatusFail}
			content, info, readErr := fsutil.ReadFile(ctx, path)
			if readErr != nil {
				fm.Error = fsutil.Reason(readErr)
				return fm
			}
			fm.Fingerprint = info.FingerprintHex()
			fm.Metrics = counter.Count(string(content))
			fm.Status = runner.StatusOK
			return fm
		})

	report := &Report{
		Encoding:  counter.Encoding(),
		Estimated: counter.Estimated(),
		Files:     files,
	}
	report.Totals.Files = len(files)
	for _, fm := range files {
		report.Stats.Add(fm.Status)
		report.Totals.Tokens += fm.Tokens
		report.Totals.Chars += fm.Chars
	}
	return report, err
}

// Summarize renders the per-file lines followed by the pack totals.
func Summarize(report *Report) string {
	p := message.NewPrinter(language.English)

	var b strings.Builder
	for _, fm := range report.Files {
		name := filepath.Base(fm.Path)
		if fm.Error != "" {
			p.Fprintf(&b, "  %s: ERROR - %s\n", name, fm.Error)
			continue
		}
		p.Fprintf(&b, "  %s: %d tokens, %d chars\n", name, fm.Tokens, fm.Chars)
	}

	b.WriteString("\nPack Summary:\n")
	b.WriteString("----------------\n")
	p.Fprintf(&b, "  Total Files: %d files\n", report.Totals.Files)
	p.Fprintf(&b, " Total Tokens: %d tokens\n", report.Totals.Tokens)
	p.Fprintf(&b, "  Total Chars: %d chars\n", report.Totals.Chars)
	return b.String()
}
