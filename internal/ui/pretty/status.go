package pretty

import (
	"github.com/yaklabco/srcmine/pkg/runner"
)

// FormatStatus formats one per-file status line, e.g.
// "FAIL src/a.c (not found)". The reason is omitted when empty.
func (s *Styles) FormatStatus(status runner.Status, path, reason string) string {
	label := status.String()
	switch status {
	case runner.StatusOK:
		label = s.OK.Render(label)
	case runner.StatusSkip:
		label = s.Skip.Render(label)
	case runner.StatusFail:
		label = s.Fail.Render(label)
	}

	line := label + " " + s.FilePath.Render(path)
	if reason != "" {
		line += " " + s.Reason.Render("("+reason+")")
	}
	return line + "\n"
}
