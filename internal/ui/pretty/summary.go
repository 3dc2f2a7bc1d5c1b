package pretty

import (
	"fmt"

	"github.com/yaklabco/srcmine/pkg/runner"
)

// FormatFound formats the find summary.
// Example: "Found: 12 constructs in 3 files (1 skipped, 0 failed)".
func (s *Styles) FormatFound(constructs int, stats runner.Stats) string {
	return s.SummaryTitle.Render("Found:") +
		fmt.Sprintf(" %s constructs in %d files (%d skipped, %s failed)\n",
			s.SummaryValue.Render(fmt.Sprint(constructs)),
			stats.OK,
			stats.Skipped,
			s.failedCount(stats.Failed),
		)
}

// FormatProcessed formats a one-line summary under a title such as
// "Compressed" or "Processed".
// Example: "Compressed: 4 ok, 1 failed".
func (s *Styles) FormatProcessed(title string, stats runner.Stats) string {
	return s.SummaryTitle.Render(title+":") +
		fmt.Sprintf(" %s ok, %s failed\n",
			s.Success.Render(fmt.Sprint(stats.OK)),
			s.failedCount(stats.Failed),
		)
}

func (s *Styles) failedCount(n int) string {
	if n == 0 {
		return s.SummaryValue.Render("0")
	}
	return s.Failure.Render(fmt.Sprint(n))
}
