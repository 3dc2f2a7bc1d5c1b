package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/srcmine/internal/logging"
	"github.com/yaklabco/srcmine/pkg/extract"
	"github.com/yaklabco/srcmine/pkg/lang"
	"github.com/yaklabco/srcmine/pkg/matcher"
	"github.com/yaklabco/srcmine/pkg/reporter"
)

type findFlags struct {
	runFlags
	pattern string
}

func newFindCommand(globals *globalOptions) *cobra.Command {
	flags := &findFlags{}

	cmd := &cobra.Command{
		Use:   "find TAGS [PATTERN] [paths...]",
		Short: "Extract complete constructs by tag and name",
		Long:  findLongDescription,
		Args:  cobra.MinimumNArgs(1),
		Annotations: map[string]string{
			tagsAnnotation: lang.JoinTags(lang.AllTags()),
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, args, globals, flags)
		},
	}

	addRunFlags(cmd, &flags.runFlags, reporter.CommandFind, true)
	cmd.Flags().StringVarP(&flags.pattern, "pattern", "p", "",
		"regexp matched against construct names (replaces the PATTERN argument)")

	return cmd
}

const findLongDescription = `Extract complete constructs by tag and name.

TAGS is a pipe-separated list such as "CLASS|FUNCTION". PATTERN is a regular
expression matched against construct names; pass it with --pattern to omit
the positional argument. Directories expand to the supported files beneath
them. With no paths, paths are read from stdin, one per line.

Every construct is emitted whole, from its header to its closing boundary.
Headers inside comments and strings are never reported.

Examples:
  srcmine find FUNCTION '^parse' src/        # Functions whose name starts with parse
  srcmine find 'CLASS|STRUCT' -p . lib/      # All classes and structs
  srcmine find FUNCTION main main.go -n      # With line numbers
  git ls-files '*.py' | srcmine find CLASS -p Test`

// parseFindArgs splits the positional arguments into tags, pattern and
// paths. Without --pattern the second argument is the pattern.
func parseFindArgs(args []string, pattern string, patternSet bool) ([]lang.Tag, string, []string, error) {
	tags, err := lang.ParseTagFilter(args[0])
	if err != nil {
		return nil, "", nil, fmt.Errorf("%w; valid tags: %s", err, lang.JoinTags(lang.AllTags()))
	}

	rest := args[1:]
	if !patternSet {
		if len(rest) == 0 {
			return nil, "", nil, fmt.Errorf("%w: find needs a PATTERN argument or --pattern", ErrUsage)
		}
		pattern, rest = rest[0], rest[1:]
	}
	return tags, pattern, rest, nil
}

func runFind(cmd *cobra.Command, args []string, globals *globalOptions, flags *findFlags) error {
	tags, pattern, paths, err := parseFindArgs(args, flags.pattern, cmd.Flags().Changed("pattern"))
	if err != nil {
		return err
	}

	sess, err := newSession(cmd, globals, cliConfig(cmd, globals, &flags.runFlags, reporter.CommandFind))
	if err != nil {
		return err
	}
	defer sess.Close()
	sess.quiet = flags.quiet

	format, err := sess.format(reporter.CommandFind)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	registry := lang.Default()

	targets, err := sess.targets(ctx, paths, registry)
	if err != nil {
		return err
	}

	sess.logger.Debug("starting find",
		logging.FieldTags, lang.JoinTags(tags),
		logging.FieldPattern, pattern,
		logging.FieldFormat, format,
	)

	pipeline := extract.New(registry, matcher.Default())
	report, err := pipeline.Extract(ctx, extract.Request{
		Targets:     targets,
		Tags:        tags,
		Pattern:     pattern,
		LineNumbers: sess.cfg.LineNumbersEnabled(),
		Jobs:        sess.cfg.Jobs,
	})
	if err != nil {
		if errors.Is(err, extract.ErrInvalidPattern) || errors.Is(err, extract.ErrNoTags) {
			return err
		}
		return fmt.Errorf("find: %w", err)
	}

	if err := sess.writeReport(ctx, flags.output, reporter.Options{Format: format}, func(rep reporter.Reporter) error {
		return rep.Find(ctx, report)
	}); err != nil {
		return err
	}

	for i := range report.Files {
		outcome := &report.Files[i]
		sess.status(outcome.Status, outcome.Path, outcome.Reason())
	}
	sess.summary(sess.styles.FormatFound(report.Constructs(), report.Stats))

	sess.logger.Debug("find complete",
		logging.FieldConstructs, report.Constructs(),
		logging.FieldFilesOK, report.Stats.OK,
		logging.FieldFilesSkipped, report.Stats.Skipped,
		logging.FieldFilesFailed, report.Stats.Failed,
	)

	return findResult(report)
}

// findResult turns a run that processed nothing into an error. When every
// failure is an unsupported tag, that configuration error is returned so
// the message lists the valid tags.
func findResult(report *extract.Report) error {
	if report.Stats.Processed() > 0 {
		return nil
	}
	for i := range report.Files {
		if err := report.Files[i].Err; errors.Is(err, extract.ErrUnsupportedTag) {
			return fmt.Errorf("%s: %w", report.Files[i].Path, err)
		}
	}
	return report.Stats.Err()
}
