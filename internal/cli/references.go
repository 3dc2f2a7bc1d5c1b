package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/srcmine/pkg/config"
	"github.com/yaklabco/srcmine/pkg/lang"
	"github.com/yaklabco/srcmine/pkg/matcher"
	"github.com/yaklabco/srcmine/pkg/refs"
	"github.com/yaklabco/srcmine/pkg/reporter"
)

func newReferencesCommand(globals *globalOptions) *cobra.Command {
	flags := &runFlags{}
	var headline string

	cmd := &cobra.Command{
		Use:     "references [paths...]",
		Aliases: []string{"refs"},
		Short:   "Catalog the imports and top-level definitions of source files",
		Long: `Catalog the imports and top-level definitions of source files.

Each file gets a Markdown section listing its imports and one bullet per
type, function or module definition with its line range.

Examples:
  srcmine references src/                    # Markdown catalog
  srcmine references --format html -o refs.html .
  srcmine references --headline 'CLASS|FUNCTION' app.py`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			overlay := cliConfig(cmd, globals, flags, reporter.CommandReferences)
			if cmd.Flags().Changed("headline") {
				tags, err := lang.ParseTagFilter(headline)
				if err != nil {
					return fmt.Errorf("%w; valid tags: %s", err, lang.JoinTags(lang.AllTags()))
				}
				overlay.HeadlineTags = make([]string, len(tags))
				for i, tag := range tags {
					overlay.HeadlineTags[i] = tag.String()
				}
			}
			return runReferences(cmd, args, globals, flags, overlay)
		},
	}

	addRunFlags(cmd, flags, reporter.CommandReferences, false)
	cmd.Flags().StringVar(&headline, "headline", "", "pipe-separated tags listed as definitions")

	return cmd
}

func runReferences(cmd *cobra.Command, args []string, globals *globalOptions, flags *runFlags, overlay *config.Config) error {
	sess, err := newSession(cmd, globals, overlay)
	if err != nil {
		return err
	}
	defer sess.Close()
	sess.quiet = flags.quiet

	format, err := sess.format(reporter.CommandReferences)
	if err != nil {
		return err
	}

	headline, err := headlineTags(sess.cfg.HeadlineTags)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	registry := lang.Default()

	targets, err := sess.targets(ctx, args, registry)
	if err != nil {
		return err
	}

	report, err := refs.New(registry, matcher.Default()).Build(ctx, refs.Request{
		Targets:  targets,
		Jobs:     sess.cfg.Jobs,
		Headline: headline,
	})
	if err != nil {
		return fmt.Errorf("references: %w", err)
	}

	if err := sess.writeReport(ctx, flags.output, reporter.Options{Format: format}, func(rep reporter.Reporter) error {
		return rep.References(ctx, report)
	}); err != nil {
		return err
	}

	for i := range report.Files {
		outcome := &report.Files[i]
		sess.status(outcome.Status, outcome.Path, outcome.Reason())
	}
	sess.summary(sess.styles.FormatProcessed("Processed", report.Stats))

	return report.Stats.Err()
}

// headlineTags parses configured tag names. Empty means the default set.
func headlineTags(names []string) ([]lang.Tag, error) {
	if len(names) == 0 {
		return lang.HeadlineTags(), nil
	}
	tags := make([]lang.Tag, 0, len(names))
	for _, name := range names {
		tag, err := lang.ParseTag(name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
