package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/srcmine/internal/logging"
	"github.com/yaklabco/srcmine/pkg/config"
	"github.com/yaklabco/srcmine/pkg/lang"
	"github.com/yaklabco/srcmine/pkg/reporter"
	"github.com/yaklabco/srcmine/pkg/tokens"
)

type tokensFlags struct {
	runFlags
	encoding string
}

func newTokensCommand(globals *globalOptions) *cobra.Command {
	flags := &tokensFlags{}

	cmd := &cobra.Command{
		Use:   "tokens [paths...]",
		Short: "Count tokens and characters of source files",
		Long: `Count tokens and characters of source files.

Each file is counted with a BPE token encoding and the pack totals are
printed last. When the encoding cannot be loaded, counts fall back to an
estimate of one token per four bytes.

Examples:
  srcmine tokens src/                          # Per-file counts and totals
  srcmine tokens --encoding o200k_base docs/   # A different encoding
  srcmine tokens --format json . -o tokens.json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			overlay := cliConfig(cmd, globals, &flags.runFlags, reporter.CommandTokens)
			if cmd.Flags().Changed("encoding") {
				overlay.Encoding = flags.encoding
			}
			return runTokens(cmd, args, globals, flags, overlay)
		},
	}

	addRunFlags(cmd, &flags.runFlags, reporter.CommandTokens, false)
	cmd.Flags().StringVar(&flags.encoding, "encoding", "", "token encoding (default cl100k_base)")

	return cmd
}

func runTokens(cmd *cobra.Command, args []string, globals *globalOptions, flags *tokensFlags, overlay *config.Config) error {
	sess, err := newSession(cmd, globals, overlay)
	if err != nil {
		return err
	}
	defer sess.Close()
	sess.quiet = flags.quiet

	format, err := sess.format(reporter.CommandTokens)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)

	targets, err := sess.targets(ctx, args, lang.Default())
	if err != nil {
		return err
	}

	counter := tokens.NewCounter(sess.cfg.Encoding, sess.logger)
	sess.logger.Debug("counting tokens",
		logging.FieldEncoding, counter.Encoding(),
		logging.FieldFiles, len(targets),
	)

	report, err := tokens.Count(ctx, counter, targets, sess.cfg.Jobs)
	if err != nil {
		return fmt.Errorf("tokens: %w", err)
	}

	if err := sess.writeReport(ctx, flags.output, reporter.Options{Format: format}, func(rep reporter.Reporter) error {
		return rep.Tokens(ctx, report)
	}); err != nil {
		return err
	}

	for _, fm := range report.Files {
		sess.status(fm.Status, fm.Path, fm.Error)
	}
	sess.summary(sess.styles.FormatProcessed("Counted", report.Stats))

	return report.Stats.Err()
}
