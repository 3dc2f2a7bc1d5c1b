package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/srcmine/pkg/compress"
	"github.com/yaklabco/srcmine/pkg/lang"
	"github.com/yaklabco/srcmine/pkg/reporter"
)

type compressFlags struct {
	runFlags
	dropShebang bool
}

func newCompressCommand(globals *globalOptions) *cobra.Command {
	flags := &compressFlags{}

	cmd := &cobra.Command{
		Use:   "compress [paths...]",
		Short: "Strip comments and blank lines from source files",
		Long: `Strip comments and blank lines from source files.

String and code content is kept byte for byte. Each file is emitted in a
fenced block headed by the range of kept lines and the original line count.

Examples:
  srcmine compress src/                 # Every supported file under src/
  srcmine compress -n main.go           # Keep original line numbers
  srcmine compress --format json lib/   # Machine-readable output`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompress(cmd, args, globals, flags)
		},
	}

	addRunFlags(cmd, &flags.runFlags, reporter.CommandCompress, true)
	cmd.Flags().BoolVar(&flags.dropShebang, "drop-shebang", false, "also remove a leading #! line")

	return cmd
}

func runCompress(cmd *cobra.Command, args []string, globals *globalOptions, flags *compressFlags) error {
	sess, err := newSession(cmd, globals, cliConfig(cmd, globals, &flags.runFlags, reporter.CommandCompress))
	if err != nil {
		return err
	}
	defer sess.Close()
	sess.quiet = flags.quiet

	format, err := sess.format(reporter.CommandCompress)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	registry := lang.Default()

	targets, err := sess.targets(ctx, args, registry)
	if err != nil {
		return err
	}

	report, err := compress.New(registry).Compress(ctx, compress.Request{
		Targets:     targets,
		LineNumbers: sess.cfg.LineNumbersEnabled(),
		Jobs:        sess.cfg.Jobs,
		Options:     compress.Options{DropShebang: flags.dropShebang},
	})
	if err != nil {
		return fmt.Errorf("compress: %w", err)
	}

	if err := sess.writeReport(ctx, flags.output, reporter.Options{Format: format}, func(rep reporter.Reporter) error {
		return rep.Compress(ctx, report)
	}); err != nil {
		return err
	}

	for i := range report.Files {
		outcome := &report.Files[i]
		sess.status(outcome.Status, outcome.Path, outcome.Reason())
	}
	sess.summary(sess.styles.FormatProcessed("Compressed", report.Stats))

	return report.Stats.Err()
}
