package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/srcmine/internal/logging"
	"github.com/yaklabco/srcmine/pkg/config"
	"github.com/yaklabco/srcmine/pkg/fsutil"
	"github.com/yaklabco/srcmine/pkg/lang"
	"github.com/yaklabco/srcmine/pkg/reporter"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

// defaultConfigFile is the project configuration written by init.
const defaultConfigFile = ".srcmine.yml"

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new srcmine configuration file",
		Long: `Create a new .srcmine.yml configuration file in the current directory.
The minimal template documents every key as a comment; the full template
writes every key with its default value.

Examples:
  srcmine init                       Create a commented .srcmine.yml
  srcmine init --full                Write every key with its default
  srcmine init --output custom.yml   Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Write every key with its default value")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultConfigFile, "Output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive(cmd.ErrOrStderr())

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrUsage, flags.output)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
	}

	headline := make([]string, 0, len(lang.HeadlineTags()))
	for _, tag := range lang.HeadlineTags() {
		headline = append(headline, tag.String())
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{
		Full:         flags.full,
		HeadlineTags: headline,
		Formats: config.FormatConfig{
			Find:       reporter.Formats(reporter.CommandFind)[0].String(),
			Compress:   reporter.Formats(reporter.CommandCompress)[0].String(),
			References: reporter.Formats(reporter.CommandReferences)[0].String(),
			Tokens:     reporter.Formats(reporter.CommandTokens)[0].String(),
		},
	})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if err := fsutil.WriteAtomic(commandContext(cmd), absPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	logger.Info("run 'srcmine languages' to see the tags each language supports")

	return nil
}
