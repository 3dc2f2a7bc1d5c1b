// Package cli provides the Cobra command structure for srcmine.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/srcmine/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root srcmine command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	globals := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "srcmine",
		Short: "Mine source trees for constructs, references and token counts",
		Long: `srcmine mines source trees across dozens of programming languages.

It extracts complete constructs by tag and name, strips comments while
keeping code byte for byte, catalogs the imports and top-level definitions
of each file, and counts tokens for LLM context packing. Comments and
string literals are never mistaken for code.`,
		Version: info.Version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if globals.debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&globals.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&globals.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&globals.color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&globals.logFile, "log-file", "",
		"also write logs to this file, rotated by size")

	// Add subcommands.
	rootCmd.AddCommand(newFindCommand(globals))
	rootCmd.AddCommand(newCompressCommand(globals))
	rootCmd.AddCommand(newReferencesCommand(globals))
	rootCmd.AddCommand(newTokensCommand(globals))
	rootCmd.AddCommand(newLanguagesCommand(globals))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})
	for _, sub := range rootCmd.Commands() {
		if sub.Args != nil {
			sub.Args = usageArgs(sub.Args)
		}
	}

	// Apply styled help formatting.
	NewHelpFormatter(&globals.color).ApplyToCommand(rootCmd)

	return rootCmd
}

// usageArgs marks positional argument errors as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return nil
	}
}
