package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/srcmine/internal/configloader"
	"github.com/yaklabco/srcmine/internal/logging"
	"github.com/yaklabco/srcmine/internal/ui/pretty"
	"github.com/yaklabco/srcmine/pkg/config"
	"github.com/yaklabco/srcmine/pkg/fsutil"
	"github.com/yaklabco/srcmine/pkg/lang"
	"github.com/yaklabco/srcmine/pkg/reporter"
	"github.com/yaklabco/srcmine/pkg/runner"
)

// globalOptions holds the persistent flags of the root command.
type globalOptions struct {
	debug      bool
	configPath string
	color      string
	logFile    string
}

// runFlags holds the flags shared by the processing commands.
type runFlags struct {
	format      string
	output      string
	jobs        int
	exclude     []string
	lineNumbers bool
	quiet       bool
}

func addRunFlags(cmd *cobra.Command, flags *runFlags, command reporter.Command, withLineNumbers bool) {
	formats := reporter.Formats(command)
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.String()
	}

	cmd.Flags().StringVar(&flags.format, "format", "", "output format: "+strings.Join(names, ", ")+" (default "+names[0]+")")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the report to a file instead of stdout")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = NumCPU)")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns to skip when expanding directories")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "suppress status lines and the summary")
	if withLineNumbers {
		cmd.Flags().BoolVarP(&flags.lineNumbers, "line-numbers", "n", false, "prefix source lines with their line number")
	}
}

// cliConfig maps explicitly set flags onto a config overlay.
func cliConfig(cmd *cobra.Command, globals *globalOptions, flags *runFlags, command reporter.Command) *config.Config {
	cfg := &config.Config{Debug: globals.debug}

	if cmd.Flags().Changed("color") {
		cfg.Color = config.ColorMode(strings.ToLower(globals.color))
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = globals.logFile
	}
	if flags == nil {
		return cfg
	}

	if cmd.Flags().Changed("jobs") {
		cfg.Jobs = flags.jobs
	}
	if cmd.Flags().Changed("exclude") {
		cfg.Exclude = flags.exclude
	}
	if cmd.Flags().Changed("line-numbers") {
		lineNumbers := flags.lineNumbers
		cfg.LineNumbers = &lineNumbers
	}
	if cmd.Flags().Changed("format") {
		switch command {
		case reporter.CommandFind:
			cfg.Format.Find = flags.format
		case reporter.CommandCompress:
			cfg.Format.Compress = flags.format
		case reporter.CommandReferences:
			cfg.Format.References = flags.format
		case reporter.CommandTokens:
			cfg.Format.Tokens = flags.format
		}
	}
	return cfg
}

// session is the resolved environment of one command invocation.
type session struct {
	cfg    *config.Config
	logger *log.Logger
	styles *pretty.Styles
	quiet  bool
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	closer io.Closer
}

// newSession loads configuration and wires logging and styles. The caller
// must Close the session.
func newSession(cmd *cobra.Command, globals *globalOptions, overlay *config.Config) (*session, error) {
	ctx := commandContext(cmd)

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	// A bad --color is a usage error, not a configuration error.
	if overlay.Color != "" && !overlay.Color.IsValid() {
		return nil, fmt.Errorf("%w: invalid --color %q; must be one of: auto, always, never", ErrUsage, overlay.Color)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: globals.configPath,
		CLIConfig:    overlay,
	})
	if err != nil {
		return nil, err
	}
	cfg := loadResult.Config

	level := "info"
	if cfg.Debug {
		level = "debug"
	}

	s := &session{
		cfg:    cfg,
		stdin:  cmd.InOrStdin(),
		stdout: cmd.OutOrStdout(),
		stderr: cmd.ErrOrStderr(),
		styles: pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), cmd.ErrOrStderr())),
	}

	if cfg.LogFile != "" {
		s.logger, s.closer = logging.NewWithFile(s.stderr, level, cfg.LogFile)
	} else {
		s.logger = logging.NewTo(s.stderr, level)
	}

	for _, warning := range loadResult.Warnings {
		s.logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		s.logger.Debug("loaded configuration",
			logging.FieldConfig, loadResult.LoadedFrom,
			logging.FieldWorkingDir, workDir,
		)
	}

	return s, nil
}

// Close releases the log file, if any.
func (s *session) Close() error {
	if s.closer == nil {
		return nil
	}
	if err := s.closer.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// format resolves the effective output format of command.
func (s *session) format(command reporter.Command) (reporter.Format, error) {
	return reporter.ParseFormat(command, s.cfg.Format.For(string(command)))
}

// targets expands args, or the stdin path list when args is empty, into
// the ordered list of files to process.
func (s *session) targets(ctx context.Context, args []string, registry *lang.Registry) ([]string, error) {
	paths := args
	if len(paths) == 0 {
		stdinPaths, err := readStdinPaths(s.stdin)
		if err != nil {
			return nil, err
		}
		paths = stdinPaths
	}

	targets, err := runner.Expand(ctx, runner.Options{
		Paths:     paths,
		Exclude:   s.cfg.Exclude,
		Supported: registry.Supported,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("expanded inputs",
		logging.FieldPaths, paths,
		logging.FieldFilesDiscovered, len(targets),
		logging.FieldJobs, s.cfg.Jobs,
	)
	return targets, nil
}

// readStdinPaths reads one path per line when stdin is piped. A terminal
// yields no paths.
func readStdinPaths(stdin io.Reader) ([]string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, nil
	}

	var paths []string
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			paths = append(paths, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read paths from stdin: %w", err)
	}
	return paths, nil
}

// status writes one per-file status line to stderr.
func (s *session) status(status runner.Status, path, reason string) {
	s.logger.Debug("processed file",
		logging.FieldPath, path,
		logging.FieldStatus, status,
		logging.FieldReason, reason,
	)
	if s.quiet {
		return
	}
	_, _ = io.WriteString(s.stderr, s.styles.FormatStatus(status, path, reason))
}

// summary writes a summary line to stderr.
func (s *session) summary(line string) {
	if s.quiet {
		return
	}
	_, _ = io.WriteString(s.stderr, line)
}

// writeReport renders a report to stdout, or atomically to output.
func (s *session) writeReport(ctx context.Context, output string, opts reporter.Options, render func(reporter.Reporter) error) error {
	var buf bytes.Buffer
	opts.Writer = s.stdout
	if output != "" {
		opts.Writer = &buf
	}

	rep, err := reporter.New(opts)
	if err != nil {
		return err
	}
	if err := render(rep); err != nil {
		if errors.Is(err, reporter.ErrUnsupportedFormat) {
			return err
		}
		return fmt.Errorf("render report: %w", err)
	}

	if output == "" {
		return nil
	}
	if err := fsutil.WriteAtomic(ctx, output, buf.Bytes(), 0); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	s.logger.Debug("wrote report", logging.FieldOutput, output)
	return nil
}
