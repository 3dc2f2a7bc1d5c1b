package cli_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/yaklabco/srcmine/internal/cli"
	"github.com/yaklabco/srcmine/internal/configloader"
	"github.com/yaklabco/srcmine/pkg/extract"
	"github.com/yaklabco/srcmine/pkg/lang"
	"github.com/yaklabco/srcmine/pkg/reporter"
	"github.com/yaklabco/srcmine/pkg/runner"
)

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}

	cmd := cli.NewRootCommand(info)

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}

	if cmd.Use != "srcmine" {
		t.Errorf("expected Use to be 'srcmine', got %q", cmd.Use)
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test", Commit: "test", Date: "test"})

	expectedSubcommands := []string{"find", "compress", "references", "tokens", "languages", "init", "version"}

	for _, name := range expectedSubcommands {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}

		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestCommandFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		command string
		flags   []string
	}{
		{"find", []string{"pattern", "format", "output", "jobs", "exclude", "quiet", "line-numbers"}},
		{"compress", []string{"format", "output", "jobs", "exclude", "quiet", "line-numbers", "drop-shebang"}},
		{"references", []string{"format", "output", "jobs", "exclude", "quiet", "headline"}},
		{"tokens", []string{"format", "output", "jobs", "exclude", "quiet", "encoding"}},
		{"init", []string{"force", "full", "output"}},
	}

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test", Commit: "test", Date: "test"})

	for _, tt := range tests {
		subCmd, _, err := cmd.Find([]string{tt.command})
		if err != nil {
			t.Fatalf("%s command not found: %v", tt.command, err)
		}
		for _, flagName := range tt.flags {
			if subCmd.Flags().Lookup(flagName) == nil {
				t.Errorf("expected flag %q to exist on %s command", flagName, tt.command)
			}
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test", Commit: "test", Date: "test"})

	expectedFlags := []string{"debug", "config", "color", "log-file"}

	for _, flagName := range expectedFlags {
		flag := cmd.PersistentFlags().Lookup(flagName)
		if flag == nil {
			t.Errorf("expected global flag %q to exist", flagName)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	info := cli.BuildInfo{
		Version: "1.2.3",
		Commit:  "abc123",
		Date:    "2024-01-01",
	}

	cmd := cli.NewRootCommand(info)
	cmd.SetArgs([]string{"version"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	for _, want := range []string{"srcmine", "1.2.3", "abc123", "2024-01-01"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected version output to contain %q, got %q", want, out.String())
		}
	}
}

func TestFindCommandArgs(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test", Commit: "test", Date: "test"})
	findCmd, _, err := cmd.Find([]string{"find"})
	if err != nil {
		t.Fatalf("find command not found: %v", err)
	}

	if err := findCmd.Args(findCmd, []string{"FUNCTION", "main", "a.go", "src/"}); err != nil {
		t.Errorf("find command should accept tags, pattern and paths, got error: %v", err)
	}

	err = findCmd.Args(findCmd, nil)
	if !errors.Is(err, cli.ErrUsage) {
		t.Errorf("expected missing TAGS to be a usage error, got %v", err)
	}
}

func TestHelpListsTags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test", Commit: "test", Date: "test"})
	cmd.SetArgs([]string{"find", "--help", "--color", "never"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("help failed: %v", err)
	}

	help := out.String()
	for _, want := range []string{"Tags:", "FUNCTION", "TYPE_ALIAS", "--pattern", "Global Flags:"} {
		if !strings.Contains(help, want) {
			t.Errorf("expected find help to contain %q", want)
		}
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitSuccess},
		{"nothing processed", fmt.Errorf("wrap: %w", runner.ErrNothingProcessed), cli.ExitNothingProcessed},
		{"usage", fmt.Errorf("%w: bad flag", cli.ErrUsage), cli.ExitInvalidUsage},
		{"unknown tag", fmt.Errorf("%w: FOO", lang.ErrUnknownTag), cli.ExitInvalidUsage},
		{"no tags", lang.ErrNoTags, cli.ExitInvalidUsage},
		{"unknown language", lang.ErrUnknownLanguage, cli.ExitInvalidUsage},
		{"invalid pattern", extract.ErrInvalidPattern, cli.ExitInvalidUsage},
		{"unsupported format", reporter.ErrUnsupportedFormat, cli.ExitInvalidUsage},
		{"invalid exclude", runner.ErrInvalidExclude, cli.ExitInvalidUsage},
		{"invalid config", fmt.Errorf("%w: jobs", configloader.ErrInvalidConfig), cli.ExitConfigError},
		{"unsupported tag", &extract.UnsupportedTagError{Tag: lang.TagStruct, Language: "python"}, cli.ExitConfigError},
		{"other", errors.New("disk on fire"), cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := cli.ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
