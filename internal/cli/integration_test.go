package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/srcmine/internal/cli"
	"github.com/yaklabco/srcmine/pkg/extract"
	"github.com/yaklabco/srcmine/pkg/runner"
)

// testPython has two functions, a class and a comment mentioning a
// function header that must never be reported.
const testPython = `import os

# def commented_out(): not code
def parse_header(line):
    return line.strip()


def other():
    pass


class Reader:
    def read(self):
        return os.getcwd()
`

// cliRun is the captured result of one command invocation.
type cliRun struct {
	stdout string
	stderr string
	err    error
}

// runCLI executes srcmine with an empty explicit config so that the result
// does not depend on the machine's config files.
func runCLI(t *testing.T, stdin string, args ...string) cliRun {
	t.Helper()

	cfgFile := filepath.Join(t.TempDir(), "empty.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("# empty\n"), 0o644))

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test", Commit: "test", Date: "test"})

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", cfgFile, "--color", "never"}, args...))

	err := cmd.Execute()
	return cliRun{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func writeSource(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestIntegration_FindPositionalPattern(t *testing.T) {
	t.Parallel()

	file := writeSource(t, "reader.py", testPython)

	run := runCLI(t, "", "find", "FUNCTION", "^parse", file)
	require.NoError(t, run.err)

	assert.Contains(t, run.stdout, "@@@ "+file+" | python")
	assert.Contains(t, run.stdout, "### FUNCTION: `parse_header`")
	assert.Contains(t, run.stdout, "return line.strip()")
	assert.NotContains(t, run.stdout, "other")
	assert.NotContains(t, run.stdout, "commented_out")

	assert.Contains(t, run.stderr, "OK "+file)
	assert.Contains(t, run.stderr, "Found: 1 constructs in 1 files (0 skipped, 0 failed)")
}

func TestIntegration_FindPatternFlag(t *testing.T) {
	t.Parallel()

	file := writeSource(t, "reader.py", testPython)

	run := runCLI(t, "", "find", "CLASS|FUNCTION", "-p", ".", "--format", "json", file)
	require.NoError(t, run.err)

	var doc struct {
		Version string `json:"version"`
		Files   []struct {
			Path    string `json:"path"`
			Matches []struct {
				Name string `json:"name"`
			} `json:"matches"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(run.stdout), &doc))
	assert.Equal(t, "1.0.0", doc.Version)
	require.Len(t, doc.Files, 1)
	assert.Equal(t, file, doc.Files[0].Path)

	names := make([]string, 0, len(doc.Files[0].Matches))
	for _, m := range doc.Files[0].Matches {
		names = append(names, m.Name)
	}
	assert.Contains(t, names, "parse_header")
	assert.Contains(t, names, "Reader")
}

func TestIntegration_FindLineNumbers(t *testing.T) {
	t.Parallel()

	file := writeSource(t, "reader.py", testPython)

	run := runCLI(t, "", "find", "FUNCTION", "parse_header", "-n", file)
	require.NoError(t, run.err)
	assert.Contains(t, run.stdout, "04: def parse_header(line):")
}

func TestIntegration_FindErrors(t *testing.T) {
	t.Parallel()

	file := writeSource(t, "reader.py", testPython)

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  error
	}{
		{
			name:     "missing pattern",
			args:     []string{"find", "FUNCTION"},
			wantCode: cli.ExitInvalidUsage,
			wantErr:  cli.ErrUsage,
		},
		{
			name:     "unknown tag",
			args:     []string{"find", "GADGET", ".", file},
			wantCode: cli.ExitInvalidUsage,
		},
		{
			name:     "invalid pattern",
			args:     []string{"find", "FUNCTION", "(", file},
			wantCode: cli.ExitInvalidUsage,
			wantErr:  extract.ErrInvalidPattern,
		},
		{
			name:     "unsupported tag only",
			args:     []string{"find", "STRUCT", ".", file},
			wantCode: cli.ExitConfigError,
			wantErr:  extract.ErrUnsupportedTag,
		},
		{
			name:     "missing file",
			args:     []string{"find", "FUNCTION", ".", filepath.Join(t.TempDir(), "absent.py")},
			wantCode: cli.ExitNothingProcessed,
			wantErr:  runner.ErrNothingProcessed,
		},
		{
			name:     "unsupported format",
			args:     []string{"find", "FUNCTION", ".", "--format", "html", file},
			wantCode: cli.ExitInvalidUsage,
		},
		{
			name:     "unknown flag",
			args:     []string{"find", "--bogus", "FUNCTION", ".", file},
			wantCode: cli.ExitInvalidUsage,
			wantErr:  cli.ErrUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			run := runCLI(t, "", tt.args...)
			require.Error(t, run.err)
			assert.Equal(t, tt.wantCode, cli.ExitCode(run.err), "error: %v", run.err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(run.err, tt.wantErr), "error: %v", run.err)
			}
		})
	}
}

func TestIntegration_FindUnsupportedTagListsSupported(t *testing.T) {
	t.Parallel()

	file := writeSource(t, "reader.py", testPython)

	run := runCLI(t, "", "find", "STRUCT", ".", file)
	require.Error(t, run.err)
	assert.Contains(t, run.err.Error(), "supported tags: CLASS, FUNCTION")
	assert.Contains(t, run.stderr, "FAIL "+file)
}

func TestIntegration_FindMixedOutcomes(t *testing.T) {
	t.Parallel()

	file := writeSource(t, "reader.py", testPython)
	unknown := writeSource(t, "notes.xyz", "nothing here\n")

	run := runCLI(t, "", "find", "FUNCTION", ".", file, unknown)
	require.NoError(t, run.err)

	assert.Contains(t, run.stderr, "OK "+file)
	assert.Contains(t, run.stderr, "SKIP "+unknown)
	assert.Contains(t, run.stderr, "(1 skipped, 0 failed)")
}

func TestIntegration_StdinPaths(t *testing.T) {
	t.Parallel()

	file := writeSource(t, "reader.py", testPython)

	run := runCLI(t, file+"\n\n", "find", "CLASS", "Reader")
	require.NoError(t, run.err)
	assert.Contains(t, run.stdout, "### CLASS: `Reader`")
}

func TestIntegration_DirectoryExpansion(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "pkg"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "vendor"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pkg", "a.py"), []byte(testPython), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vendor", "b.py"), []byte(testPython), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.txt"), []byte("text\n"), 0o644))

	run := runCLI(t, "", "find", "CLASS", "Reader", "--exclude", "vendor/**", dir)
	require.NoError(t, run.err)

	assert.Contains(t, run.stdout, filepath.Join(dir, "pkg", "a.py"))
	assert.NotContains(t, run.stdout, "b.py")
	assert.NotContains(t, run.stderr, "README.txt")
	assert.Contains(t, run.stderr, "Found: 1 constructs in 1 files")
}

func TestIntegration_Quiet(t *testing.T) {
	t.Parallel()

	file := writeSource(t, "reader.py", testPython)

	run := runCLI(t, "", "find", "FUNCTION", ".", "-q", file)
	require.NoError(t, run.err)
	assert.NotEmpty(t, run.stdout)
	assert.Empty(t, run.stderr)
}

func TestIntegration_OutputFile(t *testing.T) {
	t.Parallel()

	file := writeSource(t, "reader.py", testPython)
	output := filepath.Join(t.TempDir(), "report.txt")

	run := runCLI(t, "", "compress", "-o", output, file)
	require.NoError(t, run.err)
	assert.Empty(t, run.stdout)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "@@@ "+file+" | python")
}

func TestIntegration_Compress(t *testing.T) {
	t.Parallel()

	file := writeSource(t, "reader.py", testPython)

	run := runCLI(t, "", "compress", file)
	require.NoError(t, run.err)

	assert.Contains(t, run.stdout, "def parse_header(line):")
	assert.Contains(t, run.stdout, "> Lines: 1-")
	assert.NotContains(t, run.stdout, "commented_out")
	assert.NotContains(t, run.stdout, "\n\n\n")
	assert.Contains(t, run.stderr, "Compressed: 1 ok, 0 failed")
}

func TestIntegration_References(t *testing.T) {
	t.Parallel()

	file := writeSource(t, "reader.py", testPython)

	t.Run("markdown", func(t *testing.T) {
		t.Parallel()

		run := runCLI(t, "", "references", file)
		require.NoError(t, run.err)

		assert.Contains(t, run.stdout, "# reader.py | Python")
		assert.Contains(t, run.stdout, "## Imports")
		assert.Contains(t, run.stdout, "import os")
		assert.Contains(t, run.stdout, "parse_header")
		assert.Contains(t, run.stderr, "Processed: 1 ok, 0 failed")
	})

	t.Run("html", func(t *testing.T) {
		t.Parallel()

		run := runCLI(t, "", "references", "--format", "html", file)
		require.NoError(t, run.err)
		assert.Contains(t, run.stdout, "<h1")
		assert.Contains(t, run.stdout, "reader.py")
	})

	t.Run("doxygen fields", func(t *testing.T) {
		t.Parallel()

		src := "/** @file shapes.c\n * @brief Area helpers. */\n\n/// @brief Square area.\n/// @param side Edge length.\nint area(int side) {\n    return side * side;\n}\n"
		cfile := writeSource(t, "shapes.c", src)

		run := runCLI(t, "", "references", cfile)
		require.NoError(t, run.err)
		assert.Contains(t, run.stdout, "> Area helpers.\n")
		assert.Contains(t, run.stdout, "- FUNCTION `int area(int side)` (L6-8)\n  - Brief: Square area.\n  - Param: side Edge length.")

		run = runCLI(t, "", "references", "--format", "json", cfile)
		require.NoError(t, run.err)
		assert.Contains(t, run.stdout, `"description": "Area helpers."`)
		assert.Contains(t, run.stdout, `"tag": "param"`)
	})

	t.Run("headline restricts definitions", func(t *testing.T) {
		t.Parallel()

		run := runCLI(t, "", "references", "--headline", "CLASS", file)
		require.NoError(t, run.err)
		assert.Contains(t, run.stdout, "Reader")
		assert.NotContains(t, run.stdout, "parse_header")
	})
}

func TestIntegration_Tokens(t *testing.T) {
	t.Parallel()

	file := writeSource(t, "notes.txt", "hello world\n")

	run := runCLI(t, "", "tokens", file)
	require.NoError(t, run.err)

	assert.Contains(t, run.stdout, "notes.txt: ")
	assert.Contains(t, run.stdout, "Pack Summary:")
	assert.Contains(t, run.stdout, "  Total Files: 1 files")
	assert.Contains(t, run.stdout, "  Total Chars: 12 chars")
}

func TestIntegration_ConfigFormat(t *testing.T) {
	t.Parallel()

	file := writeSource(t, "reader.py", testPython)
	cfgFile := writeSource(t, "srcmine.yml", "format:\n  find: json\n")

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--config", cfgFile, "--color", "never", "find", "CLASS", ".", file})

	require.NoError(t, cmd.Execute())
	assert.True(t, json.Valid(stdout.Bytes()), "stdout: %s", stdout.String())
}

func TestIntegration_InvalidConfig(t *testing.T) {
	t.Parallel()

	file := writeSource(t, "reader.py", testPython)
	cfgFile := writeSource(t, "srcmine.yml", "jobs: -1\nflavor: gfm\n")

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--config", cfgFile, "find", "CLASS", ".", file})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
	assert.Empty(t, stdout.String())
}

func TestIntegration_Languages(t *testing.T) {
	t.Parallel()

	t.Run("table", func(t *testing.T) {
		t.Parallel()

		run := runCLI(t, "", "languages")
		require.NoError(t, run.err)
		assert.Contains(t, run.stdout, "LANGUAGE")
		assert.Contains(t, run.stdout, "Python")
		assert.Contains(t, run.stdout, ".py")
	})

	t.Run("single language as JSON", func(t *testing.T) {
		t.Parallel()

		run := runCLI(t, "", "languages", "python", "--format", "json")
		require.NoError(t, run.err)

		var infos []struct {
			Name string   `json:"name"`
			Tags []string `json:"tags"`
		}
		require.NoError(t, json.Unmarshal([]byte(run.stdout), &infos))
		require.Len(t, infos, 1)
		assert.Equal(t, "python", infos[0].Name)
		assert.Contains(t, infos[0].Tags, "FUNCTION")
	})

	t.Run("unknown language", func(t *testing.T) {
		t.Parallel()

		run := runCLI(t, "", "languages", "klingon")
		require.Error(t, run.err)
		assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(run.err))
	})
}

func TestIntegration_Init(t *testing.T) {
	t.Parallel()

	output := filepath.Join(t.TempDir(), ".srcmine.yml")

	run := runCLI(t, "", "init", "--output", output)
	require.NoError(t, run.err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# srcmine configuration")

	run = runCLI(t, "", "init", "--output", output)
	require.Error(t, run.err)
	assert.Contains(t, run.err.Error(), "already exists")

	run = runCLI(t, "", "init", "--full", "--force", "--output", output)
	require.NoError(t, run.err)

	data, err = os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "encoding: cl100k_base")
	assert.Contains(t, string(data), "references: markdown")
}
