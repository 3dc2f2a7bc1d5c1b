package compress_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/srcmine/pkg/compress"
	"github.com/yaklabco/srcmine/pkg/lang"
	"github.com/yaklabco/srcmine/pkg/runner"
	"github.com/yaklabco/srcmine/pkg/scanner"
	"github.com/yaklabco/srcmine/pkg/source"
)

func run(t *testing.T, language, path, src string) *compress.File {
	t.Helper()

	p, err := lang.Default().Lookup(language)
	require.NoError(t, err)

	file := source.New(path, []byte(src))
	return compress.Compress(file, scanner.Scan(file.Content, p), p, compress.Options{})
}

func TestCompress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lang  string
		src   string
		want  string
		lines []int
	}{
		{
			name: "c comments and trailing space",
			lang: "c",
			src: "/* header\n * block */\n#include <stdio.h>   \n\nint main(void) { // entry\n    char *s = \"/* kept */ \";\n    return 0; /* done */\n}\n",
			want: "#include <stdio.h>\nint main(void) {\n    char *s = \"/* kept */ \";\n    return 0;\n}\n",
			lines: []int{3, 5, 6, 7, 8},
		},
		{
			name:  "python keeps docstrings and indentation",
			lang:  "python",
			src:   "#!/usr/bin/env python3\n# comment\ndef f():\n    \"\"\"Doc.\n\n  # not a comment\n    \"\"\"\n    return 1  # trailing\n",
			want:  "#!/usr/bin/env python3\ndef f():\n    \"\"\"Doc.\n\n  # not a comment\n    \"\"\"\n    return 1\n",
			lines: []int{1, 3, 4, 5, 6, 7, 8},
		},
		{
			name:  "python comment after closing docstring",
			lang:  "python",
			src:   "s = \"\"\"abc\ndef\"\"\"  # secret comment\nx = 1\n",
			want:  "s = \"\"\"abc\ndef\"\"\"\nx = 1\n",
			lines: []int{1, 2, 3},
		},
		{
			name:  "go comment after closing raw string",
			lang:  "go",
			src:   "package main\n\nvar s = `a\nb` // secret comment\n",
			want:  "package main\nvar s = `a\nb`\n",
			lines: []int{1, 3, 4},
		},
		{
			name:  "crlf input",
			lang:  "go",
			src:   "package main\r\n\r\n// doc\r\nfunc main() {}\r\n",
			want:  "package main\nfunc main() {}\n",
			lines: []int{1, 4},
		},
		{
			name:  "only comments",
			lang:  "ruby",
			src:   "# a\n=begin\nb\n=end\n",
			want:  "",
			lines: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := run(t, tt.lang, "fixture", tt.src)
			assert.Equal(t, tt.want, got.Content())

			var numbers []int
			for _, line := range got.Lines {
				numbers = append(numbers, line.Number)
			}
			assert.Equal(t, tt.lines, numbers)
		})
	}
}

func TestCompressIdempotent(t *testing.T) {
	t.Parallel()

	fixtures := map[string]string{
		"rust":       "// c\nfn main() { /* a /* b */ c */ let s = r#\"// x\"#;   \n}\n",
		"javascript": "const re = /\\/\\*/; // c\nconst t = `a\n// in template\n`;\n",
		"shell":      "#!/bin/sh\necho $# # count\n\n  # x\nf() { :; }\n",
		"lua":        "--[[ block ]] local x = 1 -- tail\nlocal s = [[\n-- kept\n]]\n",
		"haskell":    "{- a -}\nmain = putStrLn \"--\" -- c\n",
	}

	for language, src := range fixtures {
		t.Run(language, func(t *testing.T) {
			t.Parallel()

			once := run(t, language, "fixture", src).Content()
			twice := run(t, language, "fixture", once).Content()
			assert.Equal(t, once, twice)
		})
	}
}

func TestCompressSpan(t *testing.T) {
	t.Parallel()

	got := run(t, "go", "x.go", "// a\npackage x\n\nvar v = 1\n// z\n")
	first, last := got.Span()
	assert.Equal(t, 2, first)
	assert.Equal(t, 4, last)
	assert.Equal(t, 5, got.OriginalLines)
	assert.Equal(t, "go", got.Language)

	empty := run(t, "go", "y.go", "// only\n")
	first, last = empty.Span()
	assert.Zero(t, first)
	assert.Zero(t, last)
}

func TestCompressDropShebang(t *testing.T) {
	t.Parallel()

	p, err := lang.Default().Lookup("shell")
	require.NoError(t, err)

	file := source.New("run.sh", []byte("#!/bin/sh\necho hi\n"))
	got := compress.Compress(file, scanner.Scan(file.Content, p), p, compress.Options{DropShebang: true})
	assert.Equal(t, "echo hi\n", got.Content())
}

func TestPipeline(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	code := filepath.Join(dir, "a.py")
	other := filepath.Join(dir, "b.bin")
	require.NoError(t, os.WriteFile(code, []byte("x = 1  # one\n"), 0644))
	require.NoError(t, os.WriteFile(other, []byte("data"), 0644))

	report, err := compress.New(nil).Compress(context.Background(), compress.Request{
		Targets: []string{code, other, filepath.Join(dir, "gone.c")},
	})
	require.NoError(t, err)
	require.Len(t, report.Files, 3)

	assert.Equal(t, runner.StatusOK, report.Files[0].Status)
	assert.Equal(t, "x = 1\n", report.Files[0].File.Content())
	assert.Equal(t, runner.StatusSkip, report.Files[1].Status)
	assert.Equal(t, "unrecognized language", report.Files[1].Reason())
	assert.Equal(t, runner.StatusFail, report.Files[2].Status)
	assert.Equal(t, "not found", report.Files[2].Reason())
	assert.Equal(t, runner.Stats{OK: 1, Skipped: 1, Failed: 1}, report.Stats)
}
