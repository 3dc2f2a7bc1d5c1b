package tokens_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/srcmine/pkg/runner"
	"github.com/yaklabco/srcmine/pkg/tokens"
)

func TestCounterCount(t *testing.T) {
	t.Parallel()

	counter := tokens.NewCounter("", nil)
	require.False(t, counter.Estimated())
	assert.Equal(t, tokens.DefaultEncoding, counter.Encoding())

	// Special token text is ordinary text.
	assert.Greater(t, counter.Count("<|endoftext|>").Tokens, 1)

	tests := []struct {
		name    string
		content string
		want    tokens.Metrics
	}{
		{name: "empty", content: "", want: tokens.Metrics{}},
		{name: "two words", content: "hello world", want: tokens.Metrics{Tokens: 2, Chars: 11}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := counter.Count(tt.content)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCounterCharsCountRunes(t *testing.T) {
	t.Parallel()

	got := tokens.NewCounter("", nil).Count("héllo, 世界")
	assert.Equal(t, 9, got.Chars)
}

func TestCounterFallback(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.New(&buf)

	counter := tokens.NewCounter("no_such_encoding", logger)
	require.True(t, counter.Estimated())

	assert.Equal(t, tokens.Metrics{Tokens: 2, Chars: 5}, counter.Count("abcde"))
	assert.Equal(t, tokens.Metrics{Tokens: 1, Chars: 4}, counter.Count("abcd"))
	assert.Equal(t, 1, strings.Count(buf.String(), "estimating from bytes"))
}

func TestCountAndSummarize(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := filepath.Join(dir, "a.go")
	require.NoError(t, os.WriteFile(first, []byte("hello world"), 0644))

	report, err := tokens.Count(context.Background(), tokens.NewCounter("", nil),
		[]string{first, filepath.Join(dir, "missing.go")}, 2)
	require.NoError(t, err)

	require.Len(t, report.Files, 2)
	assert.Equal(t, runner.StatusOK, report.Files[0].Status)
	assert.Equal(t, "not found", report.Files[1].Error)
	assert.Equal(t, tokens.Totals{Files: 2, Tokens: 2, Chars: 11}, report.Totals)
	assert.Equal(t, runner.Stats{OK: 1, Failed: 1}, report.Stats)

	want := "  a.go: 2 tokens, 11 chars\n" +
		"  missing.go: ERROR - not found\n" +
		"\nPack Summary:\n" +
		"----------------\n" +
		"  Total Files: 2 files\n" +
		" Total Tokens: 2 tokens\n" +
		"  Total Chars: 11 chars\n"
	assert.Equal(t, want, tokens.Summarize(report))
}

func TestSummarizeGroupsDigits(t *testing.T) {
	t.Parallel()

	report := &tokens.Report{
		Files:  []tokens.FileMetrics{{Path: "/x/big.txt", Metrics: tokens.Metrics{Tokens: 1234567, Chars: 4200}}},
		Totals: tokens.Totals{Files: 1, Tokens: 1234567, Chars: 4200},
	}
	assert.Contains(t, tokens.Summarize(report), "big.txt: 1,234,567 tokens, 4,200 chars")
}
