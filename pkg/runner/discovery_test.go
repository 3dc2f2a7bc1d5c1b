package runner_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/yaklabco/srcmine/pkg/runner"
)

func writeTree(t *testing.T, dir string, files ...string) {
	t.Helper()

	for _, f := range files {
		path := filepath.Join(dir, f)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("setup mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("content\n"), 0644); err != nil {
			t.Fatalf("setup write: %v", err)
		}
	}
}

func sourceOnly(path string) bool {
	switch filepath.Ext(path) {
	case ".go", ".py", ".c":
		return true
	default:
		return false
	}
}

func TestExpand_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir,
		"main.go",
		"pkg/b.py",
		"pkg/a.c",
		"notes.txt",
		".hidden/skip.go",
		"pkg/.secret.py",
	)

	got, err := runner.Expand(context.Background(), runner.Options{
		Paths:     []string{dir},
		Supported: sourceOnly,
	})
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}

	want := []string{
		filepath.Join(dir, "main.go"),
		filepath.Join(dir, "pkg/a.c"),
		filepath.Join(dir, "pkg/b.py"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand() = %v, want %v", got, want)
	}
}

func TestExpand_KeepsCallerOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, "z.go", "src/b.go", "src/a.go")

	z := filepath.Join(dir, "z.go")
	src := filepath.Join(dir, "src")
	missing := filepath.Join(dir, "missing.c")

	got, err := runner.Expand(context.Background(), runner.Options{
		Paths:     []string{z, src, missing, z},
		Supported: sourceOnly,
	})
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}

	want := []string{z, filepath.Join(src, "a.go"), filepath.Join(src, "b.go"), missing}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand() = %v, want %v", got, want)
	}
}

func TestExpand_Exclude(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir,
		"main.go",
		"main_test.go",
		"vendor/lib/lib.go",
		"internal/gen/gen.go",
		"internal/keep.go",
	)

	got, err := runner.Expand(context.Background(), runner.Options{
		Paths:     []string{dir},
		Exclude:   []string{"*_test.go", "vendor", "**/gen/**"},
		Supported: sourceOnly,
	})
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}

	want := []string{
		filepath.Join(dir, "internal/keep.go"),
		filepath.Join(dir, "main.go"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand() = %v, want %v", got, want)
	}
}

func TestExpand_InvalidExclude(t *testing.T) {
	t.Parallel()

	_, err := runner.Expand(context.Background(), runner.Options{
		Paths:   []string{t.TempDir()},
		Exclude: []string{"[unclosed"},
	})
	if !errors.Is(err, runner.ErrInvalidExclude) {
		t.Fatalf("error = %v, want ErrInvalidExclude", err)
	}
}

func TestExpand_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Expand(ctx, runner.Options{Paths: []string{t.TempDir()}})
	if err == nil || !strings.Contains(err.Error(), "cancelled") {
		t.Fatalf("error = %v, want cancellation", err)
	}
}

func TestExpand_DirectorySymlinks(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	outside := t.TempDir()
	writeTree(t, outside, "linked.go")
	writeTree(t, dir, "own.go")

	if err := os.Symlink(outside, filepath.Join(dir, "link")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	got, err := runner.Expand(context.Background(), runner.Options{Paths: []string{dir}, Supported: sourceOnly})
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("without FollowSymlinks got %v", got)
	}

	got, err = runner.Expand(context.Background(), runner.Options{
		Paths:          []string{dir},
		Supported:      sourceOnly,
		FollowSymlinks: true,
	})
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("with FollowSymlinks got %v", got)
	}
}
