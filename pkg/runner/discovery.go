package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// ErrInvalidExclude indicates an exclude pattern that does not compile.
var ErrInvalidExclude = errors.New("invalid exclude pattern")

// excluder matches paths against compiled exclude globs.
type excluder struct {
	globs []glob.Glob
}

func newExcluder(patterns []string) (*excluder, error) {
	ex := &excluder{}
	for _, pattern := range patterns {
		compiled, err := glob.Compile(filepath.ToSlash(pattern), '/')
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidExclude, pattern, err)
		}
		ex.globs = append(ex.globs, compiled)

		// "**/x" also matches "x" at the root.
		if rest, ok := strings.CutPrefix(pattern, "**/"); ok {
			if rootGlob, err := glob.Compile(rest, '/'); err == nil {
				ex.globs = append(ex.globs, rootGlob)
			}
		}
	}
	return ex, nil
}

// match reports whether relPath, its base name or relPath as a directory
// prefix matches an exclude glob.
func (e *excluder) match(relPath string, isDir bool) bool {
	if len(e.globs) == 0 {
		return false
	}

	relPath = filepath.ToSlash(relPath)
	base := relPath
	if idx := strings.LastIndexByte(relPath, '/'); idx >= 0 {
		base = relPath[idx+1:]
	}

	for _, g := range e.globs {
		if g.Match(relPath) || g.Match(base) {
			return true
		}
		if isDir && g.Match(relPath+"/**") {
			return true
		}
	}
	return false
}

// Expand turns opts.Paths into an ordered list of targets. Directories are
// replaced in place by the supported files beneath them, sorted and with
// hidden entries skipped. Explicit files are kept even when they do not
// exist, so that each gets its own status. Duplicates keep their first
// position.
func Expand(ctx context.Context, opts Options) ([]string, error) {
	ex, err := newExcluder(opts.Exclude)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var targets []string

	add := func(path string) {
		key := filepath.Clean(path)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		targets = append(targets, path)
	}

	for _, inputPath := range opts.effectivePaths() {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("expansion cancelled: %w", ctx.Err())
		default:
		}

		info, statErr := os.Stat(inputPath)
		if statErr != nil || !info.IsDir() {
			if !ex.match(inputPath, false) {
				add(inputPath)
			}
			continue
		}

		found, err := walkDirectory(ctx, inputPath, ex, opts)
		if err != nil {
			return nil, err
		}
		for _, path := range found {
			add(path)
		}
	}

	return targets, nil
}

// walkDirectory returns the supported files under root in lexical order.
func walkDirectory(ctx context.Context, root string, ex *excluder, opts Options) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			if errors.Is(walkErr, fs.ErrPermission) {
				return nil
			}
			return walkErr
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relPath = path
		}

		if entry.IsDir() {
			if path == root {
				return nil
			}
			if strings.HasPrefix(entry.Name(), ".") || ex.match(relPath, true) {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(entry.Name(), ".") || ex.match(relPath, false) {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			target, statErr := os.Stat(path)
			if statErr != nil {
				return nil //nolint:nilerr // broken symlinks are skipped
			}
			if target.IsDir() {
				if !opts.FollowSymlinks {
					return nil
				}
				realPath, evalErr := filepath.EvalSymlinks(path)
				if evalErr != nil {
					return nil //nolint:nilerr // unresolvable symlinks are skipped
				}
				sub, err := walkDirectory(ctx, realPath, ex, opts)
				if err != nil {
					return err
				}
				files = append(files, sub...)
				return nil
			}
		}

		if opts.Supported == nil || opts.Supported(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}
