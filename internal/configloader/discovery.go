package configloader

import (
	"context"
	"fmt"
	"iter"
	"os"
	"path/filepath"
)

const appName = "srcmine"

// ConfigPaths holds the config files found for one run. Empty fields mean
// no file was found.
type ConfigPaths struct {
	// System is /etc/srcmine/config.yml (or .yaml).
	System string

	// User is $XDG_CONFIG_HOME/srcmine/config.yml (or .yaml).
	User string

	// Project is the nearest .srcmine.yml (or .yaml) at or above the
	// working directory.
	Project string

	// Explicit comes from --config.
	Explicit string

	// Shadowed lists files passed over for a preferred name in the same
	// directory.
	Shadowed []Shadowed
}

// Shadowed is a config file ignored because By sits next to it.
type Shadowed struct {
	Path string
	By   string
}

// .yml is what init writes, so it wins over .yaml in the same directory.
var (
	projectNames = []string{".srcmine.yml", ".srcmine.yaml"}
	dirNames     = []string{"config.yml", "config.yaml"}
	stopMarkers  = []string{".git", ".hg", ".svn"}
)

// DiscoverPaths finds the system, user and project config files for a run
// started in workDir.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("discover config: %w", err)
	}

	paths := &ConfigPaths{}
	paths.System = paths.pick(systemDir(), dirNames)
	paths.User = paths.pick(userDir(), dirNames)

	project, shadowed, err := findProject(ctx, workDir)
	if err != nil {
		return nil, err
	}
	paths.Project = project
	paths.Shadowed = append(paths.Shadowed, shadowed...)

	return paths, nil
}

// FindProjectConfig returns the nearest project config at or above
// startDir, or "" when the search reaches a VCS root, the home directory
// or the filesystem root without one.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	path, _, err := findProject(ctx, startDir)
	return path, err
}

func findProject(ctx context.Context, startDir string) (string, []Shadowed, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", nil, fmt.Errorf("get working directory: %w", err)
		}
		startDir = wd
	}
	start, err := filepath.Abs(startDir)
	if err != nil {
		return "", nil, fmt.Errorf("resolve %s: %w", startDir, err)
	}

	home, _ := os.UserHomeDir()
	for dir := range searchDirs(start, home) {
		if err := ctx.Err(); err != nil {
			return "", nil, fmt.Errorf("discover config: %w", err)
		}
		var found ConfigPaths
		if path := found.pick(dir, projectNames); path != "" {
			return path, found.Shadowed, nil
		}
	}
	return "", nil, nil
}

// searchDirs yields start and its parents. The walk ends after a directory
// holding a VCS marker, the home directory or the filesystem root.
func searchDirs(start, home string) iter.Seq[string] {
	return func(yield func(string) bool) {
		dir := start
		for {
			if !yield(dir) || hasStopMarker(dir) || dir == home {
				return
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				return
			}
			dir = parent
		}
	}
}

// pick returns the first of names present in dir and records the later
// ones that are present too.
func (p *ConfigPaths) pick(dir string, names []string) string {
	if dir == "" {
		return ""
	}
	var chosen string
	for _, name := range names {
		path := filepath.Join(dir, name)
		if !isFile(path) {
			continue
		}
		if chosen == "" {
			chosen = path
			continue
		}
		p.Shadowed = append(p.Shadowed, Shadowed{Path: path, By: chosen})
	}
	return chosen
}

func systemDir() string {
	if filepath.Separator != '/' {
		return ""
	}
	return filepath.Join("/etc", appName)
}

func userDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

func hasStopMarker(dir string) bool {
	for _, marker := range stopMarkers {
		if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
