// Package runner expands input paths into targets and processes them on a
// bounded worker pool, keeping results in caller order.
package runner

import "runtime"

// Options controls target expansion and concurrency.
type Options struct {
	// Paths are the user-specified files or directories, in caller order.
	// If empty, defaults to the current working directory.
	Paths []string

	// Exclude holds glob patterns (gobwas/glob syntax, "/" separated) for
	// files and directories to skip. Patterns match the path relative to the
	// expanded directory as well as the base name.
	Exclude []string

	// Supported reports whether a file found under a directory is a source
	// file worth processing. Files named explicitly are always kept.
	// Nil keeps every file.
	Supported func(path string) bool

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs bounds the number of concurrent workers.
	// 0 or negative means runtime.NumCPU().
	Jobs int
}

// effectivePaths returns the paths to expand, defaulting to ".".
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

// EffectiveJobs returns the worker count for n targets.
func (o Options) EffectiveJobs(n int) int {
	jobs := o.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > n {
		jobs = n
	}
	if jobs < 1 {
		jobs = 1
	}
	return jobs
}
