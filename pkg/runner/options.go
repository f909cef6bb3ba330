// Package runner orchestrates style checking across many files: it
// discovers documentation sources under the requested paths, fans the
// per-file work out over a bounded worker pool, and merges the outcomes
// back in discovery order.
package runner

import (
	"runtime"

	"github.com/yaklabco/gostylecheck/pkg/config"
	"github.com/yaklabco/gostylecheck/pkg/styleguide"
)

// Options controls a multi-file run.
type Options struct {
	// Paths are the user-specified files or directories to process.
	// Empty defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory for resolving relative Paths and
	// glob patterns. Empty means the process working directory.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading
	// dot) to pick up during discovery. Empty means DefaultExtensions().
	Extensions []string

	// IncludeGlobs restricts discovery to matching paths, relative to
	// WorkingDir. Empty includes everything that matches Extensions.
	IncludeGlobs []string

	// ExcludeGlobs skips matching files and directories. Ignore rules
	// from configuration and the command line merge into this list.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs caps the number of concurrent per-file workers. Zero or
	// negative means GOMAXPROCS.
	Jobs int

	// Config is the resolved tool configuration for this run.
	Config *config.Config

	// Guide is the style guide the rules check against.
	Guide *styleguide.Guide
}

// DefaultExtensions returns the file extensions checked when none are
// configured: the markup formats the extractor has a strategy for, plus
// plain text.
func DefaultExtensions() []string {
	return []string{".xml", ".html", ".htm", ".txt", ".md"}
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

// effectiveJobs returns the worker count: configured Jobs or GOMAXPROCS,
// never more than the number of files.
func (o Options) effectiveJobs(fileCount int) int {
	jobs := o.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if jobs > fileCount {
		jobs = fileCount
	}
	if jobs < 1 {
		jobs = 1
	}
	return jobs
}
