package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// Discover finds checkable files matching opts under the working
// directory. It returns a deterministically sorted list of absolute
// paths; this order is the discovery order the runner reports in.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	w := &walker{
		workDir:    workDir,
		extensions: opts.effectiveExtensions(),
		includes:   compileGlobs(opts.IncludeGlobs),
		excludes:   compileGlobs(opts.ExcludeGlobs),
		includeAll: len(opts.IncludeGlobs) == 0,
		follow:     opts.FollowSymlinks,
	}

	// Explicit paths may overlap; deduplicate while collecting.
	seen := make(map[string]struct{})
	var files []string

	for _, inputPath := range opts.effectivePaths() {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("discovery cancelled: %w", ctx.Err())
		default:
		}

		absPath := inputPath
		if !filepath.IsAbs(inputPath) {
			absPath = filepath.Join(workDir, inputPath)
		}
		absPath = filepath.Clean(absPath)

		info, err := os.Stat(absPath)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", inputPath, err)
		}

		if info.IsDir() {
			discovered, err := w.walk(ctx, absPath)
			if err != nil {
				return nil, err
			}
			for _, f := range discovered {
				if _, ok := seen[f]; !ok {
					seen[f] = struct{}{}
					files = append(files, f)
				}
			}
			continue
		}

		if w.wants(absPath) {
			if _, ok := seen[absPath]; !ok {
				seen[absPath] = struct{}{}
				files = append(files, absPath)
			}
		}
	}

	sort.Strings(files)

	return files, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

// walker carries the per-run discovery state: compiled glob sets and
// the extension filter, all matched against workDir-relative paths.
type walker struct {
	workDir    string
	extensions []string
	includes   globSet
	excludes   globSet
	includeAll bool
	follow     bool
}

// walk recursively collects matching files under root.
func (w *walker) walk(ctx context.Context, root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(entryPath string, entry fs.DirEntry, walkErr error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if walkErr != nil {
			// Unreadable subtrees are skipped, not fatal.
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		if entry.IsDir() {
			// Skip hidden directories (except root).
			if entryPath != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			// Prune excluded directories instead of filtering their
			// files one by one.
			if w.excludes.matches(w.rel(entryPath)) {
				return filepath.SkipDir
			}
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			realPath, evalErr := filepath.EvalSymlinks(entryPath)
			if evalErr != nil {
				// Broken symlink.
				return nil //nolint:nilerr // Intentionally skip broken symlinks
			}
			info, statErr := os.Stat(realPath)
			if statErr != nil {
				return nil //nolint:nilerr // Intentionally skip inaccessible symlink targets
			}
			if info.IsDir() {
				if !w.follow {
					return nil
				}
				// Walk the symlink TARGET, not the link itself: WalkDir
				// uses Lstat on its root, so walking the link path would
				// terminate immediately.
				subFiles, err := w.walk(ctx, realPath)
				if err != nil {
					return err
				}
				files = append(files, subFiles...)
				return nil
			}
			// A file symlink flows through the regular file checks.
		}

		// Skip hidden files.
		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}

		if w.wants(entryPath) {
			files = append(files, entryPath)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory %s: %w", root, err)
	}

	return files, nil
}

// rel returns the workDir-relative form of an absolute path, falling
// back to the path itself when it cannot be made relative.
func (w *walker) rel(absPath string) string {
	relPath, err := filepath.Rel(w.workDir, absPath)
	if err != nil {
		return absPath
	}
	return relPath
}

// wants reports whether a file should be checked: its extension is in
// the configured set, no exclude pattern matches, and an include
// pattern matches when includes were given.
func (w *walker) wants(absPath string) bool {
	if !hasMatchingExtension(absPath, w.extensions) {
		return false
	}

	relPath := w.rel(absPath)
	if w.excludes.matches(relPath) {
		return false
	}
	if w.includeAll {
		return true
	}
	return w.includes.matches(relPath)
}

// hasMatchingExtension checks if the file has a matching extension.
func hasMatchingExtension(filePath string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

// globSet is a compiled set of include or exclude patterns. Paths are
// matched in slash form relative to the working directory.
//
// Each raw pattern compiles to several variants so the usual notations
// behave as people expect: "vendor/**" also matches the vendor
// directory itself (letting the walk prune it), "**/build" also
// matches a top-level build, and a pattern without a separator (like
// "*.txt") also matches against the bare file name at any depth.
type globSet struct {
	paths []glob.Glob
	names []glob.Glob
}

// compileGlobs compiles the raw patterns. Malformed patterns are
// dropped; they can never match anything.
func compileGlobs(patterns []string) globSet {
	var gs globSet
	for _, raw := range patterns {
		p := filepath.ToSlash(raw)

		if g, err := glob.Compile(p, '/'); err == nil {
			gs.paths = append(gs.paths, g)
		}
		if !strings.Contains(p, "/") {
			if g, err := glob.Compile(p); err == nil {
				gs.names = append(gs.names, g)
			}
		}
		if prefix, ok := strings.CutSuffix(p, "/**"); ok && prefix != "" {
			if g, err := glob.Compile(prefix, '/'); err == nil {
				gs.paths = append(gs.paths, g)
			}
		}
		if suffix, ok := strings.CutPrefix(p, "**/"); ok && suffix != "" {
			if g, err := glob.Compile(suffix, '/'); err == nil {
				gs.paths = append(gs.paths, g)
			}
		}
	}
	return gs
}

// matches reports whether any pattern variant matches the relative path.
func (gs globSet) matches(relPath string) bool {
	rel := filepath.ToSlash(relPath)
	for _, g := range gs.paths {
		if g.Match(rel) {
			return true
		}
	}
	if len(gs.names) == 0 {
		return false
	}
	name := path.Base(rel)
	for _, g := range gs.names {
		if g.Match(name) {
			return true
		}
	}
	return false
}
