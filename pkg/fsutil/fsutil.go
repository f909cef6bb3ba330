// Package fsutil holds the file-safety primitives the fix pipeline is
// built on: snapshot reads with content hashing, external-modification
// detection, sidecar backups, and atomic writes. A document is only
// rewritten through these primitives, never with a bare os.WriteFile.
package fsutil

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"time"
)

// Sentinel errors, matched with errors.Is.
var (
	// ErrNilFileInfo is returned when a nil FileInfo is passed.
	ErrNilFileInfo = errors.New("nil FileInfo")

	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")
)

// FileInfo is a snapshot of a document taken when it was read. The fix
// pipeline compares against it before writing, so edits computed from a
// stale read are never applied over someone else's changes.
type FileInfo struct {
	// Path is the path the snapshot was taken from.
	Path string

	// Mode holds the permission bits, reapplied on rewrite.
	Mode os.FileMode

	// ModTime is the modification time at read.
	ModTime time.Time

	// Size is the content length in bytes at read.
	Size int64

	// Hash is the SHA-256 of the content at read.
	Hash [32]byte
}

// ReadFile reads a document and snapshots its state. Pass the FileInfo
// to CheckModified before rewriting the file.
func ReadFile(ctx context.Context, path string) ([]byte, *FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, classifyStatErr(path, err)
	}
	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
		}
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	return content, &FileInfo{
		Path:    path,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
		Hash:    sha256.Sum256(content),
	}, nil
}

// CheckModified reports whether the file changed since the snapshot.
// A cheap stat comparison runs first; when stat still matches, the
// content is re-hashed, since an in-place edit can preserve size and,
// on coarse filesystems, the mod time too. A deleted file counts as
// modified.
func CheckModified(ctx context.Context, info *FileInfo) (bool, error) {
	if info == nil {
		return false, ErrNilFileInfo
	}
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("check modified: %w", err)
	}

	changed, gone, err := statChanged(info)
	if err != nil {
		return false, err
	}
	if gone || changed {
		return true, nil
	}

	content, err := os.ReadFile(info.Path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", info.Path, err)
	}
	return sha256.Sum256(content) != info.Hash, nil
}

// CheckModifiedQuick is CheckModified without the re-hash. Use it where
// a missed same-size in-place edit is acceptable.
func CheckModifiedQuick(ctx context.Context, info *FileInfo) (bool, error) {
	if info == nil {
		return false, ErrNilFileInfo
	}
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("check modified: %w", err)
	}

	changed, gone, err := statChanged(info)
	if err != nil {
		return false, err
	}
	return gone || changed, nil
}

// statChanged compares the current stat against the snapshot. gone is
// true when the file no longer exists.
func statChanged(info *FileInfo) (changed, gone bool, err error) {
	stat, err := os.Stat(info.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, true, nil
		}
		return false, false, fmt.Errorf("stat %s: %w", info.Path, err)
	}
	return !stat.ModTime().Equal(info.ModTime) || stat.Size() != info.Size, false, nil
}

func classifyStatErr(path string, err error) error {
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case os.IsPermission(err):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("stat %s: %w", path, err)
	}
}
