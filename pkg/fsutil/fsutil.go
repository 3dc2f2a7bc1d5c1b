// Package fsutil reads source inputs and writes report outputs for srcmine.
// It classifies read failures and fingerprints content.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/zeebo/xxh3"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrInvalidEncoding indicates content that is not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid UTF-8 encoding")
)

// FileInfo captures the state of a file when it was read.
type FileInfo struct {
	// Path is the path as given by the caller.
	Path string

	// Mode is the file's permission and mode bits.
	Mode os.FileMode

	// Size is the file size in bytes.
	Size int64

	// Fingerprint is the xxh3 hash of the content.
	Fingerprint uint64
}

// FingerprintHex returns the fingerprint as 16 lowercase hex digits.
func (i *FileInfo) FingerprintHex() string {
	return FormatFingerprint(i.Fingerprint)
}

// Fingerprint hashes content with xxh3.
func Fingerprint(content []byte) uint64 {
	return xxh3.Hash(content)
}

// FormatFingerprint renders a fingerprint as 16 lowercase hex digits.
func FormatFingerprint(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}

// ReadFile reads a source file and returns its content along with metadata.
// Content that is not valid UTF-8 is rejected with ErrInvalidEncoding.
func ReadFile(ctx context.Context, path string) ([]byte, *FileInfo, error) {
	select {
	case <-ctx.Done():
		return nil, nil, fmt.Errorf("read file: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, classify(path, "stat", err)
	}

	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, classify(path, "read", err)
	}

	if !utf8.Valid(content) {
		return nil, nil, fmt.Errorf("%w: %s", ErrInvalidEncoding, path)
	}

	info := &FileInfo{
		Path:        path,
		Mode:        stat.Mode(),
		Size:        stat.Size(),
		Fingerprint: Fingerprint(content),
	}

	return content, info, nil
}

func classify(path, op string, err error) error {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("%s %s: %w", op, path, err)
	}
}

// Reason returns a short status-line reason for a read error.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not found"
	case errors.Is(err, ErrPermissionDenied):
		return "permission denied"
	case errors.Is(err, ErrIsDirectory):
		return "is a directory"
	case errors.Is(err, ErrInvalidEncoding):
		return "invalid encoding"
	default:
		return err.Error()
	}
}
