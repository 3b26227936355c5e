package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/MKhiriev/readsync/internal/logger"
)

// BlobInfo describes a stored blob.
type BlobInfo struct {
	Size    int64
	ModTime time.Time
}

// FileBlobStore keeps named blobs in a billy filesystem. Writes go to a
// temporary sibling first and are renamed into place, so readers never see
// a half-written blob.
//
// Names are slash-separated paths relative to the store root; they may not
// be absolute or contain "..".
type FileBlobStore struct {
	fs     billy.Filesystem
	logger *logger.Logger
}

// NewFileBlobStore returns a store rooted at fs.
func NewFileBlobStore(fs billy.Filesystem, logger *logger.Logger) *FileBlobStore {
	return &FileBlobStore{fs: fs, logger: logger}
}

// NewOSFileBlobStore returns a store rooted at the OS directory root,
// creating it when missing.
func NewOSFileBlobStore(root string, logger *logger.Logger) (*FileBlobStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create blob root %s: %w", root, err)
	}
	return NewFileBlobStore(osfs.New(root), logger), nil
}

// Sub returns a store rooted at dir inside this one, creating dir if needed.
func (s *FileBlobStore) Sub(dir string) (*FileBlobStore, error) {
	if err := validateBlobName(dir); err != nil {
		return nil, err
	}
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create blob dir %s: %w", dir, err)
	}
	sub, err := s.fs.Chroot(dir)
	if err != nil {
		return nil, fmt.Errorf("chroot blob dir %s: %w", dir, err)
	}
	return &FileBlobStore{fs: sub, logger: s.logger}, nil
}

// Read returns the blob content or [ErrBlobNotFound].
func (s *FileBlobStore) Read(ctx context.Context, name string) ([]byte, error) {
	if err := validateBlobName(name); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := s.fs.Open(name)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("open blob %s: %w", name, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read blob %s: %w", name, err)
	}
	return data, nil
}

// Write stores data under name, replacing any previous content.
func (s *FileBlobStore) Write(ctx context.Context, name string, data []byte) error {
	if err := validateBlobName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := path.Dir(name); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create blob dir %s: %w", dir, err)
		}
	}

	tmp := name + ".tmp"
	f, err := s.fs.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create blob %s: %w", name, err)
	}
	if _, err = f.Write(data); err != nil {
		f.Close()
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("write blob %s: %w", name, err)
	}
	if err = f.Close(); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("close blob %s: %w", name, err)
	}

	if err = s.fs.Rename(tmp, name); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("rename blob %s: %w", name, err)
	}

	s.logger.Debug().
		Str("func", "FileBlobStore.Write").
		Str("name", name).
		Int("size", len(data)).
		Msg("blob written")
	return nil
}

// Stat returns size and modification time of a blob or [ErrBlobNotFound].
func (s *FileBlobStore) Stat(ctx context.Context, name string) (BlobInfo, error) {
	if err := validateBlobName(name); err != nil {
		return BlobInfo{}, err
	}
	if err := ctx.Err(); err != nil {
		return BlobInfo{}, err
	}

	fi, err := s.fs.Stat(name)
	if errors.Is(err, os.ErrNotExist) {
		return BlobInfo{}, ErrBlobNotFound
	}
	if err != nil {
		return BlobInfo{}, fmt.Errorf("stat blob %s: %w", name, err)
	}
	return BlobInfo{Size: fi.Size(), ModTime: fi.ModTime()}, nil
}

// Remove deletes a blob. It reports false when nothing was there.
func (s *FileBlobStore) Remove(ctx context.Context, name string) (bool, error) {
	if err := validateBlobName(name); err != nil {
		return false, err
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	err := s.fs.Remove(name)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("remove blob %s: %w", name, err)
	}
	return true, nil
}

// MkdirAll creates dir and its parents.
func (s *FileBlobStore) MkdirAll(ctx context.Context, dir string) error {
	if err := validateBlobName(dir); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create blob dir %s: %w", dir, err)
	}
	return nil
}

// List returns the sorted names of regular files directly inside dir. A
// missing dir yields an empty list. Leftover temporary files are skipped.
func (s *FileBlobStore) List(ctx context.Context, dir string) ([]string, error) {
	if err := validateBlobName(dir); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := s.fs.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list blob dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasSuffix(e.Name(), ".tmp") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

func validateBlobName(name string) error {
	if name == "" || strings.HasPrefix(name, "/") || strings.Contains(name, "\\") {
		return fmt.Errorf("%w: %q", ErrInvalidBlobName, name)
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return fmt.Errorf("%w: %q", ErrInvalidBlobName, name)
		}
	}
	return nil
}
