package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Files stores committed attachments under <root>/<card_id>[/<item_id>].
// The same tree is served byte-for-byte on the /files route.
type Files struct {
	root string
}

// NewFiles creates the attachment file store rooted at dir.
func NewFiles(dir string) (*Files, error) {
	if dir == "" {
		return nil, fmt.Errorf("files dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create files dir: %w", err)
	}
	return &Files{root: dir}, nil
}

var _ FileStore = (*Files)(nil)

// Root returns the directory the /files route serves from.
func (f *Files) Root() string {
	return f.root
}

func (f *Files) targetDir(cardID, itemID string) (string, error) {
	dir := filepath.Join(f.root, cardID)
	if itemID != "" {
		dir = filepath.Join(dir, itemID)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create target dir: %w", err)
	}
	return dir, nil
}

// MoveStaged moves the staged file into place, overwriting any existing
// file of the same name. Rename is used where the filesystem allows it;
// across volumes this degrades to copy-then-delete, which leaves a window
// where partial failure can strand both copies.
func (f *Files) MoveStaged(ctx context.Context, stagedPath, cardID, itemID, filename string) error {
	dir, err := f.targetDir(cardID, itemID)
	if err != nil {
		return err
	}
	dst := filepath.Join(dir, filename)
	if err := os.Rename(stagedPath, dst); err == nil {
		return nil
	}
	src, err := os.Open(stagedPath)
	if err != nil {
		return fmt.Errorf("open staged file: %w", err)
	}
	defer src.Close()
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create target file: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("copy staged file: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close target file: %w", err)
	}
	src.Close()
	return os.Remove(stagedPath)
}

// Write stores content directly in the target directory, overwriting any
// existing file of the same name.
func (f *Files) Write(ctx context.Context, r io.Reader, cardID, itemID, filename string) (int64, error) {
	dir, err := f.targetDir(cardID, itemID)
	if err != nil {
		return 0, err
	}
	dst := filepath.Join(dir, filename)
	out, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("create target file: %w", err)
	}
	n, err := io.Copy(out, r)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(dst)
		return 0, fmt.Errorf("write target file: %w", err)
	}
	return n, nil
}
