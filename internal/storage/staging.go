package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"cardapi/internal/model"
)

// Staging is the flat on-disk staging area. Entries are named
// <token>__<sanitized-name> so the token alone is enough to find them;
// nothing about a staged upload is persisted anywhere else. Orphaned
// entries are never garbage-collected here.
type Staging struct {
	dir string
}

// NewStaging creates the staging area, making the directory if needed.
func NewStaging(dir string) (*Staging, error) {
	if dir == "" {
		return nil, fmt.Errorf("staging dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create staging dir: %w", err)
	}
	return &Staging{dir: dir}, nil
}

var _ Stager = (*Staging)(nil)

// Stage writes the upload to disk under a fresh random token. The token is
// a UUID; no uniqueness check is performed, collisions are negligible.
func (s *Staging) Stage(ctx context.Context, r io.Reader, originalName, contentType string) (model.StagedFile, error) {
	if r == nil {
		return model.StagedFile{}, ErrEmptyFilename
	}
	name := SanitizeFilename(originalName)
	if name == "" {
		return model.StagedFile{}, ErrEmptyFilename
	}

	token := uuid.NewString()
	dst := filepath.Join(s.dir, token+"__"+name)

	f, err := os.Create(dst)
	if err != nil {
		return model.StagedFile{}, fmt.Errorf("create staged file: %w", err)
	}
	size, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(dst)
		return model.StagedFile{}, fmt.Errorf("write staged file: %w", err)
	}

	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(name))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return model.StagedFile{
		Token:      token,
		Filename:   name,
		Mime:       contentType,
		Size:       size,
		UploadedAt: time.Now().UTC(),
	}, nil
}

// Resolve scans the staging directory for an entry with the token's prefix.
// A consumed token resolves to nothing: commit moves the file away.
func (s *Staging) Resolve(ctx context.Context, token string) (StagedEntry, error) {
	if token == "" {
		return StagedEntry{}, ErrNotFound
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return StagedEntry{}, ErrNotFound
		}
		return StagedEntry{}, fmt.Errorf("read staging dir: %w", err)
	}
	prefix := token + "__"
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasPrefix(e.Name(), prefix) {
			return StagedEntry{
				Path:         filepath.Join(s.dir, e.Name()),
				OriginalName: strings.TrimPrefix(e.Name(), prefix),
			}, nil
		}
	}
	return StagedEntry{}, ErrNotFound
}
