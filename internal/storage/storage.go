// Package storage contains the local-disk file stores: a flat staging
// directory for uploads pending commit, and the per-card directory tree
// holding committed attachment files.
package storage

import (
	"context"
	"errors"
	"io"

	"cardapi/internal/model"
)

var (
	// ErrEmptyFilename is returned when an upload carries no usable filename.
	ErrEmptyFilename = errors.New("empty filename")
	// ErrNotFound is returned when no staged entry matches a token, including
	// the case where a prior commit already consumed it.
	ErrNotFound = errors.New("staged file not found")
)

// StagedEntry locates a staged upload on disk.
type StagedEntry struct {
	Path         string
	OriginalName string
}

// Stager holds uploaded files under a random token until they are
// committed to a card or item.
type Stager interface {
	// Stage writes the upload under <token>__<sanitized-name> and returns its
	// metadata, including the token the caller must present to commit.
	Stage(ctx context.Context, r io.Reader, originalName, mime string) (model.StagedFile, error)

	// Resolve finds the staged entry for a token, or ErrNotFound.
	Resolve(ctx context.Context, token string) (StagedEntry, error)
}

// FileStore manages committed attachment files under
// <root>/<card_id>[/<item_id>]/<filename>.
type FileStore interface {
	// MoveStaged moves (not copies) a staged file into the target directory,
	// overwriting any existing file of the same name. After it returns the
	// staged path no longer exists.
	MoveStaged(ctx context.Context, stagedPath, cardID, itemID, filename string) error

	// Write stores content directly in the target directory, used by the
	// one-step upload that skips staging.
	Write(ctx context.Context, r io.Reader, cardID, itemID, filename string) (int64, error)

	// Root returns the directory the /files route serves from.
	Root() string
}
