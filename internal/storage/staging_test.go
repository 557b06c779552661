package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStaging(t *testing.T) *Staging {
	t.Helper()
	s, err := NewStaging(filepath.Join(t.TempDir(), "staging"))
	require.NoError(t, err)
	return s
}

func TestStage(t *testing.T) {
	s := newStaging(t)
	ctx := context.Background()

	staged, err := s.Stage(ctx, strings.NewReader("pdf bytes"), "invoice.pdf", "application/pdf")
	require.NoError(t, err)

	assert.NotEmpty(t, staged.Token)
	assert.Equal(t, "invoice.pdf", staged.Filename)
	assert.Equal(t, "application/pdf", staged.Mime)
	assert.Equal(t, int64(len("pdf bytes")), staged.Size)
	assert.False(t, staged.UploadedAt.IsZero())

	// Backing file is <token>__<name>
	raw, err := os.ReadFile(filepath.Join(s.dir, staged.Token+"__invoice.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(raw))
}

func TestStage_DetectsMimeFromExtension(t *testing.T) {
	s := newStaging(t)

	staged, err := s.Stage(context.Background(), strings.NewReader("x"), "photo.png", "")
	require.NoError(t, err)
	assert.Equal(t, "image/png", staged.Mime)

	staged, err = s.Stage(context.Background(), strings.NewReader("x"), "blob.xyz123", "")
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", staged.Mime)
}

func TestStage_InvalidUpload(t *testing.T) {
	s := newStaging(t)
	ctx := context.Background()

	_, err := s.Stage(ctx, nil, "invoice.pdf", "")
	assert.ErrorIs(t, err, ErrEmptyFilename)

	_, err = s.Stage(ctx, strings.NewReader("x"), "", "")
	assert.ErrorIs(t, err, ErrEmptyFilename)

	_, err = s.Stage(ctx, strings.NewReader("x"), "..", "")
	assert.ErrorIs(t, err, ErrEmptyFilename)
}

func TestResolve(t *testing.T) {
	s := newStaging(t)
	ctx := context.Background()

	staged, err := s.Stage(ctx, strings.NewReader("data"), "receipt.jpg", "")
	require.NoError(t, err)

	entry, err := s.Resolve(ctx, staged.Token)
	require.NoError(t, err)
	assert.Equal(t, "receipt.jpg", entry.OriginalName)
	assert.FileExists(t, entry.Path)
}

func TestResolve_UnknownToken(t *testing.T) {
	s := newStaging(t)

	_, err := s.Resolve(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolve_ConsumedToken(t *testing.T) {
	s := newStaging(t)
	ctx := context.Background()

	staged, err := s.Stage(ctx, strings.NewReader("data"), "doc.txt", "")
	require.NoError(t, err)

	entry, err := s.Resolve(ctx, staged.Token)
	require.NoError(t, err)

	// Commit moves the file away; the token must stop resolving.
	require.NoError(t, os.Remove(entry.Path))

	_, err = s.Resolve(ctx, staged.Token)
	assert.ErrorIs(t, err, ErrNotFound)
}
