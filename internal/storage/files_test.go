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

func newFiles(t *testing.T) *Files {
	t.Helper()
	f, err := NewFiles(filepath.Join(t.TempDir(), "files"))
	require.NoError(t, err)
	return f
}

func TestMoveStaged(t *testing.T) {
	f := newFiles(t)
	ctx := context.Background()

	src := filepath.Join(t.TempDir(), "tok__invoice.pdf")
	require.NoError(t, os.WriteFile(src, []byte("pdf bytes"), 0o644))

	require.NoError(t, f.MoveStaged(ctx, src, "C_001", "", "invoice.pdf"))

	// Moved, not copied
	assert.NoFileExists(t, src)
	raw, err := os.ReadFile(filepath.Join(f.Root(), "C_001", "invoice.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(raw))
}

func TestMoveStaged_ItemDirectory(t *testing.T) {
	f := newFiles(t)

	src := filepath.Join(t.TempDir(), "tok__photo.jpg")
	require.NoError(t, os.WriteFile(src, []byte("jpg"), 0o644))

	require.NoError(t, f.MoveStaged(context.Background(), src, "C_001", "Item_010", "photo.jpg"))

	assert.FileExists(t, filepath.Join(f.Root(), "C_001", "Item_010", "photo.jpg"))
}

func TestMoveStaged_OverwritesExisting(t *testing.T) {
	f := newFiles(t)
	ctx := context.Background()

	_, err := f.Write(ctx, strings.NewReader("old"), "C_001", "", "doc.txt")
	require.NoError(t, err)

	src := filepath.Join(t.TempDir(), "tok__doc.txt")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0o644))
	require.NoError(t, f.MoveStaged(ctx, src, "C_001", "", "doc.txt"))

	raw, err := os.ReadFile(filepath.Join(f.Root(), "C_001", "doc.txt"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(raw))
}

func TestMoveStaged_MissingSource(t *testing.T) {
	f := newFiles(t)

	err := f.MoveStaged(context.Background(), filepath.Join(t.TempDir(), "gone"), "C_001", "", "x.bin")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWrite(t *testing.T) {
	f := newFiles(t)

	n, err := f.Write(context.Background(), strings.NewReader("direct upload"), "C_002", "Item_020", "scan.png")
	require.NoError(t, err)
	assert.Equal(t, int64(len("direct upload")), n)

	raw, err := os.ReadFile(filepath.Join(f.Root(), "C_002", "Item_020", "scan.png"))
	require.NoError(t, err)
	assert.Equal(t, "direct upload", string(raw))
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"invoice.pdf", "invoice.pdf"},
		{"my photo (1).jpg", "my_photo_1_.jpg"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\x\receipt.png`, "receipt.png"},
		{"..", ""},
		{"   ", ""},
		{".hidden", "hidden"},
		{"über straße.txt", "_ber_stra_e.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}
