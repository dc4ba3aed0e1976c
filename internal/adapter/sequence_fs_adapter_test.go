package adapter

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "mutafinder.dev/pkg/mutafinder/internal/model"
)

func writeTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o644))
}

func gzipBytes(t *testing.T, content string) []byte {
	t.Helper()

	var buf bytes.Buffer

	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	return buf.Bytes()
}

func readAll(t *testing.T, rc io.ReadCloser) string {
	t.Helper()

	defer func() { require.NoError(t, rc.Close()) }()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)

	return string(data)
}

func TestLocalSequenceFSAdapter_Open(t *testing.T) {
	ctx := context.Background()
	fasta := ">seq1\nATGC\nGTAC\n"

	t.Run("plain file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "plain.fasta")
		writeTestFile(t, path, []byte(fasta))

		rc, err := NewLocalSequenceFSAdapter().Open(ctx, m.Path(path))
		require.NoError(t, err)
		assert.Equal(t, fasta, readAll(t, rc))
	})

	t.Run("gzip detected by magic bytes", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "packed.fasta")
		writeTestFile(t, path, gzipBytes(t, fasta))

		rc, err := NewLocalSequenceFSAdapter().Open(ctx, m.Path(path))
		require.NoError(t, err)
		assert.Equal(t, fasta, readAll(t, rc))
	})

	t.Run("gz suffix with plain content fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.fasta.gz")
		writeTestFile(t, path, []byte(fasta))

		_, err := NewLocalSequenceFSAdapter().Open(ctx, m.Path(path))
		require.Error(t, err)
	})

	t.Run("dash reads stdin", func(t *testing.T) {
		adapter := &LocalSequenceFSAdapter{stdin: strings.NewReader(fasta)}

		rc, err := adapter.Open(ctx, StdinPath)
		require.NoError(t, err)
		assert.Equal(t, fasta, readAll(t, rc))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewLocalSequenceFSAdapter().Open(ctx, m.Path(filepath.Join(t.TempDir(), "nope.fasta")))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := NewLocalSequenceFSAdapter().Open(cancelled, "whatever.fasta")
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestLocalSequenceFSAdapter_FindProjectRoot(t *testing.T) {
	ctx := context.Background()
	adapter := NewLocalSequenceFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "mutafinder.yaml"), []byte("version: 1\n"))

	nested := filepath.Join(root, "data", "input")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := adapter.FindProjectRoot(ctx, m.Path(nested), "mutafinder.yaml", "go.mod")
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	gotResolved, err := filepath.EvalSymlinks(string(got))
	require.NoError(t, err)
	assert.Equal(t, want, gotResolved)

	_, err = adapter.FindProjectRoot(ctx, m.Path(nested), "definitely-not-a-marker.file")
	require.Error(t, err)
}

func TestLocalSequenceFSAdapter_FileInfoAndJoin(t *testing.T) {
	ctx := context.Background()
	adapter := NewLocalSequenceFSAdapter()
	dir := t.TempDir()

	info, err := adapter.FileInfo(ctx, m.Path(dir))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.Equal(t, m.Path(filepath.Join("a", "b", "c.fasta")), adapter.JoinPath(ctx, "a", "b", "c.fasta"))

	wd, err := adapter.WorkingDir(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, wd)
}
