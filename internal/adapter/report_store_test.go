package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "mutafinder.dev/pkg/mutafinder/internal/model"
)

func TestReportStore_SaveCreatesMissingDirectory(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data", "output")

	store := NewReportStore()
	path, err := store.SaveReport(ctx, m.Path(dir), "mutations.csv", []byte("Position,Original,Mutated\n"))
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(dir, "mutations.csv")), path)

	content, err := store.LoadReport(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "Position,Original,Mutated\n", string(content))
}

func TestReportStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewReportStore()

	_, err := store.SaveReport(ctx, m.Path(dir), "report.txt", []byte("first"))
	require.NoError(t, err)
	path, err := store.SaveReport(ctx, m.Path(dir), "report.txt", []byte("second"))
	require.NoError(t, err)

	content, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))
}

func TestReportStore_SaveFailsWhenDirIsAFile(t *testing.T) {
	ctx := context.Background()
	blocker := filepath.Join(t.TempDir(), "output")
	require.NoError(t, os.WriteFile(blocker, []byte("not a dir"), 0o644))

	_, err := NewReportStore().SaveReport(ctx, m.Path(blocker), "report.txt", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create output directory")
}

func TestReportStore_LoadMissing(t *testing.T) {
	_, err := NewReportStore().LoadReport(context.Background(), m.Path(filepath.Join(t.TempDir(), "missing.csv")))
	require.ErrorIs(t, err, os.ErrNotExist)
}
