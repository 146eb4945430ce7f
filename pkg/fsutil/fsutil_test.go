package fsutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ghost-audit/pkg/fsutil"
)

func TestWriteFileAtomic_ReemplazaContenido(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, os.WriteFile(path, []byte("viejo"), 0o644))

	require.NoError(t, fsutil.WriteFileAtomic(path, []byte("nuevo"), 0o644))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "nuevo", string(got))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no deben quedar temporales")
}

func TestWriteFileAtomic_DirectorioInexistente(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "existe", "out.csv")

	assert.Error(t, fsutil.WriteFileAtomic(path, []byte("x"), 0o644))
}

func TestStage_NoTocaDestinoHastaCommit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	staged, err := fsutil.Stage(path, []byte("datos"), 0o644)
	require.NoError(t, err)
	assert.Equal(t, path, staged.Path())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "el destino no existe antes del Commit")

	require.NoError(t, staged.Commit())
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "datos", string(got))
}

func TestStage_DiscardNoDejaRastro(t *testing.T) {
	dir := t.TempDir()

	staged, err := fsutil.Stage(filepath.Join(dir, "out.csv"), []byte("datos"), 0o644)
	require.NoError(t, err)
	staged.Discard()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStage_DirectorioInexistenteFallaAntesDeEscribir(t *testing.T) {
	_, err := fsutil.Stage(filepath.Join(t.TempDir(), "no", "out.csv"), []byte("x"), 0o644)

	assert.Error(t, err)
}
