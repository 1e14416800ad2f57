package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vstock/ventas-api/internal/infrastructure/storage"
)

func TestSave_EscribeYDevuelveRuta(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalImageStore(dir)
	require.NoError(t, err)

	path, err := store.Save("foto.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "foto.png"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestSave_SanitizaRutas(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalImageStore(dir)
	require.NoError(t, err)

	// Un nombre con directorios se reduce a su base dentro del almacén.
	path, err := store.Save("../../etc/passwd.png", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "passwd.png"), path)
}

func TestSave_NombreRepetidoSobrescribe(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalImageStore(dir)
	require.NoError(t, err)

	_, err = store.Save("img.jpg", strings.NewReader("primera"))
	require.NoError(t, err)
	path, err := store.Save("img.jpg", strings.NewReader("segunda"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "segunda", string(data))
}

func TestRemove_InexistenteNoFalla(t *testing.T) {
	store, err := storage.NewLocalImageStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Remove(filepath.Join(t.TempDir(), "no-existe.png")))
	assert.NoError(t, store.Remove(""))
}
