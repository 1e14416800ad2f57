package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vstock/ventas-api/internal/application/usecase"
)

var _ usecase.ImageStore = (*LocalImageStore)(nil)

// LocalImageStore guarda las imágenes de productos en un directorio local.
// El nombre se reduce a su base (sin rutas) y un nombre repetido sobrescribe
// el archivo anterior.
type LocalImageStore struct {
	dir string
}

// NewLocalImageStore crea el directorio si no existe.
func NewLocalImageStore(dir string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de imágenes: %w", err)
	}
	return &LocalImageStore{dir: dir}, nil
}

// Save escribe el contenido y devuelve la ruta persistida.
func (s *LocalImageStore) Save(filename string, r io.Reader) (string, error) {
	base := filepath.Base(filename)
	if base == "." || base == string(filepath.Separator) || base == "" {
		return "", fmt.Errorf("nombre de imagen inválido: %q", filename)
	}
	path := filepath.Join(s.dir, base)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("guardar imagen: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("escribir imagen: %w", err)
	}
	return path, nil
}

// Remove borra la imagen de disco. Un archivo inexistente no es un error.
func (s *LocalImageStore) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("borrar imagen: %w", err)
	}
	return nil
}
