// Package fsutil utilidades de archivo compartidas por los adaptadores de salida.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// StagedFile contenido ya escrito en un temporal junto a su destino, pendiente de Commit.
type StagedFile struct {
	path string
	tmp  string
}

// Stage escribe data en un temporal del mismo directorio que path sin tocar path.
// Falla aquí (no en Commit) si el directorio no existe o no se puede escribir.
func Stage(path string, data []byte, perm os.FileMode) (*StagedFile, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return nil, fmt.Errorf("fsutil: crear temporal: %w", err)
	}
	staged := &StagedFile{path: path, tmp: tmp.Name()}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		staged.Discard()
		return nil, fmt.Errorf("fsutil: escribir %s: %w", path, err)
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		staged.Discard()
		return nil, fmt.Errorf("fsutil: permisos %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		staged.Discard()
		return nil, fmt.Errorf("fsutil: cerrar %s: %w", path, err)
	}
	return staged, nil
}

// Path destino final.
func (s *StagedFile) Path() string { return s.path }

// Commit renombra el temporal sobre el destino.
func (s *StagedFile) Commit() error {
	if err := os.Rename(s.tmp, s.path); err != nil {
		return fmt.Errorf("fsutil: renombrar a %s: %w", s.path, err)
	}
	return nil
}

// Discard borra el temporal. No-op si ya se hizo Commit.
func (s *StagedFile) Discard() {
	_ = os.Remove(s.tmp)
}

// WriteFileAtomic escribe data en un temporal del mismo directorio y lo renombra sobre path.
// Un lector nunca ve un archivo a medio escribir.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	staged, err := Stage(path, data, perm)
	if err != nil {
		return err
	}
	if err := staged.Commit(); err != nil {
		staged.Discard()
		return err
	}
	return nil
}
