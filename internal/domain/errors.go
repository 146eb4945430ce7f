package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrMissingColumn   = errors.New("columna requerida ausente")
	ErrUnreadableInput = errors.New("tabla de entrada ilegible")
)

// MissingColumnError indica que una tabla de entrada no trae una columna obligatoria.
// Es fatal: la corrida se aborta sin escribir salida.
type MissingColumnError struct {
	Table  string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: tabla %q sin columna %q", ErrMissingColumn, e.Table, e.Column)
}

func (e *MissingColumnError) Unwrap() error { return ErrMissingColumn }

// UnreadableInputError indica que una tabla no se pudo abrir o parsear.
type UnreadableInputError struct {
	Path string
	Err  error
}

func (e *UnreadableInputError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", ErrUnreadableInput, e.Path)
	}
	return fmt.Sprintf("%s: %s: %v", ErrUnreadableInput, e.Path, e.Err)
}

// Unwrap permite errors.Is contra ErrUnreadableInput y contra la causa (p. ej. fs.ErrNotExist).
func (e *UnreadableInputError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUnreadableInput}
	}
	return []error{ErrUnreadableInput, e.Err}
}
