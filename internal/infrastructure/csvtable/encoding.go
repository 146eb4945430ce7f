package csvtable

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding juego de caracteres de las tablas de entrada.
type Encoding string

const (
	EncodingUTF8   Encoding = "utf-8"
	EncodingLatin1 Encoding = "iso-8859-1" // exportes de POS antiguos
)

// ParseEncoding normaliza el nombre configurado. Vacío equivale a UTF-8.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8, nil
	case "iso-8859-1", "iso8859-1", "latin1", "latin-1":
		return EncodingLatin1, nil
	default:
		return "", fmt.Errorf("csvtable: codificación no soportada %q", s)
	}
}

// decode envuelve r para entregar UTF-8. En UTF-8 también descarta el BOM que agregan algunas hojas de cálculo.
func decode(r io.Reader, enc Encoding) io.Reader {
	if enc == EncodingLatin1 {
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}
