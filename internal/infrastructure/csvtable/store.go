package csvtable

import (
	"context"
	"io"
	"os"

	appaudit "github.com/jhoicas/ghost-audit/internal/application/audit"
	"github.com/jhoicas/ghost-audit/internal/domain"
	"github.com/jhoicas/ghost-audit/internal/domain/entity"
)

var (
	_ appaudit.InventorySource = (*Store)(nil)
	_ appaudit.SalesSource     = (*Store)(nil)
	_ appaudit.ReportSink      = (*Store)(nil)
	_ appaudit.ReportRenderer  = (*Store)(nil)
)

// Config rutas de las tres tablas planas.
type Config struct {
	InventoryPath string
	SalesPath     string
	ReportPath    string
	Encoding      Encoding
}

// Store adaptador de archivos CSV para el pipeline.
type Store struct {
	cfg Config
}

// NewStore construye el adaptador.
func NewStore(cfg Config) *Store {
	if cfg.Encoding == "" {
		cfg.Encoding = EncodingUTF8
	}
	return &Store{cfg: cfg}
}

// ReadInventory lee la tabla de inventario completa.
func (s *Store) ReadInventory(_ context.Context) ([]entity.InventoryRecord, error) {
	var out []entity.InventoryRecord
	err := s.withFile(s.cfg.InventoryPath, func(r io.Reader) (err error) {
		out, err = DecodeInventory(r, s.cfg.Encoding, s.cfg.InventoryPath)
		return err
	})
	return out, err
}

// ReadSales lee la tabla de transacciones completa.
func (s *Store) ReadSales(_ context.Context) ([]entity.SalesTransaction, error) {
	var out []entity.SalesTransaction
	err := s.withFile(s.cfg.SalesPath, func(r io.Reader) (err error) {
		out, err = DecodeSales(r, s.cfg.Encoding, s.cfg.SalesPath)
		return err
	})
	return out, err
}

func (s *Store) withFile(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return &domain.UnreadableInputError{Path: path, Err: err}
	}
	defer f.Close()
	return fn(f)
}

// Render serializa el reporte (solo filas marcadas) a CSV.
// Se genera completo en memoria; la escritura la hace el caso de uso.
func (s *Store) Render(_ context.Context, run *appaudit.Run) ([]byte, error) {
	return encodeToBytes(func(w io.Writer) error {
		return EncodeReport(w, run.Result.Report)
	})
}

// ContentType tipo MIME del reporte.
func (s *Store) ContentType() string { return "text/csv; charset=utf-8" }

// Extension extensión de archivo del reporte.
func (s *Store) Extension() string { return "csv" }

// Path ruta del reporte CSV.
func (s *Store) Path() string { return s.cfg.ReportPath }
