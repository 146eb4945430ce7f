// Package bootstrap arma el pipeline de auditoría a partir de la configuración; lo comparten los drivers de cmd/.
package bootstrap

import (
	appaudit "github.com/jhoicas/ghost-audit/internal/application/audit"
	"github.com/jhoicas/ghost-audit/internal/infrastructure/csvtable"
	"github.com/jhoicas/ghost-audit/internal/infrastructure/pdf"
	"github.com/jhoicas/ghost-audit/internal/infrastructure/xlsx"
	"github.com/jhoicas/ghost-audit/pkg/config"
	"github.com/jhoicas/ghost-audit/pkg/logger"
)

// Pipeline caso de uso listo para ejecutar más los renderizadores disponibles por formato.
type Pipeline struct {
	RunAudit  *appaudit.RunAuditUseCase
	Renderers map[string]appaudit.ReportRenderer
}

// NewPipeline conecta el adaptador CSV y, si hay rutas configuradas, los exportadores XLSX y PDF como sinks.
func NewPipeline(cfg config.AuditConfig, log *logger.Logger) (*Pipeline, error) {
	enc, err := csvtable.ParseEncoding(cfg.InputEncoding)
	if err != nil {
		return nil, err
	}

	store := csvtable.NewStore(csvtable.Config{
		InventoryPath: cfg.InventoryPath,
		SalesPath:     cfg.SalesPath,
		ReportPath:    cfg.ReportPath,
		Encoding:      enc,
	})
	xlsxExporter := xlsx.NewExporter(cfg.XLSXPath)
	pdfGenerator := pdf.NewMarotoPDFGenerator(cfg.PDFPath)

	sinks := []appaudit.ReportSink{store}
	if cfg.XLSXPath != "" {
		sinks = append(sinks, xlsxExporter)
	}
	if cfg.PDFPath != "" {
		sinks = append(sinks, pdfGenerator)
	}

	return &Pipeline{
		RunAudit: appaudit.NewRunAuditUseCase(store, store, log, sinks...),
		Renderers: map[string]appaudit.ReportRenderer{
			store.Extension():        store,
			xlsxExporter.Extension(): xlsxExporter,
			pdfGenerator.Extension(): pdfGenerator,
		},
	}, nil
}
