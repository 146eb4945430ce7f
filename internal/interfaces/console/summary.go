// Package console imprime el resumen de una corrida para el operador.
package console

import (
	"fmt"
	"io"
	"text/tabwriter"

	appaudit "github.com/jhoicas/ghost-audit/internal/application/audit"
)

// PrintSummary escribe totales y la vista previa de todos los registros auditados (no solo los marcados).
func PrintSummary(w io.Writer, run *appaudit.Run) error {
	s := run.Result.Summary
	if _, err := fmt.Fprintf(w,
		"\n--- Pipeline Run Complete ---\nTotal Products Checked: %d\nGhosts Detected: %d\n\nResults Preview:\n",
		s.TotalChecked, s.GhostsDetected,
	); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Product_Name\tStock_On_Hand\tQuantity_Sold\tAudit_Status")
	for _, r := range run.Result.Records {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", r.ProductName, r.StockOnHand, r.QuantitySold, r.AuditStatus)
	}
	return tw.Flush()
}
