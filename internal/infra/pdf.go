package infra

// pdf.go — Financial report generation using go-pdf/fpdf.
// Produces an A4 summary for one project: header, estado and dates, the
// derived financial figures, and a table of its partidas with progress.
// The output file is saved to storagePath/reporte_proyecto_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Albertgui/teg-backend/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateReporteProyecto writes the PDF report for an owned project.
// Returns the absolute path to the generated file.
func GenerateReporteProyecto(p *model.Proyecto, resumen model.ResumenFinanciero, partidas []model.Partida, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("reporte_proyecto_%d.pdf", p.ID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Reporte de Proyecto", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, time.Now().Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Datos generales ──────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 7, p.Nombre, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Estado: "+p.Estado, "", 1, "L", false, 0, "")
	if p.Ubicacion != nil {
		pdf.CellFormat(contentW, 6, "Ubicacion: "+*p.Ubicacion, "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Inicio: %s    Fin estimado: %s",
		fechaReporte(p.FechaInicio), fechaReporte(p.FechaFinalEstimada)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// ── Resumen financiero ───────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 6, "Resumen financiero", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	filas := [][2]string{
		{"Monto total de operacion", p.MontoTotalOperacion.StringFixed(2)},
		{"Presupuesto planificado", p.PresupuestoPlanificado.StringFixed(2)},
		{"Presupuesto usado", resumen.PresupuestoUsado.StringFixed(2)},
		{"Ganancia actual", resumen.GananciaActual.StringFixed(2)},
		{"Porcentaje de margen", resumen.PorcentajeMargen.StringFixed(2) + " %"},
		{"Avance fisico", resumen.PorcentajeAvance.StringFixed(2) + " %"},
	}
	for _, fila := range filas {
		pdf.CellFormat(contentW*0.6, 6, fila[0], "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.4, 6, fila[1], "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	// ── Partidas ─────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Partidas (%d)", len(partidas)), "B", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW*0.45, 6, "Descripcion", "1", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.20, 6, "Monto", "1", 0, "R", false, 0, "")
	pdf.CellFormat(contentW*0.15, 6, "Avance", "1", 0, "R", false, 0, "")
	pdf.CellFormat(contentW*0.20, 6, "Estatus", "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for i := range partidas {
		pa := &partidas[i]
		descripcion := pa.Descripcion
		if pa.NombrePartida != nil && *pa.NombrePartida != "" {
			descripcion = *pa.NombrePartida
		}
		pdf.CellFormat(contentW*0.45, 6, descripcion, "1", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.20, 6, pa.MontoTotal.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(contentW*0.15, 6, fmt.Sprintf("%d %%", pa.PorcentajeAvance), "1", 0, "R", false, 0, "")
		pdf.CellFormat(contentW*0.20, 6, pa.Estatus(), "1", 1, "C", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", filePath, err)
	}
	return filePath, nil
}

func fechaReporte(t *time.Time) string {
	if t == nil {
		return "sin fecha"
	}
	return t.Format("02/01/2006")
}
