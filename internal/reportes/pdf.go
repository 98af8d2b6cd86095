// Package reportes genera los documentos PDF de los reportes de asistencia.
package reportes

import (
	"errors"
	"strconv"

	"github.com/LuisMD0/ProyectoAsist/internal/models"

	"github.com/jung-kurt/gofpdf"
)

// ErrSinResultados indica que la consulta no devolvió filas: no se genera
// ningún documento.
var ErrSinResultados = errors.New("no hay registros para exportar")

// Encabezados de columna de cada modo de reporte
var (
	ColumnasProfesor = []string{"Carrera", "Profesor", "Materia", "Total Clases", "Clases Impartidas", "Clases Perdidas"}
	ColumnasMateria  = []string{"Carrera", "Profesor", "Materia", "Total Clases", "Asistencias", "Inasistencias"}
	ColumnasGlobal   = []string{"Carrera", "Total Clases", "Tasa de Cumplimiento (%)"}
)

// Ancho fijo de celda en mm. Sin auto-ajuste ni salto de línea: el texto
// largo se recorta contra el borde de la celda.
const anchoCelda = 60

// GenerarPDF escribe en destino un reporte apaisado con título centrado,
// subtítulo con el rango de fechas ("N/A" cuando no aplica, como en el
// reporte global), una fila de encabezados y una fila por resultado. Con la
// lista de filas vacía devuelve ErrSinResultados y no escribe nada.
func GenerarPDF(filas [][]string, columnas []string, fechaInicio, fechaFin, destino string) error {
	if len(filas) == 0 {
		return ErrSinResultados
	}
	if fechaInicio == "" {
		fechaInicio = "N/A"
	}
	if fechaFin == "" {
		fechaFin = "N/A"
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("") // los datos llevan acentos y "Sí"
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(200, 10, tr("Reporte de Asistencia"), "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(200, 10, tr("Fecha de Inicio: "+fechaInicio+"   Fecha de Fin: "+fechaFin), "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	for _, columna := range columnas {
		pdf.CellFormat(anchoCelda, 10, tr(columna), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, fila := range filas {
		for _, celda := range fila {
			pdf.CellFormat(anchoCelda, 10, tr(celda), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.OutputFileAndClose(destino)
}

// FilasDetalle convierte filas agregadas por profesor/materia a texto plano
// para el renderizador.
func FilasDetalle(filas []models.FilaReporte) [][]string {
	out := make([][]string, 0, len(filas))
	for _, f := range filas {
		out = append(out, []string{
			f.Carrera,
			f.Profesor,
			f.Materia,
			strconv.Itoa(f.TotalClases),
			strconv.Itoa(f.Impartidas),
			strconv.Itoa(f.Perdidas),
		})
	}
	return out
}

// FilasGlobal convierte la tabla de estadísticas por carrera a texto plano
func FilasGlobal(stats []models.EstadisticaCarrera) [][]string {
	out := make([][]string, 0, len(stats))
	for _, e := range stats {
		out = append(out, []string{
			e.Carrera,
			strconv.Itoa(e.TotalClases),
			strconv.FormatFloat(e.TasaCumplimiento, 'f', 2, 64),
		})
	}
	return out
}
