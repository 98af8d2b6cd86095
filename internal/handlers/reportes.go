package handlers

import (
	"errors"
	"log"
	"net/http"
	"path/filepath"

	"github.com/LuisMD0/ProyectoAsist/internal/models"
	"github.com/LuisMD0/ProyectoAsist/internal/registro"
	"github.com/LuisMD0/ProyectoAsist/internal/reportes"

	"github.com/gin-gonic/gin"
)

type ReportesHandler struct {
	Servicio  *registro.Servicio
	ReportDir string // destino de los PDF generados
}

func NewReportesHandler(servicio *registro.Servicio, reportDir string) *ReportesHandler {
	return &ReportesHandler{Servicio: servicio, ReportDir: reportDir}
}

func (h *ReportesHandler) datosPagina() gin.H {
	datos := gin.H{
		"profesores": append([]string{registro.OtroMaestro}, h.Servicio.Roster.Profesores...),
		"materias":   h.Servicio.Roster.Materias,
	}
	stats, err := h.Servicio.EstadisticasPorCarrera()
	if err != nil {
		log.Printf("Error leyendo estadísticas: %v", err)
	} else {
		datos["estadisticas"] = stats
	}
	return datos
}

func (h *ReportesHandler) ShowReportes(c *gin.Context) {
	c.HTML(http.StatusOK, "reportes.html", h.datosPagina())
}

// GenerarPorProfesor consulta el agregado del profesor en el rango pedido y
// descarga el PDF. Sin filas no se genera archivo.
func (h *ReportesHandler) GenerarPorProfesor(c *gin.Context) {
	profesor := c.PostForm("profesor")
	fechaInicio := c.PostForm("fecha_inicio")
	fechaFin := c.PostForm("fecha_fin")

	filas, err := h.Servicio.ReportePorProfesor(profesor, fechaInicio, fechaFin)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error leyendo DB")
		return
	}

	h.exportarDetalle(c, filas, reportes.ColumnasProfesor, fechaInicio, fechaFin,
		"reporte_asistencia_profesor.pdf",
		"No se encontraron registros para el profesor seleccionado en el rango de fechas.")
}

// GenerarPorMateria es el mismo flujo filtrando por materia
func (h *ReportesHandler) GenerarPorMateria(c *gin.Context) {
	materia := c.PostForm("materia")
	fechaInicio := c.PostForm("fecha_inicio")
	fechaFin := c.PostForm("fecha_fin")

	filas, err := h.Servicio.ReportePorMateria(materia, fechaInicio, fechaFin)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error leyendo DB")
		return
	}

	h.exportarDetalle(c, filas, reportes.ColumnasMateria, fechaInicio, fechaFin,
		"reporte_asistencia_materia.pdf",
		"No se encontraron registros para la materia seleccionada en el rango de fechas.")
}

// GenerarGlobal exporta la tabla de estadísticas por carrera, sin rango de
// fechas (el subtítulo del PDF muestra "N/A").
func (h *ReportesHandler) GenerarGlobal(c *gin.Context) {
	stats, err := h.Servicio.EstadisticasPorCarrera()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error leyendo DB")
		return
	}

	destino := filepath.Join(h.ReportDir, "reporte_global_carrera.pdf")
	err = reportes.GenerarPDF(reportes.FilasGlobal(stats), reportes.ColumnasGlobal, "", "", destino)
	if errors.Is(err, reportes.ErrSinResultados) {
		h.avisoSinResultados(c, "No hay datos de estadísticas para generar el reporte.")
		return
	}
	if err != nil {
		log.Printf("Error generando PDF: %v", err)
		c.String(http.StatusInternalServerError, "Error generando PDF")
		return
	}
	c.FileAttachment(destino, "reporte_global_carrera.pdf")
}

func (h *ReportesHandler) exportarDetalle(c *gin.Context, filas []models.FilaReporte, columnas []string, fechaInicio, fechaFin, nombreArchivo, aviso string) {
	destino := filepath.Join(h.ReportDir, nombreArchivo)
	err := reportes.GenerarPDF(reportes.FilasDetalle(filas), columnas, fechaInicio, fechaFin, destino)
	if errors.Is(err, reportes.ErrSinResultados) {
		h.avisoSinResultados(c, aviso)
		return
	}
	if err != nil {
		log.Printf("Error generando PDF: %v", err)
		c.String(http.StatusInternalServerError, "Error generando PDF")
		return
	}
	c.FileAttachment(destino, nombreArchivo)
}

func (h *ReportesHandler) avisoSinResultados(c *gin.Context, aviso string) {
	datos := h.datosPagina()
	datos["aviso"] = aviso
	c.HTML(http.StatusOK, "reportes.html", datos)
}
