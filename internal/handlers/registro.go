package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/LuisMD0/ProyectoAsist/internal/models"
	"github.com/LuisMD0/ProyectoAsist/internal/registro"

	"github.com/gin-gonic/gin"
)

type RegistroHandler struct {
	Servicio *registro.Servicio
}

func NewRegistroHandler(servicio *registro.Servicio) *RegistroHandler {
	return &RegistroHandler{Servicio: servicio}
}

func (h *RegistroHandler) datosFormulario() gin.H {
	return gin.H{
		"profesores": append([]string{registro.OtroMaestro}, h.Servicio.Roster.Profesores...),
		"materias":   h.Servicio.Roster.Materias,
		"carreras":   h.Servicio.Roster.Carreras,
		"hoy":        time.Now().Format("2006-01-02"),
	}
}

func (h *RegistroHandler) ShowForm(c *gin.Context) {
	c.HTML(http.StatusOK, "registro.html", h.datosFormulario())
}

func (h *RegistroHandler) Registrar(c *gin.Context) {
	profesor := c.PostForm("profesor")
	materia := c.PostForm("materia")
	carrera := c.PostForm("carrera")
	if carrera == "No Aplica" {
		carrera = ""
	}
	fecha := c.PostForm("fecha")
	if fecha == "" {
		fecha = time.Now().Format("2006-01-02")
	}
	asistio := c.PostForm("asistio") == models.AsistioSi

	datos := h.datosFormulario()
	if err := h.Servicio.Registrar(profesor, materia, carrera, fecha, asistio); err != nil {
		estado := http.StatusInternalServerError
		if errors.Is(err, registro.ErrProfesorDesconocido) || errors.Is(err, registro.ErrMateriaNoAsignada) {
			estado = http.StatusBadRequest
		}
		datos["error"] = err.Error()
		c.HTML(estado, "registro.html", datos)
		return
	}

	datos["mensaje"] = "¡Asistencia registrada exitosamente!"
	c.HTML(http.StatusOK, "registro.html", datos)
}
