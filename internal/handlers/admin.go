package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/LuisMD0/ProyectoAsist/internal/registro"
	"github.com/LuisMD0/ProyectoAsist/internal/repository"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	Servicio   *registro.Servicio
	ParamsRepo *repository.ParamsRepository
}

func NewAdminHandler(servicio *registro.Servicio, paramsRepo *repository.ParamsRepository) *AdminHandler {
	return &AdminHandler{Servicio: servicio, ParamsRepo: paramsRepo}
}

func (h *AdminHandler) ShowConfig(c *gin.Context) {
	profesores, err := h.ParamsRepo.GetAllProfesores()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error leyendo Profesores")
		return
	}

	materias, err := h.ParamsRepo.GetAllMaterias()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error leyendo Materias")
		return
	}

	carreras, err := h.ParamsRepo.GetAllCarreras()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error leyendo Carreras")
		return
	}

	asignaciones, err := h.ParamsRepo.GetAllAsignaciones()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error leyendo Asignaciones")
		return
	}

	totalRegistros, _ := h.Servicio.Repo.Count()

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"profesores":     profesores,
		"materias":       materias,
		"carreras":       carreras,
		"asignaciones":   asignaciones,
		"totalRegistros": totalRegistros,
	})
}

func (h *AdminHandler) StoreProfesor(c *gin.Context) {
	nombre := c.PostForm("nombre")
	if nombre != "" {
		h.ParamsRepo.CreateProfesor(nombre)
	}
	c.Redirect(http.StatusFound, "/admin")
}

func (h *AdminHandler) StoreMateria(c *gin.Context) {
	nombre := c.PostForm("nombre")
	if nombre != "" {
		h.ParamsRepo.CreateMateria(nombre)
	}
	c.Redirect(http.StatusFound, "/admin")
}

func (h *AdminHandler) StoreCarrera(c *gin.Context) {
	nombre := c.PostForm("nombre")
	if nombre != "" {
		h.ParamsRepo.CreateCarrera(nombre)
	}
	c.Redirect(http.StatusFound, "/admin")
}

func (h *AdminHandler) StoreAsignacion(c *gin.Context) {
	profesorID, _ := strconv.Atoi(c.PostForm("profesor_id"))
	materiaID, _ := strconv.Atoi(c.PostForm("materia_id"))
	if err := h.ParamsRepo.CreateAsignacion(profesorID, materiaID); err != nil {
		c.String(http.StatusInternalServerError, "Error al crear asignación")
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

func (h *AdminHandler) DeleteAsignacion(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.ParamsRepo.DeleteAsignacion(id); err != nil {
		c.String(http.StatusInternalServerError, "Error al eliminar asignación")
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

// BorrarRegistros elimina toda la tabla de asistencia. La confirmación vive
// en el formulario; acá ya no se pregunta.
func (h *AdminHandler) BorrarRegistros(c *gin.Context) {
	if err := h.Servicio.EliminarRegistros(); err != nil {
		log.Printf("DB ERROR: %v", err)
		c.String(http.StatusInternalServerError, "Error eliminando registros")
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

// --- Generic / Specific Param Management ---

func (h *AdminHandler) ShowEditParam(c *gin.Context) {
	paramType := c.Param("type")
	id, _ := strconv.Atoi(c.Param("id"))

	var data gin.H
	var err error

	switch paramType {
	case "profesor":
		p, e := h.ParamsRepo.GetProfesor(id)
		err = e
		data = gin.H{"type": "profesor", "id": p.ID, "nombre": p.Nombre}
	case "materia":
		m, e := h.ParamsRepo.GetMateria(id)
		err = e
		data = gin.H{"type": "materia", "id": m.ID, "nombre": m.Nombre}
	case "carrera":
		ca, e := h.ParamsRepo.GetCarrera(id)
		err = e
		data = gin.H{"type": "carrera", "id": ca.ID, "nombre": ca.Nombre}
	default:
		c.String(http.StatusBadRequest, "Tipo inválido")
		return
	}

	if err != nil {
		c.String(http.StatusNotFound, "Elemento no encontrado")
		return
	}

	c.HTML(http.StatusOK, "admin_edit_param.html", data)
}

func (h *AdminHandler) UpdateParam(c *gin.Context) {
	paramType := c.Param("type")
	id, _ := strconv.Atoi(c.Param("id"))
	nombre := c.PostForm("nombre")

	var err error
	switch paramType {
	case "profesor":
		err = h.ParamsRepo.UpdateProfesor(id, nombre)
	case "materia":
		err = h.ParamsRepo.UpdateMateria(id, nombre)
	case "carrera":
		err = h.ParamsRepo.UpdateCarrera(id, nombre)
	default:
		c.String(http.StatusBadRequest, "Tipo inválido")
		return
	}

	if err != nil {
		c.String(http.StatusInternalServerError, "Error actualizando")
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}

func (h *AdminHandler) DeleteParam(c *gin.Context) {
	paramType := c.Param("type")
	id, _ := strconv.Atoi(c.Param("id"))

	var err error
	switch paramType {
	case "profesor":
		err = h.ParamsRepo.DeleteProfesor(id)
	case "materia":
		err = h.ParamsRepo.DeleteMateria(id)
	case "carrera":
		err = h.ParamsRepo.DeleteCarrera(id)
	default:
		c.String(http.StatusBadRequest, "Tipo inválido")
		return
	}

	if err != nil {
		c.String(http.StatusInternalServerError, "Error eliminando")
		return
	}
	c.Redirect(http.StatusFound, "/admin")
}
