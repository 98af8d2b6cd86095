// Package registro valida y persiste la asistencia de profesores contra la
// foto del roster cargada al inicio de la sesión.
package registro

import (
	"errors"
	"fmt"
	"time"

	"github.com/LuisMD0/ProyectoAsist/internal/models"
	"github.com/LuisMD0/ProyectoAsist/internal/repository"

	"github.com/patrickmn/go-cache"
)

// OtroMaestro es la vía de escape para instructores no registrados: con este
// valor se omite por completo la validación contra el roster.
const OtroMaestro = "Otro maestro"

var (
	ErrProfesorDesconocido = errors.New("el profesor ingresado no está registrado en el sistema")
	ErrMateriaNoAsignada   = errors.New("el profesor no imparte la materia seleccionada")
)

const claveEstadisticas = "estadisticas_carrera"

// Servicio agrupa la conexión de la sesión: repositorio de asistencia, roster
// en memoria y un caché corto para la tabla de estadísticas globales.
type Servicio struct {
	Repo   *repository.AsistenciaRepository
	Roster models.Roster
	stats  *cache.Cache
}

func NewServicio(repo *repository.AsistenciaRepository, roster models.Roster) *Servicio {
	return &Servicio{
		Repo:   repo,
		Roster: roster,
		stats:  cache.New(5*time.Minute, 10*time.Minute),
	}
}

// Registrar valida y persiste un registro de asistencia.
//
// Reglas: si el profesor es OtroMaestro se acepta cualquier combinación;
// en otro caso el profesor debe existir en el roster y la materia debe ser
// exactamente la que tiene asignada (una materia por profesor). Ante un
// error de validación no se inserta nada.
func (s *Servicio) Registrar(profesor, materia, carrera, fecha string, asistio bool) error {
	if profesor != OtroMaestro {
		materiaAsignada, ok := s.Roster.Asignacion[profesor]
		if !ok {
			return ErrProfesorDesconocido
		}
		if materiaAsignada != materia {
			return fmt.Errorf("%w: %s no imparte '%s'", ErrMateriaNoAsignada, profesor, materia)
		}
	}

	asistioTxt := models.AsistioNo
	if asistio {
		asistioTxt = models.AsistioSi
	}

	err := s.Repo.Create(models.Asistencia{
		Profesor: profesor,
		Materia:  materia,
		Carrera:  carrera,
		Fecha:    fecha,
		Asistio:  asistioTxt,
	})
	if err != nil {
		return err
	}

	s.stats.Delete(claveEstadisticas)
	return nil
}

// EliminarRegistros borra todos los registros de asistencia. Irreversible;
// la confirmación es responsabilidad de la capa de presentación.
func (s *Servicio) EliminarRegistros() error {
	if err := s.Repo.DeleteAll(); err != nil {
		return err
	}
	s.stats.Delete(claveEstadisticas)
	return nil
}

// ReportePorProfesor devuelve las filas agregadas del profesor en el rango
// de fechas inclusivo [fechaInicio, fechaFin].
func (s *Servicio) ReportePorProfesor(profesor, fechaInicio, fechaFin string) ([]models.FilaReporte, error) {
	return s.Repo.QueryByProfesor(profesor, fechaInicio, fechaFin)
}

// ReportePorMateria devuelve las filas agregadas de la materia en el rango
// de fechas inclusivo.
func (s *Servicio) ReportePorMateria(materia, fechaInicio, fechaFin string) ([]models.FilaReporte, error) {
	return s.Repo.QueryByMateria(materia, fechaInicio, fechaFin)
}

// EstadisticasPorCarrera devuelve la tabla global por carrera. El resultado
// se cachea unos minutos para la vista en pantalla; cualquier escritura lo
// invalida.
func (s *Servicio) EstadisticasPorCarrera() ([]models.EstadisticaCarrera, error) {
	if v, found := s.stats.Get(claveEstadisticas); found {
		return v.([]models.EstadisticaCarrera), nil
	}

	stats, err := s.Repo.QueryGlobalPorCarrera()
	if err != nil {
		return nil, err
	}
	s.stats.Set(claveEstadisticas, stats, cache.DefaultExpiration)
	return stats, nil
}
