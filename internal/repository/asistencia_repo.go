package repository

import (
	"database/sql"

	"github.com/LuisMD0/ProyectoAsist/internal/models"
)

type AsistenciaRepository struct {
	DB *sql.DB
}

func NewAsistenciaRepository(db *sql.DB) *AsistenciaRepository {
	return &AsistenciaRepository{DB: db}
}

// Create inserta un registro de asistencia. El id lo asigna la base y no se
// reutiliza nunca; el registro es inmutable después del insert.
func (r *AsistenciaRepository) Create(a models.Asistencia) error {
	stmt, err := r.DB.Prepare("INSERT INTO asistencia (profesor, materia, carrera, fecha, asistio) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	// Carrera vacía se guarda como NULL, igual que un registro sin carrera
	carrera := sql.NullString{String: a.Carrera, Valid: a.Carrera != ""}
	_, err = stmt.Exec(a.Profesor, a.Materia, carrera, a.Fecha, a.Asistio)
	return err
}

// DeleteAll elimina todos los registros de asistencia. Irreversible.
func (r *AsistenciaRepository) DeleteAll() error {
	_, err := r.DB.Exec("DELETE FROM asistencia")
	return err
}

// Count devuelve la cantidad total de registros de asistencia
func (r *AsistenciaRepository) Count() (int, error) {
	var n int
	err := r.DB.QueryRow("SELECT COUNT(*) FROM asistencia").Scan(&n)
	return n, err
}

// QueryByProfesor agrupa por (carrera, profesor, materia) los registros del
// profesor dentro del rango de fechas inclusivo. Las fechas son texto
// ISO-8601, así que BETWEEN compara lexicográficamente.
func (r *AsistenciaRepository) QueryByProfesor(profesor, fechaInicio, fechaFin string) ([]models.FilaReporte, error) {
	sqlQuery := `
		SELECT COALESCE(carrera, '') AS carrera, profesor, materia,
			COUNT(*) AS total_clases,
			SUM(CASE WHEN asistio = 'Sí' THEN 1 ELSE 0 END) AS clases_impartidas,
			SUM(CASE WHEN asistio = 'No' THEN 1 ELSE 0 END) AS clases_perdidas
		FROM asistencia
		WHERE profesor = ? AND fecha BETWEEN ? AND ?
		GROUP BY carrera, profesor, materia
	`
	return r.queryFilas(sqlQuery, profesor, fechaInicio, fechaFin)
}

// QueryByMateria es el mismo agregado filtrando por materia en vez de profesor
func (r *AsistenciaRepository) QueryByMateria(materia, fechaInicio, fechaFin string) ([]models.FilaReporte, error) {
	sqlQuery := `
		SELECT COALESCE(carrera, '') AS carrera, profesor, materia,
			COUNT(*) AS total_clases,
			SUM(CASE WHEN asistio = 'Sí' THEN 1 ELSE 0 END) AS asistencias,
			SUM(CASE WHEN asistio = 'No' THEN 1 ELSE 0 END) AS inasistencias
		FROM asistencia
		WHERE materia = ? AND fecha BETWEEN ? AND ?
		GROUP BY carrera, profesor, materia
	`
	return r.queryFilas(sqlQuery, materia, fechaInicio, fechaFin)
}

func (r *AsistenciaRepository) queryFilas(sqlQuery string, args ...interface{}) ([]models.FilaReporte, error) {
	rows, err := r.DB.Query(sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var filas []models.FilaReporte
	for rows.Next() {
		var f models.FilaReporte
		if err := rows.Scan(&f.Carrera, &f.Profesor, &f.Materia, &f.TotalClases, &f.Impartidas, &f.Perdidas); err != nil {
			return nil, err
		}
		filas = append(filas, f)
	}
	return filas, rows.Err()
}

// QueryGlobalPorCarrera calcula, por carrera, el total de clases y la tasa de
// cumplimiento redondeada a dos decimales. Sin filtro de fechas. Si no hay
// registros devuelve una lista vacía, no un error.
func (r *AsistenciaRepository) QueryGlobalPorCarrera() ([]models.EstadisticaCarrera, error) {
	sqlQuery := `
		SELECT COALESCE(carrera, '') AS carrera,
			COUNT(*) AS total_clases,
			ROUND(SUM(CASE WHEN asistio = 'Sí' THEN 1 ELSE 0 END) * 100.0 / COUNT(*), 2) AS tasa_cumplimiento
		FROM asistencia
		GROUP BY carrera
	`
	rows, err := r.DB.Query(sqlQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []models.EstadisticaCarrera
	for rows.Next() {
		var e models.EstadisticaCarrera
		if err := rows.Scan(&e.Carrera, &e.TotalClases, &e.TasaCumplimiento); err != nil {
			return nil, err
		}
		stats = append(stats, e)
	}
	return stats, rows.Err()
}
