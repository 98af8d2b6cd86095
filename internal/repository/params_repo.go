package repository

import (
	"database/sql"

	"github.com/LuisMD0/ProyectoAsist/internal/models"

	_ "github.com/mattn/go-sqlite3"
)

type ParamsRepository struct {
	DB *sql.DB
}

func NewParamsRepository(db *sql.DB) *ParamsRepository {
	return &ParamsRepository{DB: db}
}

// CargarRoster lee profesores, materias, carreras y la asignación
// profesor->materia en una sola pasada. Es una foto de inicio de sesión: no
// observa cambios posteriores en las tablas de referencia. Si la tabla de
// asignación tiene más de una fila para un profesor, gana la última.
func (r *ParamsRepository) CargarRoster() (models.Roster, error) {
	roster := models.Roster{Asignacion: make(map[string]string)}

	rows, err := r.DB.Query(`
		SELECT profesores.nombre, materias.nombre
		FROM profesor_materia
		JOIN profesores ON profesor_materia.profesor_id = profesores.id
		JOIN materias ON profesor_materia.materia_id = materias.id
		ORDER BY profesor_materia.id ASC
	`)
	if err != nil {
		return roster, err
	}
	defer rows.Close()

	for rows.Next() {
		var profesor, materia string
		if err := rows.Scan(&profesor, &materia); err != nil {
			return roster, err
		}
		if _, visto := roster.Asignacion[profesor]; !visto {
			roster.Profesores = append(roster.Profesores, profesor)
		}
		roster.Asignacion[profesor] = materia
	}
	if err := rows.Err(); err != nil {
		return roster, err
	}

	if roster.Materias, err = r.nombres("materias"); err != nil {
		return roster, err
	}
	if roster.Carreras, err = r.nombres("carreras"); err != nil {
		return roster, err
	}
	return roster, nil
}

func (r *ParamsRepository) nombres(tabla string) ([]string, error) {
	rows, err := r.DB.Query("SELECT nombre FROM " + tabla)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var nombres []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		nombres = append(nombres, n)
	}
	return nombres, rows.Err()
}

func (r *ParamsRepository) GetAllProfesores() ([]models.Profesor, error) {
	rows, err := r.DB.Query("SELECT id, nombre FROM profesores")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profesores []models.Profesor
	for rows.Next() {
		var p models.Profesor
		if err := rows.Scan(&p.ID, &p.Nombre); err != nil {
			return nil, err
		}
		profesores = append(profesores, p)
	}
	return profesores, nil
}

func (r *ParamsRepository) GetAllMaterias() ([]models.Materia, error) {
	rows, err := r.DB.Query("SELECT id, nombre FROM materias")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var materias []models.Materia
	for rows.Next() {
		var m models.Materia
		if err := rows.Scan(&m.ID, &m.Nombre); err != nil {
			return nil, err
		}
		materias = append(materias, m)
	}
	return materias, nil
}

func (r *ParamsRepository) GetAllCarreras() ([]models.Carrera, error) {
	rows, err := r.DB.Query("SELECT id, nombre FROM carreras")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var carreras []models.Carrera
	for rows.Next() {
		var c models.Carrera
		if err := rows.Scan(&c.ID, &c.Nombre); err != nil {
			return nil, err
		}
		carreras = append(carreras, c)
	}
	return carreras, nil
}

func (r *ParamsRepository) GetAllAsignaciones() ([]models.Asignacion, error) {
	rows, err := r.DB.Query(`
		SELECT pm.id, pm.profesor_id, pm.materia_id, p.nombre, m.nombre
		FROM profesor_materia pm
		JOIN profesores p ON pm.profesor_id = p.id
		JOIN materias m ON pm.materia_id = m.id
		ORDER BY pm.id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var asignaciones []models.Asignacion
	for rows.Next() {
		var a models.Asignacion
		if err := rows.Scan(&a.ID, &a.ProfesorID, &a.MateriaID, &a.Profesor, &a.Materia); err != nil {
			return nil, err
		}
		asignaciones = append(asignaciones, a)
	}
	return asignaciones, nil
}

func (r *ParamsRepository) CreateProfesor(nombre string) error {
	_, err := r.DB.Exec("INSERT INTO profesores (nombre) VALUES (?)", nombre)
	return err
}

func (r *ParamsRepository) CreateMateria(nombre string) error {
	_, err := r.DB.Exec("INSERT INTO materias (nombre) VALUES (?)", nombre)
	return err
}

func (r *ParamsRepository) CreateCarrera(nombre string) error {
	_, err := r.DB.Exec("INSERT INTO carreras (nombre) VALUES (?)", nombre)
	return err
}

func (r *ParamsRepository) CreateAsignacion(profesorID, materiaID int) error {
	_, err := r.DB.Exec("INSERT INTO profesor_materia (profesor_id, materia_id) VALUES (?, ?)", profesorID, materiaID)
	return err
}

// --- CRUD Operations ---

// Profesor
func (r *ParamsRepository) GetProfesor(id int) (models.Profesor, error) {
	var p models.Profesor
	err := r.DB.QueryRow("SELECT id, nombre FROM profesores WHERE id = ?", id).Scan(&p.ID, &p.Nombre)
	return p, err
}
func (r *ParamsRepository) UpdateProfesor(id int, nombre string) error {
	_, err := r.DB.Exec("UPDATE profesores SET nombre = ? WHERE id = ?", nombre, id)
	return err
}
func (r *ParamsRepository) DeleteProfesor(id int) error {
	_, err := r.DB.Exec("DELETE FROM profesores WHERE id = ?", id)
	return err
}

// Materia
func (r *ParamsRepository) GetMateria(id int) (models.Materia, error) {
	var m models.Materia
	err := r.DB.QueryRow("SELECT id, nombre FROM materias WHERE id = ?", id).Scan(&m.ID, &m.Nombre)
	return m, err
}
func (r *ParamsRepository) UpdateMateria(id int, nombre string) error {
	_, err := r.DB.Exec("UPDATE materias SET nombre = ? WHERE id = ?", nombre, id)
	return err
}
func (r *ParamsRepository) DeleteMateria(id int) error {
	_, err := r.DB.Exec("DELETE FROM materias WHERE id = ?", id)
	return err
}

// Carrera
func (r *ParamsRepository) GetCarrera(id int) (models.Carrera, error) {
	var c models.Carrera
	err := r.DB.QueryRow("SELECT id, nombre FROM carreras WHERE id = ?", id).Scan(&c.ID, &c.Nombre)
	return c, err
}
func (r *ParamsRepository) UpdateCarrera(id int, nombre string) error {
	_, err := r.DB.Exec("UPDATE carreras SET nombre = ? WHERE id = ?", nombre, id)
	return err
}
func (r *ParamsRepository) DeleteCarrera(id int) error {
	_, err := r.DB.Exec("DELETE FROM carreras WHERE id = ?", id)
	return err
}

// Asignación
func (r *ParamsRepository) DeleteAsignacion(id int) error {
	_, err := r.DB.Exec("DELETE FROM profesor_materia WHERE id = ?", id)
	return err
}
