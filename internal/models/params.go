package models

type Profesor struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

type Materia struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

type Carrera struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// Asignacion vincula un profesor con la materia que imparte
type Asignacion struct {
	ID         int    `json:"id"`
	ProfesorID int    `json:"profesor_id"`
	MateriaID  int    `json:"materia_id"`
	Profesor   string `json:"profesor"` // Populated via join
	Materia    string `json:"materia"`  // Populated via join
}

// Roster es la foto en memoria de los datos de referencia, cargada una vez
// por sesión. Cambios posteriores en las tablas no se observan.
type Roster struct {
	Profesores []string
	Materias   []string
	Carreras   []string
	Asignacion map[string]string // profesor -> materia que imparte
}
