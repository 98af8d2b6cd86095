package models

// Asistencia representa un registro de asistencia de un profesor a una clase
type Asistencia struct {
	ID       int    `json:"id"`
	Profesor string `json:"profesor" form:"profesor"`
	Materia  string `json:"materia" form:"materia"`
	Carrera  string `json:"carrera" form:"carrera"` // vacío = sin carrera (NULL en la base)
	Fecha    string `json:"fecha" form:"fecha"`     // ISO-8601, Ej: "2024-01-10"
	Asistio  string `json:"asistio" form:"asistio"` // "Sí" o "No"
}

// Valores válidos para la columna asistio
const (
	AsistioSi = "Sí"
	AsistioNo = "No"
)
