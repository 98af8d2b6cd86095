package models

// FilaReporte es una fila agregada de los reportes por profesor o por materia
type FilaReporte struct {
	Carrera     string `json:"carrera"` // "" cuando el registro no tiene carrera
	Profesor    string `json:"profesor"`
	Materia     string `json:"materia"`
	TotalClases int    `json:"total_clases"`
	Impartidas  int    `json:"impartidas"`
	Perdidas    int    `json:"perdidas"`
}

// EstadisticaCarrera es una fila del reporte global por carrera
type EstadisticaCarrera struct {
	Carrera          string  `json:"carrera"`
	TotalClases      int     `json:"total_clases"`
	TasaCumplimiento float64 `json:"tasa_cumplimiento"` // porcentaje, 2 decimales
}
