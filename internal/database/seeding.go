package database

import "database/sql"

func seedData(db *sql.DB) {
	// Check if data exists
	var count int
	db.QueryRow("SELECT COUNT(*) FROM profesores").Scan(&count)
	if count > 0 {
		return
	}

	// Seed Profesores
	profesores := []string{
		"Dr. Alejandro Vargas",
		"Mtra. Lucía Hernández",
		"Ing. Roberto Salinas",
		"Dra. Carmen Ibarra",
		"M.C. Jorge Luna",
	}
	for _, p := range profesores {
		db.Exec("INSERT INTO profesores (nombre) VALUES (?)", p)
	}

	// Seed Materias
	materias := []string{
		"Cálculo Diferencial",
		"Álgebra Lineal",
		"Programación Estructurada",
		"Física I",
		"Química General",
	}
	for _, m := range materias {
		db.Exec("INSERT INTO materias (nombre) VALUES (?)", m)
	}

	// Seed Carreras
	carreras := []string{
		"Ingeniería en Tecnología de Software",
		"Ingeniería Mecatrónica",
		"Ingeniería en Electrónica",
	}
	for _, c := range carreras {
		db.Exec("INSERT INTO carreras (nombre) VALUES (?)", c)
	}

	// Asignación profesor-materia (una materia por profesor)
	for i := 1; i <= 5; i++ {
		db.Exec("INSERT INTO profesor_materia (profesor_id, materia_id) VALUES (?, ?)", i, i)
	}
}
