package database

import (
	"database/sql"
	"log"

	_ "github.com/mattn/go-sqlite3"
)

// InitDB inicializa la conexión a la base de datos y crea las tablas si no existen
func InitDB(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err = EnsureSchema(db); err != nil {
		return nil, err
	}

	// Seed data (Simple check to see if we need to seed)
	seedData(db)

	return db, nil
}

// EnsureSchema crea las tablas de referencia y la tabla asistencia.
// No tiene efecto si ya existen.
func EnsureSchema(db *sql.DB) error {
	sqlStmt := `
	CREATE TABLE IF NOT EXISTS profesores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nombre TEXT
	);
	CREATE TABLE IF NOT EXISTS materias (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nombre TEXT
	);
	CREATE TABLE IF NOT EXISTS carreras (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nombre TEXT
	);
	CREATE TABLE IF NOT EXISTS profesor_materia (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		profesor_id INTEGER,
		materia_id INTEGER,
		FOREIGN KEY(profesor_id) REFERENCES profesores(id),
		FOREIGN KEY(materia_id) REFERENCES materias(id)
	);
	CREATE TABLE IF NOT EXISTS asistencia (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		profesor TEXT,
		materia TEXT,
		carrera TEXT,
		fecha TEXT,
		asistio TEXT
	);
	`
	if _, err := db.Exec(sqlStmt); err != nil {
		log.Printf("%q: %s\n", err, sqlStmt)
		return err
	}
	return nil
}
