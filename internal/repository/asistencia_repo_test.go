package repository

import (
	"database/sql"
	"testing"

	"github.com/LuisMD0/ProyectoAsist/internal/database"
	"github.com/LuisMD0/ProyectoAsist/internal/models"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.EnsureSchema(db))
	return db
}

func registrar(t *testing.T, repo *AsistenciaRepository, profesor, materia, carrera, fecha, asistio string) {
	t.Helper()
	err := repo.Create(models.Asistencia{
		Profesor: profesor,
		Materia:  materia,
		Carrera:  carrera,
		Fecha:    fecha,
		Asistio:  asistio,
	})
	require.NoError(t, err)
}

func TestQueryByProfesor(t *testing.T) {
	repo := NewAsistenciaRepository(setupDB(t))

	registrar(t, repo, "Dr. Smith", "Calculus", "", "2024-01-10", models.AsistioSi)

	filas, err := repo.QueryByProfesor("Dr. Smith", "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	require.Len(t, filas, 1)
	require.Equal(t, models.FilaReporte{
		Carrera:     "",
		Profesor:    "Dr. Smith",
		Materia:     "Calculus",
		TotalClases: 1,
		Impartidas:  1,
		Perdidas:    0,
	}, filas[0])

	// Un registro más del mismo día solo debe mover el contador de asistencias
	registrar(t, repo, "Dr. Smith", "Calculus", "", "2024-01-10", models.AsistioSi)

	filas, err = repo.QueryByProfesor("Dr. Smith", "2024-01-10", "2024-01-10")
	require.NoError(t, err)
	require.Len(t, filas, 1)
	require.Equal(t, 2, filas[0].TotalClases)
	require.Equal(t, 2, filas[0].Impartidas)
	require.Equal(t, 0, filas[0].Perdidas)
}

func TestQueryByProfesorRangoInclusivo(t *testing.T) {
	repo := NewAsistenciaRepository(setupDB(t))

	registrar(t, repo, "Mtra. Lucía Hernández", "Álgebra Lineal", "", "2024-03-01", models.AsistioSi)
	registrar(t, repo, "Mtra. Lucía Hernández", "Álgebra Lineal", "", "2024-03-15", models.AsistioNo)
	registrar(t, repo, "Mtra. Lucía Hernández", "Álgebra Lineal", "", "2024-03-31", models.AsistioSi)
	registrar(t, repo, "Mtra. Lucía Hernández", "Álgebra Lineal", "", "2024-04-01", models.AsistioSi)

	// Ambos extremos del rango cuentan; el 1 de abril queda afuera
	filas, err := repo.QueryByProfesor("Mtra. Lucía Hernández", "2024-03-01", "2024-03-31")
	require.NoError(t, err)
	require.Len(t, filas, 1)
	require.Equal(t, 3, filas[0].TotalClases)
	require.Equal(t, 2, filas[0].Impartidas)
	require.Equal(t, 1, filas[0].Perdidas)
}

func TestQueryByProfesorAgrupaPorCarrera(t *testing.T) {
	repo := NewAsistenciaRepository(setupDB(t))

	registrar(t, repo, "Ing. Roberto Salinas", "Programación Estructurada", "Ingeniería en Tecnología de Software", "2024-02-05", models.AsistioSi)
	registrar(t, repo, "Ing. Roberto Salinas", "Programación Estructurada", "Ingeniería Mecatrónica", "2024-02-05", models.AsistioNo)
	registrar(t, repo, "Ing. Roberto Salinas", "Programación Estructurada", "", "2024-02-05", models.AsistioSi)

	filas, err := repo.QueryByProfesor("Ing. Roberto Salinas", "2024-02-01", "2024-02-28")
	require.NoError(t, err)
	require.Len(t, filas, 3) // una fila por carrera, incluida la vacía
}

func TestQueryByMateria(t *testing.T) {
	repo := NewAsistenciaRepository(setupDB(t))

	registrar(t, repo, "Dr. Alejandro Vargas", "Cálculo Diferencial", "Ingeniería Mecatrónica", "2024-05-02", models.AsistioSi)
	registrar(t, repo, "Otro maestro", "Cálculo Diferencial", "Ingeniería Mecatrónica", "2024-05-03", models.AsistioNo)
	registrar(t, repo, "Dr. Alejandro Vargas", "Física I", "Ingeniería Mecatrónica", "2024-05-02", models.AsistioSi)

	filas, err := repo.QueryByMateria("Cálculo Diferencial", "2024-05-01", "2024-05-31")
	require.NoError(t, err)
	require.Len(t, filas, 2) // un grupo por profesor
	for _, f := range filas {
		require.Equal(t, "Cálculo Diferencial", f.Materia)
	}
}

func TestQueryGlobalPorCarrera(t *testing.T) {
	repo := NewAsistenciaRepository(setupDB(t))

	// 3 clases, 2 impartidas => 66.67%
	registrar(t, repo, "Dr. Alejandro Vargas", "Cálculo Diferencial", "Ingeniería Mecatrónica", "2024-05-02", models.AsistioSi)
	registrar(t, repo, "Dr. Alejandro Vargas", "Cálculo Diferencial", "Ingeniería Mecatrónica", "2024-05-03", models.AsistioSi)
	registrar(t, repo, "Dr. Alejandro Vargas", "Cálculo Diferencial", "Ingeniería Mecatrónica", "2024-05-04", models.AsistioNo)

	stats, err := repo.QueryGlobalPorCarrera()
	require.NoError(t, err)
	require.Len(t, stats, 1)
	require.Equal(t, "Ingeniería Mecatrónica", stats[0].Carrera)
	require.Equal(t, 3, stats[0].TotalClases)
	require.InDelta(t, 66.67, stats[0].TasaCumplimiento, 0.001)
}

func TestQueryGlobalSinRegistros(t *testing.T) {
	repo := NewAsistenciaRepository(setupDB(t))

	stats, err := repo.QueryGlobalPorCarrera()
	require.NoError(t, err)
	require.Empty(t, stats) // resultado vacío, no error
}

func TestDeleteAll(t *testing.T) {
	repo := NewAsistenciaRepository(setupDB(t))

	registrar(t, repo, "Dr. Alejandro Vargas", "Cálculo Diferencial", "", "2024-05-02", models.AsistioSi)
	registrar(t, repo, "Mtra. Lucía Hernández", "Álgebra Lineal", "", "2024-05-02", models.AsistioNo)

	require.NoError(t, repo.DeleteAll())

	filas, err := repo.QueryByProfesor("Dr. Alejandro Vargas", "2024-01-01", "2024-12-31")
	require.NoError(t, err)
	require.Empty(t, filas)

	filas, err = repo.QueryByMateria("Álgebra Lineal", "2024-01-01", "2024-12-31")
	require.NoError(t, err)
	require.Empty(t, filas)

	stats, err := repo.QueryGlobalPorCarrera()
	require.NoError(t, err)
	require.Empty(t, stats)

	n, err := repo.Count()
	require.NoError(t, err)
	require.Zero(t, n)
}
