package registro

import (
	"database/sql"
	"testing"

	"github.com/LuisMD0/ProyectoAsist/internal/database"
	"github.com/LuisMD0/ProyectoAsist/internal/models"
	"github.com/LuisMD0/ProyectoAsist/internal/repository"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func setupServicio(t *testing.T) *Servicio {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.EnsureSchema(db))

	roster := models.Roster{
		Profesores: []string{"Dr. Smith", "Mtra. Lucía Hernández"},
		Materias:   []string{"Calculus", "Álgebra Lineal"},
		Carreras:   []string{"Ingeniería Mecatrónica"},
		Asignacion: map[string]string{
			"Dr. Smith":             "Calculus",
			"Mtra. Lucía Hernández": "Álgebra Lineal",
		},
	}
	return NewServicio(repository.NewAsistenciaRepository(db), roster)
}

func TestRegistrarValido(t *testing.T) {
	s := setupServicio(t)

	require.NoError(t, s.Registrar("Dr. Smith", "Calculus", "", "2024-01-10", true))

	filas, err := s.ReportePorProfesor("Dr. Smith", "2024-01-01", "2024-01-31")
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
}

func TestRegistrarProfesorDesconocido(t *testing.T) {
	s := setupServicio(t)

	err := s.Registrar("Dr. Nadie", "Calculus", "", "2024-01-10", true)
	require.ErrorIs(t, err, ErrProfesorDesconocido)

	// Nada quedó insertado
	n, err := s.Repo.Count()
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestRegistrarMateriaNoAsignada(t *testing.T) {
	s := setupServicio(t)

	for _, materia := range []string{"Álgebra Lineal", "Física I", ""} {
		err := s.Registrar("Dr. Smith", materia, "", "2024-01-10", true)
		require.ErrorIs(t, err, ErrMateriaNoAsignada)
	}

	n, err := s.Repo.Count()
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestRegistrarOtroMaestroSinValidacion(t *testing.T) {
	s := setupServicio(t)

	// El centinela acepta cualquier combinación, exista o no en el roster
	require.NoError(t, s.Registrar(OtroMaestro, "Materia Inventada", "Carrera Inventada", "2024-01-10", false))

	filas, err := s.ReportePorProfesor(OtroMaestro, "2024-01-10", "2024-01-10")
	require.NoError(t, err)
	require.Len(t, filas, 1)
	require.Equal(t, 1, filas[0].Perdidas)
	require.Equal(t, 0, filas[0].Impartidas)
}

func TestRegistrarGuardaSiNo(t *testing.T) {
	s := setupServicio(t)

	require.NoError(t, s.Registrar("Dr. Smith", "Calculus", "", "2024-01-10", true))
	require.NoError(t, s.Registrar("Dr. Smith", "Calculus", "", "2024-01-11", false))

	filas, err := s.ReportePorProfesor("Dr. Smith", "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	require.Len(t, filas, 1)
	require.Equal(t, 2, filas[0].TotalClases)
	require.Equal(t, 1, filas[0].Impartidas)
	require.Equal(t, 1, filas[0].Perdidas)
}

func TestEliminarRegistros(t *testing.T) {
	s := setupServicio(t)

	require.NoError(t, s.Registrar("Dr. Smith", "Calculus", "Ingeniería Mecatrónica", "2024-01-10", true))
	require.NoError(t, s.EliminarRegistros())

	filas, err := s.ReportePorProfesor("Dr. Smith", "2024-01-01", "2024-12-31")
	require.NoError(t, err)
	require.Empty(t, filas)

	stats, err := s.EstadisticasPorCarrera()
	require.NoError(t, err)
	require.Empty(t, stats)
}

func TestEstadisticasCacheSeInvalida(t *testing.T) {
	s := setupServicio(t)

	require.NoError(t, s.Registrar("Dr. Smith", "Calculus", "Ingeniería Mecatrónica", "2024-01-10", true))

	stats, err := s.EstadisticasPorCarrera()
	require.NoError(t, err)
	require.Len(t, stats, 1)
	require.Equal(t, 1, stats[0].TotalClases)
	require.InDelta(t, 100.0, stats[0].TasaCumplimiento, 0.001)

	// Una escritura posterior no puede servirse del caché
	require.NoError(t, s.Registrar("Dr. Smith", "Calculus", "Ingeniería Mecatrónica", "2024-01-11", false))

	stats, err = s.EstadisticasPorCarrera()
	require.NoError(t, err)
	require.Len(t, stats, 1)
	require.Equal(t, 2, stats[0].TotalClases)
	require.InDelta(t, 50.0, stats[0].TasaCumplimiento, 0.001)
}
