package reportes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/LuisMD0/ProyectoAsist/internal/models"

	"github.com/stretchr/testify/require"
)

func TestGenerarPDF(t *testing.T) {
	destino := filepath.Join(t.TempDir(), "reporte_asistencia_profesor.pdf")

	filas := [][]string{
		{"Ingeniería Mecatrónica", "Dr. Alejandro Vargas", "Cálculo Diferencial", "3", "2", "1"},
	}
	err := GenerarPDF(filas, ColumnasProfesor, "2024-01-01", "2024-01-31", destino)
	require.NoError(t, err)

	info, err := os.Stat(destino)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))
}

func TestGenerarPDFSinFilas(t *testing.T) {
	destino := filepath.Join(t.TempDir(), "reporte.pdf")

	err := GenerarPDF(nil, ColumnasGlobal, "", "", destino)
	require.ErrorIs(t, err, ErrSinResultados)

	// No se escribe ningún artefacto
	_, err = os.Stat(destino)
	require.True(t, os.IsNotExist(err))
}

func TestGenerarPDFDestinoInvalido(t *testing.T) {
	destino := filepath.Join(t.TempDir(), "no-existe", "reporte.pdf")

	filas := [][]string{{"Carrera", "10", "90.00"}}
	err := GenerarPDF(filas, ColumnasGlobal, "", "", destino)
	require.Error(t, err)
}

func TestFilasDetalle(t *testing.T) {
	filas := FilasDetalle([]models.FilaReporte{
		{Carrera: "", Profesor: "Dr. Smith", Materia: "Calculus", TotalClases: 1, Impartidas: 1, Perdidas: 0},
	})
	require.Equal(t, [][]string{{"", "Dr. Smith", "Calculus", "1", "1", "0"}}, filas)
}

func TestFilasGlobal(t *testing.T) {
	filas := FilasGlobal([]models.EstadisticaCarrera{
		{Carrera: "Ingeniería Mecatrónica", TotalClases: 3, TasaCumplimiento: 66.67},
	})
	require.Equal(t, [][]string{{"Ingeniería Mecatrónica", "3", "66.67"}}, filas)
}
