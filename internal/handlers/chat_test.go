package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestElegirOpcion(t *testing.T) {
	opciones := []string{"Cálculo Diferencial", "Álgebra Lineal", "Física I"}

	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"por numero", "2", "Álgebra Lineal", true},
		{"primer elemento", "1", "Cálculo Diferencial", true},
		{"numero fuera de rango", "4", "", false},
		{"cero no es opcion", "0", "", false},
		{"por nombre exacto", "Física I", "Física I", true},
		{"sin acentos ni mayusculas", "calculo diferencial", "Cálculo Diferencial", true},
		{"nombre desconocido", "Química", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := elegirOpcion(tt.input, opciones)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizar(t *testing.T) {
	require.Equal(t, "algebra lineal", normalizar("  Álgebra Lineal "))
	require.Equal(t, "nandu", normalizar("ÑANDÚ"))
}
