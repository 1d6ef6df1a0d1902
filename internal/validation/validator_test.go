package validation

import (
	"testing"

	"github.com/loismiguel15/backendgemini/internal/config"
	"github.com/loismiguel15/backendgemini/internal/domain"
	"github.com/loismiguel15/backendgemini/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator() *Validator {
	return NewValidator(config.ExamConfig{
		DefaultQuantity: 10,
		MinQuantity:     10,
		MaxQuantity:     30,
	})
}

func TestNormalize_TopicRequired(t *testing.T) {
	v := newTestValidator()

	for _, tema := range []string{"", "   ", "\t\n"} {
		spec, err := v.Normalize(&dto.GenerateExamRequest{Tema: tema})
		assert.Nil(t, spec)
		require.Error(t, err)

		domainErr, ok := err.(*domain.DomainError)
		require.True(t, ok)
		assert.Equal(t, domain.ErrValidation, domainErr.Code)
	}
}

func TestNormalize_QuantityClamping(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name string
		raw  any
		want int
	}{
		{"missing defaults", nil, 10},
		{"below lower bound clamps up", float64(5), 10},
		{"above upper bound clamps down", float64(40), 30},
		{"in range passes through", float64(15), 15},
		{"bounds are inclusive low", float64(10), 10},
		{"bounds are inclusive high", float64(30), 30},
		{"fraction truncates", float64(12.7), 12},
		{"numeric string coerces", "25", 25},
		{"non-numeric string defaults", "quarenta", 10},
		{"bool defaults", true, 10},
		{"object defaults", map[string]any{"n": 5}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := v.Normalize(&dto.GenerateExamRequest{
				Tema:       "Direito Administrativo",
				Quantidade: tt.raw,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, spec.Quantidade)
		})
	}
}

func TestNormalize_Defaults(t *testing.T) {
	v := newTestValidator()

	spec, err := v.Normalize(&dto.GenerateExamRequest{Tema: "  Direito Constitucional  "})
	require.NoError(t, err)

	assert.Equal(t, "Direito Constitucional", spec.Tema)
	assert.Equal(t, 10, spec.Quantidade)
	assert.Equal(t, domain.BancaMista, spec.Banca)
	assert.Equal(t, domain.DifficultyMedium, spec.Nivel)
}

func TestNormalize_Difficulty(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		in   string
		want string
	}{
		{"facil", domain.DifficultyEasy},
		{"FÁCIL", domain.DifficultyEasy},
		{"médio", domain.DifficultyMedium},
		{"Difícil", domain.DifficultyHard},
		{"dificil", domain.DifficultyHard},
		{"impossible", domain.DifficultyMedium},
		{"", domain.DifficultyMedium},
	}

	for _, tt := range tests {
		spec, err := v.Normalize(&dto.GenerateExamRequest{Tema: "Português", Nivel: tt.in})
		require.NoError(t, err)
		assert.Equal(t, tt.want, spec.Nivel, "nivel %q", tt.in)
	}
}

func TestNormalize_BancaTrimmedWithDefault(t *testing.T) {
	v := newTestValidator()

	spec, err := v.Normalize(&dto.GenerateExamRequest{Tema: "Português", Banca: "  FCC "})
	require.NoError(t, err)
	assert.Equal(t, "FCC", spec.Banca)

	spec, err = v.Normalize(&dto.GenerateExamRequest{Tema: "Português", Banca: "   "})
	require.NoError(t, err)
	assert.Equal(t, domain.BancaMista, spec.Banca)
}
