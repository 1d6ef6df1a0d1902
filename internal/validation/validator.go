package validation

import (
	"math"
	"strconv"
	"strings"

	"github.com/loismiguel15/backendgemini/internal/config"
	"github.com/loismiguel15/backendgemini/internal/domain"
	"github.com/loismiguel15/backendgemini/internal/dto"
)

// Validator normalizes untrusted generation requests into bounded ExamSpecs
type Validator struct {
	exam config.ExamConfig
}

// NewValidator creates a new validator instance
func NewValidator(exam config.ExamConfig) *Validator {
	return &Validator{exam: exam}
}

// Normalize validates and clamps the caller-supplied parameters. Only a
// missing topic is rejected; every other field degrades to a documented
// default. No side effects.
func (v *Validator) Normalize(req *dto.GenerateExamRequest) (*domain.ExamSpec, error) {
	tema := strings.TrimSpace(req.Tema)
	if tema == "" {
		return nil, domain.NewValidationError("tema is required")
	}

	banca := strings.TrimSpace(req.Banca)
	if banca == "" {
		banca = domain.BancaMista
	}

	nivel, ok := domain.NormalizeDifficulty(req.Nivel)
	if !ok {
		nivel = domain.DifficultyMedium
	}

	return &domain.ExamSpec{
		Tema:       tema,
		Quantidade: v.clampQuantity(req.Quantidade),
		Banca:      banca,
		Nivel:      nivel,
	}, nil
}

// clampQuantity coerces an arbitrary JSON value to an int inside the
// configured bounds, inclusive. Missing, non-numeric and non-finite values
// fall back to the default quantity.
func (v *Validator) clampQuantity(raw any) int {
	q := float64(v.exam.DefaultQuantity)

	switch n := raw.(type) {
	case float64:
		if !math.IsNaN(n) && !math.IsInf(n, 0) {
			q = n
		}
	case int:
		q = float64(n)
	case string:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil && !math.IsNaN(parsed) && !math.IsInf(parsed, 0) {
			q = parsed
		}
	}

	quantity := int(q)
	if quantity < v.exam.MinQuantity {
		quantity = v.exam.MinQuantity
	}
	if quantity > v.exam.MaxQuantity {
		quantity = v.exam.MaxQuantity
	}
	return quantity
}
