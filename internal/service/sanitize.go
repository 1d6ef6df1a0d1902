package service

import (
	"strconv"

	"github.com/loismiguel15/backendgemini/internal/domain"
)

// sanitizeExam maps a recovered, untrusted JSON value into an exam shell.
// It is total: any shape, however malformed, yields a result with safe
// defaults instead of an error. A top level that is not an object, lacks
// "questoes", or whose "questoes" is not an array yields zero questions;
// whether that is fatal is the assembler's call.
func sanitizeExam(v any) *domain.Exam {
	exam := &domain.Exam{}

	obj, ok := v.(map[string]any)
	if !ok {
		return exam
	}
	exam.Titulo = coerceString(obj["titulo"])
	exam.Tema = coerceString(obj["tema"])

	items, ok := obj["questoes"].([]any)
	if !ok {
		return exam
	}

	for _, item := range items {
		// Non-object elements degrade to empty objects; reads on the nil map
		// below then produce the per-field defaults.
		qobj, _ := item.(map[string]any)

		q := domain.Question{
			Enunciado:    coerceString(qobj["enunciado"]),
			AlternativaA: coerceString(qobj["alternativaA"]),
			AlternativaB: coerceString(qobj["alternativaB"]),
			AlternativaC: coerceString(qobj["alternativaC"]),
			AlternativaD: coerceString(qobj["alternativaD"]),
			Gabarito:     domain.NormalizeGabarito(coerceString(qobj["gabarito"])),
			Explicacao:   coerceString(qobj["explicacao"]),
		}
		if nivel, ok := domain.NormalizeDifficulty(coerceString(qobj["nivelDificuldade"])); ok {
			q.Nivel = nivel
		}
		exam.Questoes = append(exam.Questoes, q)
	}
	return exam
}

// coerceString converts a JSON scalar to a string; everything else,
// including nil, becomes the empty string.
func coerceString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}
