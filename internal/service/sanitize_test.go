package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestSanitizeExam_UnusableTopLevel(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"nil", nil},
		{"string", "just text"},
		{"array", []any{1, 2}},
		{"object without questoes", map[string]any{"titulo": "Prova"}},
		{"questoes not an array", map[string]any{"questoes": "nope"}},
		{"questoes is an object", map[string]any{"questoes": map[string]any{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exam := sanitizeExam(tt.in)
			require.NotNil(t, exam)
			assert.Empty(t, exam.Questoes)
		})
	}
}

func TestSanitizeExam_GabaritoDefaulting(t *testing.T) {
	exam := sanitizeExam(decode(t, `{"questoes":[
		{"enunciado":"Q1"},
		{"enunciado":"Q2","gabarito":"z"},
		{"enunciado":"Q3","gabarito":"b"},
		{"enunciado":"Q4","gabarito":" C "}
	]}`))

	require.Len(t, exam.Questoes, 4)
	assert.Equal(t, "A", exam.Questoes[0].Gabarito)
	assert.Equal(t, "A", exam.Questoes[1].Gabarito)
	assert.Equal(t, "B", exam.Questoes[2].Gabarito)
	assert.Equal(t, "C", exam.Questoes[3].Gabarito)
}

func TestSanitizeExam_ProseWrappedScenario(t *testing.T) {
	// The recovered payload of: Here is the exam:
	// {"questoes":[{"enunciado":"Q1","gabarito":"x"}]} Hope this helps!
	value, err := recoverJSON(`Here is the exam: {"questoes":[{"enunciado":"Q1","gabarito":"x"}]} Hope this helps!`)
	require.NoError(t, err)

	exam := sanitizeExam(value)
	require.Len(t, exam.Questoes, 1)

	q := exam.Questoes[0]
	assert.Equal(t, "Q1", q.Enunciado)
	assert.Equal(t, "A", q.Gabarito)
	assert.Empty(t, q.AlternativaA)
	assert.Empty(t, q.AlternativaB)
	assert.Empty(t, q.AlternativaC)
	assert.Empty(t, q.AlternativaD)
}

func TestSanitizeExam_NonObjectElements(t *testing.T) {
	exam := sanitizeExam(decode(t, `{"questoes":["texto", 42, null, {"enunciado":"Valida"}]}`))

	require.Len(t, exam.Questoes, 4)
	for _, q := range exam.Questoes[:3] {
		assert.Empty(t, q.Enunciado)
		assert.Equal(t, "A", q.Gabarito)
	}
	assert.Equal(t, "Valida", exam.Questoes[3].Enunciado)
}

func TestSanitizeExam_DifficultySpellings(t *testing.T) {
	exam := sanitizeExam(decode(t, `{"questoes":[
		{"nivelDificuldade":"fácil"},
		{"nivelDificuldade":"medio"},
		{"nivelDificuldade":"DIFÍCIL"},
		{"nivelDificuldade":"expert"},
		{}
	]}`))

	require.Len(t, exam.Questoes, 5)
	assert.Equal(t, "facil", exam.Questoes[0].Nivel)
	assert.Equal(t, "medio", exam.Questoes[1].Nivel)
	assert.Equal(t, "dificil", exam.Questoes[2].Nivel)
	assert.Empty(t, exam.Questoes[3].Nivel)
	assert.Empty(t, exam.Questoes[4].Nivel)
}

func TestSanitizeExam_ScalarCoercion(t *testing.T) {
	exam := sanitizeExam(decode(t, `{"titulo": 42, "questoes":[
		{"enunciado": 3.5, "alternativaA": true, "alternativaB": null, "alternativaC": {"x":1}, "alternativaD": [1]}
	]}`))

	assert.Equal(t, "42", exam.Titulo)
	require.Len(t, exam.Questoes, 1)
	q := exam.Questoes[0]
	assert.Equal(t, "3.5", q.Enunciado)
	assert.Equal(t, "true", q.AlternativaA)
	assert.Empty(t, q.AlternativaB)
	assert.Empty(t, q.AlternativaC)
	assert.Empty(t, q.AlternativaD)
}

func TestSanitizeExam_WellFormedIsIdempotent(t *testing.T) {
	raw := `{"titulo":"Prova de Português","tema":"Português","questoes":[{
		"enunciado":"Qual é a forma correta?",
		"alternativaA":"Opção A",
		"alternativaB":"Opção B",
		"alternativaC":"Opção C",
		"alternativaD":"Opção D",
		"gabarito":"B",
		"explicacao":"A forma correta segue a norma culta.",
		"nivelDificuldade":"medio"
	}]}`

	first := sanitizeExam(decode(t, raw))

	// Re-encode the sanitized result into the wire shape and sanitize again.
	reencoded := map[string]any{
		"titulo": first.Titulo,
		"tema":   first.Tema,
		"questoes": []any{map[string]any{
			"enunciado":        first.Questoes[0].Enunciado,
			"alternativaA":     first.Questoes[0].AlternativaA,
			"alternativaB":     first.Questoes[0].AlternativaB,
			"alternativaC":     first.Questoes[0].AlternativaC,
			"alternativaD":     first.Questoes[0].AlternativaD,
			"gabarito":         first.Questoes[0].Gabarito,
			"explicacao":       first.Questoes[0].Explicacao,
			"nivelDificuldade": first.Questoes[0].Nivel,
		}},
	}
	second := sanitizeExam(reencoded)

	assert.Equal(t, first, second)
}
