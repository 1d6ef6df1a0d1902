package domain

import (
	"strings"
	"time"
)

// Difficulty levels recognized by the pipeline. The wire values follow the
// source locale; accented spellings are accepted on input and normalized.
const (
	DifficultyEasy   = "facil"
	DifficultyMedium = "medio"
	DifficultyHard   = "dificil"
)

// BancaMista instructs the prompt to blend the styles of several exam boards.
const BancaMista = "mista"

// DefaultGabarito is substituted when the model omits the correct option or
// returns something outside A-D.
const DefaultGabarito = "A"

// ExamSpec is a normalized, bounded generation request. Instances are only
// produced by validation.Normalize, so every field holds a safe value.
type ExamSpec struct {
	Tema       string
	Quantidade int
	Banca      string
	Nivel      string
}

// Question is a single multiple-choice question produced by the pipeline.
type Question struct {
	Enunciado    string
	AlternativaA string
	AlternativaB string
	AlternativaC string
	AlternativaD string
	Gabarito     string
	Explicacao   string
	Nivel        string
	CriadoEm     time.Time
}

// Exam is the assembled generation result.
type Exam struct {
	ID       string
	Titulo   string
	Tema     string
	Questoes []Question
}

var accentFolder = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ã", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "ô", "o", "õ", "o",
	"ú", "u",
	"ç", "c",
)

// NormalizeDifficulty maps a free-form difficulty string onto one of the three
// recognized levels, accepting accented and unaccented spellings in any case.
// The second return is false when the value is unrecognized.
func NormalizeDifficulty(s string) (string, bool) {
	folded := accentFolder.Replace(strings.ToLower(strings.TrimSpace(s)))
	switch folded {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return folded, true
	}
	return "", false
}

// NormalizeGabarito maps a free-form correct-option string onto A-D,
// case-insensitively, falling back to DefaultGabarito for anything else.
func NormalizeGabarito(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A", "B", "C", "D":
		return strings.ToUpper(strings.TrimSpace(s))
	}
	return DefaultGabarito
}
