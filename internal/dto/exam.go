package dto

import "time"

// GenerateExamRequest represents the exam generation parameters in the API request
// @Description Request body for generating a multiple-choice exam
type GenerateExamRequest struct {
	Tema string `json:"tema"`
	// Quantidade is left untyped so that non-numeric values degrade to the
	// documented default instead of failing the whole body parse.
	Quantidade any    `json:"quantidade,omitempty"`
	Banca      string `json:"banca,omitempty"`
	Nivel      string `json:"nivel,omitempty"`
}

// QuestionResponse represents a generated question in the API response
type QuestionResponse struct {
	Enunciado    string    `json:"enunciado"`
	AlternativaA string    `json:"alternativaA"`
	AlternativaB string    `json:"alternativaB"`
	AlternativaC string    `json:"alternativaC"`
	AlternativaD string    `json:"alternativaD"`
	Gabarito     string    `json:"gabarito"`
	Explicacao   string    `json:"explicacao,omitempty"`
	Nivel        string    `json:"nivelDificuldade,omitempty"`
	CriadoEm     time.Time `json:"criadoEm"`
}

// GenerateExamResponse represents a generated exam in the API response
// @Description Generated exam with its questions
type GenerateExamResponse struct {
	ID       string             `json:"id"`
	Titulo   string             `json:"titulo"`
	Tema     string             `json:"tema"`
	Questoes []QuestionResponse `json:"questoes"`
}

// ErrorResponse represents an error in the API response. Raw carries a
// truncated excerpt of the model output when the failure was a parse failure.
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
	Raw    string `json:"raw,omitempty"`
}

// HealthResponse represents the liveness probe response
type HealthResponse struct {
	Status string `json:"status"`
}
