package service

import (
	"context"
	"strings"
	"time"

	"github.com/loismiguel15/backendgemini/internal/domain"
	"github.com/loismiguel15/backendgemini/internal/dto"
	"github.com/loismiguel15/backendgemini/internal/logger"
	"github.com/loismiguel15/backendgemini/internal/util"
	"github.com/loismiguel15/backendgemini/internal/validation"

	"go.uber.org/zap"
)

// ExamService generates validated multiple-choice exams from a topic
type ExamService interface {
	Generate(ctx context.Context, req *dto.GenerateExamRequest) (*dto.GenerateExamResponse, error)
}

type examService struct {
	generator domain.TextGenerator
	validator *validation.Validator
}

// NewExamService creates a new ExamService instance. generator may be nil
// when the deployment lacks the external service credential; generation then
// fails with a ConfigurationError instead of an opaque panic.
func NewExamService(generator domain.TextGenerator, validator *validation.Validator) ExamService {
	return &examService{
		generator: generator,
		validator: validator,
	}
}

// Generate runs the full pipeline: normalize input, build the prompt, call
// the model, recover and sanitize its output, assemble the final exam. All
// state is request-local; the only blocking step is the model call.
func (s *examService) Generate(ctx context.Context, req *dto.GenerateExamRequest) (*dto.GenerateExamResponse, error) {
	l := logger.Get()

	spec, err := s.validator.Normalize(req)
	if err != nil {
		return nil, err
	}

	if s.generator == nil {
		return nil, domain.NewConfigurationError("GEMINI_API_KEY is not set")
	}

	prompt := buildPrompt(spec)
	l.Debug("Built generation prompt",
		zap.String("tema", spec.Tema),
		zap.Int("quantidade", spec.Quantidade),
		zap.String("banca", spec.Banca),
		zap.String("nivel", spec.Nivel),
	)

	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	value, err := recoverJSON(raw)
	if err != nil {
		l.Warn("Model output was not recoverable JSON",
			zap.String("raw_excerpt", domain.TruncateRaw(raw)))
		return nil, err
	}

	exam, err := assembleExam(sanitizeExam(value), spec, time.Now().UTC(), raw)
	if err != nil {
		return nil, err
	}

	l.Info("Exam generated",
		zap.String("exam_id", exam.ID),
		zap.String("tema", exam.Tema),
		zap.Int("questoes", len(exam.Questoes)),
	)
	return toExamResponse(exam), nil
}

// assembleExam finishes the sanitized shell: defaults title/topic, truncates
// to the requested quantity (never pads), backfills difficulty from the
// request and stamps the whole batch with one timestamp. Zero questions is a
// pipeline failure, not a valid empty exam.
func assembleExam(shell *domain.Exam, spec *domain.ExamSpec, now time.Time, raw string) (*domain.Exam, error) {
	if len(shell.Questoes) == 0 {
		return nil, domain.NewEmptyResultError(raw)
	}

	titulo := strings.TrimSpace(shell.Titulo)
	if titulo == "" {
		titulo = "Prova - " + spec.Tema
	}
	tema := strings.TrimSpace(shell.Tema)
	if tema == "" {
		tema = spec.Tema
	}

	questoes := shell.Questoes
	if len(questoes) > spec.Quantidade {
		questoes = questoes[:spec.Quantidade]
	}
	for i := range questoes {
		if questoes[i].Nivel == "" {
			questoes[i].Nivel = spec.Nivel
		}
		questoes[i].CriadoEm = now
	}

	return &domain.Exam{
		ID:       util.NewULID(),
		Titulo:   titulo,
		Tema:     tema,
		Questoes: questoes,
	}, nil
}

func toExamResponse(exam *domain.Exam) *dto.GenerateExamResponse {
	questoes := make([]dto.QuestionResponse, len(exam.Questoes))
	for i, q := range exam.Questoes {
		questoes[i] = dto.QuestionResponse{
			Enunciado:    q.Enunciado,
			AlternativaA: q.AlternativaA,
			AlternativaB: q.AlternativaB,
			AlternativaC: q.AlternativaC,
			AlternativaD: q.AlternativaD,
			Gabarito:     q.Gabarito,
			Explicacao:   q.Explicacao,
			Nivel:        q.Nivel,
			CriadoEm:     q.CriadoEm,
		}
	}
	return &dto.GenerateExamResponse{
		ID:       exam.ID,
		Titulo:   exam.Titulo,
		Tema:     exam.Tema,
		Questoes: questoes,
	}
}
