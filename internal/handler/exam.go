package handler

import (
	"github.com/loismiguel15/backendgemini/internal/dto"
	"github.com/loismiguel15/backendgemini/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ExamHandler handles exam generation HTTP requests
type ExamHandler struct {
	service service.ExamService
}

// NewExamHandler creates a new ExamHandler instance
func NewExamHandler(service service.ExamService) *ExamHandler {
	return &ExamHandler{
		service: service,
	}
}

// GenerateExam godoc
// @Summary Generate a multiple-choice exam
// @Description Generates a validated multiple-choice exam on the given topic using a generative-language model
// @Tags exams
// @Accept json
// @Produce json
// @Param request body dto.GenerateExamRequest true "Generation parameters"
// @Success 200 {object} dto.GenerateExamResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /exams/generate [post]
func (h *ExamHandler) GenerateExam(c *fiber.Ctx) error {
	var req dto.GenerateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "invalid JSON body",
		})
	}

	// Validation and every downstream failure surface through the
	// centralized error handler.
	result, err := h.service.Generate(c.Context(), &req)
	if err != nil {
		return err
	}

	return c.JSON(result)
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *ExamHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{Status: "ok"})
}
