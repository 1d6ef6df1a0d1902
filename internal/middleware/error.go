package middleware

import (
	"errors"
	"net/http"

	"github.com/loismiguel15/backendgemini/internal/domain"
	"github.com/loismiguel15/backendgemini/internal/dto"
	"github.com/loismiguel15/backendgemini/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler is a centralized error handling middleware. Every pipeline
// failure is converted here into the structured error response; nothing
// escapes as an unhandled fault.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		l := logger.Get()

		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			statusCode := mapDomainErrorToHTTPStatus(domainErr)

			logDomainError(l, c, domainErr, statusCode)

			response := dto.ErrorResponse{
				Error: domainErr.Message,
				Raw:   domainErr.Raw,
			}
			if domainErr.Err != nil {
				response.Detail = domainErr.Err.Error()
			}

			return c.Status(statusCode).JSON(response)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			l.Warn("HTTP error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			return c.Status(fiberErr.Code).JSON(dto.ErrorResponse{
				Error: fiberErr.Message,
			})
		}

		l.Error("Unknown error occurred",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "internal server error",
		})
	}
}

// mapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func mapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.ErrValidation:
		return http.StatusBadRequest
	case domain.ErrConfiguration, domain.ErrModelUnavailable,
		domain.ErrMalformedOutput, domain.ErrEmptyResult:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func logDomainError(l *zap.Logger, c *fiber.Ctx, err *domain.DomainError, status int) {
	fields := []zap.Field{
		zap.String("code", string(err.Code)),
		zap.String("path", c.Path()),
		zap.Int("status", status),
		zap.Error(err.Err),
	}
	if status >= http.StatusInternalServerError {
		l.Error("Domain error occurred", fields...)
	} else {
		l.Warn("Domain error occurred", fields...)
	}
}
