package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"coopart/internal/apperr"
	"coopart/internal/http/middleware"
	"coopart/internal/storage"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeServiceError maps a service failure class to a status and safe message.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperr.ErrUnauthorized):
		return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "sign in required")
	case errors.Is(err, apperr.ErrValidation):
		return writeError(c, fiber.StatusBadRequest, "VALIDATION_FAILED", "invalid request")
	case errors.Is(err, storage.ErrObjectNotFound):
		return writeError(c, fiber.StatusNotFound, "CONTENT_NOT_FOUND", "content not found")
	case errors.Is(err, apperr.ErrNoDraft):
		return writeError(c, fiber.StatusNotFound, "NO_DRAFT", "no draft tile")
	case errors.Is(err, apperr.ErrDecodeFailure):
		return writeError(c, fiber.StatusUnprocessableEntity, "DECODE_FAILED", "image could not be decoded")
	case errors.Is(err, apperr.ErrSuperseded):
		return writeError(c, fiber.StatusConflict, "SUPERSEDED", "a newer upload replaced this draft")
	case errors.Is(err, apperr.ErrInProgress):
		return writeError(c, fiber.StatusConflict, "MINT_IN_PROGRESS", "a mint with this key is still running")
	case errors.Is(err, apperr.ErrStorageUnavailable):
		return writeError(c, fiber.StatusServiceUnavailable, "STORAGE_UNAVAILABLE", "content storage unavailable")
	case errors.Is(err, apperr.ErrLedgerCall):
		return writeError(c, fiber.StatusBadGateway, "LEDGER_CALL_FAILED", apperr.ReauthHint)
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
