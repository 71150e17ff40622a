// Package middleware carries the HTTP cross-cutting layers: access
// logging and error normalization.
package middleware

import (
	"errors"

	"github.com/Gowreesh31/Job-Market-Analyzer-Resume/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
)

// AppError carries an HTTP status alongside the wrapped cause.
// Handlers return it; the error middleware renders it. Causes never
// leak to clients on 5xx.
type AppError struct {
	StatusCode int
	Message    string
	Data       interface{}
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data interface{}, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

type ErrorMiddleware struct {
	logger zerolog.Logger
}

func NewErrorMiddleware(logger zerolog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// Middleware converts whatever a handler returned (or panicked with)
// into one response envelope. Anything that is not a recognized 4xx
// renders as a masked 500.
func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error().Interface("panic", r).Str("path", c.OriginalURL()).Msg("panic recovered")
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}
		return m.render(c, err)
	}
}

func (m *ErrorMiddleware) render(c fiber.Ctx, err error) error {
	var (
		status int
		msg    string
		data   interface{}
	)

	var appErr *AppError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		status, msg, data = appErr.StatusCode, appErr.Message, appErr.Data
	case errors.As(err, &fiberErr):
		status, msg = fiberErr.Code, fiberErr.Message
	}

	// Unrecognized errors and server-side statuses are masked so
	// internals never reach a client.
	if status < 100 || status >= 500 {
		m.logger.Error().Err(err).Str("path", c.OriginalURL()).Msg("request failed")
		return response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
	}
	return response.Error(c, status, msg, data)
}
