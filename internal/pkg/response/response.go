// Package response renders the JSON envelope every API endpoint uses.
package response

import "github.com/gofiber/fiber/v3"

// SemanticResponse is the wire shape of every reply: the HTTP status
// repeated in the body, a short human-readable message, and the
// payload (or error detail) under data.
type SemanticResponse struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

const (
	MessageOK                  = "ok"
	MessageBadRequest          = "bad request"
	MessageNotFound            = "not found"
	MessageUnprocessableEntity = "unprocessable entity"
	MessageInternalServerError = "internal server error"
	MessageError               = "error"
)

var statusMessages = map[int]string{
	fiber.StatusOK:                  MessageOK,
	fiber.StatusBadRequest:          MessageBadRequest,
	fiber.StatusNotFound:            MessageNotFound,
	fiber.StatusUnprocessableEntity: MessageUnprocessableEntity,
}

// Success writes a 2xx envelope.
func Success(c fiber.Ctx, status int, message string, data interface{}) error {
	return write(c, status, message, data)
}

// Error writes an error envelope. Callers pass whatever detail is safe
// to expose; 5xx masking happens in the error middleware before this.
func Error(c fiber.Ctx, status int, message string, data interface{}) error {
	return write(c, status, message, data)
}

func write(c fiber.Ctx, status int, message string, data interface{}) error {
	if status < 100 || status > 599 {
		status = fiber.StatusInternalServerError
	}
	if message == "" {
		message = messageFor(status)
	}
	return c.Status(status).JSON(SemanticResponse{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

func messageFor(status int) string {
	if m, ok := statusMessages[status]; ok {
		return m
	}
	if status >= 500 {
		return MessageInternalServerError
	}
	return MessageError
}
