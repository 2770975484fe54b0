package response

import (
	"github.com/labstack/echo/v4"
)

// MessageBody is the envelope every plain acknowledgement and error uses.
// Clients of this API key off the HTTP status and the message text alone.
type MessageBody struct {
	Message string `json:"message"`
}

// Message writes a {"message": ...} body with the given status.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageBody{Message: message})
}

// JSON writes an arbitrary payload for endpoints whose body carries more
// than an acknowledgement (login, SOS broadcast).
func JSON(c echo.Context, statusCode int, payload any) error {
	return c.JSON(statusCode, payload)
}
