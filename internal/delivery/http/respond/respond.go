// Package respond writes the uniform result envelope every API operation
// answers with: { success, data, message, error }.
package respond

import "github.com/gofiber/fiber/v2"

type Envelope struct {
	Success bool    `json:"success"`
	Data    any     `json:"data"`
	Message string  `json:"message"`
	Error   *string `json:"error"`
}

func OK(c *fiber.Ctx, status int, data any, message string) error {
	return c.Status(status).JSON(Envelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// Fail reports a handled failure. The underlying cause is attached for
// diagnostics; callers surface message as the user-visible notification.
func Fail(c *fiber.Ctx, status int, message string, cause error) error {
	var errStr *string
	if cause != nil {
		s := cause.Error()
		errStr = &s
	}
	return c.Status(status).JSON(Envelope{
		Success: false,
		Data:    nil,
		Message: message,
		Error:   errStr,
	})
}
