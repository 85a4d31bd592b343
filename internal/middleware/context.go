package middleware

import "github.com/labstack/echo/v4"

// Context keys used to store request and editor metadata.
const (
	ContextKeyEditorID    = "editor_id"
	ContextKeyEditorEmail = "editor_email"
	ContextKeyEditorRole  = "editor_role"
	ContextKeyRequestID   = "request_id"
)

// deny writes the shared error envelope and stops the chain.
func deny(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"status": "error", "message": message})
}

// EditorEmailFromContext returns the authenticated editor's email, if any.
func EditorEmailFromContext(c echo.Context) string {
	if val, ok := c.Get(ContextKeyEditorEmail).(string); ok {
		return val
	}
	return ""
}

