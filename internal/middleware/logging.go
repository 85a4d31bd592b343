package middleware

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
)

// Logging writes one key=value line per request. Requests authenticated as an
// editor also carry the editor's email.
func Logging() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			line := "request_id=%s method=%s path=%s route=%s status=%d bytes=%d latency=%s"
			args := []any{RequestIDFromContext(c), req.Method, req.URL.Path, c.Path(), res.Status, res.Size, time.Since(start)}
			if editor := EditorEmailFromContext(c); editor != "" {
				line += " editor=%s"
				args = append(args, editor)
			}
			log.Printf(line, args...)

			return err
		}
	}
}
