package ui

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// setupMiddleware configures Gin middleware and the static file tree
func (s *Server) setupMiddleware() error {
	s.router.Use(gin.Recovery())
	s.router.Use(s.requestLogger())

	static, err := staticFS()
	if err != nil {
		return fmt.Errorf("failed to create static filesystem: %w", err)
	}
	s.router.StaticFS("/static", http.FS(static))
	return nil
}

// requestLogger logs each request through the application logger
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		switch {
		case status >= http.StatusInternalServerError:
			s.logger.Error("[HTTP] %s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, time.Since(start))
		case gin.IsDebugging():
			s.logger.Info("[HTTP] %s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, time.Since(start))
		default:
			s.logger.Debug("[HTTP] %s %s -> %d (%s)", c.Request.Method, c.Request.URL.Path, status, time.Since(start))
		}
	}
}
