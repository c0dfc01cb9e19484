package ui

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"mbticonsultant/internal/errors"
	"mbticonsultant/ui/templates/fragments"
)

// renderTemplate executes a template with the given data
func (s *Server) renderTemplate(c *gin.Context, status int, templateName string, data interface{}) {
	// Render to a buffer first so a template error never leaves a half-written page
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		s.logger.Error("[Template] %s failed: %v", templateName, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "template rendering failed", "code": errors.CodeInternalError})
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if _, err := buf.WriteTo(c.Writer); err != nil {
		s.logger.Warn("[Template] error writing %s response: %v", templateName, err)
	}
}

// renderError shows the error page with the status mapped from err
func (s *Server) renderError(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	s.renderTemplate(c, status, fragments.ErrorPage, gin.H{
		"Title":   "The MBTI Consultant",
		"Status":  status,
		"Code":    errors.GetCode(err),
		"Message": err.Error(),
	})
}

// jsonError writes an API error body
func jsonError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(errors.HTTPStatus(err), gin.H{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}
