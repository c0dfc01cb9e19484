package ui

import (
	"bytes"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"mbticonsultant/adapters/render"
	"mbticonsultant/app"
	"mbticonsultant/domain/core"
	"mbticonsultant/domain/periodic"
	"mbticonsultant/internal/errors"
	"mbticonsultant/ui/templates/fragments"
)

const pageTitle = "The MBTI Consultant"

// placeholderSVG stands in for an image that cannot be shown
const placeholderSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="300" height="300" viewBox="0 0 300 300">` +
	`<rect width="300" height="300" fill="#F2F2F2" stroke="#757171" stroke-dasharray="6 4"/>` +
	`<text x="150" y="150" text-anchor="middle" dominant-baseline="middle" fill="#757171" font-family="Helvetica" font-size="16">%s</text>` +
	`</svg>`

// parseRenderRequest reads the type, font and scale query parameters
func (s *Server) parseRenderRequest(c *gin.Context) (app.RenderRequest, error) {
	req := app.RenderRequest{
		Type:  periodic.TypeCode(c.Query("type")),
		Font:  strings.TrimSpace(c.Query("font")),
		Scale: s.defaults.Scale,
	}
	if req.Font == "" {
		req.Font = s.defaults.Font
	}
	if raw := strings.TrimSpace(c.Query("scale")); raw != "" {
		scale, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return req, errors.InvalidInput(fmt.Sprintf("scale %q is not a number", raw))
		}
		if err := periodic.ValidateScale(scale); err != nil {
			return req, errors.WithCode(errors.CodeInvalidInput, err)
		}
		req.Scale = scale
	}
	return req, nil
}

// handleIndex renders the page for the selected type and font
func (s *Server) handleIndex(c *gin.Context) {
	req, err := s.parseRenderRequest(c)
	if err != nil {
		s.renderError(c, err)
		return
	}

	result, err := s.service.Render(c.Request.Context(), req)
	if err != nil {
		s.renderError(c, err)
		return
	}

	chart, err := newChartView(result.Layout)
	if err != nil {
		s.renderError(c, errors.Wrap(err, "failed to build chart"))
		return
	}

	query := exportQuery(result.Layout)
	s.renderTemplate(c, http.StatusOK, fragments.IndexPage, gin.H{
		"Title":         pageTitle,
		"About":         s.content.About,
		"Footer":        s.content.Footer,
		"Catalog":       result.Catalog,
		"Fonts":         result.Fonts,
		"Selected":      result.Layout.TypeCode,
		"Font":          result.Layout.Style.Font,
		"Scale":         strconv.FormatFloat(result.Layout.Style.Scale, 'f', -1, 64),
		"Subtitle":      result.Layout.Subtitle,
		"Palette":       result.Layout.Palette,
		"FontSizes":     result.Layout.FontSizes,
		"Icon":          result.Icon,
		"Supplementary": result.Supplementary,
		"Chart":         chart,
		"RenderID":      result.RenderID,
		"PNGLink":       "/chart.png?" + query,
		"SVGLink":       "/chart.svg?" + query,
	})
}

// handleTypes lists the type catalog and the supported fonts
func (s *Server) handleTypes(c *gin.Context) {
	catalog, err := s.service.Catalog(c.Request.Context())
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"types": catalog,
		"fonts": periodic.Fonts,
	})
}

// handleLayout returns the derived layout of a selection as JSON
func (s *Server) handleLayout(c *gin.Context) {
	req, err := s.parseRenderRequest(c)
	if err != nil {
		jsonError(c, err)
		return
	}
	result, err := s.service.Render(c.Request.Context(), req)
	if err != nil {
		jsonError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// handleExport draws the selection as a PNG or SVG file
func (s *Server) handleExport(c *gin.Context) {
	format := render.FormatPNG
	if strings.HasSuffix(c.Request.URL.Path, ".svg") {
		format = render.FormatSVG
	}

	req, err := s.parseRenderRequest(c)
	if err != nil {
		jsonError(c, err)
		return
	}
	result, err := s.service.Render(c.Request.Context(), req)
	if err != nil {
		jsonError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := render.Grid(&buf, result.Layout, format); err != nil {
		s.logger.Error("[Export] %s export of %s failed: %v", format, result.Layout.TypeCode, err)
		jsonError(c, err)
		return
	}

	etag := core.NewHash(buf.Bytes()).ETag()
	c.Header("ETag", etag)
	if c.GetHeader("If-None-Match") == etag {
		c.Status(http.StatusNotModified)
		return
	}

	filename := fmt.Sprintf("mbti-%s.%s", strings.ToLower(string(result.Layout.TypeCode)), format)
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// handleIcon serves a type's icon, or a placeholder when it is missing
func (s *Server) handleIcon(c *gin.Context) {
	code := periodic.TypeCode(c.Param("type"))
	path, err := s.assets.IconPath(code)
	if err != nil {
		jsonError(c, err)
		return
	}
	if err := s.assets.CheckIcon(code); err != nil {
		placeholder(c, fmt.Sprintf("No icon for %s", code))
		return
	}
	c.File(path)
}

// handleSupplementary serves the type-pairs image
func (s *Server) handleSupplementary(c *gin.Context) {
	if err := s.assets.CheckSupplementary(); err != nil {
		s.logger.Warn("[Assets] supplementary image unavailable: %v", err)
		placeholder(c, "Image unavailable")
		return
	}
	c.File(s.assets.SupplementaryPath())
}

func placeholder(c *gin.Context, label string) {
	c.Data(http.StatusNotFound, "image/svg+xml", []byte(fmt.Sprintf(placeholderSVG, html.EscapeString(label))))
}

// exportQuery carries the current selection into the export links
func exportQuery(layout *periodic.Layout) string {
	values := url.Values{}
	values.Set("type", string(layout.TypeCode))
	values.Set("font", layout.Style.Font)
	values.Set("scale", strconv.FormatFloat(layout.Style.Scale, 'f', -1, 64))
	return values.Encode()
}
