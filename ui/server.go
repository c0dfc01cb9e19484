package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"mbticonsultant/app"
	"mbticonsultant/domain/periodic"
	"mbticonsultant/internal"
	"mbticonsultant/ports"
	"mbticonsultant/ui/templates/fragments"
)

//go:embed templates/*.html static
var embeddedFiles embed.FS

// Options configures the web server
type Options struct {
	GinMode  string
	Defaults periodic.Style
}

// Server represents the web server for the MBTI Consultant UI
type Server struct {
	router    *gin.Engine
	service   *app.RenderService
	assets    ports.AssetStore
	templates *template.Template
	defaults  periodic.Style
	content   Content
	logger    *internal.Logger
}

// NewServer creates a new web server instance with its routes registered
func NewServer(service *app.RenderService, assets ports.AssetStore, opts Options, logger *internal.Logger) (*Server, error) {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	if opts.GinMode != "" {
		gin.SetMode(opts.GinMode)
	}

	defaults, err := opts.Defaults.Resolve()
	if err != nil {
		return nil, fmt.Errorf("invalid default plot style: %w", err)
	}

	s := &Server{
		router:   gin.New(),
		service:  service,
		assets:   assets,
		defaults: defaults,
		content:  NewContent(),
		logger:   logger,
	}

	if err := s.parseTemplates(); err != nil {
		return nil, err
	}
	if err := s.setupMiddleware(); err != nil {
		return nil, err
	}
	s.setupRoutes()
	return s, nil
}

// Handler returns the http.Handler serving the UI
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) parseTemplates() error {
	tmpl, err := template.New("").ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	for _, name := range fragments.GetAllTemplatePaths() {
		if tmpl.Lookup(name) == nil {
			return fmt.Errorf("template %s is missing", name)
		}
	}

	s.templates = tmpl
	s.logger.Debug("[TemplateInit] Parsed %d templates", len(tmpl.Templates()))
	return nil
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/chart.png", s.handleExport)
	s.router.GET("/chart.svg", s.handleExport)
	s.router.GET("/icons/:type", s.handleIcon)
	s.router.GET("/assets/pairs", s.handleSupplementary)

	api := s.router.Group("/api")
	{
		api.GET("/types", s.handleTypes)
		api.GET("/layout", s.handleLayout)
	}
}

func staticFS() (fs.FS, error) {
	return fs.Sub(embeddedFiles, "static")
}
