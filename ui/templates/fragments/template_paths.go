// Package fragments provides template name constants for the page templates
package fragments

// Template name constants
const (
	// Pages
	IndexPage = "index.html"
	ErrorPage = "error.html"

	// Partials
	ChartPartial = "chart.html"
)

// GetAllTemplatePaths returns all template names for registration checks
func GetAllTemplatePaths() []string {
	return []string{
		IndexPage,
		ErrorPage,
		ChartPartial,
	}
}
