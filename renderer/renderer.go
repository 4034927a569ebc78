package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// RenderPortfolio renders the list of properties and their totals to a markdown string.
func RenderPortfolio(p *Portfolio) string {
	partials := map[string]string{
		"portfolio_title":      "portfolio_title.md",
		"portfolio_properties": "portfolio_properties.md",
		"portfolio_totals":     "portfolio_totals.md",
	}
	return renderTemplate("portfolio", "portfolio.md", partials, p)
}

// RenderProperty renders one property, its input and its monthly figures.
func RenderProperty(p *Property) string {
	return renderTemplate("property", "property.md", propertyPartials(), p)
}

// RenderCalculation renders a what-if calculation that is not part of the portfolio.
func RenderCalculation(p *Property) string {
	return renderTemplate("calculation", "calculation.md", propertyPartials(), p)
}

func propertyPartials() map[string]string {
	return map[string]string{
		"property_title":    "property_title.md",
		"property_input":    "property_input.md",
		"property_summary":  "property_summary.md",
		"property_warnings": "property_warnings.md",
	}
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
