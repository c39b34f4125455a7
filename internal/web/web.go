// Package web holds the embedded HTML pages. Markup is deliberately minimal;
// the server's contract is the routes, redirects and flash messages, not the
// styling.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

func Templates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.html"))
}
