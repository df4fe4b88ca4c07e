package ui

import (
	"bytes"
	"net/http"
)

// Page templates, named by file.
const (
	listTemplate   = "list.html"
	detailTemplate = "detail.html"
)

// Page kinds carried on <body data-page>.
const (
	pageList   = "list"
	pageDetail = "detail"
)

// renderTemplate executes a template with the given data and status
func (a *App) renderTemplate(w http.ResponseWriter, status int, templateName string, data interface{}) {
	// Render to a buffer first so a template error never leaves a half-written page
	var buf bytes.Buffer
	if err := a.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		a.logger.Error("Template error for %s: %v", templateName, err)
		http.Error(w, "Template rendering failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		a.logger.Warn("Error writing template response: %v", err)
	}
}
