// Package richtext turns free-form spreadsheet text into safe HTML.
package richtext

import (
	"html/template"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

// Renderer converts markdown descriptions to sanitized HTML
type Renderer struct {
	policy *bluemonday.Policy
}

// NewRenderer builds a renderer with a UGC policy that also forces rel=nofollow.
func NewRenderer() *Renderer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("loading").OnElements("img")
	policy.RequireNoFollowOnLinks(true)
	return &Renderer{policy: policy}
}

// Render returns "" for blank input.
func (r *Renderer) Render(source string) template.HTML {
	if strings.TrimSpace(source) == "" {
		return ""
	}

	// Parsers keep state between calls, so each render gets a fresh one.
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.HardLineBreak)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags | mdhtml.HrefTargetBlank})
	unsafe := markdown.ToHTML([]byte(source), p, renderer)

	return template.HTML(r.policy.SanitizeBytes(unsafe))
}
