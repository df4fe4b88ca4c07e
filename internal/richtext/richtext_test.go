package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown(t *testing.T) {
	out := string(NewRenderer().Render("One owner. **Clean** title."))
	assert.Contains(t, out, "<strong>Clean</strong>")
	assert.Contains(t, out, "<p>")
}

func TestRenderStripsScripts(t *testing.T) {
	out := string(NewRenderer().Render("hi <script>alert(1)</script> [x](https://example.com)"))
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, `rel="nofollow`)
}

func TestRenderBlank(t *testing.T) {
	assert.Equal(t, "", string(NewRenderer().Render("  \n")))
}
