// Package gallery renders saved imagery and caller-supplied HTML fragments
// into standalone gallery pages.
package gallery

import (
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"time"
)

// pageTemplate is the fixed page shell. Fragments are inserted unescaped
// and in order; callers are trusted to supply well-formed HTML.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; background: #fafafa; }
h1 { color: #333; }
.gallery { display: flex; flex-wrap: wrap; gap: 1rem; }
.gallery img { max-width: 100%; height: auto; border-radius: 4px; box-shadow: 0 1px 4px rgba(0,0,0,0.2); }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="gallery">
{{- range .Fragments}}
{{.}}
{{- end}}
</div>
<!-- generated {{.GeneratedAt}} -->
</body>
</html>
`

var page = template.Must(template.New("gallery").Parse(pageTemplate))

// Filename derives the final page filename, appending ".html" when the name
// carries no extension.
func Filename(name string) string {
	if filepath.Ext(name) == "" {
		return name + ".html"
	}
	return name
}

// Render assembles a gallery page from a title and at least one HTML
// fragment. Fragments are concatenated in the given order without
// sanitization.
func Render(title string, fragments []string) (string, error) {
	trusted := make([]template.HTML, len(fragments))
	for i, fragment := range fragments {
		trusted[i] = template.HTML(fragment)
	}

	var out strings.Builder
	err := page.Execute(&out, struct {
		Title       string
		Fragments   []template.HTML
		GeneratedAt string
	}{
		Title:       title,
		Fragments:   trusted,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return "", fmt.Errorf("render gallery page: %w", err)
	}
	return out.String(), nil
}
