// Package content renders the landing page.
package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"html"
	"strings"
	"text/template"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/jengzang/turismo-backend-go/internal/models"
)

//go:embed inicio.md
var inicioSource string

const pageTitle = "Turismo Colombia - Inicio"

var inicio = template.Must(template.New("inicio").Funcs(template.FuncMap{
	"join": func(values []string) string { return strings.Join(values, ", ") },
}).Parse(inicioSource))

// Landing fills the landing page with dataset metrics and renders it to a
// complete HTML document.
func Landing(overview *models.OverviewView) ([]byte, error) {
	var md bytes.Buffer
	if err := inicio.Execute(&md, overview); err != nil {
		return nil, fmt.Errorf("failed to fill landing page: %w", err)
	}

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse(md.Bytes())

	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Flags: mdhtml.CommonFlags | mdhtml.HrefTargetBlank,
	})
	body := markdown.Render(doc, renderer)

	var page bytes.Buffer
	fmt.Fprintf(&page, "<!DOCTYPE html>\n<html lang=\"es\">\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n",
		html.EscapeString(pageTitle))
	page.Write(body)
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}
