package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/backoffice/internal/money"
)

//go:embed templates/*.html
var templateFS embed.FS

type HTMLRenderer struct {
	tmpl *template.Template
}

func NewHTMLRenderer() (*HTMLRenderer, error) {
	funcs := template.FuncMap{
		"naira": money.Naira,
		"qty":   func(d decimal.Decimal) string { return d.String() },
	}

	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	return &HTMLRenderer{tmpl: tmpl}, nil
}

func (r *HTMLRenderer) Render(name string, data any) ([]byte, error) {
	t := r.tmpl.Lookup(name + ".html")
	if t == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTemplate, name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing %s: %w", name, err)
	}

	return buf.Bytes(), nil
}
