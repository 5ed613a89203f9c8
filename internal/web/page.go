// Package web renders the party planner HTML page.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/eugenenazirov/party-planner/internal/catalog"
	"github.com/eugenenazirov/party-planner/internal/party"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("index.html").
		Funcs(template.FuncMap{"join": strings.Join}).
		ParseFS(templateFS, "templates/index.html"),
)

// Page serves the catalog listing and the selection form.
type Page struct {
	calculator party.Calculator
	catalog    catalog.Catalog
	label      string
	logger     *zap.Logger
}

// NewPage constructs the HTML page handler. label is shown under the page title.
func NewPage(calc party.Calculator, items catalog.Catalog, label string, logger *zap.Logger) *Page {
	return &Page{
		calculator: calc,
		catalog:    items,
		label:      label,
		logger:     logger,
	}
}

type pageData struct {
	Label  string
	Items  []party.Item
	Input  string
	Result *party.Result
}

func (p *Page) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	items, err := p.catalog.Items()
	if err != nil {
		p.logger.Error("load catalog", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	data := pageData{
		Label: p.label,
		Items: items,
		Input: r.URL.Query().Get("indices"),
	}

	// The result block is only rendered for a non-empty, well-formed selection.
	indices, err := party.ParseSelection(data.Input, len(items))
	if err != nil {
		p.logger.Debug("ignoring malformed selection", zap.String("input", data.Input), zap.Error(err))
	} else if len(indices) > 0 {
		result := p.calculator.Compute(items, indices)
		data.Result = &result
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		p.logger.Error("render page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}
