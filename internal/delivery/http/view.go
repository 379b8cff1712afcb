package http

import (
	"embed"
	"html/template"

	"github.com/shoplens/backend/internal/domain"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// loadTemplates parses the embedded HTML templates
func loadTemplates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))
}

// pageView is the data passed to index.tmpl
type pageView struct {
	Languages []domain.LanguageOption
	Selected  domain.Language
	Panel     domain.PanelSnapshot
	Results   resultsView
}

// resultsView decides which parts of the results panel render.
// Exactly one of Loading, Error, and Result drives the panel, in that order.
type resultsView struct {
	Loading bool
	Error   string
	Result  *domain.AnalysisResult

	ShowVariants     bool
	ShowPrices       bool
	ShowAlternatives bool
}

func newPageView(snap domain.PanelSnapshot) pageView {
	selected := snap.Language
	if !selected.IsSupported() {
		selected = domain.DefaultLanguage
	}

	return pageView{
		Languages: domain.SupportedLanguages(),
		Selected:  selected,
		Panel:     snap,
		Results:   newResultsView(snap),
	}
}

func newResultsView(snap domain.PanelSnapshot) resultsView {
	view := resultsView{
		Loading: snap.Loading,
		Error:   snap.Error,
	}
	if view.Loading || view.Error != "" {
		return view
	}

	if r := snap.Result; r != nil {
		view.Result = r
		view.ShowVariants = len(r.Variants) > 0
		view.ShowPrices = len(r.Prices) > 0
		view.ShowAlternatives = len(r.AlternativeProducts) > 0
	}
	return view
}
