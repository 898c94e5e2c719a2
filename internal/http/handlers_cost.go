package http

import (
	"net/http"

	"stockboard/internal/core"
	applog "stockboard/internal/log"
)

// handleCostUnits renders the unit options for the selected material
// category, including the stone-only field visibility.
func (s *Server) handleCostUnits(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	category := ParseCategory(r.URL.Query())
	data := struct {
		Category     core.Category
		Units        []string
		StoneVisible bool
	}{
		Category:     category,
		Units:        core.UnitsFor(category),
		StoneVisible: core.StoneFieldsVisible(category),
	}

	if err := s.templates.ExecuteTemplate(w, "cost_units.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Cost units template execution failed",
			applog.FieldError, err, "template", "cost_units.html")
		InternalServerError("Could not render unit options").Write(w)
	}
}

// handleCostRecompute derives material and total cost from the submitted
// form. Recomputing with unchanged inputs yields the same result; the
// stone-only fields never enter the arithmetic.
func (s *Server) handleCostRecompute(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}
	if resp := ParseFormOrFail(r); resp != nil {
		resp.Write(w)
		return
	}

	input := ParseCostInput(r.Form)
	result := input.Compute()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct {
		MaterialCost string
		TotalCost    string
	}{
		MaterialCost: formatRupeesFloat(result.MaterialCost),
		TotalCost:    formatRupeesFloat(result.TotalCost),
	}
	if err := s.templates.ExecuteTemplate(w, "cost_result.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Cost result template execution failed",
			applog.FieldError, err, "template", "cost_result.html")
		InternalServerError("Could not render the cost result").Write(w)
	}
}
