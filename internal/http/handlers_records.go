package http

import (
	"errors"
	"html/template"
	"net/http"

	applog "stockboard/internal/log"
)

// handleCreateRecord accepts a record submission into the ledger.
// Submitted records never join the dashboard's fixed dataset; they flow
// to the export pipeline instead.
func (s *Server) handleCreateRecord(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}
	if s.creator == nil {
		ServiceUnavailableError("Record submission is not configured").Write(w)
		return
	}
	if resp := ParseFormOrFail(r); resp != nil {
		resp.Write(w)
		return
	}

	rec, err := ParseRecordForm(r.Form)
	if err != nil {
		var fieldErr *FieldError
		if errors.As(err, &fieldErr) {
			UnprocessableEntityError("Invalid value for " + fieldErr.Field).Write(w)
			return
		}
		UnprocessableEntityError(err.Error()).Write(w)
		return
	}

	id, err := s.creator.Create(r.Context(), rec)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Record submission failed",
			applog.FieldError, err,
			applog.FieldProduct, rec.Product)
		InternalServerError("Could not save the record").Write(w)
		return
	}
	if s.metrics != nil {
		s.metrics.RecordsSubmitted.Inc()
	}

	NewHTMXResponse().
		TriggerRecordCreated(id).
		TriggerFormReset().
		TriggerSuccessNotification("Record saved: " + rec.Product).
		BodyHTML(`<div class="success">Record saved: ` + template.HTMLEscapeString(rec.Product) + `</div>`).
		Write(w)
}
