package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHTMXResponseBuilderTriggers(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHTMXResponse().
		TriggerRecordCreated(42).
		TriggerFormReset().
		BodyHTML(`<div class="success">ok</div>`).
		Write(rec)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}

	header := rec.Header().Get("HX-Trigger")
	if header == "" {
		t.Fatal("missing HX-Trigger header")
	}
	var triggers map[string]json.RawMessage
	if err := json.Unmarshal([]byte(header), &triggers); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}
	if _, ok := triggers["record:created"]; !ok {
		t.Error("missing record:created trigger")
	}
	if _, ok := triggers["form:reset"]; !ok {
		t.Error("missing form:reset trigger")
	}
	if !strings.Contains(rec.Body.String(), "success") {
		t.Errorf("unexpected body: %q", rec.Body.String())
	}
}

func TestHTMXResponseBuilderNotification(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHTMXResponse().TriggerSuccessNotification("saved").Write(rec)

	var triggers map[string]map[string]any
	if err := json.Unmarshal([]byte(rec.Header().Get("HX-Trigger")), &triggers); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}
	notif, ok := triggers["show-notification"]
	if !ok {
		t.Fatal("missing show-notification trigger")
	}
	if notif["type"] != "success" || notif["message"] != "saved" {
		t.Errorf("unexpected notification payload: %+v", notif)
	}
}

func TestErrorResponseEscapesMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	UnprocessableEntityError(`<script>alert(1)</script>`).Write(rec)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "<script>") {
		t.Error("error message was not HTML-escaped")
	}
}

func TestRequireMethod(t *testing.T) {
	get := httptest.NewRequest(http.MethodGet, "/records", nil)
	resp := RequirePOST(get)
	if resp == nil {
		t.Fatal("GET should be rejected by RequirePOST")
	}

	rec := httptest.NewRecorder()
	resp.Write(rec)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
	if rec.Header().Get("Allow") != http.MethodPost {
		t.Errorf("Allow = %q, want POST", rec.Header().Get("Allow"))
	}

	post := httptest.NewRequest(http.MethodPost, "/records", nil)
	if RequirePOST(post) != nil {
		t.Error("POST should pass RequirePOST")
	}
}
