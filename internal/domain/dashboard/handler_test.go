package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestHandler_GetSummary(t *testing.T) {
	h := NewHandler(newTestService())
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	if err := h.GetSummary(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var s Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &s); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.Appointments.Date.String() != "2024-10-19" || s.Appointments.Today != 6 {
		t.Errorf("unexpected appointments: %+v", s.Appointments)
	}
}

func TestHandler_GetSummary_DateParam(t *testing.T) {
	h := NewHandler(newTestService())
	e := echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/?date=2024-10-20", nil), rec)
	if err := h.GetSummary(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var s Summary
	_ = json.Unmarshal(rec.Body.Bytes(), &s)
	if s.Appointments.Today != 2 {
		t.Errorf("today = %d, want 2", s.Appointments.Today)
	}

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/?date=10/20/2024", nil), httptest.NewRecorder())
	err := h.GetSummary(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed date, got %v", err)
	}
}
