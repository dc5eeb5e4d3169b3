package labinfo

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestHandler_Get_NullBeforeSetup(t *testing.T) {
	h, e := NewHandler(NewService(&mockRepo{})), echo.New()

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	if err := h.Get(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "null" {
		t.Errorf("expected JSON null before setup, got %s", body)
	}
}

func TestHandler_Create(t *testing.T) {
	h, e := NewHandler(NewService(&mockRepo{})), echo.New()

	body := `{"name":"Metacore Diagnostics","address":"45 MG Road","phone":"080-12345678","email":"lab@metacore.com"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := h.Create(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
}
