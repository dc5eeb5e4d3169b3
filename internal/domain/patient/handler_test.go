package patient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/metacore/lims/internal/platform/apperr"
)

func newTestHandler() (*Handler, *echo.Echo) {
	h := NewHandler(NewService(newMockRepo()))
	return h, echo.New()
}

func TestHandler_Create(t *testing.T) {
	h, e := newTestHandler()
	body := `{"fullName":"Asha Verma","age":34,"gender":"Female","contactNumber":"9876543210","email":"asha@example.com","patientCode":"PAT000001","address":"12 Lake Road"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
}

func TestHandler_Create_MissingField(t *testing.T) {
	h, e := newTestHandler()
	body := `{"fullName":"Asha Verma"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestHandler_List_RoundTrip(t *testing.T) {
	h, e := newTestHandler()
	body := `{"fullName":"Asha Verma","age":34,"gender":"Female","contactNumber":"9876543210","email":"asha@example.com","patientCode":"PAT000001","address":"12 Lake Road"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	if err := h.Create(c); err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var list []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 patient, got %d", len(list))
	}
	if list[0]["fullName"] != "Asha Verma" {
		t.Errorf("expected camelCase fullName on the wire, got %v", list[0])
	}
	if refBy, ok := list[0]["refBy"]; !ok || refBy != "" {
		t.Errorf("expected refBy defaulted to empty string, got %v", refBy)
	}
}

func TestHandler_Delete_NotFound(t *testing.T) {
	h, e := newTestHandler()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	err := h.Delete(c)
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not-found, got %v", err)
	}
}

func TestHandler_Update_InvalidID(t *testing.T) {
	h, e := newTestHandler()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Update(c)
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestHandler_LatestCode(t *testing.T) {
	h, e := newTestHandler()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	if err := h.LatestCode(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["code"] != "PAT000001" {
		t.Errorf("expected PAT000001, got %s", body["code"])
	}
}
