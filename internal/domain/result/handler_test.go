package result

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/metacore/lims/internal/platform/apperr"
)

func newTestHandler() (*Handler, uuid.UUID, *echo.Echo) {
	svc, _, patientID := newTestService()
	return NewHandler(svc), patientID, echo.New()
}

func TestHandler_CreateBatch(t *testing.T) {
	h, patientID, e := newTestHandler()
	body := fmt.Sprintf(`{"patientId":%q,"category":"Biochemistry Tests","subcategory":"Blood Sugar","tests":[{"testName":"FBS","value":"95","normalRange":"70-110","unit":"mg/dL"}]}`, patientID)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.CreateBatch(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["message"] != "Test results added successfully" {
		t.Errorf("unexpected message: %s", resp["message"])
	}
}

func TestHandler_CreateBatch_EmptyTests(t *testing.T) {
	h, patientID, e := newTestHandler()
	body := fmt.Sprintf(`{"patientId":%q,"category":"Biochemistry Tests","subcategory":"Blood Sugar","tests":[]}`, patientID)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.CreateBatch(c)
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestHandler_List_Wire(t *testing.T) {
	h, patientID, e := newTestHandler()
	body := fmt.Sprintf(`{"patientId":%q,"category":"Biochemistry Tests","subcategory":"Blood Sugar","tests":[{"testName":"FBS","value":"95"}]}`, patientID)
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if err := h.CreateBatch(e.NewContext(req, httptest.NewRecorder())); err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var list []map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 result, got %d", len(list))
	}
	got := list[0]
	if got["testName"] != "FBS" || got["value"] != "95" {
		t.Errorf("unexpected result payload: %v", got)
	}
	if got["patientName"] != "Asha Verma" || got["patientCode"] != "PAT000001" {
		t.Errorf("expected joined patient fields, got %v", got)
	}
	if _, ok := got["normalRange"]; !ok {
		t.Errorf("expected normalRange key (null allowed), got %v", got)
	}
}

func TestHandler_Delete_NotFound(t *testing.T) {
	h, _, e := newTestHandler()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	err := h.Delete(c)
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Errorf("expected not-found, got %v", err)
	}
}

func TestHandler_Delete_InvalidID(t *testing.T) {
	h, _, e := newTestHandler()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("42")

	err := h.Delete(c)
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}
