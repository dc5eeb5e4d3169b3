package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want Kind
	}{
		{MissingField("fullName"), KindValidation},
		{Auth("invalid token"), KindAuth},
		{NotFound("patient not found"), KindNotFound},
		{Conflict("patient code already exists"), KindConflict},
		{fmt.Errorf("wrapped: %w", NotFound("gone")), KindNotFound},
		{errors.New("plain"), KindInternal},
		{nil, KindInternal},
	}
	for _, tt := range tests {
		if got := KindOf(tt.err); got != tt.want {
			t.Errorf("KindOf(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestMissingField_Message(t *testing.T) {
	err := MissingField("contactNumber")
	if err.Error() != "Missing required field: contactNumber" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	HTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	return rec, body
}

func TestHTTPErrorHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
		wantMsg  string
	}{
		{MissingField("name"), http.StatusBadRequest, "Missing required field: name"},
		{Conflict("email already in use"), http.StatusBadRequest, "email already in use"},
		{Auth("token has expired"), http.StatusUnauthorized, "token has expired"},
		{NotFound("patient not found"), http.StatusNotFound, "patient not found"},
		{errors.New("pq: broken"), http.StatusInternalServerError, "internal server error"},
		{echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"), http.StatusMethodNotAllowed, "method not allowed"},
	}
	for _, tt := range tests {
		rec, body := renderError(t, tt.err)
		if rec.Code != tt.wantCode {
			t.Errorf("%v: expected status %d, got %d", tt.err, tt.wantCode, rec.Code)
		}
		if body["error"] != tt.wantMsg {
			t.Errorf("%v: expected message %q, got %q", tt.err, tt.wantMsg, body["error"])
		}
	}
}
