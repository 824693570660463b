package resp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ncobase/pager/ecode"
)

func TestSuccess(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w, map[string]any{"id": "1"})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["id"] != "1" {
		t.Errorf("body = %v", body)
	}
}

func TestSuccessMessageOnly(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w, "created")

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["message"] != "created" {
		t.Errorf("message = %v, want created", body["message"])
	}
}

func TestFail(t *testing.T) {
	w := httptest.NewRecorder()
	Fail(w, ParamInvalid("take must not be zero"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var body Exception
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Code != ecode.ParamErr {
		t.Errorf("code = %d, want %d", body.Code, ecode.ParamErr)
	}
	if body.Message != "take must not be zero" {
		t.Errorf("message = %q", body.Message)
	}
}

func TestFailDefaultsFromCode(t *testing.T) {
	w := httptest.NewRecorder()
	Fail(w, &Exception{Code: ecode.NotFound})

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var body Exception
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Message != ecode.Text(ecode.NotFound) {
		t.Errorf("message = %q, want %q", body.Message, ecode.Text(ecode.NotFound))
	}
}

func TestFailNil(t *testing.T) {
	w := httptest.NewRecorder()
	Fail(w, nil)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}
