package validator_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgvalidator "github.com/ghuser/wherearethenoodles/pkg/validator"
)

type itemReq struct {
	Name           string `json:"name"            validate:"required,notblank,max=255"`
	Location       string `json:"location"        validate:"required,location"`
	ExpirationDate string `json:"expiration_date" validate:"omitempty,date"`
	Sort           string `json:"sort"            validate:"omitempty,oneof=name created"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		in        itemReq
		wantField string
		wantMsg   string
	}{
		{"valid", itemReq{Name: "Rice", Location: "cupboard"}, "", ""},
		{"valid mixed case location", itemReq{Name: "Rice", Location: " Fridge "}, "", ""},
		{"valid date", itemReq{Name: "Milk", Location: "fridge", ExpirationDate: "2026-10-25"}, "", ""},
		{"missing name", itemReq{Location: "fridge"}, "name", "This field is required"},
		{"blank name", itemReq{Name: "   ", Location: "fridge"}, "name", "Must not be blank"},
		{"long name", itemReq{Name: strings.Repeat("a", 256), Location: "fridge"}, "name", "Maximum length is 255"},
		{"unknown location", itemReq{Name: "Rice", Location: "garage"}, "location", "Must be one of: cupboard, fridge, freezer"},
		{"bad date", itemReq{Name: "Rice", Location: "cupboard", ExpirationDate: "25/10/2026"}, "expiration_date", "Must be a date in YYYY-MM-DD format"},
		{"bad oneof", itemReq{Name: "Rice", Location: "cupboard", Sort: "size"}, "sort", "Must be one of: name, created"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.in
			err := pkgvalidator.Validate(&in)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			m := pkgvalidator.FormatValidationErrors(err)
			if m[tt.wantField] != tt.wantMsg {
				t.Errorf("%s: got %q, want %q (all: %v)", tt.wantField, m[tt.wantField], tt.wantMsg, m)
			}
		})
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}

// --- ValidateRequest ---

func TestValidateRequest_valid(t *testing.T) {
	body := `{"name":"Rice","location":"cupboard"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Name != "Rice" {
		t.Errorf("unexpected Name: %q", req.Name)
	}
}

func TestValidateRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid JSON") {
		t.Errorf("expected 'Invalid JSON' in body, got: %s", w.Body.String())
	}
}

func TestValidateRequest_tooLarge(t *testing.T) {
	body := `{"name":"` + strings.Repeat("x", 64) + `","location":"cupboard"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.Body = http.MaxBytesReader(w, r.Body, 16)

	if _, ok := pkgvalidator.ValidateRequest[itemReq](w, r); ok {
		t.Fatal("expected ok=false past the body cap")
	}
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", w.Code)
	}
}

func TestValidateRequest_validationFailure(t *testing.T) {
	body := `{"name":"","location":"attic"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.ValidateRequest[itemReq](w, r)
	if ok {
		t.Fatal("expected ok=false")
	}
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
	for _, want := range []string{"Validation failed", `"name"`, `"location"`} {
		if !strings.Contains(w.Body.String(), want) {
			t.Errorf("expected %s in body, got: %s", want, w.Body.String())
		}
	}
}
