package httpkit

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGetRegistersAndServes(t *testing.T) {
	r := &fakeRouter{}
	Get(r, "/runs", func(*http.Request) (any, error) {
		return map[string]int{"total": 3}, nil
	})

	if len(r.verbCalls) != 1 || r.verbCalls[0].verb != "GET" || r.verbCalls[0].path != "/runs" {
		t.Fatalf("registrations = %+v, want GET /runs", r.verbCalls)
	}

	rec := httptest.NewRecorder()
	r.verbCalls[0].h(rec, httptest.NewRequest(http.MethodGet, "/runs", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"total":3`) {
		t.Fatalf("served %d %q", rec.Code, rec.Body.String())
	}
}

func TestPostJSONValidatesBody(t *testing.T) {
	type scanReq struct {
		Root string `json:"root" validate:"required"`
	}

	r := &fakeRouter{}
	PostJSON[scanReq](r, "/scan", func(_ *http.Request, in scanReq) (any, error) {
		return map[string]string{"root": in.Root}, nil
	})

	if len(r.verbCalls) != 1 || r.verbCalls[0].verb != "POST" || r.verbCalls[0].path != "/scan" {
		t.Fatalf("registrations = %+v, want POST /scan", r.verbCalls)
	}
	h := r.verbCalls[0].h

	// valid body reaches the handler
	req := httptest.NewRequest(http.MethodPost, "/scan", bytes.NewBufferString(`{"root":"/data"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "/data") {
		t.Fatalf("valid body served %d %q", rec.Code, rec.Body.String())
	}

	// missing required field is rejected before the handler runs
	req2 := httptest.NewRequest(http.MethodPost, "/scan", bytes.NewBufferString(`{}`))
	req2.Header.Set("Content-Type", "application/json")
	rec2 := httptest.NewRecorder()
	h(rec2, req2)
	if rec2.Code != http.StatusBadRequest {
		t.Fatalf("empty body served %d, want 400", rec2.Code)
	}
}
