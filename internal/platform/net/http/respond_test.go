package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "handoff/internal/platform/errors"
	lumnet "handoff/internal/platform/net"
	phttp "handoff/internal/platform/net/http"
)

func reqWithID(rid string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/v1/reports/runs", nil)
	return req.WithContext(lumnet.WithRequest(req.Context(), rid, ""))
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	var env phttp.Envelope
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func TestJSONWritesStatusAndContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.JSON(rec, http.StatusTeapot, map[string]any{"k": "v"})

	if rec.Code != http.StatusTeapot {
		t.Fatalf("status: %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content type: %q", ct)
	}
}

func TestHandleOKEnvelope(t *testing.T) {
	h := phttp.Handle(func(r *http.Request) phttp.Response {
		return phttp.OK(map[string]any{"run_id": "r1"})
	})

	rec := httptest.NewRecorder()
	h(rec, reqWithID("req-7"))

	env := decodeEnvelope(t, rec)
	if env.StatusCode != http.StatusOK || env.Status != "OK" {
		t.Fatalf("envelope: %+v", env)
	}
	if env.RequestID != "req-7" {
		t.Fatalf("request id: %q", env.RequestID)
	}
	if env.Error != "" || env.Code != 0 {
		t.Fatalf("unexpected error fields: %+v", env)
	}
}

func TestHandleErrorEnvelopeDerivesStatus(t *testing.T) {
	h := phttp.Handle(func(r *http.Request) phttp.Response {
		return phttp.Error(perr.New(perr.ErrorCodeNotFound, "no such run"))
	})

	rec := httptest.NewRecorder()
	h(rec, reqWithID("req-8"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Code != perr.ErrorCodeNotFound || env.Error != "no such run" {
		t.Fatalf("envelope: %+v", env)
	}
	if env.RequestID != "req-8" {
		t.Fatalf("request id: %q", env.RequestID)
	}
}

func TestHandleZeroStatusDefaultsToOK(t *testing.T) {
	h := phttp.Handle(func(r *http.Request) phttp.Response {
		return phttp.Response{Body: "x"}
	})

	rec := httptest.NewRecorder()
	h(rec, reqWithID(""))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d", rec.Code)
	}
}

func TestHandleCustomHeaders(t *testing.T) {
	h := phttp.Handle(func(r *http.Request) phttp.Response {
		hdr := http.Header{}
		hdr.Set("X-Run-ID", "r1")
		return phttp.Response{Status: http.StatusOK, Body: "x", Header: hdr}
	})

	rec := httptest.NewRecorder()
	h(rec, reqWithID(""))

	if rec.Header().Get("X-Run-ID") != "r1" {
		t.Fatal("custom header lost")
	}
}
