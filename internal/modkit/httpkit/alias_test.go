package httpkit

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	phttp "handoff/internal/platform/net/http"
)

// run executes a Handler and returns status code and body
func run(h Handler, r *http.Request) (int, string) {
	rec := httptest.NewRecorder()
	h(rec, r)
	res := rec.Result()
	defer func() { _ = res.Body.Close() }()

	b, _ := io.ReadAll(res.Body)
	return rec.Code, string(b)
}

func TestCallWrapsPlainValue(t *testing.T) {
	h := Call(func(_ *http.Request) (any, error) {
		return map[string]string{"a": "1"}, nil
	})
	code, body := run(h, httptest.NewRequest(http.MethodGet, "/y", nil))
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if !strings.Contains(body, `"a":"1"`) {
		t.Fatalf("body %q missing payload", body)
	}
}

func TestCallPassesResponseThrough(t *testing.T) {
	h := Call(func(_ *http.Request) (any, error) {
		return phttp.Response{Status: http.StatusAccepted, Body: "queued"}, nil
	})
	code, body := run(h, httptest.NewRequest(http.MethodGet, "/y", nil))
	if code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", code)
	}
	if !strings.Contains(body, "queued") {
		t.Fatalf("body %q missing payload", body)
	}
}

func TestCallMapsError(t *testing.T) {
	h := Call(func(_ *http.Request) (any, error) {
		return nil, errors.New("nah")
	})
	code, body := run(h, httptest.NewRequest(http.MethodGet, "/y", nil))
	if code < 400 {
		t.Fatalf("status = %d, want an error status", code)
	}
	if !strings.Contains(body, "nah") {
		t.Fatalf("body %q missing error message", body)
	}
}
