package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"handoff/internal/platform/net/middleware"
)

func TestAccessLogPassesResponseThrough(t *testing.T) {
	mw := middleware.AccessLog(middleware.AccessLogOptions{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/reports/runs", nil)
	rr := httptest.NewRecorder()

	mw(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated || rr.Body.String() != "ok" {
		t.Fatalf("response altered: %d %q", rr.Code, rr.Body.String())
	}
}

func TestAccessLogSlowThresholdKeepsResponse(t *testing.T) {
	mw := middleware.AccessLog(middleware.AccessLogOptions{Slow: time.Nanosecond})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Microsecond)
		_, _ = w.Write([]byte("a"))
		_, _ = w.Write([]byte("b"))
	})

	req := httptest.NewRequest(http.MethodGet, "/slow", nil)
	rr := httptest.NewRecorder()

	mw(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK || rr.Body.String() != "ab" {
		t.Fatalf("response altered: %d %q", rr.Code, rr.Body.String())
	}
}
