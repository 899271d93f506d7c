package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeProber struct {
	status int
	err    error
}

func (f *fakeProber) Probe(ctx context.Context, path string) (int, error) {
	return f.status, f.err
}

func TestHealthAPI(t *testing.T) {
	h := NewHealthHandler(&fakeProber{})

	w := httptest.NewRecorder()
	h.API(w, httptest.NewRequest(http.MethodGet, "/v1/health/api", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if msg := decodeMsg(t, w); msg != "2epi2day4you" {
		t.Fatalf("msg = %q", msg)
	}
}

func TestHealthIntra(t *testing.T) {
	tests := []struct {
		name   string
		prober *fakeProber
		want   int
		msg    string
	}{
		{"anonymous refusal means up", &fakeProber{status: http.StatusForbidden}, http.StatusOK, "okay"},
		{"unreachable", &fakeProber{err: errors.New("dial tcp: timeout")}, http.StatusServiceUnavailable, "error"},
		{"unexpected status", &fakeProber{status: http.StatusOK}, http.StatusInternalServerError, "down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(tt.prober)

			w := httptest.NewRecorder()
			h.Intra(w, httptest.NewRequest(http.MethodGet, "/v1/health/intra", nil))

			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d", w.Code, tt.want)
			}
			if msg := decodeMsg(t, w); msg != tt.msg {
				t.Fatalf("msg = %q, want %q", msg, tt.msg)
			}
		})
	}
}
