package web

import (
	"bytes"
	"errors"
	"log/slog"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JonMunkholm/nutrientcalc/internal/core"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&core.NotFoundError{Code: "Z"}, http.StatusNotFound},
		{fmt.Errorf("wrap: %w", core.ErrInvalidQuantity), http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestRespondError_HTML(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	respondError(rec, req, &core.NotFoundError{Code: "Z999"})

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if !strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html") {
		t.Errorf("Content-Type = %q, want text/html", rec.Header().Get("Content-Type"))
	}
	if !strings.Contains(rec.Body.String(), "FOOD001") {
		t.Errorf("body missing code: %s", rec.Body.String())
	}
}

func TestRespondError_LogLevel(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"known error logs a warning", &core.NotFoundError{Code: "Z999"}, "level=WARN"},
		{"unknown error logs an error", errors.New("boom"), "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			prev := slog.Default()
			slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
			defer slog.SetDefault(prev)

			respondError(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/foods/x", nil), tt.err)

			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("log %q missing %q", buf.String(), tt.want)
			}
		})
	}
}

func TestWantsJSON(t *testing.T) {
	api := httptest.NewRequest(http.MethodGet, "/api/foods", nil)
	page := httptest.NewRequest(http.MethodGet, "/", nil)
	accept := httptest.NewRequest(http.MethodGet, "/", nil)
	accept.Header.Set("Accept", "application/json")

	if !wantsJSON(api) {
		t.Error("API path should want JSON")
	}
	if wantsJSON(page) {
		t.Error("page should not want JSON")
	}
	if !wantsJSON(accept) {
		t.Error("Accept: application/json should want JSON")
	}
}
