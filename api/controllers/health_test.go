package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/acarrillodev/wishtrack-backend/pkg/config"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(ctx context.Context) error {
	return s.err
}

func healthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	return cfg
}

func TestHealthLive(t *testing.T) {
	handler := HealthLive(healthConfig())

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if got := rec.Header().Get("X-WishTrack-Env"); got != "test" {
		t.Fatalf("expected env header got %q", got)
	}
}

func TestHealthReadySuccess(t *testing.T) {
	handler := HealthReady(healthConfig(), nil, stubPinger{}, stubPinger{})

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}

func TestHealthReadyDatabaseDown(t *testing.T) {
	handler := HealthReady(healthConfig(), nil, stubPinger{err: errors.New("connection refused")}, stubPinger{})

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", rec.Code)
	}
}

func TestHealthReadyRedisDown(t *testing.T) {
	handler := HealthReady(healthConfig(), nil, stubPinger{}, stubPinger{err: errors.New("no reply")})

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", rec.Code)
	}
}
