package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/acarrillodev/wishtrack-backend/internal/doubts"
	"github.com/acarrillodev/wishtrack-backend/pkg/enums"
	pkgerrors "github.com/acarrillodev/wishtrack-backend/pkg/errors"
)

type stubDoubtService struct {
	list  []doubts.DoubtDTO
	doubt *doubts.DoubtDTO
	err   error
}

func (s *stubDoubtService) ListDoubts(ctx context.Context, userID uuid.UUID) ([]doubts.DoubtDTO, error) {
	return s.list, s.err
}

func (s *stubDoubtService) CreateDoubt(ctx context.Context, userID uuid.UUID, req doubts.CreateDoubtRequest) (*doubts.DoubtDTO, error) {
	return s.doubt, s.err
}

func (s *stubDoubtService) UpdateDoubt(ctx context.Context, userID, doubtID uuid.UUID, req doubts.UpdateDoubtRequest) (*doubts.DoubtDTO, error) {
	return s.doubt, s.err
}

func (s *stubDoubtService) ResolveDoubt(ctx context.Context, userID, doubtID uuid.UUID, req doubts.ResolveDoubtRequest) (*doubts.DoubtDTO, error) {
	return s.doubt, s.err
}

func (s *stubDoubtService) DeleteDoubt(ctx context.Context, userID, doubtID uuid.UUID) error {
	return s.err
}

func TestDoubtResolveReturnsDecision(t *testing.T) {
	decision := enums.DoubtDecisionBought
	resolvedAt := time.Now().UTC()
	svc := &stubDoubtService{doubt: &doubts.DoubtDTO{
		ID:         uuid.New(),
		Name:       "Mechanical keyboard",
		Decision:   &decision,
		ResolvedAt: &resolvedAt,
	}}
	handler := DoubtResolve(svc, nil)

	doubtID := uuid.New()
	body := bytes.NewBufferString(`{"decision":"bought"}`)
	req := authedRequest(http.MethodPost, "/api/v1/doubts/"+doubtID.String()+"/resolve", body)
	req = withURLParam(req, "doubtId", doubtID.String())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var envelope struct {
		Data doubts.DoubtDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Decision == nil || *envelope.Data.Decision != enums.DoubtDecisionBought {
		t.Fatalf("expected bought decision got %+v", envelope.Data.Decision)
	}
	if envelope.Data.ResolvedAt == nil {
		t.Fatalf("expected resolved_at to be set")
	}
}

func TestDoubtResolveRejectsUnknownDecision(t *testing.T) {
	handler := DoubtResolve(&stubDoubtService{}, nil)

	doubtID := uuid.New()
	body := bytes.NewBufferString(`{"decision":"maybe"}`)
	req := authedRequest(http.MethodPost, "/api/v1/doubts/"+doubtID.String()+"/resolve", body)
	req = withURLParam(req, "doubtId", doubtID.String())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestDoubtResolveAlreadySettledIsConflict(t *testing.T) {
	svc := &stubDoubtService{err: pkgerrors.New(pkgerrors.CodeConflict, "doubt already resolved")}
	handler := DoubtResolve(svc, nil)

	doubtID := uuid.New()
	body := bytes.NewBufferString(`{"decision":"dismissed"}`)
	req := authedRequest(http.MethodPost, "/api/v1/doubts/"+doubtID.String()+"/resolve", body)
	req = withURLParam(req, "doubtId", doubtID.String())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", rec.Code)
	}
}
