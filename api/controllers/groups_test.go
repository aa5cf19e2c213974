package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/acarrillodev/wishtrack-backend/internal/groups"
	"github.com/acarrillodev/wishtrack-backend/pkg/enums"
	pkgerrors "github.com/acarrillodev/wishtrack-backend/pkg/errors"
)

type stubGroupService struct {
	list  []groups.GroupDTO
	group *groups.GroupDTO
	err   error

	listedType *enums.GroupType
}

func (s *stubGroupService) ListGroups(ctx context.Context, userID uuid.UUID, groupType *enums.GroupType) ([]groups.GroupDTO, error) {
	s.listedType = groupType
	return s.list, s.err
}

func (s *stubGroupService) CreateGroup(ctx context.Context, userID uuid.UUID, req groups.CreateGroupRequest) (*groups.GroupDTO, error) {
	return s.group, s.err
}

func (s *stubGroupService) UpdateGroup(ctx context.Context, userID, groupID uuid.UUID, req groups.UpdateGroupRequest) (*groups.GroupDTO, error) {
	return s.group, s.err
}

func (s *stubGroupService) DeleteGroup(ctx context.Context, userID, groupID uuid.UUID) error {
	return s.err
}

func TestGroupsListForwardsTypeFilter(t *testing.T) {
	svc := &stubGroupService{list: []groups.GroupDTO{{ID: uuid.New(), Name: "Tech", Type: enums.GroupTypeWish, Order: 1}}}
	handler := GroupsList(svc, nil)

	req := authedRequest(http.MethodGet, "/api/v1/groups?type=wish", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.listedType == nil || *svc.listedType != enums.GroupTypeWish {
		t.Fatalf("expected wish filter got %v", svc.listedType)
	}

	var envelope struct {
		Data []groups.GroupDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].Name != "Tech" {
		t.Fatalf("expected one group got %+v", envelope.Data)
	}
}

func TestGroupsListRejectsUnknownType(t *testing.T) {
	handler := GroupsList(&stubGroupService{}, nil)

	req := authedRequest(http.MethodGet, "/api/v1/groups?type=birthday", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestGroupCreateConflictOnDuplicateName(t *testing.T) {
	svc := &stubGroupService{err: pkgerrors.New(pkgerrors.CodeConflict, "group name already in use")}
	handler := GroupCreate(svc, nil)

	body := bytes.NewBufferString(`{"name":"Tech","type":"wish"}`)
	req := authedRequest(http.MethodPost, "/api/v1/groups", body)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", rec.Code)
	}
}

func TestGroupUpdateRequiresName(t *testing.T) {
	handler := GroupUpdate(&stubGroupService{}, nil)

	groupID := uuid.New()
	body := bytes.NewBufferString(`{}`)
	req := authedRequest(http.MethodPatch, "/api/v1/groups/"+groupID.String(), body)
	req = withURLParam(req, "groupId", groupID.String())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestGroupDeleteSuccess(t *testing.T) {
	handler := GroupDelete(&stubGroupService{}, nil)

	groupID := uuid.New()
	req := authedRequest(http.MethodDelete, "/api/v1/groups/"+groupID.String(), nil)
	req = withURLParam(req, "groupId", groupID.String())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}
