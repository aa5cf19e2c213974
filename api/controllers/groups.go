package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/acarrillodev/wishtrack-backend/api/responses"
	"github.com/acarrillodev/wishtrack-backend/api/validators"
	"github.com/acarrillodev/wishtrack-backend/internal/groups"
	"github.com/acarrillodev/wishtrack-backend/pkg/enums"
	pkgerrors "github.com/acarrillodev/wishtrack-backend/pkg/errors"
	"github.com/acarrillodev/wishtrack-backend/pkg/logger"
)

// GroupsList returns the user's groups ordered by position, optionally
// filtered by type.
func GroupsList(svc groups.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "groups service unavailable"))
			return
		}

		userID, err := authedUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var groupType *enums.GroupType
		if raw := strings.TrimSpace(r.URL.Query().Get("type")); raw != "" {
			parsed, err := enums.ParseGroupType(raw)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid group type"))
				return
			}
			groupType = &parsed
		}

		list, err := svc.ListGroups(ctx, userID, groupType)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// GroupCreate adds a group at the tail of the user's ordering for its type.
func GroupCreate(svc groups.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "groups service unavailable"))
			return
		}

		userID, err := authedUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var req groups.CreateGroupRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		group, err := svc.CreateGroup(ctx, userID, req)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, group)
	}
}

// GroupUpdate renames a group owned by the authenticated user.
func GroupUpdate(svc groups.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "groups service unavailable"))
			return
		}

		userID, err := authedUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		groupID, err := pathUUID(r, "groupId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var req groups.UpdateGroupRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		group, err := svc.UpdateGroup(ctx, userID, groupID, req)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, group)
	}
}

// GroupDelete removes a group. Items in the group survive ungrouped.
func GroupDelete(svc groups.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "groups service unavailable"))
			return
		}

		userID, err := authedUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		groupID, err := pathUUID(r, "groupId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.DeleteGroup(ctx, userID, groupID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// pathUUID parses a chi URL parameter as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(chi.URLParam(r, name))
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, name+" is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid "+name)
	}
	return id, nil
}
