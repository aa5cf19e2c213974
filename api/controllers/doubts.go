package controllers

import (
	"net/http"

	"github.com/acarrillodev/wishtrack-backend/api/responses"
	"github.com/acarrillodev/wishtrack-backend/api/validators"
	"github.com/acarrillodev/wishtrack-backend/internal/doubts"
	pkgerrors "github.com/acarrillodev/wishtrack-backend/pkg/errors"
	"github.com/acarrillodev/wishtrack-backend/pkg/logger"
)

// DoubtsList returns the user's purchase doubts in stored order.
func DoubtsList(svc doubts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "doubts service unavailable"))
			return
		}

		userID, err := authedUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		list, err := svc.ListDoubts(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// DoubtCreate adds an unresolved doubt at the tail of the user's ordering.
func DoubtCreate(svc doubts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "doubts service unavailable"))
			return
		}

		userID, err := authedUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var req doubts.CreateDoubtRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		doubt, err := svc.CreateDoubt(ctx, userID, req)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, doubt)
	}
}

// DoubtUpdate edits an unresolved doubt's descriptive fields.
func DoubtUpdate(svc doubts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "doubts service unavailable"))
			return
		}

		userID, err := authedUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		doubtID, err := pathUUID(r, "doubtId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var req doubts.UpdateDoubtRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		doubt, err := svc.UpdateDoubt(ctx, userID, doubtID, req)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, doubt)
	}
}

// DoubtResolve settles a doubt exactly once as bought or dismissed.
func DoubtResolve(svc doubts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "doubts service unavailable"))
			return
		}

		userID, err := authedUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		doubtID, err := pathUUID(r, "doubtId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var req doubts.ResolveDoubtRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		doubt, err := svc.ResolveDoubt(ctx, userID, doubtID, req)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, doubt)
	}
}

// DoubtDelete removes a doubt owned by the authenticated user.
func DoubtDelete(svc doubts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "doubts service unavailable"))
			return
		}

		userID, err := authedUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		doubtID, err := pathUUID(r, "doubtId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.DeleteDoubt(ctx, userID, doubtID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
