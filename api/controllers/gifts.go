package controllers

import (
	"net/http"

	"github.com/acarrillodev/wishtrack-backend/api/responses"
	"github.com/acarrillodev/wishtrack-backend/api/validators"
	"github.com/acarrillodev/wishtrack-backend/internal/gifts"
	pkgerrors "github.com/acarrillodev/wishtrack-backend/pkg/errors"
	"github.com/acarrillodev/wishtrack-backend/pkg/logger"
)

// GiftsList returns the user's gifts in stored order with the gift-type
// groups available to them.
func GiftsList(svc gifts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "gifts service unavailable"))
			return
		}

		userID, err := authedUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		page, err := svc.GetGifts(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, page)
	}
}

// GiftCreate adds a gift at the tail of its partition's ordering.
func GiftCreate(svc gifts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "gifts service unavailable"))
			return
		}

		userID, err := authedUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var req gifts.CreateGiftRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		gift, err := svc.CreateGift(ctx, userID, req)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, gift)
	}
}

// GiftUpdate applies partial changes to a gift, including moves between
// groups.
func GiftUpdate(svc gifts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "gifts service unavailable"))
			return
		}

		userID, err := authedUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		giftID, err := pathUUID(r, "giftId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var req gifts.UpdateGiftRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		gift, err := svc.UpdateGift(ctx, userID, giftID, req)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, gift)
	}
}

// GiftDelete removes a gift owned by the authenticated user.
func GiftDelete(svc gifts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "gifts service unavailable"))
			return
		}

		userID, err := authedUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		giftID, err := pathUUID(r, "giftId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.DeleteGift(ctx, userID, giftID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
