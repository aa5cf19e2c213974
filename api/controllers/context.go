package controllers

import (
	"context"

	"github.com/google/uuid"

	"github.com/acarrillodev/wishtrack-backend/api/middleware"
	pkgerrors "github.com/acarrillodev/wishtrack-backend/pkg/errors"
)

// authedUserID resolves the authenticated user from the request context.
// The auth middleware guarantees the value for protected routes; an empty
// or malformed value means the route was wired without it.
func authedUserID(ctx context.Context) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(ctx)
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing user context")
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid user context")
	}
	return userID, nil
}
