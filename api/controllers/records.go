package controllers

import (
	"net/http"
	"strings"

	"github.com/acarrillodev/wishtrack-backend/api/responses"
	"github.com/acarrillodev/wishtrack-backend/api/validators"
	"github.com/acarrillodev/wishtrack-backend/internal/records"
	"github.com/acarrillodev/wishtrack-backend/pkg/enums"
	pkgerrors "github.com/acarrillodev/wishtrack-backend/pkg/errors"
	"github.com/acarrillodev/wishtrack-backend/pkg/logger"
	"github.com/acarrillodev/wishtrack-backend/pkg/pagination"
)

// RecordsList returns a cursor-paginated page of the user's ledger with
// optional type, tag and date filters.
func RecordsList(svc records.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "records service unavailable"))
			return
		}

		userID, err := authedUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		query, err := parseRecordsQuery(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		page, err := svc.ListRecords(ctx, userID, query)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, page)
	}
}

// RecordCreate logs a new income or expense record.
func RecordCreate(svc records.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "records service unavailable"))
			return
		}

		userID, err := authedUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var req records.CreateRecordRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		record, err := svc.CreateRecord(ctx, userID, req)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, record)
	}
}

// RecordUpdate applies partial changes to a record. A tag_ids array
// replaces the full tag set.
func RecordUpdate(svc records.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "records service unavailable"))
			return
		}

		userID, err := authedUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		recordID, err := pathUUID(r, "recordId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var req records.UpdateRecordRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		record, err := svc.UpdateRecord(ctx, userID, recordID, req)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, record)
	}
}

// RecordDelete removes a record owned by the authenticated user.
func RecordDelete(svc records.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "records service unavailable"))
			return
		}

		userID, err := authedUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		recordID, err := pathUUID(r, "recordId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.DeleteRecord(ctx, userID, recordID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

func parseRecordsQuery(r *http.Request) (records.ListRecordsQuery, error) {
	var query records.ListRecordsQuery

	if raw := strings.TrimSpace(r.URL.Query().Get("type")); raw != "" {
		parsed, err := enums.ParseRecordType(raw)
		if err != nil {
			return query, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid record type")
		}
		query.Type = &parsed
	}

	tagID, err := validators.ParseQueryUUID(r, "tag_id")
	if err != nil {
		return query, err
	}
	query.TagID = tagID

	from, err := validators.ParseQueryTime(r, "from")
	if err != nil {
		return query, err
	}
	query.From = from

	to, err := validators.ParseQueryTime(r, "to")
	if err != nil {
		return query, err
	}
	query.To = to

	limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
	if err != nil {
		return query, err
	}
	query.Limit = limit
	query.Cursor = strings.TrimSpace(r.URL.Query().Get("cursor"))

	return query, nil
}
