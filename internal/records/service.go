package records

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acarrillodev/wishtrack-backend/pkg/db/models"
	pkgerrors "github.com/acarrillodev/wishtrack-backend/pkg/errors"
)

// Service exposes business rules for the financial ledger.
type Service interface {
	ListRecords(ctx context.Context, userID uuid.UUID, query ListRecordsQuery) (*RecordsPageDTO, error)
	CreateRecord(ctx context.Context, userID uuid.UUID, req CreateRecordRequest) (*RecordDTO, error)
	UpdateRecord(ctx context.Context, userID, recordID uuid.UUID, req UpdateRecordRequest) (*RecordDTO, error)
	DeleteRecord(ctx context.Context, userID, recordID uuid.UUID) error
}

type recordRepository interface {
	List(ctx context.Context, userID uuid.UUID, query ListRecordsQuery) (RecordsPageDTO, error)
	Create(ctx context.Context, record *models.Record) (*models.Record, error)
	Update(ctx context.Context, userID, id uuid.UUID, updates map[string]any, tagSet []models.Tag) (*models.Record, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type tagRepository interface {
	FindByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]models.Tag, error)
}

// ServiceParams bundles the dependencies required to build a records service.
type ServiceParams struct {
	RecordRepo recordRepository
	TagRepo    tagRepository
}

type service struct {
	records recordRepository
	tags    tagRepository
}

// NewService constructs a records service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.RecordRepo == nil {
		return nil, fmt.Errorf("record repository is required")
	}
	if params.TagRepo == nil {
		return nil, fmt.Errorf("tag repository is required")
	}
	return &service{
		records: params.RecordRepo,
		tags:    params.TagRepo,
	}, nil
}

// ListRecords returns a cursor page of the ledger with filters applied.
func (s *service) ListRecords(ctx context.Context, userID uuid.UUID, query ListRecordsQuery) (*RecordsPageDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if query.Type != nil && !query.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid record type")
	}

	page, err := s.records.List(ctx, userID, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "list records")
	}
	return &page, nil
}

// CreateRecord logs a new ledger entry with its tag set.
func (s *service) CreateRecord(ctx context.Context, userID uuid.UUID, req CreateRecordRequest) (*RecordDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if !req.Type.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid record type")
	}
	if req.Amount.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "amount cannot be negative")
	}

	tagSet, err := s.resolveTags(ctx, userID, req.TagIDs)
	if err != nil {
		return nil, err
	}

	record := &models.Record{
		Name:       strings.TrimSpace(req.Name),
		Amount:     req.Amount,
		Type:       req.Type,
		Notes:      req.Notes,
		OccurredAt: req.OccurredAt,
		UserID:     userID,
		Tags:       tagSet,
	}

	created, err := s.records.Create(ctx, record)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create record")
	}
	return FromModel(created), nil
}

// UpdateRecord applies partial changes; a provided tag_ids list replaces the
// full tag set.
func (s *service) UpdateRecord(ctx context.Context, userID, recordID uuid.UUID, req UpdateRecordRequest) (*RecordDTO, error) {
	if userID == uuid.Nil || recordID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id and record id are required")
	}

	updates := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		updates["name"] = name
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "amount cannot be negative")
		}
		updates["amount"] = *req.Amount
	}
	if req.Type != nil {
		if !req.Type.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid record type")
		}
		updates["type"] = *req.Type
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.OccurredAt != nil {
		updates["occurred_at"] = *req.OccurredAt
	}

	var tagSet []models.Tag
	if req.TagIDs != nil {
		resolved, err := s.resolveTags(ctx, userID, *req.TagIDs)
		if err != nil {
			return nil, err
		}
		tagSet = resolved
		if tagSet == nil {
			tagSet = []models.Tag{}
		}
	}

	record, err := s.records.Update(ctx, userID, recordID, updates, tagSet)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "record not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update record")
	}
	return FromModel(record), nil
}

// DeleteRecord removes the ledger entry if the caller owns it.
func (s *service) DeleteRecord(ctx context.Context, userID, recordID uuid.UUID) error {
	if userID == uuid.Nil || recordID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id and record id are required")
	}
	if err := s.records.Delete(ctx, userID, recordID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "record not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete record")
	}
	return nil
}

func (s *service) resolveTags(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]models.Tag, error) {
	if len(ids) == 0 {
		return []models.Tag{}, nil
	}
	tagSet, err := s.tags.FindByIDs(ctx, userID, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load tags")
	}
	if len(tagSet) != len(dedupe(ids)) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "one or more tags do not exist")
	}
	return tagSet, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
