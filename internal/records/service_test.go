package records

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/acarrillodev/wishtrack-backend/pkg/db/models"
	"github.com/acarrillodev/wishtrack-backend/pkg/enums"
	pkgerrors "github.com/acarrillodev/wishtrack-backend/pkg/errors"
)

type stubRecordRepo struct {
	records   []models.Record
	lastQuery *ListRecordsQuery
}

func (s *stubRecordRepo) List(_ context.Context, userID uuid.UUID, query ListRecordsQuery) (RecordsPageDTO, error) {
	s.lastQuery = &query
	var out []models.Record
	for _, r := range s.records {
		if r.UserID != userID {
			continue
		}
		if query.Type != nil && r.Type != *query.Type {
			continue
		}
		out = append(out, r)
	}
	return RecordsPageDTO{
		Records:    FromModels(out),
		Pagination: RecordPagination{Total: len(out)},
	}, nil
}

func (s *stubRecordRepo) Create(_ context.Context, record *models.Record) (*models.Record, error) {
	record.ID = uuid.New()
	s.records = append(s.records, *record)
	return record, nil
}

func (s *stubRecordRepo) Update(_ context.Context, userID, id uuid.UUID, updates map[string]any, tagSet []models.Tag) (*models.Record, error) {
	for i := range s.records {
		r := &s.records[i]
		if r.UserID != userID || r.ID != id {
			continue
		}
		if name, ok := updates["name"].(string); ok {
			r.Name = name
		}
		if amount, ok := updates["amount"].(decimal.Decimal); ok {
			r.Amount = amount
		}
		if recordType, ok := updates["type"].(enums.RecordType); ok {
			r.Type = recordType
		}
		if tagSet != nil {
			r.Tags = tagSet
		}
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRecordRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	for i := range s.records {
		if s.records[i].UserID == userID && s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type stubRecordTagRepo struct {
	tags []models.Tag
}

func (s *stubRecordTagRepo) FindByIDs(_ context.Context, userID uuid.UUID, ids []uuid.UUID) ([]models.Tag, error) {
	var out []models.Tag
	for _, tag := range s.tags {
		if tag.UserID != userID {
			continue
		}
		for _, id := range ids {
			if tag.ID == id {
				out = append(out, tag)
				break
			}
		}
	}
	return out, nil
}

func buildRecordService(t *testing.T, recordRepo *stubRecordRepo, tagRepo *stubRecordTagRepo) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{RecordRepo: recordRepo, TagRepo: tagRepo})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc
}

func TestCreateRecordWithTags(t *testing.T) {
	userID := uuid.New()
	tag := models.Tag{ID: uuid.New(), Name: "groceries", UserID: userID}
	svc := buildRecordService(t, &stubRecordRepo{}, &stubRecordTagRepo{tags: []models.Tag{tag}})

	created, err := svc.CreateRecord(context.Background(), userID, CreateRecordRequest{
		Name:       "Weekly shop",
		Amount:     decimal.NewFromFloat(42.50),
		Type:       enums.RecordTypeExpense,
		OccurredAt: time.Now(),
		TagIDs:     []uuid.UUID{tag.ID},
	})
	if err != nil {
		t.Fatalf("create record: %v", err)
	}
	if len(created.Tags) != 1 || created.Tags[0].Name != "groceries" {
		t.Fatalf("expected tag attached, got %+v", created.Tags)
	}
	if !created.Amount.Equal(decimal.NewFromFloat(42.50)) {
		t.Fatalf("expected exact decimal amount, got %s", created.Amount)
	}
}

func TestCreateRecordRejectsForeignTag(t *testing.T) {
	userID := uuid.New()
	foreignTag := models.Tag{ID: uuid.New(), Name: "groceries", UserID: uuid.New()}
	svc := buildRecordService(t, &stubRecordRepo{}, &stubRecordTagRepo{tags: []models.Tag{foreignTag}})

	_, err := svc.CreateRecord(context.Background(), userID, CreateRecordRequest{
		Name:       "Weekly shop",
		Amount:     decimal.NewFromInt(10),
		Type:       enums.RecordTypeExpense,
		OccurredAt: time.Now(),
		TagIDs:     []uuid.UUID{foreignTag.ID},
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateRecordRejectsNegativeAmount(t *testing.T) {
	svc := buildRecordService(t, &stubRecordRepo{}, &stubRecordTagRepo{})

	_, err := svc.CreateRecord(context.Background(), uuid.New(), CreateRecordRequest{
		Name:       "Refund gone wrong",
		Amount:     decimal.NewFromInt(-5),
		Type:       enums.RecordTypeExpense,
		OccurredAt: time.Now(),
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListRecordsPassesFilters(t *testing.T) {
	userID := uuid.New()
	repo := &stubRecordRepo{records: []models.Record{
		{ID: uuid.New(), Name: "Salary", Amount: decimal.NewFromInt(1000), Type: enums.RecordTypeIncome, UserID: userID},
		{ID: uuid.New(), Name: "Rent", Amount: decimal.NewFromInt(700), Type: enums.RecordTypeExpense, UserID: userID},
	}}
	svc := buildRecordService(t, repo, &stubRecordTagRepo{})

	income := enums.RecordTypeIncome
	page, err := svc.ListRecords(context.Background(), userID, ListRecordsQuery{Type: &income, Limit: 10})
	if err != nil {
		t.Fatalf("list records: %v", err)
	}
	if len(page.Records) != 1 || page.Records[0].Name != "Salary" {
		t.Fatalf("expected only income entries, got %+v", page.Records)
	}
	if repo.lastQuery.Limit != 10 {
		t.Fatalf("expected limit forwarded, got %d", repo.lastQuery.Limit)
	}
}

func TestUpdateRecordReplacesTagSet(t *testing.T) {
	userID := uuid.New()
	recordID := uuid.New()
	oldTag := models.Tag{ID: uuid.New(), Name: "groceries", UserID: userID}
	newTag := models.Tag{ID: uuid.New(), Name: "travel", UserID: userID}
	repo := &stubRecordRepo{records: []models.Record{{
		ID:     recordID,
		Name:   "Weekly shop",
		Amount: decimal.NewFromInt(42),
		Type:   enums.RecordTypeExpense,
		UserID: userID,
		Tags:   []models.Tag{oldTag},
	}}}
	svc := buildRecordService(t, repo, &stubRecordTagRepo{tags: []models.Tag{oldTag, newTag}})

	tagIDs := []uuid.UUID{newTag.ID}
	updated, err := svc.UpdateRecord(context.Background(), userID, recordID, UpdateRecordRequest{TagIDs: &tagIDs})
	if err != nil {
		t.Fatalf("update record: %v", err)
	}
	if len(updated.Tags) != 1 || updated.Tags[0].Name != "travel" {
		t.Fatalf("expected tag set replaced, got %+v", updated.Tags)
	}
}

func TestDeleteRecordUnknownID(t *testing.T) {
	svc := buildRecordService(t, &stubRecordRepo{}, &stubRecordTagRepo{})

	err := svc.DeleteRecord(context.Background(), uuid.New(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
