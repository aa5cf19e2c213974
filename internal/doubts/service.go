package doubts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acarrillodev/wishtrack-backend/pkg/db/models"
	"github.com/acarrillodev/wishtrack-backend/pkg/enums"
	pkgerrors "github.com/acarrillodev/wishtrack-backend/pkg/errors"
)

// Service exposes business rules for purchase doubts.
type Service interface {
	ListDoubts(ctx context.Context, userID uuid.UUID) ([]DoubtDTO, error)
	CreateDoubt(ctx context.Context, userID uuid.UUID, req CreateDoubtRequest) (*DoubtDTO, error)
	UpdateDoubt(ctx context.Context, userID, doubtID uuid.UUID, req UpdateDoubtRequest) (*DoubtDTO, error)
	ResolveDoubt(ctx context.Context, userID, doubtID uuid.UUID, req ResolveDoubtRequest) (*DoubtDTO, error)
	DeleteDoubt(ctx context.Context, userID, doubtID uuid.UUID) error
}

type doubtRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Doubt, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (*models.Doubt, error)
	Create(ctx context.Context, doubt *models.Doubt) (*models.Doubt, error)
	Update(ctx context.Context, userID, id uuid.UUID, updates map[string]any) (*models.Doubt, error)
	Resolve(ctx context.Context, userID, id uuid.UUID, decision enums.DoubtDecision, at time.Time) (*models.Doubt, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// ServiceParams bundles the dependencies required to build a doubts service.
type ServiceParams struct {
	DoubtRepo doubtRepository
}

type service struct {
	doubts doubtRepository
}

// NewService constructs a doubts service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.DoubtRepo == nil {
		return nil, fmt.Errorf("doubt repository is required")
	}
	return &service{doubts: params.DoubtRepo}, nil
}

// ListDoubts returns the user's doubts in display order.
func (s *service) ListDoubts(ctx context.Context, userID uuid.UUID) ([]DoubtDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	items, err := s.doubts.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list doubts")
	}
	return FromModels(items), nil
}

// CreateDoubt parks a new undecided purchase at the tail of the list.
func (s *service) CreateDoubt(ctx context.Context, userID uuid.UUID, req CreateDoubtRequest) (*DoubtDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	doubt := &models.Doubt{
		Name:   strings.TrimSpace(req.Name),
		Price:  req.Price,
		Notes:  req.Notes,
		Link:   req.Link,
		UserID: userID,
	}

	created, err := s.doubts.Create(ctx, doubt)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create doubt")
	}
	return FromModel(created), nil
}

// UpdateDoubt applies partial changes to an existing doubt.
func (s *service) UpdateDoubt(ctx context.Context, userID, doubtID uuid.UUID, req UpdateDoubtRequest) (*DoubtDTO, error) {
	if userID == uuid.Nil || doubtID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id and doubt id are required")
	}

	updates := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		updates["name"] = name
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.Link != nil {
		updates["link"] = *req.Link
	}

	doubt, err := s.doubts.Update(ctx, userID, doubtID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "doubt not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update doubt")
	}
	return FromModel(doubt), nil
}

// ResolveDoubt stamps the final decision exactly once.
func (s *service) ResolveDoubt(ctx context.Context, userID, doubtID uuid.UUID, req ResolveDoubtRequest) (*DoubtDTO, error) {
	if userID == uuid.Nil || doubtID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id and doubt id are required")
	}
	if !req.Decision.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid decision")
	}

	current, err := s.doubts.FindByID(ctx, userID, doubtID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "doubt not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load doubt")
	}
	if current.Decision != nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "doubt already resolved")
	}

	doubt, err := s.doubts.Resolve(ctx, userID, doubtID, req.Decision, time.Now().UTC())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Lost the race against a concurrent resolve.
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "doubt already resolved")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve doubt")
	}
	return FromModel(doubt), nil
}

// DeleteDoubt removes the doubt if the caller owns it.
func (s *service) DeleteDoubt(ctx context.Context, userID, doubtID uuid.UUID) error {
	if userID == uuid.Nil || doubtID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id and doubt id are required")
	}
	if err := s.doubts.Delete(ctx, userID, doubtID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "doubt not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete doubt")
	}
	return nil
}
