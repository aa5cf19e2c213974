package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	internalauth "github.com/acarrillodev/wishtrack-backend/internal/auth"
	"github.com/acarrillodev/wishtrack-backend/internal/doubts"
	"github.com/acarrillodev/wishtrack-backend/internal/gifts"
	"github.com/acarrillodev/wishtrack-backend/internal/groups"
	"github.com/acarrillodev/wishtrack-backend/internal/records"
	"github.com/acarrillodev/wishtrack-backend/internal/tags"
	"github.com/acarrillodev/wishtrack-backend/internal/users"
	"github.com/acarrillodev/wishtrack-backend/internal/wishes"
	pkgauth "github.com/acarrillodev/wishtrack-backend/pkg/auth"
	"github.com/acarrillodev/wishtrack-backend/pkg/config"
	"github.com/acarrillodev/wishtrack-backend/pkg/enums"
	"github.com/acarrillodev/wishtrack-backend/pkg/logger"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubSessionChecker struct{}

func (stubSessionChecker) HasSession(ctx context.Context, accessID string) (bool, error) {
	return true, nil
}

type stubAuthService struct{}

func (stubAuthService) Register(ctx context.Context, req internalauth.RegisterRequest) (*internalauth.AuthResponse, error) {
	panic("unimplemented")
}

func (stubAuthService) Login(ctx context.Context, req internalauth.LoginRequest) (*internalauth.AuthResponse, error) {
	panic("unimplemented")
}

func (stubAuthService) Refresh(ctx context.Context, req internalauth.RefreshRequest) (*internalauth.RefreshResponse, error) {
	panic("unimplemented")
}

func (stubAuthService) Logout(ctx context.Context, accessID string) error {
	return nil
}

type stubUsersService struct{}

func (stubUsersService) GetProfile(ctx context.Context, userID uuid.UUID) (*users.UserDTO, error) {
	return &users.UserDTO{ID: userID, Email: "ana@example.com", Name: "Ana"}, nil
}

func (stubUsersService) UpdateProfile(ctx context.Context, userID uuid.UUID, req users.UpdateProfileRequest) (*users.UserDTO, error) {
	panic("unimplemented")
}

type stubWishesService struct{}

func (stubWishesService) GetWishes(ctx context.Context, userID uuid.UUID) (*wishes.WishesPageDTO, error) {
	return &wishes.WishesPageDTO{Wishes: []wishes.WishDTO{}, Groups: []groups.GroupDTO{}}, nil
}

func (stubWishesService) CreateWish(ctx context.Context, userID uuid.UUID, req wishes.CreateWishRequest) (*wishes.WishDTO, error) {
	panic("unimplemented")
}

func (stubWishesService) UpdateWish(ctx context.Context, userID, wishID uuid.UUID, req wishes.UpdateWishRequest) (*wishes.WishDTO, error) {
	panic("unimplemented")
}

func (stubWishesService) DeleteWish(ctx context.Context, userID, wishID uuid.UUID) error {
	panic("unimplemented")
}

type stubGiftsService struct{}

func (stubGiftsService) GetGifts(ctx context.Context, userID uuid.UUID) (*gifts.GiftsPageDTO, error) {
	return &gifts.GiftsPageDTO{Gifts: []gifts.GiftDTO{}, Groups: []groups.GroupDTO{}}, nil
}

func (stubGiftsService) CreateGift(ctx context.Context, userID uuid.UUID, req gifts.CreateGiftRequest) (*gifts.GiftDTO, error) {
	panic("unimplemented")
}

func (stubGiftsService) UpdateGift(ctx context.Context, userID, giftID uuid.UUID, req gifts.UpdateGiftRequest) (*gifts.GiftDTO, error) {
	panic("unimplemented")
}

func (stubGiftsService) DeleteGift(ctx context.Context, userID, giftID uuid.UUID) error {
	panic("unimplemented")
}

type stubGroupsService struct{}

func (stubGroupsService) ListGroups(ctx context.Context, userID uuid.UUID, groupType *enums.GroupType) ([]groups.GroupDTO, error) {
	return []groups.GroupDTO{}, nil
}

func (stubGroupsService) CreateGroup(ctx context.Context, userID uuid.UUID, req groups.CreateGroupRequest) (*groups.GroupDTO, error) {
	panic("unimplemented")
}

func (stubGroupsService) UpdateGroup(ctx context.Context, userID, groupID uuid.UUID, req groups.UpdateGroupRequest) (*groups.GroupDTO, error) {
	panic("unimplemented")
}

func (stubGroupsService) DeleteGroup(ctx context.Context, userID, groupID uuid.UUID) error {
	panic("unimplemented")
}

type stubRecordsService struct{}

func (stubRecordsService) ListRecords(ctx context.Context, userID uuid.UUID, query records.ListRecordsQuery) (*records.RecordsPageDTO, error) {
	return &records.RecordsPageDTO{Records: []records.RecordDTO{}}, nil
}

func (stubRecordsService) CreateRecord(ctx context.Context, userID uuid.UUID, req records.CreateRecordRequest) (*records.RecordDTO, error) {
	panic("unimplemented")
}

func (stubRecordsService) UpdateRecord(ctx context.Context, userID, recordID uuid.UUID, req records.UpdateRecordRequest) (*records.RecordDTO, error) {
	panic("unimplemented")
}

func (stubRecordsService) DeleteRecord(ctx context.Context, userID, recordID uuid.UUID) error {
	panic("unimplemented")
}

type stubTagsService struct{}

func (stubTagsService) ListTags(ctx context.Context, userID uuid.UUID) ([]tags.TagDTO, error) {
	return []tags.TagDTO{}, nil
}

func (stubTagsService) CreateTag(ctx context.Context, userID uuid.UUID, req tags.CreateTagRequest) (*tags.TagDTO, error) {
	panic("unimplemented")
}

func (stubTagsService) UpdateTag(ctx context.Context, userID, tagID uuid.UUID, req tags.UpdateTagRequest) (*tags.TagDTO, error) {
	panic("unimplemented")
}

func (stubTagsService) DeleteTag(ctx context.Context, userID, tagID uuid.UUID) error {
	panic("unimplemented")
}

type stubDoubtsService struct{}

func (stubDoubtsService) ListDoubts(ctx context.Context, userID uuid.UUID) ([]doubts.DoubtDTO, error) {
	return []doubts.DoubtDTO{}, nil
}

func (stubDoubtsService) CreateDoubt(ctx context.Context, userID uuid.UUID, req doubts.CreateDoubtRequest) (*doubts.DoubtDTO, error) {
	panic("unimplemented")
}

func (stubDoubtsService) UpdateDoubt(ctx context.Context, userID, doubtID uuid.UUID, req doubts.UpdateDoubtRequest) (*doubts.DoubtDTO, error) {
	panic("unimplemented")
}

func (stubDoubtsService) ResolveDoubt(ctx context.Context, userID, doubtID uuid.UUID, req doubts.ResolveDoubtRequest) (*doubts.DoubtDTO, error) {
	panic("unimplemented")
}

func (stubDoubtsService) DeleteDoubt(ctx context.Context, userID, doubtID uuid.UUID) error {
	panic("unimplemented")
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{
			Secret:                 "secret",
			Issuer:                 "wishtrack",
			ExpirationMinutes:      60,
			RefreshTokenTTLMinutes: 120,
		},
	}
}

func newTestRouter(cfg *config.Config) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(Deps{
		Config:   cfg,
		Logger:   logg,
		DB:       stubPinger{},
		Sessions: stubSessionChecker{},
		Auth:     stubAuthService{},
		Users:    stubUsersService{},
		Wishes:   stubWishesService{},
		Gifts:    stubGiftsService{},
		Groups:   stubGroupsService{},
		Records:  stubRecordsService{},
		Tags:     stubTagsService{},
		Doubts:   stubDoubtsService{},
	})
}

func buildToken(t *testing.T, cfg *config.Config) string {
	t.Helper()
	token, err := pkgauth.MintAccessToken(cfg.JWT, time.Now(), pkgauth.AccessTokenPayload{
		UserID: uuid.New(),
		JTI:    uuid.NewString(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestProtectedRoutesRejectMissingJWT(t *testing.T) {
	router := newTestRouter(testConfig())

	for _, target := range []string{
		"/api/v1/users/me",
		"/api/v1/wishes",
		"/api/v1/gifts",
		"/api/v1/groups",
		"/api/v1/records",
		"/api/v1/tags",
		"/api/v1/doubts",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for %s without token got %d", target, resp.Code)
		}

		var envelope struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
			t.Fatalf("decode %s response: %v", target, err)
		}
		if envelope.Error.Message != "No autorizado" {
			t.Fatalf("expected canonical message for %s got %q", target, envelope.Error.Message)
		}
	}
}

func TestProtectedRoutesSucceedWithJWT(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg)
	token := buildToken(t, cfg)

	for _, target := range []string{
		"/api/v1/users/me",
		"/api/v1/wishes",
		"/api/v1/gifts",
		"/api/v1/groups",
		"/api/v1/records",
		"/api/v1/tags",
		"/api/v1/doubts",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s got %d", target, resp.Code)
		}
	}
}

func TestHealthLiveIsPublic(t *testing.T) {
	router := newTestRouter(testConfig())

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestLogoutRequiresSession(t *testing.T) {
	router := newTestRouter(testConfig())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}
