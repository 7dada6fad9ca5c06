package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/markethub/catalog-api/internal/api/middleware"
	"github.com/markethub/catalog-api/internal/core/domain"
	"github.com/markethub/catalog-api/internal/core/ports"
)

// Function-backed service stubs. Unset functions panic, which pinpoints the
// handler call a test did not expect.

type stubAuthService struct {
	loginFn          func(ctx context.Context, email, password string) (string, *domain.User, error)
	changePasswordFn func(ctx context.Context, actor *domain.User, current, next string) error
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) ChangePassword(ctx context.Context, actor *domain.User, current, next string) error {
	return s.changePasswordFn(ctx, actor, current, next)
}

var _ ports.AuthService = (*stubAuthService)(nil)

type stubUserService struct {
	registerFn func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error)
	profileFn  func(ctx context.Context, actor *domain.User) (*ports.UserDetail, error)
	listFn     func(ctx context.Context, actor *domain.User, filter ports.UserFilter) ([]domain.User, error)
	getFn      func(ctx context.Context, actor *domain.User, id uuid.UUID) (*ports.UserDetail, bool, error)
	updateFn   func(ctx context.Context, actor *domain.User, id uuid.UUID, input ports.UpdateUserInput) (*domain.User, error)
	deleteFn   func(ctx context.Context, actor *domain.User, id uuid.UUID) error
}

func (s *stubUserService) Register(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubUserService) Profile(ctx context.Context, actor *domain.User) (*ports.UserDetail, error) {
	return s.profileFn(ctx, actor)
}

func (s *stubUserService) List(ctx context.Context, actor *domain.User, filter ports.UserFilter) ([]domain.User, error) {
	return s.listFn(ctx, actor, filter)
}

func (s *stubUserService) Get(ctx context.Context, actor *domain.User, id uuid.UUID) (*ports.UserDetail, bool, error) {
	return s.getFn(ctx, actor, id)
}

func (s *stubUserService) Update(ctx context.Context, actor *domain.User, id uuid.UUID, input ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, actor, id, input)
}

func (s *stubUserService) Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error {
	return s.deleteFn(ctx, actor, id)
}

var _ ports.UserService = (*stubUserService)(nil)

type stubItemService struct {
	createFn      func(ctx context.Context, actor *domain.User, input ports.CreateItemInput) (*domain.Item, error)
	listFn        func(ctx context.Context, filter ports.ItemFilter) ([]ports.ItemWithOwner, error)
	listByOwnerFn func(ctx context.Context, actor *domain.User, skip, limit int) ([]domain.Item, error)
	getFn         func(ctx context.Context, id uuid.UUID) (*ports.ItemWithOwner, error)
	updateFn      func(ctx context.Context, actor *domain.User, id uuid.UUID, input ports.UpdateItemInput) (*domain.Item, error)
	deleteFn      func(ctx context.Context, actor *domain.User, id uuid.UUID) error
	publishFn     func(ctx context.Context, actor *domain.User, id uuid.UUID) (*domain.Item, error)
}

func (s *stubItemService) Create(ctx context.Context, actor *domain.User, input ports.CreateItemInput) (*domain.Item, error) {
	return s.createFn(ctx, actor, input)
}

func (s *stubItemService) List(ctx context.Context, filter ports.ItemFilter) ([]ports.ItemWithOwner, error) {
	return s.listFn(ctx, filter)
}

func (s *stubItemService) ListByOwner(ctx context.Context, actor *domain.User, skip, limit int) ([]domain.Item, error) {
	return s.listByOwnerFn(ctx, actor, skip, limit)
}

func (s *stubItemService) Get(ctx context.Context, id uuid.UUID) (*ports.ItemWithOwner, error) {
	return s.getFn(ctx, id)
}

func (s *stubItemService) Update(ctx context.Context, actor *domain.User, id uuid.UUID, input ports.UpdateItemInput) (*domain.Item, error) {
	return s.updateFn(ctx, actor, id, input)
}

func (s *stubItemService) Delete(ctx context.Context, actor *domain.User, id uuid.UUID) error {
	return s.deleteFn(ctx, actor, id)
}

func (s *stubItemService) Publish(ctx context.Context, actor *domain.User, id uuid.UUID) (*domain.Item, error) {
	return s.publishFn(ctx, actor, id)
}

var _ ports.ItemService = (*stubItemService)(nil)

// newContext builds an echo context with the JSON validator attached. body may
// be empty for requests without a payload.
func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	r := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(r, rec), rec
}

// newFormContext builds an echo context carrying a form-encoded body.
func newFormContext(target, form string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	r := httptest.NewRequest("POST", target, strings.NewReader(form))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(r, rec), rec
}

func testUser(role domain.Role) *domain.User {
	now := time.Now().UTC()
	return &domain.User{
		ID:        uuid.New(),
		Email:     "actor@example.com",
		FullName:  "Actor",
		IsActive:  true,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func testItem(ownerID uuid.UUID) *domain.Item {
	now := time.Now().UTC()
	return &domain.Item{
		ID:          uuid.New(),
		Title:       "Widget",
		Price:       19.99,
		Quantity:    1,
		Category:    domain.CategoryElectronics,
		Status:      domain.StatusDraft,
		IsAvailable: true,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func withActor(c echo.Context, user *domain.User) echo.Context {
	c.Set(middleware.UserContextKey, user)
	return c
}
