package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/markethub/catalog-api/internal/core/domain"
	"github.com/markethub/catalog-api/internal/core/ports"
)

func TestItemHandler_Create_AppliesDefaults(t *testing.T) {
	actor := testUser(domain.RoleUser)
	items := &stubItemService{
		createFn: func(_ context.Context, _ *domain.User, input ports.CreateItemInput) (*domain.Item, error) {
			if input.Quantity != 1 {
				t.Fatalf("quantity default not applied: %d", input.Quantity)
			}
			if input.Category != domain.CategoryOther {
				t.Fatalf("category default not applied: %s", input.Category)
			}
			if input.Status != domain.StatusDraft {
				t.Fatalf("status default not applied: %s", input.Status)
			}
			if !input.IsAvailable {
				t.Fatalf("availability default not applied")
			}
			return testItem(actor.ID), nil
		},
	}
	h := NewItemHandler(items)

	c, rec := newContext(http.MethodPost, "/items", `{"title":"Widget","price":19.99}`)
	withActor(c, actor)
	if err := h.Create(c); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestItemHandler_Create_ExplicitFields(t *testing.T) {
	actor := testUser(domain.RoleUser)
	items := &stubItemService{
		createFn: func(_ context.Context, _ *domain.User, input ports.CreateItemInput) (*domain.Item, error) {
			if input.Quantity != 5 || input.Category != domain.CategoryBooks || input.IsAvailable {
				t.Fatalf("explicit fields not forwarded: %+v", input)
			}
			return testItem(actor.ID), nil
		},
	}
	h := NewItemHandler(items)

	c, _ := newContext(http.MethodPost, "/items", `{"title":"Widget","price":5,"quantity":5,"category":"books","is_available":false}`)
	withActor(c, actor)
	if err := h.Create(c); err != nil {
		t.Fatalf("create failed: %v", err)
	}
}

func TestItemHandler_Create_Invalid(t *testing.T) {
	h := NewItemHandler(&stubItemService{})

	cases := []string{
		`{"price":10}`,                                   // missing title
		`{"title":"Widget","price":-1}`,                  // negative price
		`{"title":"Widget","price":1000001}`,             // price over cap
		`{"title":"Widget","price":1,"quantity":10001}`,  // quantity over cap
		`{"title":"Widget","price":1,"category":"cars"}`, // unknown category
	}
	for _, body := range cases {
		c, _ := newContext(http.MethodPost, "/items", body)
		withActor(c, testUser(domain.RoleUser))
		err := h.Create(c)
		httpErr, ok := err.(*echo.HTTPError)
		if !ok || httpErr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %v", body, err)
		}
	}
}

func TestItemHandler_List_ForwardsFilter(t *testing.T) {
	items := &stubItemService{
		listFn: func(_ context.Context, filter ports.ItemFilter) ([]ports.ItemWithOwner, error) {
			if filter.Status == nil || *filter.Status != domain.StatusPublished {
				t.Fatalf("status filter not forwarded: %+v", filter)
			}
			if filter.MinPrice == nil || *filter.MinPrice != 10 {
				t.Fatalf("min_price not forwarded: %+v", filter)
			}
			if filter.Search != "widget" {
				t.Fatalf("search not forwarded: %+v", filter)
			}
			return nil, nil
		},
	}
	h := NewItemHandler(items)

	c, rec := newContext(http.MethodGet, "/items?status=published&min_price=10&search=widget", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestItemHandler_List_InvalidStatusFilter(t *testing.T) {
	h := NewItemHandler(&stubItemService{})

	c, _ := newContext(http.MethodGet, "/items?status=pending", "")
	err := h.List(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestItemHandler_List_NegativePriceFilter(t *testing.T) {
	h := NewItemHandler(&stubItemService{})

	c, _ := newContext(http.MethodGet, "/items?min_price=-5", "")
	err := h.List(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestItemHandler_ListMine(t *testing.T) {
	actor := testUser(domain.RoleUser)
	items := &stubItemService{
		listByOwnerFn: func(_ context.Context, got *domain.User, skip, limit int) ([]domain.Item, error) {
			if got.ID != actor.ID {
				t.Fatalf("wrong actor forwarded")
			}
			return []domain.Item{*testItem(actor.ID)}, nil
		},
	}
	h := NewItemHandler(items)

	c, rec := newContext(http.MethodGet, "/items/my", "")
	withActor(c, actor)
	if err := h.ListMine(c); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	var resp []itemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp) != 1 {
		t.Fatalf("expected 1 item, got %d", len(resp))
	}
}

func TestItemHandler_Get_IncludesOwner(t *testing.T) {
	owner := testUser(domain.RoleUser)
	item := testItem(owner.ID)
	items := &stubItemService{
		getFn: func(_ context.Context, id uuid.UUID) (*ports.ItemWithOwner, error) {
			if id != item.ID {
				t.Fatalf("wrong id forwarded: %s", id)
			}
			return &ports.ItemWithOwner{Item: *item, Owner: owner}, nil
		},
	}
	h := NewItemHandler(items)

	c, rec := newContext(http.MethodGet, "/items/"+item.ID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(item.ID.String())
	if err := h.Get(c); err != nil {
		t.Fatalf("get failed: %v", err)
	}

	var resp itemWithOwnerResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Owner == nil || resp.Owner.ID != owner.ID {
		t.Fatalf("owner missing from response: %s", rec.Body.String())
	}
}

func TestItemHandler_Get_NotFound(t *testing.T) {
	items := &stubItemService{
		getFn: func(context.Context, uuid.UUID) (*ports.ItemWithOwner, error) {
			return nil, domain.ErrItemNotFound
		},
	}
	h := NewItemHandler(items)

	id := uuid.New()
	c, _ := newContext(http.MethodGet, "/items/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	if err := h.Get(c); err != domain.ErrItemNotFound {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestItemHandler_Update_ForwardsPartialInput(t *testing.T) {
	actor := testUser(domain.RoleUser)
	item := testItem(actor.ID)
	items := &stubItemService{
		updateFn: func(_ context.Context, _ *domain.User, id uuid.UUID, input ports.UpdateItemInput) (*domain.Item, error) {
			if input.Status == nil || *input.Status != domain.StatusPublished {
				t.Fatalf("status not forwarded: %+v", input)
			}
			if input.Title != nil || input.Price != nil {
				t.Fatalf("absent fields must stay nil: %+v", input)
			}
			item.Status = *input.Status
			return item, nil
		},
	}
	h := NewItemHandler(items)

	c, rec := newContext(http.MethodPatch, "/items/"+item.ID.String(), `{"status":"published"}`)
	withActor(c, actor)
	c.SetParamNames("id")
	c.SetParamValues(item.ID.String())
	if err := h.Update(c); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestItemHandler_Delete(t *testing.T) {
	actor := testUser(domain.RoleUser)
	item := testItem(actor.ID)
	items := &stubItemService{
		deleteFn: func(_ context.Context, _ *domain.User, id uuid.UUID) error {
			if id != item.ID {
				t.Fatalf("wrong id forwarded: %s", id)
			}
			return nil
		},
	}
	h := NewItemHandler(items)

	c, rec := newContext(http.MethodDelete, "/items/"+item.ID.String(), "")
	withActor(c, actor)
	c.SetParamNames("id")
	c.SetParamValues(item.ID.String())
	if err := h.Delete(c); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestItemHandler_Publish(t *testing.T) {
	actor := testUser(domain.RoleUser)
	item := testItem(actor.ID)
	items := &stubItemService{
		publishFn: func(_ context.Context, _ *domain.User, id uuid.UUID) (*domain.Item, error) {
			published := *item
			published.Status = domain.StatusPublished
			return &published, nil
		},
	}
	h := NewItemHandler(items)

	c, rec := newContext(http.MethodPost, "/items/"+item.ID.String()+"/publish", "")
	withActor(c, actor)
	c.SetParamNames("id")
	c.SetParamValues(item.ID.String())
	if err := h.Publish(c); err != nil {
		t.Fatalf("publish failed: %v", err)
	}

	var resp itemResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Status != string(domain.StatusPublished) {
		t.Fatalf("expected published status, got %s", resp.Status)
	}
}

func TestItemHandler_Publish_Conflict(t *testing.T) {
	actor := testUser(domain.RoleUser)
	items := &stubItemService{
		publishFn: func(context.Context, *domain.User, uuid.UUID) (*domain.Item, error) {
			return nil, domain.ErrAlreadyPublished
		},
	}
	h := NewItemHandler(items)

	id := uuid.New()
	c, _ := newContext(http.MethodPost, "/items/"+id.String()+"/publish", "")
	withActor(c, actor)
	c.SetParamNames("id")
	c.SetParamValues(id.String())
	if err := h.Publish(c); err != domain.ErrAlreadyPublished {
		t.Fatalf("expected ErrAlreadyPublished, got %v", err)
	}
}
