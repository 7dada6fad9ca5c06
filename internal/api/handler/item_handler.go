package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/markethub/catalog-api/internal/api/metrics"
	"github.com/markethub/catalog-api/internal/core/domain"
	"github.com/markethub/catalog-api/internal/core/ports"
)

// ItemHandler handles HTTP requests for catalog items.
type ItemHandler struct {
	itemService ports.ItemService
}

func NewItemHandler(itemService ports.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// Create stores a new listing owned by the caller.
//
// @Summary      Create an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createItemRequest  true  "Item details"
// @Success      201   {object}  itemResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /items [post]
func (h *ItemHandler) Create(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.CreateItemInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    1,
		Category:    domain.CategoryOther,
		Status:      domain.StatusDraft,
		IsAvailable: true,
	}
	if req.Quantity != nil {
		input.Quantity = *req.Quantity
	}
	if req.Category != "" {
		input.Category = domain.ItemCategory(req.Category)
	}
	if req.Status != "" {
		input.Status = domain.ItemStatus(req.Status)
	}
	if req.IsAvailable != nil {
		input.IsAvailable = *req.IsAvailable
	}

	item, err := h.itemService.Create(c.Request().Context(), actor, input)
	if err != nil {
		return err
	}

	metrics.ItemsCreatedTotal.WithLabelValues(string(item.Category)).Inc()
	return c.JSON(http.StatusCreated, toItemResponse(*item))
}

// List returns items matching the filters, each with its owner's public view.
//
// @Summary      List items
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        skip          query  int     false  "Offset"
// @Param        limit         query  int     false  "Page size (max 100)"
// @Param        status        query  string  false  "Filter by status"    Enums(draft, published, archived)
// @Param        category      query  string  false  "Filter by category"  Enums(electronics, clothing, books, food, other)
// @Param        is_available  query  bool    false  "Filter by availability"
// @Param        min_price     query  number  false  "Minimum price"
// @Param        max_price     query  number  false  "Maximum price"
// @Param        search        query  string  false  "Substring match over title and description"
// @Success      200  {array}   itemWithOwnerResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /items [get]
func (h *ItemHandler) List(c echo.Context) error {
	skip, limit, err := pagination(c)
	if err != nil {
		return err
	}

	filter := ports.ItemFilter{Skip: skip, Limit: limit, Search: c.QueryParam("search")}
	if raw := c.QueryParam("status"); raw != "" {
		status := domain.ItemStatus(raw)
		if !status.IsValid() {
			return echo.NewHTTPError(http.StatusBadRequest, "status must be one of: draft published archived")
		}
		filter.Status = &status
	}
	if raw := c.QueryParam("category"); raw != "" {
		category := domain.ItemCategory(raw)
		if !category.IsValid() {
			return echo.NewHTTPError(http.StatusBadRequest, "category must be one of: electronics clothing books food other")
		}
		filter.Category = &category
	}
	if filter.IsAvailable, err = queryBool(c, "is_available"); err != nil {
		return err
	}
	if filter.MinPrice, err = queryFloat(c, "min_price"); err != nil {
		return err
	}
	if filter.MaxPrice, err = queryFloat(c, "max_price"); err != nil {
		return err
	}

	views, err := h.itemService.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	resp := make([]itemWithOwnerResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, toItemWithOwnerResponse(v))
	}
	return c.JSON(http.StatusOK, resp)
}

// ListMine returns the caller's own items.
//
// @Summary      List own items
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query  int  false  "Offset"
// @Param        limit  query  int  false  "Page size (max 100)"
// @Success      200  {array}   itemResponse
// @Failure      401  {object}  errorResponse
// @Router       /items/my [get]
func (h *ItemHandler) ListMine(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	skip, limit, err := pagination(c)
	if err != nil {
		return err
	}

	items, err := h.itemService.ListByOwner(c.Request().Context(), actor, skip, limit)
	if err != nil {
		return err
	}

	resp := make([]itemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toItemResponse(item))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get returns an item by id together with its owner's public view.
//
// @Summary      Get an item by id
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Item id"
// @Success      200  {object}  itemWithOwnerResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /items/{id} [get]
func (h *ItemHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	view, err := h.itemService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toItemWithOwnerResponse(*view))
}

// Update applies a partial update to an item. Owner or admin only.
//
// @Summary      Update an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string             true  "Item id"
// @Param        body  body  updateItemRequest  true  "Fields to update"
// @Success      200  {object}  itemResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /items/{id} [patch]
func (h *ItemHandler) Update(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateItemInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		IsAvailable: req.IsAvailable,
	}
	if req.Category != nil {
		category := domain.ItemCategory(*req.Category)
		input.Category = &category
	}
	if req.Status != nil {
		status := domain.ItemStatus(*req.Status)
		input.Status = &status
	}

	item, err := h.itemService.Update(c.Request().Context(), actor, id, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toItemResponse(*item))
}

// Delete removes an item. Owner or admin only.
//
// @Summary      Delete an item
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Item id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /items/{id} [delete]
func (h *ItemHandler) Delete(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.itemService.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Item deleted successfully"})
}

// Publish transitions an item to published. Owner or admin only; publishing an
// already-published item is rejected as a state conflict.
//
// @Summary      Publish an item
// @Tags         items
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Item id"
// @Success      200  {object}  itemResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /items/{id}/publish [post]
func (h *ItemHandler) Publish(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	item, err := h.itemService.Publish(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}

	metrics.ItemsPublishedTotal.Inc()
	return c.JSON(http.StatusOK, toItemResponse(*item))
}
