package handler

import (
	"github.com/markethub/catalog-api/internal/core/domain"
	"github.com/markethub/catalog-api/internal/core/ports"
)

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		IsActive:  u.IsActive,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserDetailResponse(d ports.UserDetail) userDetailResponse {
	resp := userDetailResponse{
		userResponse: toUserResponse(d.User),
		Items:        make([]itemResponse, 0, len(d.Items)),
	}
	for _, item := range d.Items {
		resp.Items = append(resp.Items, toItemResponse(item))
	}
	return resp
}

func toItemResponse(it domain.Item) itemResponse {
	return itemResponse{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		Price:       it.Price,
		Quantity:    it.Quantity,
		Category:    string(it.Category),
		Status:      string(it.Status),
		IsAvailable: it.IsAvailable,
		OwnerID:     it.OwnerID,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

func toItemWithOwnerResponse(v ports.ItemWithOwner) itemWithOwnerResponse {
	resp := itemWithOwnerResponse{itemResponse: toItemResponse(v.Item)}
	if v.Owner != nil {
		owner := toUserResponse(*v.Owner)
		resp.Owner = &owner
	}
	return resp
}
