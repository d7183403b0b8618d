// AngelaMos | 2026
// dto.go

package category

import (
	"time"
)

type NameInput struct {
	PT string `json:"pt" validate:"required,max=100"`
	EN string `json:"en" validate:"required,max=100"`
}

type NamePatch struct {
	PT *string `json:"pt,omitempty" validate:"omitempty,max=100"`
	EN *string `json:"en,omitempty" validate:"omitempty,max=100"`
}

type CreateCategoryRequest struct {
	CategoryID string    `json:"categoryId" validate:"required,slug,max=64"`
	Name       NameInput `json:"name"`
}

type UpdateCategoryRequest struct {
	CategoryID *string    `json:"categoryId,omitempty" validate:"omitempty,slug,max=64"`
	Name       *NamePatch `json:"name,omitempty"`
}

type LocalizedName struct {
	PT string `json:"pt"`
	EN string `json:"en"`
}

type CategoryResponse struct {
	ID         string        `json:"id"`
	CategoryID string        `json:"categoryId"`
	Name       LocalizedName `json:"name"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

func ToCategoryResponse(c *Category) CategoryResponse {
	return CategoryResponse{
		ID:         c.ID,
		CategoryID: c.CategoryID,
		Name:       LocalizedName{PT: c.NamePT, EN: c.NameEN},
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

func ToCategoryListResponse(categories []Category) CategoryListResponse {
	resp := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		resp = append(resp, ToCategoryResponse(&categories[i]))
	}
	return CategoryListResponse{Categories: resp}
}

type InUseDetails struct {
	Count int `json:"count"`
}
