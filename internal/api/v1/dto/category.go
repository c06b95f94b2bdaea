package dto

import (
	"time"

	"coursecatalog/internal/model"
)

// CategoryCreateDTO is used for POST and PUT. Description keeps its current
// value on PUT when omitted.
type CategoryCreateDTO struct {
	Name        *string          `json:"name" validate:"required,notblank,max=100"`
	Description Nullable[string] `json:"description"`
}

func (d *CategoryCreateDTO) ApplyTo(c *model.Category) {
	c.Name = *d.Name
	if d.Description.Set {
		c.Description = d.Description.Ptr()
	}
}

// CategoryUpdateDTO is used for PATCH; every field is optional.
type CategoryUpdateDTO struct {
	Name        *string          `json:"name" validate:"omitnil,notblank,max=100"`
	Description Nullable[string] `json:"description"`
}

func (d *CategoryUpdateDTO) ApplyTo(c *model.Category) {
	if d.Name != nil {
		c.Name = *d.Name
	}
	if d.Description.Set {
		c.Description = d.Description.Ptr()
	}
}

// CategoryResponseDTO is returned in API responses for categories
type CategoryResponseDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewCategoryResponse(c *model.Category) CategoryResponseDTO {
	return CategoryResponseDTO{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func NewCategoryListResponse(cs []model.Category) []CategoryResponseDTO {
	out := make([]CategoryResponseDTO, 0, len(cs))
	for i := range cs {
		out = append(out, NewCategoryResponse(&cs[i]))
	}
	return out
}
