package dto

import (
	"encoding/json"
	"reflect"
	"strconv"
	"time"

	"coursecatalog/internal/model"
)

// CourseCreateDTO is used for POST and PUT. Any instructor in the body is
// ignored; the requester is always the instructor.
type CourseCreateDTO struct {
	Category      Nullable[PrimaryKey]  `json:"category"`
	Title         *string               `json:"title" validate:"required,notblank,max=200"`
	Description   *string               `json:"description" validate:"required,notblank"`
	Price         Nullable[model.Price] `json:"price" validate:"omitempty,min=0"`
	DurationHours Nullable[int32]       `json:"duration_hours" validate:"omitempty,min=0"`
}

func (d *CourseCreateDTO) nullFields() []string { return nullField("price", d.Price.IsNull()) }

// ApplyTo overwrites title and description and any optional field that was sent.
func (d *CourseCreateDTO) ApplyTo(c *model.Course) {
	c.Title = *d.Title
	c.Description = *d.Description
	applyOptional(c, d.Category, d.Price, d.DurationHours)
}

// CourseUpdateDTO is used for PATCH; every field is optional.
type CourseUpdateDTO struct {
	Category      Nullable[PrimaryKey]  `json:"category"`
	Title         *string               `json:"title" validate:"omitnil,notblank,max=200"`
	Description   *string               `json:"description" validate:"omitnil,notblank"`
	Price         Nullable[model.Price] `json:"price" validate:"omitempty,min=0"`
	DurationHours Nullable[int32]       `json:"duration_hours" validate:"omitempty,min=0"`
}

func (d *CourseUpdateDTO) nullFields() []string { return nullField("price", d.Price.IsNull()) }

func (d *CourseUpdateDTO) ApplyTo(c *model.Course) {
	if d.Title != nil {
		c.Title = *d.Title
	}
	if d.Description != nil {
		c.Description = *d.Description
	}
	applyOptional(c, d.Category, d.Price, d.DurationHours)
}

func applyOptional(c *model.Course, category Nullable[PrimaryKey], price Nullable[model.Price], duration Nullable[int32]) {
	if category.Set {
		c.CategoryID = nil
		if category.Valid {
			id := int64(category.Value)
			c.CategoryID = &id
		}
	}
	if price.Valid {
		c.Price = price.Value
	}
	if duration.Set {
		c.DurationHours = duration.Ptr()
	}
}

// PrimaryKey is a related object id sent as a JSON number or a numeric string.
type PrimaryKey int64

func (k *PrimaryKey) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if unq, err := strconv.Unquote(raw); err == nil {
		raw = unq
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return &json.UnmarshalTypeError{Value: raw, Type: reflect.TypeOf(int64(0))}
	}
	*k = PrimaryKey(id)
	return nil
}

// CourseResponseDTO is returned in API responses for courses
type CourseResponseDTO struct {
	ID                 int64       `json:"id"`
	Category           *int64      `json:"category"`
	CategoryName       *string     `json:"category_name"`
	Instructor         int64       `json:"instructor"`
	InstructorUsername string      `json:"instructor_username"`
	Title              string      `json:"title"`
	Description        string      `json:"description"`
	Price              model.Price `json:"price"`
	DurationHours      *int32      `json:"duration_hours"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

func NewCourseResponse(c *model.Course) CourseResponseDTO {
	return CourseResponseDTO{
		ID:                 c.ID,
		Category:           c.CategoryID,
		CategoryName:       c.CategoryName,
		Instructor:         c.InstructorID,
		InstructorUsername: c.InstructorUsername,
		Title:              c.Title,
		Description:        c.Description,
		Price:              c.Price,
		DurationHours:      c.DurationHours,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func NewCourseListResponse(cs []model.Course) []CourseResponseDTO {
	out := make([]CourseResponseDTO, 0, len(cs))
	for i := range cs {
		out = append(out, NewCourseResponse(&cs[i]))
	}
	return out
}
