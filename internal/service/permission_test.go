package service

import (
	"testing"

	"coursecatalog/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestIsAuthenticated(t *testing.T) {
	assert.False(t, IsAuthenticated(nil))
	assert.False(t, IsAuthenticated(&model.Identity{}))
	assert.True(t, IsAuthenticated(&model.Identity{UserID: 1}))
}

func TestCanModifyCategory(t *testing.T) {
	assert.False(t, CanModifyCategory(nil))
	assert.True(t, CanModifyCategory(&model.Identity{UserID: 2}))
}

func TestCanModifyCourse(t *testing.T) {
	course := &model.Course{ID: 10, InstructorID: 1}

	tests := []struct {
		name   string
		id     *model.Identity
		course *model.Course
		want   bool
	}{
		{"anonymous", nil, course, false},
		{"owner", &model.Identity{UserID: 1}, course, true},
		{"other user", &model.Identity{UserID: 2}, course, false},
		{"no course", &model.Identity{UserID: 1}, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanModifyCourse(tt.id, tt.course))
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewFieldError("username", "A user with that username already exists.")
	err.Add("email", "Enter a valid email address.")
	err.Add("email", "Second.")

	assert.Equal(t, []string{"Enter a valid email address.", "Second."}, err.Fields["email"])
	assert.Equal(t,
		"validation failed: email: Enter a valid email address. Second.; username: A user with that username already exists.",
		err.Error())
}
