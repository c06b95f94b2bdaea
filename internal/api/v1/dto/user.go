package dto

import (
	"coursecatalog/internal/model"
	"coursecatalog/internal/service"
)

// RegisterRequestDTO is used for incoming registration requests
type RegisterRequestDTO struct {
	Username  *string `json:"username" validate:"required,notblank,max=150,username"`
	Email     *string `json:"email" validate:"required,notblank,email,max=254"`
	Password  *string          `json:"password" validate:"required,notblank"`
	FirstName Nullable[string] `json:"first_name" validate:"omitempty,max=150"`
	LastName  Nullable[string] `json:"last_name" validate:"omitempty,max=150"`
}

func (r *RegisterRequestDTO) nullFields() []string {
	return append(nullField("first_name", r.FirstName.IsNull()), nullField("last_name", r.LastName.IsNull())...)
}

func (r *RegisterRequestDTO) Input() service.RegisterInput {
	return service.RegisterInput{
		Username:  *r.Username,
		Email:     *r.Email,
		Password:  *r.Password,
		FirstName: r.FirstName.Value,
		LastName:  r.LastName.Value,
	}
}

// UserResponseDTO is returned in API responses. The password hash is never included.
type UserResponseDTO struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func NewUserResponse(u *model.User) UserResponseDTO {
	return UserResponseDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// ProfileUpdateDTO is used for PUT and PATCH on the profile. Username and
// email are read-only and silently ignored when sent.
type ProfileUpdateDTO struct {
	FirstName Nullable[string] `json:"first_name" validate:"omitempty,max=150"`
	LastName  Nullable[string] `json:"last_name" validate:"omitempty,max=150"`
}

func (p *ProfileUpdateDTO) nullFields() []string {
	return append(nullField("first_name", p.FirstName.IsNull()), nullField("last_name", p.LastName.IsNull())...)
}

// ApplyTo copies the fields that were sent onto u.
func (p *ProfileUpdateDTO) ApplyTo(u *model.User) {
	if p.FirstName.Valid {
		u.FirstName = p.FirstName.Value
	}
	if p.LastName.Valid {
		u.LastName = p.LastName.Value
	}
}
