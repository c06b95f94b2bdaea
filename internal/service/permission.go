package service

import "coursecatalog/internal/model"

// IsAuthenticated reports whether the request carries a resolved identity.
func IsAuthenticated(id *model.Identity) bool {
	return id != nil && id.UserID != 0
}

// CanModifyCategory: any authenticated identity may write categories.
func CanModifyCategory(id *model.Identity) bool {
	return IsAuthenticated(id)
}

// CanModifyCourse allows only the course's instructor to update or delete it.
func CanModifyCourse(id *model.Identity, c *model.Course) bool {
	return IsAuthenticated(id) && c != nil && c.InstructorID == id.UserID
}
