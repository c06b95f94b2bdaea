package model

import "time"

// Course is a catalog entry taught by InstructorID.
// CategoryName and InstructorUsername are populated on reads only.
type Course struct {
	ID                 int64     `db:"id" json:"id"`
	CategoryID         *int64    `db:"category_id" json:"category"`
	CategoryName       *string   `db:"category_name" json:"category_name"`
	InstructorID       int64     `db:"instructor_id" json:"instructor"`
	InstructorUsername string    `db:"instructor_username" json:"instructor_username"`
	Title              string    `db:"title" json:"title"`
	Description        string    `db:"description" json:"description"`
	Price              Price     `db:"price" json:"price"`
	DurationHours      *int32    `db:"duration_hours" json:"duration_hours"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}
