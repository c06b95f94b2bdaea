package model

import "time"

// EventType names a catalog change, e.g. "course.created".
type EventType string

const (
	CategoryCreated EventType = "category.created"
	CategoryUpdated EventType = "category.updated"
	CategoryDeleted EventType = "category.deleted"
	CourseCreated   EventType = "course.created"
	CourseUpdated   EventType = "course.updated"
	CourseDeleted   EventType = "course.deleted"
)

// CatalogEvent is the payload published after a successful catalog write.
type CatalogEvent struct {
	Type       EventType `json:"type"`
	ID         int64     `json:"id"`
	ActorID    int64     `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
