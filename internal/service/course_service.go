package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coursecatalog/internal/model"
	"coursecatalog/internal/pubsub"
	"coursecatalog/internal/repository"
)

// CourseService defines the interface for course operations.
//
// Ownership is enforced in exactly one place: UpdateCourse and DeleteCourse
// load the course by id and check CanModifyCourse before touching it.
type CourseService interface {
	ListCourses(ctx context.Context) ([]model.Course, error)
	// GetCourse retrieves any course by its ID
	GetCourse(ctx context.Context, id int64) (*model.Course, error)
	// CreateCourse stores c with the requester as instructor
	CreateCourse(ctx context.Context, actor *model.Identity, c *model.Course) (*model.Course, error)
	UpdateCourse(ctx context.Context, actor *model.Identity, id int64, apply func(*model.Course) error) (*model.Course, error)
	DeleteCourse(ctx context.Context, actor *model.Identity, id int64) error
}

// courseService is the implementation of CourseService
type courseService struct {
	repo         repository.CourseRepository
	categoryRepo repository.CategoryRepository
	events       pubsub.EventEmitter
}

// NewCourseService creates a new CourseService
func NewCourseService(repo repository.CourseRepository, categoryRepo repository.CategoryRepository, events pubsub.EventEmitter) CourseService {
	return &courseService{repo: repo, categoryRepo: categoryRepo, events: events}
}

func (s *courseService) ListCourses(ctx context.Context) ([]model.Course, error) {
	return s.repo.ListCourses(ctx)
}

func (s *courseService) GetCourse(ctx context.Context, id int64) (*model.Course, error) {
	c, err := s.repo.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCourseNotFound
	}
	return c, nil
}

func (s *courseService) CreateCourse(ctx context.Context, actor *model.Identity, c *model.Course) (*model.Course, error) {
	// Anonymous creation is a 403 here, not a 401.
	if !IsAuthenticated(actor) {
		return nil, ErrForbidden
	}
	c.InstructorID = actor.UserID

	if err := s.checkCategory(ctx, c.CategoryID); err != nil {
		return nil, err
	}
	if err := s.repo.CreateCourse(ctx, c); err != nil {
		return nil, mapCourseWriteError(err, c.CategoryID)
	}
	s.emit(ctx, model.CourseCreated, c.ID, actor)
	return c, nil
}

// UpdateCourse loads the course, checks ownership, runs apply and saves
func (s *courseService) UpdateCourse(ctx context.Context, actor *model.Identity, id int64, apply func(*model.Course) error) (*model.Course, error) {
	c, err := s.ownedCourse(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := apply(c); err != nil {
		return nil, err
	}
	c.InstructorID = actor.UserID

	if err := s.checkCategory(ctx, c.CategoryID); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateCourse(ctx, c); err != nil {
		return nil, mapCourseWriteError(err, c.CategoryID)
	}
	s.emit(ctx, model.CourseUpdated, c.ID, actor)
	return c, nil
}

func (s *courseService) DeleteCourse(ctx context.Context, actor *model.Identity, id int64) error {
	if _, err := s.ownedCourse(ctx, actor, id); err != nil {
		return err
	}
	if err := s.repo.DeleteCourse(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCourseNotFound
		}
		return err
	}
	s.emit(ctx, model.CourseDeleted, id, actor)
	return nil
}

func (s *courseService) ownedCourse(ctx context.Context, actor *model.Identity, id int64) (*model.Course, error) {
	if !IsAuthenticated(actor) {
		return nil, ErrUnauthenticated
	}
	c, err := s.GetCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanModifyCourse(actor, c) {
		return nil, ErrForbidden
	}
	return c, nil
}

func (s *courseService) checkCategory(ctx context.Context, categoryID *int64) error {
	if categoryID == nil {
		return nil
	}
	cat, err := s.categoryRepo.GetCategoryByID(ctx, *categoryID)
	if err != nil {
		return err
	}
	if cat == nil {
		return invalidCategory(*categoryID)
	}
	return nil
}

func (s *courseService) emit(ctx context.Context, typ model.EventType, id int64, actor *model.Identity) {
	s.events.Emit(ctx, model.CatalogEvent{Type: typ, ID: id, ActorID: actor.UserID, OccurredAt: time.Now().UTC()})
}

func invalidCategory(id int64) *ValidationError {
	return NewFieldError("category", fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id))
}

func mapCourseWriteError(err error, categoryID *int64) error {
	switch {
	case errors.Is(err, repository.ErrForeignKey):
		// The category was deleted between the existence check and the write.
		if repository.ConstraintName(err) == repository.CoursesCategoryFKey && categoryID != nil {
			return invalidCategory(*categoryID)
		}
		// The instructor's account no longer exists.
		if repository.ConstraintName(err) == repository.CoursesInstructorFKey {
			return ErrUnauthenticated
		}
	case errors.Is(err, repository.ErrNotFound):
		return ErrCourseNotFound
	}
	return err
}
