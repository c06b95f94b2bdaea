package service

import (
	"context"
	"errors"
	"time"

	"coursecatalog/internal/model"
	"coursecatalog/internal/pubsub"
	"coursecatalog/internal/repository"
)

const msgCategoryNameTaken = "category with this name already exists."

// CategoryService defines the interface for category operations
type CategoryService interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategory(ctx context.Context, id int64) (*model.Category, error)
	CreateCategory(ctx context.Context, actor *model.Identity, c *model.Category) (*model.Category, error)
	UpdateCategory(ctx context.Context, actor *model.Identity, id int64, apply func(*model.Category) error) (*model.Category, error)
	DeleteCategory(ctx context.Context, actor *model.Identity, id int64) error
}

type categoryService struct {
	repo   repository.CategoryRepository
	events pubsub.EventEmitter
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(repo repository.CategoryRepository, events pubsub.EventEmitter) CategoryService {
	return &categoryService{repo: repo, events: events}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *categoryService) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	c, err := s.repo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}
	return c, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, actor *model.Identity, c *model.Category) (*model.Category, error) {
	if !CanModifyCategory(actor) {
		return nil, ErrUnauthenticated
	}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, mapCategoryWriteError(err)
	}
	s.emit(ctx, model.CategoryCreated, c.ID, actor)
	return c, nil
}

// UpdateCategory loads the category, runs apply against it and saves the result
func (s *categoryService) UpdateCategory(ctx context.Context, actor *model.Identity, id int64, apply func(*model.Category) error) (*model.Category, error) {
	if !CanModifyCategory(actor) {
		return nil, ErrUnauthenticated
	}
	c, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(c); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateCategory(ctx, c); err != nil {
		return nil, mapCategoryWriteError(err)
	}
	s.emit(ctx, model.CategoryUpdated, c.ID, actor)
	return c, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, actor *model.Identity, id int64) error {
	if !CanModifyCategory(actor) {
		return ErrUnauthenticated
	}
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	s.emit(ctx, model.CategoryDeleted, id, actor)
	return nil
}

func (s *categoryService) emit(ctx context.Context, typ model.EventType, id int64, actor *model.Identity) {
	s.events.Emit(ctx, model.CatalogEvent{Type: typ, ID: id, ActorID: actor.UserID, OccurredAt: time.Now().UTC()})
}

func mapCategoryWriteError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicate) && repository.ConstraintName(err) == repository.CategoriesNameKey:
		return NewFieldError("name", msgCategoryNameTaken)
	case errors.Is(err, repository.ErrNotFound):
		return ErrCategoryNotFound
	}
	return err
}
