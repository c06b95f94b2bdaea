package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"coursecatalog/internal/model"
)

// CategoryRepository defines the interface for interacting with category data
type CategoryRepository interface {
	// ListCategories returns every category ordered by name
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*model.Category, error)
	CreateCategory(ctx context.Context, c *model.Category) error
	UpdateCategory(ctx context.Context, c *model.Category) error
	// DeleteCategory removes the category; courses referencing it keep a NULL category
	DeleteCategory(ctx context.Context, id int64) error
}

type categoryRepo struct {
	db *sql.DB
}

// NewCategoryRepo creates a new CategoryRepository
func NewCategoryRepo(db *sql.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

const categoryColumns = `id, name, description, created_at, updated_at`

func scanCategory(row interface{ Scan(...any) error }, c *model.Category) error {
	return row.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt)
}

func (r *categoryRepo) ListCategories(ctx context.Context) ([]model.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		ORDER BY name ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := scanCategory(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategoryByID returns nil, nil when the category does not exist
func (r *categoryRepo) GetCategoryByID(ctx context.Context, id int64) (*model.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	var c model.Category
	if err := scanCategory(r.db.QueryRowContext(ctx, query, id), &c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query category: %w", err)
	}
	return &c, nil
}

func (r *categoryRepo) CreateCategory(ctx context.Context, c *model.Category) error {
	query := `
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		RETURNING ` + categoryColumns
	if err := scanCategory(r.db.QueryRowContext(ctx, query, c.Name, c.Description), c); err != nil {
		return fmt.Errorf("failed to insert category: %w", mapError(err))
	}
	return nil
}

func (r *categoryRepo) UpdateCategory(ctx context.Context, c *model.Category) error {
	query := `
		UPDATE categories
		SET name = $1, description = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING ` + categoryColumns
	if err := scanCategory(r.db.QueryRowContext(ctx, query, c.Name, c.Description, c.ID), c); err != nil {
		return fmt.Errorf("failed to update category: %w", mapError(err))
	}
	return nil
}

func (r *categoryRepo) DeleteCategory(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
