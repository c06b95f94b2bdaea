package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"coursecatalog/internal/model"
)

// CourseRepository defines the interface for interacting with course data
type CourseRepository interface {
	// ListCourses returns every course, newest first
	ListCourses(ctx context.Context) ([]model.Course, error)
	// GetCourseByID retrieves a course by its ID, nil if absent
	GetCourseByID(ctx context.Context, id int64) (*model.Course, error)
	CreateCourse(ctx context.Context, c *model.Course) error
	// UpdateCourse updates an existing course; the instructor never changes
	UpdateCourse(ctx context.Context, c *model.Course) error
	DeleteCourse(ctx context.Context, id int64) error
}

type courseRepo struct {
	db *sql.DB
}

// NewCourseRepo creates a new CourseRepository
func NewCourseRepo(db *sql.DB) CourseRepository {
	return &courseRepo{db: db}
}

// courseSelect reads from a relation aliased "c" joined to its instructor and category.
const courseSelect = `
		SELECT c.id, c.category_id, cat.name, c.instructor_id, u.username,
		       c.title, c.description, c.price, c.duration_hours, c.created_at, c.updated_at
		FROM %s c
		JOIN users u ON u.id = c.instructor_id
		LEFT JOIN categories cat ON cat.id = c.category_id`

func scanCourse(row interface{ Scan(...any) error }, c *model.Course) error {
	return row.Scan(
		&c.ID,
		&c.CategoryID,
		&c.CategoryName,
		&c.InstructorID,
		&c.InstructorUsername,
		&c.Title,
		&c.Description,
		&c.Price,
		&c.DurationHours,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
}

func (r *courseRepo) ListCourses(ctx context.Context) ([]model.Course, error) {
	query := fmt.Sprintf(courseSelect, "courses") + `
		ORDER BY c.created_at DESC, c.id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	defer rows.Close()

	courses := []model.Course{}
	for rows.Next() {
		var c model.Course
		if err := scanCourse(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan course row: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepo) GetCourseByID(ctx context.Context, id int64) (*model.Course, error) {
	query := fmt.Sprintf(courseSelect, "courses") + `
		WHERE c.id = $1`
	var c model.Course
	if err := scanCourse(r.db.QueryRowContext(ctx, query, id), &c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query course: %w", err)
	}
	return &c, nil
}

// CreateCourse inserts a new course and scans back the joined record
func (r *courseRepo) CreateCourse(ctx context.Context, c *model.Course) error {
	query := `
		WITH inserted AS (
			INSERT INTO courses (category_id, instructor_id, title, description, price, duration_hours)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING *
		)` + fmt.Sprintf(courseSelect, "inserted")
	err := scanCourse(r.db.QueryRowContext(ctx, query,
		c.CategoryID, c.InstructorID, c.Title, c.Description, c.Price, c.DurationHours,
	), c)
	if err != nil {
		return fmt.Errorf("failed to insert course: %w", mapError(err))
	}
	return nil
}

func (r *courseRepo) UpdateCourse(ctx context.Context, c *model.Course) error {
	query := `
		WITH updated AS (
			UPDATE courses
			SET category_id = $1, title = $2, description = $3, price = $4, duration_hours = $5, updated_at = NOW()
			WHERE id = $6
			RETURNING *
		)` + fmt.Sprintf(courseSelect, "updated")
	err := scanCourse(r.db.QueryRowContext(ctx, query,
		c.CategoryID, c.Title, c.Description, c.Price, c.DurationHours, c.ID,
	), c)
	if err != nil {
		return fmt.Errorf("failed to update course: %w", mapError(err))
	}
	return nil
}

func (r *courseRepo) DeleteCourse(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
