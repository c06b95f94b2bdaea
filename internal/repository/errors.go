package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes the repositories translate.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("duplicate key value")
	ErrForeignKey = errors.New("foreign key violation")
)

// ConstraintError wraps ErrDuplicate or ErrForeignKey with the violated constraint name.
type ConstraintError struct {
	Err        error
	Constraint string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%v (constraint %s)", e.Err, e.Constraint)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// mapError converts driver errors into repository errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return &ConstraintError{Err: ErrDuplicate, Constraint: pgErr.ConstraintName}
		case pgForeignKeyViolation:
			return &ConstraintError{Err: ErrForeignKey, Constraint: pgErr.ConstraintName}
		}
	}
	return err
}

// ConstraintName returns the violated constraint if err is a ConstraintError.
func ConstraintName(err error) string {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce.Constraint
	}
	return ""
}

// Constraint names from the migrations.
const (
	UsersUsernameKey      = "users_username_key"
	UsersEmailKey         = "users_email_key"
	CategoriesNameKey     = "categories_name_key"
	CoursesCategoryFKey   = "courses_category_id_fkey"
	CoursesInstructorFKey = "courses_instructor_id_fkey"
)
