package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"coursecatalog/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userCols = []string{"id", "username", "email", "password", "first_name", "last_name", "is_active", "date_joined"}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return db, mock
}

func TestUserRepoCreateUser(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepo(db)
	joined := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice", "alice@x.com", "hash", "Alice", "").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(int64(1), "alice", "alice@x.com", "hash", "Alice", "", true, joined))

	u := &model.User{Username: "alice", Email: "alice@x.com", PasswordHash: "hash", FirstName: "Alice"}
	require.NoError(t, repo.CreateUser(context.Background(), u))
	assert.Equal(t, int64(1), u.ID)
	assert.True(t, u.IsActive)
	assert.Equal(t, joined, u.DateJoined)
}

func TestUserRepoCreateUserDuplicate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepo(db)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: UsersEmailKey})

	err := repo.CreateUser(context.Background(), &model.User{Username: "alice", Email: "a@x.com"})
	require.ErrorIs(t, err, ErrDuplicate)
	assert.Equal(t, UsersEmailKey, ConstraintName(err))
}

func TestUserRepoGetUserByUsername(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepo(db)

	mock.ExpectQuery(`SELECT .+ FROM users WHERE username = \$1`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(int64(7), "alice", "alice@x.com", "hash", "", "", true, time.Now()))
	mock.ExpectQuery(`SELECT .+ FROM users WHERE username = \$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	u, err := repo.GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, int64(7), u.ID)

	u, err = repo.GetUserByUsername(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserRepoGetUserByIDError(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepo(db)

	mock.ExpectQuery(`SELECT .+ FROM users WHERE id = \$1`).
		WithArgs(int64(3)).
		WillReturnError(errors.New("conn reset"))

	_, err := repo.GetUserByID(context.Background(), 3)
	require.ErrorContains(t, err, "conn reset")
}

func TestUserRepoExists(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepo(db)

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM users WHERE username = \$1\)`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM users WHERE email = \$1\)`).
		WithArgs("bob@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	ok, err := repo.UsernameExists(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.EmailExists(context.Background(), "bob@x.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserRepoUpdateUserNames(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepo(db)

	mock.ExpectQuery(`UPDATE users SET first_name = \$1, last_name = \$2 WHERE id = \$3`).
		WithArgs("Al", "Ice", int64(1)).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(int64(1), "alice", "alice@x.com", "hash", "Al", "Ice", true, time.Now()))
	mock.ExpectQuery(`UPDATE users`).
		WithArgs("X", "Y", int64(99)).
		WillReturnError(sql.ErrNoRows)

	u := &model.User{ID: 1, FirstName: "Al", LastName: "Ice"}
	require.NoError(t, repo.UpdateUserNames(context.Background(), u))
	assert.Equal(t, "alice", u.Username)

	err := repo.UpdateUserNames(context.Background(), &model.User{ID: 99, FirstName: "X", LastName: "Y"})
	require.ErrorIs(t, err, ErrNotFound)
}
