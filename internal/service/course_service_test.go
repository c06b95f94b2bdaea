package service

import (
	"context"
	"testing"
	"time"

	"coursecatalog/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCourseAssignsInstructor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")

	c, err := f.courses.CreateCourse(ctx, alice, &model.Course{InstructorID: bob.UserID, Title: "Intro", Description: "d"})
	require.NoError(t, err)
	assert.Equal(t, alice.UserID, c.InstructorID)
	assert.Equal(t, "alice", c.InstructorUsername)
	assert.Equal(t, []model.EventType{model.CourseCreated}, f.events.types())
}

func TestCreateCourseAnonymousForbidden(t *testing.T) {
	f := newFixture(t)
	_, err := f.courses.CreateCourse(context.Background(), nil, &model.Course{Title: "Intro"})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestCreateCourseUnknownCategory(t *testing.T) {
	f := newFixture(t)
	alice := f.register(t, "alice")
	missing := int64(5)

	_, err := f.courses.CreateCourse(context.Background(), alice, &model.Course{Title: "Intro", CategoryID: &missing})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{`Invalid pk "5" - object does not exist.`}, verr.Fields["category"])
}

func TestCourseOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")
	c, err := f.courses.CreateCourse(ctx, alice, &model.Course{Title: "Intro", Description: "d"})
	require.NoError(t, err)

	applied := false
	_, err = f.courses.UpdateCourse(ctx, bob, c.ID, func(c *model.Course) error {
		applied = true
		return nil
	})
	require.ErrorIs(t, err, ErrForbidden)
	assert.False(t, applied, "mutation must not run for a non-owner")

	require.ErrorIs(t, f.courses.DeleteCourse(ctx, bob, c.ID), ErrForbidden)

	_, err = f.courses.UpdateCourse(ctx, nil, c.ID, func(*model.Course) error { return nil })
	require.ErrorIs(t, err, ErrUnauthenticated)
	require.ErrorIs(t, f.courses.DeleteCourse(ctx, nil, c.ID), ErrUnauthenticated)

	upd, err := f.courses.UpdateCourse(ctx, alice, c.ID, func(c *model.Course) error {
		c.Title = "Intro 2"
		c.InstructorID = bob.UserID
		c.Price = 1999
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Intro 2", upd.Title)
	assert.Equal(t, alice.UserID, upd.InstructorID)
	assert.Equal(t, model.Price(1999), upd.Price)

	require.NoError(t, f.courses.DeleteCourse(ctx, alice, c.ID))
	_, err = f.courses.GetCourse(ctx, c.ID)
	require.ErrorIs(t, err, ErrCourseNotFound)
}

func TestCourseNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.register(t, "alice")

	_, err := f.courses.GetCourse(ctx, 77)
	require.ErrorIs(t, err, ErrCourseNotFound)
	_, err = f.courses.UpdateCourse(ctx, alice, 77, func(*model.Course) error { return nil })
	require.ErrorIs(t, err, ErrCourseNotFound)
	require.ErrorIs(t, f.courses.DeleteCourse(ctx, alice, 77), ErrCourseNotFound)
}

func TestListCoursesNewestFirst(t *testing.T) {
	f := newFixture(t)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	n := 0
	f.store.SetClock(func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Minute)
	})
	ctx := context.Background()
	alice := f.register(t, "alice")
	for _, title := range []string{"a", "b", "c"} {
		_, err := f.courses.CreateCourse(ctx, alice, &model.Course{Title: title})
		require.NoError(t, err)
	}

	got, err := f.courses.ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{got[0].Title, got[1].Title, got[2].Title})
}

func TestDeleteCategoryKeepsCourses(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.register(t, "alice")
	cat, err := f.categories.CreateCategory(ctx, alice, &model.Category{Name: "Math"})
	require.NoError(t, err)
	c, err := f.courses.CreateCourse(ctx, alice, &model.Course{Title: "Algebra", CategoryID: &cat.ID})
	require.NoError(t, err)

	require.NoError(t, f.categories.DeleteCategory(ctx, alice, cat.ID))

	got, err := f.courses.GetCourse(ctx, c.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CategoryID)
	assert.Nil(t, got.CategoryName)
}
