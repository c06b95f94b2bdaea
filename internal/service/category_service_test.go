package service

import (
	"context"
	"testing"

	"coursecatalog/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.register(t, "alice")

	c, err := f.categories.CreateCategory(ctx, alice, &model.Category{Name: "Math"})
	require.NoError(t, err)
	assert.NotZero(t, c.ID)

	got, err := f.categories.GetCategory(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Math", got.Name)

	desc := "Numbers"
	upd, err := f.categories.UpdateCategory(ctx, alice, c.ID, func(c *model.Category) error {
		c.Description = &desc
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Math", upd.Name)
	assert.Equal(t, "Numbers", *upd.Description)

	require.NoError(t, f.categories.DeleteCategory(ctx, alice, c.ID))
	_, err = f.categories.GetCategory(ctx, c.ID)
	require.ErrorIs(t, err, ErrCategoryNotFound)

	assert.Equal(t, []model.EventType{model.CategoryCreated, model.CategoryUpdated, model.CategoryDeleted}, f.events.types())
}

func TestCategoryAnyUserMayModify(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")

	c, err := f.categories.CreateCategory(ctx, alice, &model.Category{Name: "Math"})
	require.NoError(t, err)

	_, err = f.categories.UpdateCategory(ctx, bob, c.ID, func(c *model.Category) error {
		c.Name = "Maths"
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, f.categories.DeleteCategory(ctx, bob, c.ID))
}

func TestCategoryDuplicateName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.register(t, "alice")
	_, err := f.categories.CreateCategory(ctx, alice, &model.Category{Name: "Math"})
	require.NoError(t, err)
	art, err := f.categories.CreateCategory(ctx, alice, &model.Category{Name: "Art"})
	require.NoError(t, err)

	_, err = f.categories.CreateCategory(ctx, alice, &model.Category{Name: "Math"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"category with this name already exists."}, verr.Fields["name"])

	_, err = f.categories.UpdateCategory(ctx, alice, art.ID, func(c *model.Category) error {
		c.Name = "Math"
		return nil
	})
	require.ErrorAs(t, err, &verr)
}

func TestCategoryAnonymousWrites(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.categories.CreateCategory(ctx, nil, &model.Category{Name: "Math"})
	require.ErrorIs(t, err, ErrUnauthenticated)
	_, err = f.categories.UpdateCategory(ctx, nil, 1, func(*model.Category) error { return nil })
	require.ErrorIs(t, err, ErrUnauthenticated)
	require.ErrorIs(t, f.categories.DeleteCategory(ctx, nil, 1), ErrUnauthenticated)
	assert.Empty(t, f.events.types())
}

func TestCategoryNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.register(t, "alice")

	_, err := f.categories.UpdateCategory(ctx, alice, 9, func(*model.Category) error { return nil })
	require.ErrorIs(t, err, ErrCategoryNotFound)
	require.ErrorIs(t, f.categories.DeleteCategory(ctx, alice, 9), ErrCategoryNotFound)
}

func TestListCategoriesOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.register(t, "alice")
	for _, n := range []string{"Zoology", "Art", "Music"} {
		_, err := f.categories.CreateCategory(ctx, alice, &model.Category{Name: n})
		require.NoError(t, err)
	}

	got, err := f.categories.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Art", got[0].Name)
	assert.Equal(t, "Music", got[1].Name)
	assert.Equal(t, "Zoology", got[2].Name)
}
