package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devblog/internal/models"
)

func TestCategoryStore_List(t *testing.T) {
	db, mock := newMock(t)
	s := NewCategoryStore(db)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY lower(name), name")).
		WillReturnRows(sqlmock.NewRows(categoryCols).
			AddRow("c1", "Backend", "backend", "d", "red", "0").
			AddRow("c2", "Databases", "databases", "d", "green", "1"))

	cats, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "Backend", cats[0].Name)
	assert.Equal(t, "1", cats[1].PostCount)
}

func TestCategoryStore_FindBySlugNotFound(t *testing.T) {
	db, mock := newMock(t)
	s := NewCategoryStore(db)

	mock.ExpectQuery("FROM categories WHERE slug").
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(categoryCols))

	_, err := s.FindBySlug(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryStore_CreateDefaultsPostCount(t *testing.T) {
	db, mock := newMock(t)
	s := NewCategoryStore(db)

	mock.ExpectQuery("INSERT INTO categories").
		WithArgs(sqlmock.AnyArg(), "Security", "security", "d", "orange", "0").
		WillReturnRows(sqlmock.NewRows(categoryCols).
			AddRow("c9", "Security", "security", "d", "orange", "0"))

	c, err := s.Create(context.Background(), models.NewCategory{
		Name: "Security", Slug: "security", Description: "d", Color: "orange",
	})
	require.NoError(t, err)
	assert.Equal(t, "0", c.PostCount)
}

func TestCategoryStore_CreateConflict(t *testing.T) {
	db, mock := newMock(t)
	s := NewCategoryStore(db)

	mock.ExpectQuery("INSERT INTO categories").
		WillReturnError(&pgconn.PgError{Code: uniqueViolation, Message: "duplicate key"})

	_, err := s.Create(context.Background(), models.NewCategory{Name: "Backend", Slug: "backend"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCategoryStore_SeedEmptyTable(t *testing.T) {
	db, mock := newMock(t)
	s := NewCategoryStore(db)
	defaults := DefaultCategories()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM categories")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	for _, c := range defaults {
		mock.ExpectQuery("INSERT INTO categories").
			WithArgs(sqlmock.AnyArg(), c.Name, c.Slug, c.Description, c.Color, c.PostCount).
			WillReturnRows(sqlmock.NewRows(categoryCols).
				AddRow("id-"+c.Slug, c.Name, c.Slug, c.Description, c.Color, c.PostCount))
	}
	mock.ExpectCommit()

	n, err := s.Seed(context.Background(), defaults)
	require.NoError(t, err)
	assert.Equal(t, len(defaults), n)
}

func TestCategoryStore_SeedSkipsPopulatedTable(t *testing.T) {
	db, mock := newMock(t)
	s := NewCategoryStore(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM categories")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))
	mock.ExpectRollback()

	n, err := s.Seed(context.Background(), DefaultCategories())
	require.NoError(t, err)
	assert.Zero(t, n)
}
