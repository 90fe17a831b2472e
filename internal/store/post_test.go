package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devblog/internal/models"
)

func TestPostStore_List(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostStore(db)
	published := time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM posts ORDER BY published_at DESC, seq ASC")).
		WillReturnRows(sqlmock.NewRows(postCols).
			AddRow("id-2", "newer", "Newer", "d", "c", "Backend", `["go","sql"]`, "3 min read", "https://img.example/a.png", published).
			AddRow("id-1", "older", "Older", "d", "c", "Backend", `[]`, "5 min read", nil, published.Add(-time.Hour)))

	posts, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, "newer", posts[0].Slug)
	assert.Equal(t, []string{"go", "sql"}, posts[0].Tags)
	require.NotNil(t, posts[0].FeaturedImage)
	assert.Equal(t, "https://img.example/a.png", *posts[0].FeaturedImage)

	assert.NotNil(t, posts[1].Tags)
	assert.Empty(t, posts[1].Tags)
	assert.Nil(t, posts[1].FeaturedImage)
}

func TestPostStore_ListEmpty(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostStore(db)

	mock.ExpectQuery("FROM posts").WillReturnRows(sqlmock.NewRows(postCols))

	posts, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestPostStore_FindBySlug(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostStore(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE slug = $1 ORDER BY seq ASC LIMIT 1")).
		WithArgs("hello-world").
		WillReturnRows(sqlmock.NewRows(postCols).
			AddRow("id-1", "hello-world", "Hello", "", "body", "Languages", `[]`, "5 min read", nil, time.Now()))

	p, err := s.FindBySlug(context.Background(), "hello-world")
	require.NoError(t, err)
	assert.Equal(t, "Hello", p.Title)
}

func TestPostStore_FindBySlugNotFound(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostStore(db)

	mock.ExpectQuery("FROM posts WHERE slug").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(postCols))

	_, err := s.FindBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostStore_FindBySlugDatabaseError(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostStore(db)

	boom := errors.New("connection reset")
	mock.ExpectQuery("FROM posts WHERE slug").WillReturnError(boom)

	_, err := s.FindBySlug(context.Background(), "any")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestPostStore_ListByCategory(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostStore(db)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE lower(category) = lower($1)")).
		WithArgs("databases").
		WillReturnRows(sqlmock.NewRows(postCols).
			AddRow("id-1", "indexes", "Indexes", "", "", "Databases", `[]`, "5 min read", nil, time.Now()))

	posts, err := s.ListByCategory(context.Background(), "databases")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Databases", posts[0].Category)
}

func TestPostStore_SearchLowersQuery(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostStore(db)

	mock.ExpectQuery(regexp.QuoteMeta("jsonb_array_elements_text(tags)")).
		WithArgs("postgres").
		WillReturnRows(sqlmock.NewRows(postCols))

	posts, err := s.Search(context.Background(), "PostGres")
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostStore_SearchEmptyQuerySkipsDatabase(t *testing.T) {
	db, _ := newMock(t)
	s := NewPostStore(db)

	posts, err := s.Search(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestPostStore_Create(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostStore(db)
	now := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO posts").
		WithArgs(sqlmock.AnyArg(), "my-post", "My Post!", "d", "c", "Backend", `[]`,
			models.DefaultReadTime, nil, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(postCols).
			AddRow("new-id", "my-post", "My Post!", "d", "c", "Backend", `[]`, models.DefaultReadTime, nil, now))

	p, err := s.Create(context.Background(), models.NewPost{
		Title: "My Post!", Description: "d", Content: "c", Category: "Backend",
	})
	require.NoError(t, err)
	assert.Equal(t, "my-post", p.Slug)
	assert.Equal(t, "new-id", p.ID)
	assert.Empty(t, p.Tags)
}

func TestPostStore_ImportSkipsExistingSlugs(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostStore(db)

	mock.ExpectBegin()
	prep := mock.ExpectPrepare(regexp.QuoteMeta("WHERE NOT EXISTS (SELECT 1 FROM posts WHERE slug = $2)"))
	prep.ExpectExec().WithArgs(anyArgs(10)...).WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WithArgs(anyArgs(10)...).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	n, err := s.Import(context.Background(), []models.Post{
		{Slug: "fresh", Title: "Fresh"},
		{Slug: "already-there", Title: "Old"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPostStore_ImportRollsBackOnError(t *testing.T) {
	db, mock := newMock(t)
	s := NewPostStore(db)

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO posts")
	prep.ExpectExec().WithArgs(anyArgs(10)...).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := s.Import(context.Background(), []models.Post{{Slug: "broken"}})
	assert.ErrorContains(t, err, "import post broken")
}
