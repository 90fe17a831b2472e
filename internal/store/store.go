// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store defines the content repository contract and its PostgreSQL
// implementation. The in-memory implementation lives in store/memory.
package store

import (
	"context"
	"database/sql"
	"errors"

	"devblog/internal/models"
)

var (
	// ErrNotFound is returned by lookups that match nothing.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a unique category name or slug is taken.
	ErrConflict = errors.New("already exists")
)

// Posts is the post collection.
type Posts interface {
	// List returns every post, newest first. Posts published at the same
	// instant keep insertion order.
	List(ctx context.Context) ([]models.Post, error)
	// FindBySlug returns the first post with the slug, or ErrNotFound.
	FindBySlug(ctx context.Context, slug string) (*models.Post, error)
	// ListByCategory returns posts whose category equals name ignoring
	// case, newest first.
	ListByCategory(ctx context.Context, name string) ([]models.Post, error)
	// Search returns posts matching query as a case-insensitive substring
	// of title, description, content or a tag, newest first.
	Search(ctx context.Context, query string) ([]models.Post, error)
	// Create stores a new post with a generated id, a title-derived slug
	// and the current time as its publish date.
	Create(ctx context.Context, in models.NewPost) (*models.Post, error)
	// Import stores posts produced by the document loader and reports how
	// many were added.
	Import(ctx context.Context, posts []models.Post) (int, error)
}

// Categories is the category collection.
type Categories interface {
	// List returns every category ordered by name.
	List(ctx context.Context) ([]models.Category, error)
	// FindBySlug returns the category with the slug, or ErrNotFound.
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	// Create stores a category. An empty PostCount is stored as "0".
	Create(ctx context.Context, in models.NewCategory) (*models.Category, error)
	// Seed inserts defaults when the collection is empty and reports how
	// many were added.
	Seed(ctx context.Context, defaults []models.NewCategory) (int, error)
}

// Notes is the note collection.
type Notes interface {
	// ListByPost returns the post's notes in insertion order.
	ListByPost(ctx context.Context, postID string) ([]models.Note, error)
	// Create stores a note stamped with the current time.
	Create(ctx context.Context, in models.NewNote) (*models.Note, error)
	// Delete removes a note. Unknown ids are not an error.
	Delete(ctx context.Context, id string) error
}

// Repository bundles the three collections handed to the HTTP layer.
type Repository struct {
	Posts      Posts
	Categories Categories
	Notes      Notes
}

// NewPostgres returns a repository backed by PostgreSQL. The schema must
// already be migrated.
func NewPostgres(db *sql.DB) *Repository {
	return &Repository{
		Posts:      NewPostStore(db),
		Categories: NewCategoryStore(db),
		Notes:      NewNoteStore(db),
	}
}

var (
	_ Posts      = (*PostStore)(nil)
	_ Categories = (*CategoryStore)(nil)
	_ Notes      = (*NoteStore)(nil)
)
