// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"devblog/internal/models"
	"devblog/internal/slug"
)

// PostStore handles post persistence in PostgreSQL.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new PostStore with the given database connection.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

const postColumns = `id, slug, title, description, content, category, tags,
       read_time, featured_image, published_at`

// newestFirst orders by publish date, then by insertion sequence.
const newestFirst = ` ORDER BY published_at DESC, seq ASC`

// scanPost scans a row into a Post.
func scanPost(scanner interface{ Scan(...any) error }) (*models.Post, error) {
	var (
		p     models.Post
		tags  string
		image sql.NullString
	)
	err := scanner.Scan(
		&p.ID, &p.Slug, &p.Title, &p.Description, &p.Content, &p.Category,
		&tags, &p.ReadTime, &image, &p.PublishedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(tags), &p.Tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if image.Valid {
		p.FeaturedImage = &image.String
	}
	return &p, nil
}

// queryPosts runs a SELECT and scans every row.
func (s *PostStore) queryPosts(ctx context.Context, op, query string, args ...any) ([]models.Post, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]models.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// List returns all posts, newest first.
func (s *PostStore) List(ctx context.Context) ([]models.Post, error) {
	return s.queryPosts(ctx, "list posts", `SELECT `+postColumns+` FROM posts`+newestFirst)
}

// FindBySlug retrieves the earliest post with the slug.
func (s *PostStore) FindBySlug(ctx context.Context, slug string) (*models.Post, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+postColumns+` FROM posts WHERE slug = $1 ORDER BY seq ASC LIMIT 1`, slug)
	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find post by slug: %w", err)
	}
	return p, nil
}

// ListByCategory returns posts in the named category, ignoring case.
func (s *PostStore) ListByCategory(ctx context.Context, name string) ([]models.Post, error) {
	return s.queryPosts(ctx, "list posts by category",
		`SELECT `+postColumns+` FROM posts WHERE lower(category) = lower($1)`+newestFirst, name)
}

// Search returns posts where the query is a substring of the title,
// description, content or any tag, ignoring case. strpos is used rather
// than LIKE so that % and _ in the query match literally.
func (s *PostStore) Search(ctx context.Context, query string) ([]models.Post, error) {
	q := strings.ToLower(query)
	if q == "" {
		return []models.Post{}, nil
	}
	return s.queryPosts(ctx, "search posts", `
		SELECT `+postColumns+` FROM posts
		WHERE strpos(lower(title), $1) > 0
		   OR strpos(lower(description), $1) > 0
		   OR strpos(lower(content), $1) > 0
		   OR EXISTS (
		       SELECT 1 FROM jsonb_array_elements_text(tags) AS t(tag)
		       WHERE strpos(lower(t.tag), $1) > 0
		   )`+newestFirst, q)
}

// Create inserts a new post and returns it.
func (s *PostStore) Create(ctx context.Context, in models.NewPost) (*models.Post, error) {
	p := models.Post{
		ID:            uuid.NewString(),
		Slug:          slug.Generate(in.Title),
		Title:         in.Title,
		Description:   in.Description,
		Content:       in.Content,
		Category:      in.Category,
		Tags:          models.CloneTags(in.Tags),
		ReadTime:      in.ReadTime,
		FeaturedImage: in.FeaturedImage,
		PublishedAt:   time.Now().UTC(),
	}
	if p.ReadTime == "" {
		p.ReadTime = models.DefaultReadTime
	}

	tags, err := json.Marshal(p.Tags)
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO posts (id, slug, title, description, content, category, tags,
		                   read_time, featured_image, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, $8, $9, $10)
		RETURNING `+postColumns,
		p.ID, p.Slug, p.Title, p.Description, p.Content, p.Category, string(tags),
		p.ReadTime, p.FeaturedImage, p.PublishedAt,
	)
	created, err := scanPost(row)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return created, nil
}

// Import inserts loaded posts in one transaction. Posts whose slug is
// already stored are skipped so restarting the server does not duplicate
// file-backed posts.
func (s *PostStore) Import(ctx context.Context, posts []models.Post) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO posts (id, slug, title, description, content, category, tags,
		                   read_time, featured_image, published_at)
		SELECT $1, $2, $3, $4, $5, $6, $7::jsonb, $8, $9, $10
		WHERE NOT EXISTS (SELECT 1 FROM posts WHERE slug = $2)`)
	if err != nil {
		return 0, fmt.Errorf("prepare import: %w", err)
	}
	defer stmt.Close()

	var added int
	for _, p := range posts {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if p.PublishedAt.IsZero() {
			p.PublishedAt = time.Now().UTC()
		}
		tags, err := json.Marshal(models.CloneTags(p.Tags))
		if err != nil {
			return 0, fmt.Errorf("encode tags for %s: %w", p.Slug, err)
		}

		res, err := stmt.ExecContext(ctx,
			p.ID, p.Slug, p.Title, p.Description, p.Content, p.Category, string(tags),
			p.ReadTime, p.FeaturedImage, p.PublishedAt,
		)
		if err != nil {
			return 0, fmt.Errorf("import post %s: %w", p.Slug, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			added += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return added, nil
}
