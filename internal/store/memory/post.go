// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"devblog/internal/models"
	"devblog/internal/search"
	"devblog/internal/slug"
	"devblog/internal/store"
)

// PostStore holds posts in insertion order.
type PostStore struct {
	mu    sync.RWMutex
	posts []models.Post
	now   func() time.Time
}

// NewPostStore creates an empty PostStore.
func NewPostStore() *PostStore {
	return &PostStore{now: clock}
}

// List returns all posts, newest first.
func (s *PostStore) List(_ context.Context) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return newestFirst(s.snapshot(func(*models.Post) bool { return true })), nil
}

// FindBySlug returns the earliest stored post with the slug.
func (s *PostStore) FindBySlug(_ context.Context, slug string) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.posts {
		if s.posts[i].Slug == slug {
			p := s.posts[i].Clone()
			return &p, nil
		}
	}
	return nil, store.ErrNotFound
}

// ListByCategory returns posts in the named category, ignoring case.
func (s *PostStore) ListByCategory(_ context.Context, name string) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return newestFirst(s.snapshot(func(p *models.Post) bool {
		return strings.EqualFold(p.Category, name)
	})), nil
}

// Search returns posts matching query, newest first.
func (s *PostStore) Search(_ context.Context, query string) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return newestFirst(s.snapshot(func(p *models.Post) bool {
		return search.Matches(p, query)
	})), nil
}

// Create stores a new post. Slugs are not checked for uniqueness.
func (s *PostStore) Create(_ context.Context, in models.NewPost) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

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
		PublishedAt:   s.now(),
	}
	if p.ReadTime == "" {
		p.ReadTime = models.DefaultReadTime
	}
	p = p.Clone()
	s.posts = append(s.posts, p)

	out := p.Clone()
	return &out, nil
}

// Import appends loaded posts, assigning ids where missing.
func (s *PostStore) Import(_ context.Context, posts []models.Post) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range posts {
		p = p.Clone()
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if p.PublishedAt.IsZero() {
			p.PublishedAt = s.now()
		}
		s.posts = append(s.posts, p)
	}
	return len(posts), nil
}

// snapshot copies the posts accepted by keep. Callers hold the read lock.
func (s *PostStore) snapshot(keep func(*models.Post) bool) []models.Post {
	out := make([]models.Post, 0, len(s.posts))
	for i := range s.posts {
		if keep(&s.posts[i]) {
			out = append(out, s.posts[i].Clone())
		}
	}
	return out
}

// newestFirst sorts by publish time descending, keeping insertion order
// for equal times.
func newestFirst(posts []models.Post) []models.Post {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishedAt.After(posts[j].PublishedAt)
	})
	return posts
}
