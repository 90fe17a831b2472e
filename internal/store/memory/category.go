// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"devblog/internal/models"
	"devblog/internal/store"
)

// CategoryStore holds categories in insertion order.
type CategoryStore struct {
	mu         sync.RWMutex
	categories []models.Category
}

// NewCategoryStore creates an empty CategoryStore.
func NewCategoryStore() *CategoryStore {
	return &CategoryStore{}
}

// List returns all categories sorted by name.
func (s *CategoryStore) List(_ context.Context) ([]models.Category, error) {
	s.mu.RLock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		a, b := strings.ToLower(out[i].Name), strings.ToLower(out[j].Name)
		if a != b {
			return a < b
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// FindBySlug returns the category with the slug.
func (s *CategoryStore) FindBySlug(_ context.Context, slug string) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.Slug == slug {
			return &c, nil
		}
	}
	return nil, store.ErrNotFound
}

// Create stores a category. Names and slugs must be unique.
func (s *CategoryStore) Create(_ context.Context, in models.NewCategory) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.insert(in)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Seed inserts defaults into an empty store.
func (s *CategoryStore) Seed(_ context.Context, defaults []models.NewCategory) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.categories) > 0 {
		return 0, nil
	}
	for _, in := range defaults {
		if _, err := s.insert(in); err != nil {
			return 0, fmt.Errorf("seed category %q: %w", in.Name, err)
		}
	}
	return len(defaults), nil
}

// insert appends a category. Callers hold the write lock.
func (s *CategoryStore) insert(in models.NewCategory) (models.Category, error) {
	for _, c := range s.categories {
		if c.Name == in.Name || c.Slug == in.Slug {
			return models.Category{}, fmt.Errorf("create category %q: %w", in.Name, store.ErrConflict)
		}
	}

	c := models.Category{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		Color:       in.Color,
		PostCount:   in.PostCount,
	}
	if c.PostCount == "" {
		c.PostCount = "0"
	}
	s.categories = append(s.categories, c)
	return c, nil
}
