// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package memory implements the content repository in process memory.
// Each collection is guarded by its own RWMutex: queries run concurrently,
// writes are serialized, and every value handed out is a copy.
package memory

import (
	"time"

	"devblog/internal/store"
)

// New returns a repository backed by fresh, empty in-memory collections.
func New() *store.Repository {
	return &store.Repository{
		Posts:      NewPostStore(),
		Categories: NewCategoryStore(),
		Notes:      NewNoteStore(),
	}
}

// clock returns the current time in UTC.
func clock() time.Time {
	return time.Now().UTC()
}

var (
	_ store.Posts      = (*PostStore)(nil)
	_ store.Categories = (*CategoryStore)(nil)
	_ store.Notes      = (*NoteStore)(nil)
)
