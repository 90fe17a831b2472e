// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// DefaultReadTime is used when a post does not declare its reading time.
const DefaultReadTime = "5 min read"

// Post is a published blog article. Posts come either from a document file
// loaded at startup or from the create-post form.
type Post struct {
	ID            string    `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Content       string    `json:"content"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags"`
	ReadTime      string    `json:"readTime"`
	FeaturedImage *string   `json:"featuredImage"`
	PublishedAt   time.Time `json:"publishedAt"`
}

// Clone returns a deep copy so callers can't mutate stored state through
// the tags slice or the featured image pointer.
func (p Post) Clone() Post {
	p.Tags = CloneTags(p.Tags)
	if p.FeaturedImage != nil {
		img := *p.FeaturedImage
		p.FeaturedImage = &img
	}
	return p
}

// NewPost holds the author-supplied fields for creating a post.
// ID, slug and publish time are assigned by the store.
type NewPost struct {
	Title         string   `json:"title" validate:"required,notblank,max=255"`
	Description   string   `json:"description" validate:"required,notblank,max=500"`
	Content       string   `json:"content" validate:"required,notblank"`
	Category      string   `json:"category" validate:"required,notblank,max=100"`
	Tags          []string `json:"tags" validate:"omitempty,max=20,dive,notblank,max=50"`
	ReadTime      string   `json:"readTime" validate:"omitempty,max=50"`
	FeaturedImage *string  `json:"featuredImage" validate:"omitempty,url"`
}

// CloneTags copies a tag list, always returning a non-nil slice.
func CloneTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
