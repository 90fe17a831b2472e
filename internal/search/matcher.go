// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package search implements the two post search tiers: an exact,
// case-insensitive substring matcher used by the search API, and an
// approximate fuzzy index that tolerates typos.
package search

import (
	"strings"

	"devblog/internal/models"
)

// Matches reports whether query appears, ignoring case, in the post's
// title, description, content, or any of its tags. An empty query matches
// nothing.
func Matches(p *models.Post, query string) bool {
	q := strings.ToLower(query)
	if q == "" {
		return false
	}
	if contains(p.Title, q) || contains(p.Description, q) || contains(p.Content, q) {
		return true
	}
	for _, tag := range p.Tags {
		if contains(tag, q) {
			return true
		}
	}
	return false
}

// Filter returns the posts matching query, preserving input order.
func Filter(posts []models.Post, query string) []models.Post {
	out := make([]models.Post, 0)
	for i := range posts {
		if Matches(&posts[i], query) {
			out = append(out, posts[i])
		}
	}
	return out
}

func contains(field, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(field), lowerQuery)
}
