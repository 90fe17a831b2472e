// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"devblog/internal/search"
)

// Search returns posts containing the q parameter, newest first.
func (a *API) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeMessage(w, http.StatusBadRequest, "Search query is required")
		return
	}

	posts, err := a.posts.Search(r.Context(), q)
	if err != nil {
		slog.Error("search posts failed", "error", err, "query", q)
		writeMessage(w, http.StatusInternalServerError, "Failed to search posts")
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

// FuzzySearch returns posts approximately matching q, best match first.
// It tolerates typos the substring search would miss.
func (a *API) FuzzySearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeMessage(w, http.StatusBadRequest, "Search query is required")
		return
	}

	posts, err := a.posts.List(r.Context())
	if err != nil {
		slog.Error("list posts for fuzzy search failed", "error", err, "query", q)
		writeMessage(w, http.StatusInternalServerError, "Failed to search posts")
		return
	}
	writeJSON(w, http.StatusOK, search.NewFuzzyIndex(posts).Posts(q))
}
