// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"devblog/internal/markdown"
	"devblog/internal/models"
	"devblog/internal/slug"
	"devblog/internal/store"
	"devblog/internal/validation"
)

// ListPosts returns every post, newest first.
func (a *API) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := a.posts.List(r.Context())
	if err != nil {
		slog.Error("list posts failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

// GetPost returns the post with the URL slug.
func (a *API) GetPost(w http.ResponseWriter, r *http.Request) {
	post, ok := a.findPost(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// GetPostHTML returns the post body rendered from Markdown to HTML.
func (a *API) GetPostHTML(w http.ResponseWriter, r *http.Request) {
	post, ok := a.findPost(w, r)
	if !ok {
		return
	}

	html, err := markdown.ToHTML(post.Content)
	if err != nil {
		slog.Error("render post failed", "error", err, "slug", post.Slug)
		writeMessage(w, http.StatusInternalServerError, "Failed to render post")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"slug": post.Slug, "html": html})
}

// ListPostsByCategory returns posts in the URL category, compared
// without regard to case.
func (a *API) ListPostsByCategory(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "category")
	posts, err := a.posts.ListByCategory(r.Context(), name)
	if err != nil {
		slog.Error("list posts by category failed", "error", err, "category", name)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch posts by category")
		return
	}
	writeJSON(w, http.StatusOK, posts)
}

// CreatePost validates and stores a post submitted from the editor. A
// missing read time is estimated from the content.
func (a *API) CreatePost(w http.ResponseWriter, r *http.Request) {
	var in models.NewPost
	if err := decodeJSON(w, r, &in); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validation.Check(a.validate, in); err != nil {
		if fields := validation.Fields(err); fields != nil {
			writeValidation(w, fields)
			return
		}
		slog.Error("validate post failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to create post")
		return
	}
	if slug.Generate(in.Title) == "" {
		writeValidation(w, validation.Errors{{Field: "title", Message: "title must contain a letter or digit"}})
		return
	}
	if in.ReadTime == "" {
		in.ReadTime = markdown.ReadTime(in.Content)
	}

	post, err := a.posts.Create(r.Context(), in)
	if err != nil {
		slog.Error("create post failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to create post")
		return
	}
	a.cache.InvalidateAll(r.Context())

	slog.Info("post created", "id", post.ID, "slug", post.Slug)
	writeJSON(w, http.StatusCreated, post)
}

// findPost loads the post named by the slug URL parameter, writing the
// error response itself when that fails.
func (a *API) findPost(w http.ResponseWriter, r *http.Request) (*models.Post, bool) {
	s := chi.URLParam(r, "slug")
	post, err := a.posts.FindBySlug(r.Context(), s)
	if errors.Is(err, store.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Post not found")
		return nil, false
	}
	if err != nil {
		slog.Error("find post failed", "error", err, "slug", s)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch post")
		return nil, false
	}
	return post, true
}
