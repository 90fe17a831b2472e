// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"devblog/internal/models"
	"devblog/internal/store"
	"devblog/internal/validation"
)

// ListCategories returns every category ordered by name.
func (a *API) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := a.categories.List(r.Context())
	if err != nil {
		slog.Error("list categories failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	writeJSON(w, http.StatusOK, cats)
}

// GetCategory returns the category with the URL slug.
func (a *API) GetCategory(w http.ResponseWriter, r *http.Request) {
	s := chi.URLParam(r, "slug")
	cat, err := a.categories.FindBySlug(r.Context(), s)
	if errors.Is(err, store.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Category not found")
		return
	}
	if err != nil {
		slog.Error("find category failed", "error", err, "slug", s)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch category")
		return
	}
	writeJSON(w, http.StatusOK, cat)
}

// CreateCategory validates and stores a category. Names and slugs are
// unique; a clash answers 409.
func (a *API) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var in models.NewCategory
	if err := decodeJSON(w, r, &in); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validation.Check(a.validate, in); err != nil {
		if fields := validation.Fields(err); fields != nil {
			writeValidation(w, fields)
			return
		}
		slog.Error("validate category failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	cat, err := a.categories.Create(r.Context(), in)
	if errors.Is(err, store.ErrConflict) {
		writeMessage(w, http.StatusConflict, "Category already exists")
		return
	}
	if err != nil {
		slog.Error("create category failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to create category")
		return
	}
	a.cache.InvalidateAll(r.Context())

	slog.Info("category created", "id", cat.ID, "slug", cat.Slug)
	writeJSON(w, http.StatusCreated, cat)
}
