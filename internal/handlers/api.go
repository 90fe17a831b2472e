// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the JSON API for posts, categories, search
// and notes on top of the content repository.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"devblog/internal/cache"
	"devblog/internal/store"
	"devblog/internal/validation"
)

// maxBodySize caps request bodies for create endpoints.
const maxBodySize = 1 << 20

// API groups the HTTP handlers. The response cache may be nil.
type API struct {
	posts      store.Posts
	categories store.Categories
	notes      store.Notes
	cache      *cache.ResponseCache
	validate   *validator.Validate
}

// NewAPI creates the handler group for repo. Writes to posts or categories
// clear rc so cached reads never go stale.
func NewAPI(repo *store.Repository, rc *cache.ResponseCache) *API {
	return &API{
		posts:      repo.Posts,
		categories: repo.Categories,
		notes:      repo.Notes,
		cache:      rc,
		validate:   validation.New(),
	}
}

// validationResponse is the 400 body for rejected input.
type validationResponse struct {
	Message string             `json:"message"`
	Errors  validation.Errors `json:"errors"`
}

// errBadBody marks a request body that is not the expected JSON.
var errBadBody = errors.New("invalid request body")

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func writeValidation(w http.ResponseWriter, errs validation.Errors) {
	writeJSON(w, http.StatusBadRequest, validationResponse{Message: "Validation error", Errors: errs})
}

// decodeJSON reads a single JSON object from the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", errBadBody, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("%w: trailing data", errBadBody)
	}
	return nil
}
