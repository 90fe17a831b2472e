// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"devblog/internal/notes"
	"devblog/internal/validation"
)

// ListNotes returns the notes attached to a post in the order they were
// written.
func (a *API) ListNotes(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postId")
	items, err := a.notes.ListByPost(r.Context(), postID)
	if err != nil {
		slog.Error("list notes failed", "error", err, "post_id", postID)
		writeMessage(w, http.StatusInternalServerError, "Failed to fetch notes")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// CreateNote attaches a note to the post in the URL. The post id is taken
// from the path, never from the body, and is not checked against stored
// posts.
func (a *API) CreateNote(w http.ResponseWriter, r *http.Request) {
	var draft notes.Draft
	if err := decodeJSON(w, r, &draft); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	draft.PostID = chi.URLParam(r, "postId")

	if err := draft.Validate(); err != nil {
		if fields := validation.Fields(err); fields != nil {
			writeValidation(w, fields)
			return
		}
		slog.Error("validate note failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to create note")
		return
	}

	note, err := a.notes.Create(r.Context(), draft.NewNote())
	if err != nil {
		slog.Error("create note failed", "error", err, "post_id", draft.PostID)
		writeMessage(w, http.StatusInternalServerError, "Failed to create note")
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

// DeleteNote removes a note. Deleting an unknown id still answers 204.
func (a *API) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.notes.Delete(r.Context(), id); err != nil {
		slog.Error("delete note failed", "error", err, "id", id)
		writeMessage(w, http.StatusInternalServerError, "Failed to delete note")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
