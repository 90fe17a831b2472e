// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"devblog/internal/models"
)

// NoteStore holds notes in insertion order.
type NoteStore struct {
	mu    sync.RWMutex
	notes []models.Note
	now   func() time.Time
}

// NewNoteStore creates an empty NoteStore.
func NewNoteStore() *NoteStore {
	return &NoteStore{now: clock}
}

// ListByPost returns the notes attached to postID.
func (s *NoteStore) ListByPost(_ context.Context, postID string) ([]models.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Note, 0)
	for _, n := range s.notes {
		if n.PostID == postID {
			out = append(out, n)
		}
	}
	return out, nil
}

// Create stores a note.
func (s *NoteStore) Create(_ context.Context, in models.NewNote) (*models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := models.Note{
		ID:           uuid.NewString(),
		PostID:       in.PostID,
		SelectedText: in.SelectedText,
		NoteContent:  in.NoteContent,
		StartOffset:  in.StartOffset,
		EndOffset:    in.EndOffset,
		CreatedAt:    s.now(),
	}
	s.notes = append(s.notes, n)
	return &n, nil
}

// Delete removes the note with id, if present.
func (s *NoteStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notes {
		if n.ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			break
		}
	}
	return nil
}
