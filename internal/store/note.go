// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"devblog/internal/models"
)

// NoteStore handles note persistence in PostgreSQL.
type NoteStore struct {
	db *sql.DB
}

// NewNoteStore creates a new NoteStore.
func NewNoteStore(db *sql.DB) *NoteStore {
	return &NoteStore{db: db}
}

const noteColumns = `id, post_id, selected_text, note_content, start_offset, end_offset, created_at`

// ListByPost returns the post's notes in insertion order.
func (s *NoteStore) ListByPost(ctx context.Context, postID string) ([]models.Note, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+noteColumns+` FROM notes WHERE post_id = $1 ORDER BY seq ASC`, postID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	items := make([]models.Note, 0)
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(
			&n.ID, &n.PostID, &n.SelectedText, &n.NoteContent,
			&n.StartOffset, &n.EndOffset, &n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

// Create inserts a note and returns it.
func (s *NoteStore) Create(ctx context.Context, in models.NewNote) (*models.Note, error) {
	n := &models.Note{}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO notes (id, post_id, selected_text, note_content, start_offset, end_offset, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+noteColumns,
		uuid.NewString(), in.PostID, in.SelectedText, in.NoteContent,
		in.StartOffset, in.EndOffset, time.Now().UTC(),
	).Scan(
		&n.ID, &n.PostID, &n.SelectedText, &n.NoteContent,
		&n.StartOffset, &n.EndOffset, &n.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return n, nil
}

// Delete removes a note by id. Deleting a missing note is not an error.
func (s *NoteStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}
