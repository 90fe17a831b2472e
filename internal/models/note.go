// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Note is a reader annotation attached to an excerpt of a post.
// StartOffset and EndOffset are decimal character offsets into the post
// body. PostID is not checked against existing posts.
type Note struct {
	ID           string    `json:"id"`
	PostID       string    `json:"postId"`
	SelectedText string    `json:"selectedText"`
	NoteContent  string    `json:"noteContent"`
	StartOffset  string    `json:"startOffset"`
	EndOffset    string    `json:"endOffset"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewNote holds the fields for creating a note.
type NewNote struct {
	PostID       string `json:"postId"`
	SelectedText string `json:"selectedText"`
	NoteContent  string `json:"noteContent"`
	StartOffset  string `json:"startOffset"`
	EndOffset    string `json:"endOffset"`
}
