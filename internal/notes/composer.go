// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package notes anchors reader notes to excerpts of a post. A Composer
// follows one reader's selection and note body through to a stored note;
// Draft is the boundary check applied to every note before it is stored.
package notes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"devblog/internal/models"
)

var (
	// ErrNoSelection is returned when a note has no selected text to anchor to.
	ErrNoSelection = errors.New("select text first to create a note")
	// ErrEmptyNote is returned when the note body is blank.
	ErrEmptyNote = errors.New("note content is required")
)

// State is a Composer's position in the note flow.
type State int

const (
	// Idle has no selection.
	Idle State = iota
	// TextSelected holds a selection but no note body.
	TextSelected
	// Composing holds a selection and a note body in progress.
	Composing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case TextSelected:
		return "text_selected"
	case Composing:
		return "composing"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Creator stores a note. store.Notes satisfies it.
type Creator interface {
	Create(ctx context.Context, in models.NewNote) (*models.Note, error)
}

// Composer tracks one reader composing a note on one post. Saving a note
// returns the composer to Idle.
type Composer struct {
	mu        sync.Mutex
	postID    string
	state     State
	selection string
	body      string
	lastSaved *models.Note
}

// NewComposer returns an idle Composer for the post.
func NewComposer(postID string) *Composer {
	return &Composer{postID: postID}
}

// State reports the current state.
func (c *Composer) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Selection returns the captured selection, if any.
func (c *Composer) Selection() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection
}

// Select captures the reader's selected text. A blank selection clears
// the composer. A note body already in progress is kept.
func (c *Composer) Select(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if strings.TrimSpace(text) == "" {
		c.reset()
		return
	}
	c.selection = text
	if c.body == "" {
		c.state = TextSelected
	} else {
		c.state = Composing
	}
}

// Compose sets the note body. It needs a selection to anchor to.
func (c *Composer) Compose(body string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.selection == "" {
		return ErrNoSelection
	}
	c.body = body
	if body == "" {
		c.state = TextSelected
	} else {
		c.state = Composing
	}
	return nil
}

// Cancel drops the selection and any note body.
func (c *Composer) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
}

// Submit stores the note through creator. A blank body or a missing
// selection is rejected before creator is called. On success the composer
// returns to Idle and remembers the stored note; on failure it keeps the
// selection and body so the reader can retry.
func (c *Composer) Submit(ctx context.Context, creator Creator) (*models.Note, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if strings.TrimSpace(c.body) == "" {
		return nil, ErrEmptyNote
	}
	if c.selection == "" {
		return nil, ErrNoSelection
	}

	// TODO: send the selection's character range once the reader reports
	// DOM ranges; both offsets are "0" until then.
	draft := Draft{
		PostID:       c.postID,
		SelectedText: c.selection,
		NoteContent:  c.body,
		StartOffset:  "0",
		EndOffset:    "0",
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	note, err := creator.Create(ctx, draft.NewNote())
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	c.reset()
	c.lastSaved = note
	return note, nil
}

// LastSaved returns the most recently stored note, or nil.
func (c *Composer) LastSaved() *models.Note {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSaved
}

func (c *Composer) reset() {
	c.state = Idle
	c.selection = ""
	c.body = ""
}
