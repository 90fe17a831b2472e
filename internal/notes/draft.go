// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package notes

import (
	"strconv"

	"devblog/internal/models"
	"devblog/internal/validation"
)

var validate = validation.New()

// Draft is a note as submitted by a reader, before it is stored. Offsets
// are decimal character positions in the post body.
type Draft struct {
	PostID       string `json:"postId" validate:"required"`
	SelectedText string `json:"selectedText" validate:"required,notblank"`
	NoteContent  string `json:"noteContent" validate:"required,notblank"`
	StartOffset  string `json:"startOffset" validate:"required,number"`
	EndOffset    string `json:"endOffset" validate:"required,number"`
}

// Validate reports every invalid field as validation.Errors.
func (d Draft) Validate() error {
	if err := validation.Check(validate, d); err != nil {
		return err
	}

	// Both offsets passed the digit check, so only overflow can fail here.
	start, errStart := strconv.ParseUint(d.StartOffset, 10, 64)
	end, errEnd := strconv.ParseUint(d.EndOffset, 10, 64)
	switch {
	case errStart != nil:
		return validation.Errors{{Field: "startOffset", Message: "startOffset is out of range"}}
	case errEnd != nil:
		return validation.Errors{{Field: "endOffset", Message: "endOffset is out of range"}}
	case end < start:
		return validation.Errors{{Field: "endOffset", Message: "endOffset must not be before startOffset"}}
	}
	return nil
}

// NewNote converts the draft into store input.
func (d Draft) NewNote() models.NewNote {
	return models.NewNote{
		PostID:       d.PostID,
		SelectedText: d.SelectedText,
		NoteContent:  d.NoteContent,
		StartOffset:  d.StartOffset,
		EndOffset:    d.EndOffset,
	}
}
