// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Category groups posts by topic. Posts reference a category by name.
//
// PostCount is a stored display value, kept as a decimal string. It is not
// recomputed when posts are created.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Color       string `json:"color"`
	PostCount   string `json:"postCount"`
}

// NewCategory holds the fields for creating a category.
type NewCategory struct {
	Name        string `json:"name" validate:"required,notblank,max=100"`
	Slug        string `json:"slug" validate:"required,max=100,slug"`
	Description string `json:"description" validate:"required,notblank,max=500"`
	Color       string `json:"color" validate:"required,max=30"`
	PostCount   string `json:"postCount" validate:"omitempty,number"`
}
