// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary strings.
package slug

import (
	"regexp"
	"strings"
)

var (
	// nonAlphanumericRun matches one or more characters outside [a-z0-9].
	nonAlphanumericRun = regexp.MustCompile(`[^a-z0-9]+`)
	// valid matches lower-case words joined by single hyphens.
	valid = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// Generate creates a URL-friendly slug from the given string. Every run of
// characters that is not an ASCII letter or digit becomes a single hyphen.
// Example: "My Post!" → "my-post"
func Generate(s string) string {
	result := strings.ToLower(s)
	result = nonAlphanumericRun.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// Valid reports whether s is already in slug form.
func Valid(s string) bool {
	return valid.MatchString(s)
}
