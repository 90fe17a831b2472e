// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package loader reads post documents (MDX files with YAML front matter)
// from a directory and turns them into posts for the content repository.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"devblog/internal/models"
	"devblog/internal/store"
)

// Extension is the file extension recognized as a post document.
const Extension = ".mdx"

// Loader reads post documents from a directory.
type Loader struct {
	dir string
	now func() time.Time
}

// New creates a Loader for dir.
func New(dir string) *Loader {
	return &Loader{dir: dir, now: func() time.Time { return time.Now().UTC() }}
}

// Load parses every document in the directory, in filename order. A file
// that fails to parse is logged and skipped. A missing directory yields no
// posts and no error.
func (l *Loader) Load() ([]models.Post, error) {
	entries, err := os.ReadDir(l.dir)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("posts directory not found, starting with no posts", "dir", l.dir)
		return []models.Post{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read posts dir: %w", err)
	}

	posts := make([]models.Post, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != Extension {
			continue
		}

		post, err := l.loadFile(entry.Name())
		if err != nil {
			slog.Warn("skipping malformed post", "file", entry.Name(), "error", err)
			continue
		}
		posts = append(posts, post)
	}

	slog.Info("posts loaded", "dir", l.dir, "count", len(posts))
	return posts, nil
}

// loadFile parses a single document. The slug is the file name without
// its extension.
func (l *Loader) loadFile(name string) (models.Post, error) {
	src, err := os.ReadFile(filepath.Join(l.dir, name))
	if err != nil {
		return models.Post{}, fmt.Errorf("read file: %w", err)
	}

	meta, body, err := Parse(src)
	if err != nil {
		return models.Post{}, err
	}

	post := models.Post{
		Slug:        strings.TrimSuffix(name, Extension),
		Title:       meta.Title,
		Description: meta.Description,
		Content:     body,
		Category:    meta.Category,
		Tags:        models.CloneTags(meta.Tags),
		ReadTime:    meta.ReadTime,
		PublishedAt: l.now(),
	}
	if post.ReadTime == "" {
		post.ReadTime = models.DefaultReadTime
	}
	if meta.FeaturedImage != "" {
		img := meta.FeaturedImage
		post.FeaturedImage = &img
	}
	if meta.PublishedAt != nil {
		post.PublishedAt = meta.PublishedAt.Time().UTC()
	}
	return post, nil
}

// Import loads the directory into posts and reports how many were stored.
func (l *Loader) Import(ctx context.Context, posts store.Posts) (int, error) {
	loaded, err := l.Load()
	if err != nil {
		return 0, err
	}
	if len(loaded) == 0 {
		return 0, nil
	}

	n, err := posts.Import(ctx, loaded)
	if err != nil {
		return 0, fmt.Errorf("import posts: %w", err)
	}
	return n, nil
}
