// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package loader

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// delimiter opens and closes a front matter block.
const delimiter = "---"

// ErrUnterminated is returned when a front matter block has no closing
// delimiter.
var ErrUnterminated = errors.New("front matter is not terminated")

// Metadata is the front matter a post document may declare. Every field is
// optional.
type Metadata struct {
	Title         string     `yaml:"title"`
	Description   string     `yaml:"description"`
	Category      string     `yaml:"category"`
	Tags          tagList    `yaml:"tags"`
	ReadTime      string     `yaml:"readTime"`
	FeaturedImage string     `yaml:"featuredImage"`
	PublishedAt   *publishDate `yaml:"publishedAt"`
}

// tagList accepts either a YAML sequence or a comma-separated string.
type tagList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *tagList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var tags []string
		if err := value.Decode(&tags); err != nil {
			return err
		}
		*t = tags
	case yaml.ScalarNode:
		var raw string
		if err := value.Decode(&raw); err != nil {
			return err
		}
		tags := []string{}
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
		*t = tags
	default:
		return fmt.Errorf("tags: expected a list or a string at line %d", value.Line)
	}
	return nil
}

// publishDate accepts a YAML timestamp or a quoted date string.
type publishDate time.Time

// dateLayouts are tried in order for quoted dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *publishDate) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("publishedAt: expected a date at line %d", value.Line)
	}
	if value.ShortTag() == "!!timestamp" {
		var t time.Time
		if err := value.Decode(&t); err != nil {
			return err
		}
		*d = publishDate(t)
		return nil
	}
	raw := strings.TrimSpace(value.Value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			*d = publishDate(t)
			return nil
		}
	}
	return fmt.Errorf("publishedAt: unrecognised date %q at line %d", raw, value.Line)
}

// Time returns the date as a time.Time.
func (d publishDate) Time() time.Time { return time.Time(d) }

// Parse splits a document into its front matter and body. A document that
// does not start with a delimiter line has no front matter.
func Parse(src []byte) (Metadata, string, error) {
	var meta Metadata

	src = bytes.TrimPrefix(src, []byte("\ufeff"))
	text := strings.ReplaceAll(string(src), "\r\n", "\n")

	first, rest, found := strings.Cut(text, "\n")
	if strings.TrimRight(first, " \t") != delimiter {
		return meta, text, nil
	}
	if !found {
		return meta, "", ErrUnterminated
	}

	var header strings.Builder
	for {
		line, tail, more := strings.Cut(rest, "\n")
		if strings.TrimRight(line, " \t") == delimiter {
			if err := yaml.Unmarshal([]byte(header.String()), &meta); err != nil {
				return Metadata{}, "", fmt.Errorf("decode front matter: %w", err)
			}
			return meta, tail, nil
		}
		if !more {
			return Metadata{}, "", ErrUnterminated
		}
		header.WriteString(line)
		header.WriteByte('\n')
		rest = tail
	}
}
