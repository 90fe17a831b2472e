// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package search

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"devblog/internal/models"
)

// DefaultThreshold is the highest normalized distance still counted as a
// match. 0 is an exact match, 1 matches anything.
const DefaultThreshold = 0.3

// Result is a fuzzy search hit. Lower scores are better matches.
type Result struct {
	Post  models.Post `json:"post"`
	Score float64     `json:"score"`
}

// FuzzyIndex is an approximate search index over a fixed set of posts,
// searching title, description, content and tags. It is read-only after
// construction and safe for concurrent use.
type FuzzyIndex struct {
	threshold float64
	entries   []fuzzyEntry
}

// fuzzyEntry holds a post with its searchable fields pre-tokenized.
type fuzzyEntry struct {
	post   models.Post
	fields [][]string
	raw    []string
}

// Option configures a FuzzyIndex.
type Option func(*FuzzyIndex)

// WithThreshold overrides DefaultThreshold.
func WithThreshold(t float64) Option {
	return func(idx *FuzzyIndex) { idx.threshold = t }
}

// NewFuzzyIndex builds an index over posts.
func NewFuzzyIndex(posts []models.Post, opts ...Option) *FuzzyIndex {
	idx := &FuzzyIndex{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(idx)
	}

	idx.entries = make([]fuzzyEntry, 0, len(posts))
	for _, p := range posts {
		raw := append([]string{p.Title, p.Description, p.Content}, p.Tags...)
		e := fuzzyEntry{post: p, raw: make([]string, len(raw))}
		for i, field := range raw {
			e.raw[i] = strings.ToLower(field)
			e.fields = append(e.fields, tokenize(field))
		}
		idx.entries = append(idx.entries, e)
	}
	return idx
}

// Search returns posts whose best field score is within the threshold,
// best matches first. Ties keep index order.
func (idx *FuzzyIndex) Search(query string) []Result {
	q := tokenize(query)
	results := make([]Result, 0)
	if len(q) == 0 {
		return results
	}
	needle := strings.Join(q, " ")

	for _, e := range idx.entries {
		best := 1.0
		for i, tokens := range e.fields {
			s := fieldScore(needle, len(q), e.raw[i], tokens)
			if s < best {
				best = s
			}
			if best == 0 {
				break
			}
		}
		if best <= idx.threshold {
			results = append(results, Result{Post: e.post, Score: best})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score < results[j].Score
	})
	return results
}

// Posts is Search without the scores.
func (idx *FuzzyIndex) Posts(query string) []models.Post {
	results := idx.Search(query)
	posts := make([]models.Post, len(results))
	for i, r := range results {
		posts[i] = r.Post
	}
	return posts
}

// fieldScore compares the needle against every run of n consecutive words
// in the field and returns the smallest normalized edit distance.
func fieldScore(needle string, n int, raw string, tokens []string) float64 {
	if strings.Contains(raw, needle) {
		return 0
	}
	if len(tokens) == 0 {
		return 1
	}
	if len(tokens) < n {
		return distance(needle, strings.Join(tokens, " "))
	}

	best := 1.0
	for i := 0; i+n <= len(tokens); i++ {
		s := distance(needle, strings.Join(tokens[i:i+n], " "))
		if s < best {
			best = s
			if best == 0 {
				break
			}
		}
	}
	return best
}

// distance is the Levenshtein distance scaled by the longer string.
func distance(a, b string) float64 {
	longest := utf8.RuneCountInString(a)
	if l := utf8.RuneCountInString(b); l > longest {
		longest = l
	}
	if longest == 0 {
		return 0
	}
	return float64(levenshtein.ComputeDistance(a, b)) / float64(longest)
}

// tokenize lower-cases s and splits it into letter/digit words.
func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
