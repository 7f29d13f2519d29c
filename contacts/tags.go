package contacts

import (
	"strings"
	"sync"

	"github.com/kljensen/snowball"
)

// ParseTags splits a raw tags cell on commas and semicolons into clean
// tag values. Empty entries are dropped, each tag is truncated to
// MaxTagLength runes and at most MaxTags tags are kept.
func ParseTags(cell string) []string {
	parts := strings.FieldsFunc(cell, func(r rune) bool {
		return r == ',' || r == ';'
	})

	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.TrimSpace(part)
		if tag == "" {
			continue
		}
		if runes := []rune(tag); len(runes) > MaxTagLength {
			tag = string(runes[:MaxTagLength])
		}
		tags = append(tags, tag)
		if len(tags) == MaxTags {
			break
		}
	}
	return tags
}

// TagStemmer reduces tags to canonical keys so that spelling variants
// ("personal-loan", "Personal Loans") group together in reports.
type TagStemmer struct {
	language string
	cache    map[string]string
	mu       sync.RWMutex
}

// NewTagStemmer creates a stemmer for English tag words.
func NewTagStemmer() *TagStemmer {
	return &TagStemmer{
		language: "english",
		cache:    make(map[string]string),
	}
}

// Canonical returns the canonical key for one tag: lower case, words
// split on spaces, hyphens and underscores, each word stemmed, re-joined
// with single hyphens.
// Example: "Personal Loans" -> "person-loan"
func (s *TagStemmer) Canonical(tag string) string {
	words := strings.FieldsFunc(strings.ToLower(strings.TrimSpace(tag)), func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	})
	if len(words) == 0 {
		return ""
	}

	for i, word := range words {
		words[i] = s.stemWord(word)
	}
	return strings.Join(words, "-")
}

// stemWord stems one lower-case word with caching.
func (s *TagStemmer) stemWord(word string) string {
	s.mu.RLock()
	cached, found := s.cache[word]
	s.mu.RUnlock()
	if found {
		return cached
	}

	stemmed, err := snowball.Stem(word, s.language, true)
	if err != nil || stemmed == "" {
		// If stemming fails, keep the word as-is
		stemmed = word
	}

	s.mu.Lock()
	s.cache[word] = stemmed
	s.mu.Unlock()

	return stemmed
}
