package search

import (
	"regexp"

	"xdgmimer/internal/mimedb"
)

// Service filters store keys by a case-insensitive literal substring.
type Service struct {
	store *mimedb.Store
}

// NewService creates a new search service
func NewService(store *mimedb.Store) *Service {
	return &Service{store: store}
}

// Search returns the mime types containing query, preserving the
// store's ascending order. The query is literal text: metacharacters
// are escaped before the matcher is built. An empty query matches
// every key; no match yields an empty result, never an error.
func (s *Service) Search(query string) []string {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(query))

	var matches []string
	for _, key := range s.store.Keys() {
		if re.MatchString(key) {
			matches = append(matches, key)
		}
	}
	return matches
}
