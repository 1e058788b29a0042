package mimedb

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"xdgmimer/internal/domain"
)

// Store is the merged association database. It is built once from a
// fixed list of sources and never mutated afterward; rebuilding means
// constructing a new store.
type Store struct {
	keys    []string // ascending
	records map[string]domain.Association
}

// NewStore reads every source file and merges them into one store.
//
// Tokens contributed by different sources (or repeated lines) are
// unioned per key, then sorted ascending and deduplicated with
// case-sensitive equality. Which source contributed a token carries no
// weight. If any declared source fails to read, the whole construction
// fails and no partial store is returned.
func NewStore(paths []string) (*Store, error) {
	merged := make(map[string][]string)

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read association file %s: %w", path, err)
		}
		if err := parseInto(merged, bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("failed to parse association file %s: %w", path, err)
		}
	}

	records := make(map[string]domain.Association, len(merged))
	keys := make([]string, 0, len(merged))
	for key, tokens := range merged {
		records[key] = domain.Association{
			MimeType: key,
			Handlers: sortUnique(tokens),
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return &Store{keys: keys, records: records}, nil
}

// Keys returns all mime types in ascending order.
func (s *Store) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Get returns the association for a mime type.
func (s *Store) Get(mimeType string) (domain.Association, bool) {
	record, ok := s.records[mimeType]
	return record, ok
}

// Len returns the number of mime types in the store.
func (s *Store) Len() int {
	return len(s.keys)
}

// sortUnique sorts tokens ascending and drops exact duplicates.
func sortUnique(tokens []string) []string {
	sorted := make([]string, len(tokens))
	copy(sorted, tokens)
	sort.Strings(sorted)

	unique := sorted[:0]
	for i, token := range sorted {
		if i == 0 || token != sorted[i-1] {
			unique = append(unique, token)
		}
	}
	return unique
}
