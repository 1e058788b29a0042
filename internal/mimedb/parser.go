package mimedb

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// lineRe matches one association line: a key, "=", a ;-terminated list
// of handler tokens. Anything else on a line disqualifies it.
var lineRe = regexp.MustCompile(`^(.*?)=(.*);$`)

// ParseLines reads association lines from r into a key -> tokens map.
// Lines that do not match the expected pattern are skipped silently.
// Repeated keys are additive; tokens are trimmed and empties dropped.
// No deduplication happens here, that is the store's job after all
// sources are merged.
func ParseLines(r io.Reader) (map[string][]string, error) {
	parsed := make(map[string][]string)
	if err := parseInto(parsed, r); err != nil {
		return nil, err
	}
	return parsed, nil
}

// parseInto appends parsed lines from r into dst.
func parseInto(dst map[string][]string, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		m := lineRe.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}

		key := strings.TrimSpace(m[1])
		tokens := splitTokens(m[2])
		dst[key] = append(dst[key], tokens...)
	}
	return scanner.Err()
}

// splitTokens splits a ;-separated value segment into trimmed,
// non-empty tokens.
func splitTokens(value string) []string {
	var tokens []string
	for _, raw := range strings.Split(value, ";") {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}
