package tracker

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const historySeparator = ","

// EncodeHistory joins a history into its stored form. Entries are not escaped.
func EncodeHistory(history []string) string {
	return strings.Join(history, historySeparator)
}

// DecodeHistory splits a stored history. An empty string is an empty history.
// Empty segments are dropped and only the first copy of a repeated entry is
// kept, so a damaged value still yields its usable entries. Only a value that
// is not valid UTF-8 is reported as an error.
func DecodeHistory(raw string) ([]string, error) {
	if !utf8.ValidString(raw) {
		return nil, fmt.Errorf("history is not valid UTF-8")
	}
	if strings.TrimSpace(raw) == "" {
		return []string{}, nil
	}

	parts := strings.Split(raw, historySeparator)
	seen := make(map[string]struct{}, len(parts))
	history := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		history = append(history, p)
	}

	return history, nil
}

func validIdentifier(id string) error {
	if strings.Contains(id, historySeparator) {
		return fmt.Errorf("%w: %q contains %q", ErrInvalidIdentifier, id, historySeparator)
	}
	return nil
}

func previous(history []string) string {
	if len(history) < 2 {
		return ""
	}
	return history[len(history)-2]
}

func first(history []string) string {
	if len(history) == 0 {
		return ""
	}
	return history[0]
}
