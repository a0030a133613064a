// Package internal holds configuration helpers shared by the binaries.
package internal

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RosterEntry is one participant declaration parsed from configuration.
type RosterEntry struct {
	Name      string        `validate:"required,min=1,max=64"`
	Allocated time.Duration `validate:"required,gt=0"`
}

// ParseRoster parses the PARTICIPANTS value: comma-separated
// "name:seconds" pairs, e.g. "alice:120,bob:90". Names keep their raw
// casing here; the meeting normalizes on registration.
func ParseRoster(raw string) ([]RosterEntry, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("no participants configured")
	}

	var entries []RosterEntry
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, secondsStr, found := strings.Cut(pair, ":")
		if !found {
			return nil, fmt.Errorf("malformed roster entry %q, expected name:seconds", pair)
		}
		seconds, err := strconv.Atoi(strings.TrimSpace(secondsStr))
		if err != nil {
			return nil, fmt.Errorf("malformed allocation in %q: %w", pair, err)
		}

		entry := RosterEntry{
			Name:      strings.TrimSpace(name),
			Allocated: time.Duration(seconds) * time.Second,
		}
		if err := validate.Struct(entry); err != nil {
			return nil, fmt.Errorf("invalid roster entry %q: %w", pair, err)
		}
		entries = append(entries, entry)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no participants configured")
	}
	return entries, nil
}
