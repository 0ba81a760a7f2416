package swatch

import (
	"errors"
	"fmt"
)

// RemapTable maps old swatch colors to new ones.
type RemapTable map[Code]Code

// ParseRemap normalizes a table received from outside. Entries whose key or value is
// not a valid color are dropped; the returned error joins one error per dropped entry
// and is nil when every entry was kept.
func ParseRemap(raw map[string]string) (RemapTable, error) {
	var (
		table = make(RemapTable, len(raw))
		errs  []error
	)

	for from, to := range raw {
		fromCode, err := ParseCode(from)
		if err != nil {
			errs = append(errs, fmt.Errorf("remap key: %w", err))
			continue
		}
		toCode, err := ParseCode(to)
		if err != nil {
			errs = append(errs, fmt.Errorf("remap %s: %w", fromCode, err))
			continue
		}
		table[fromCode] = toCode
	}

	return table, errors.Join(errs...)
}

// Identity maps every color of the set onto itself.
func Identity(s Set) RemapTable {
	table := make(RemapTable, len(s))
	for _, c := range s.Colors() {
		table[c] = c
	}
	return table
}
