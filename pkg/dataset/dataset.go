// Package dataset enumerates candidate items in a dataset directory.
// Only filenames are looked at, never file contents.
package dataset

import (
	"os"
	"strings"
)

// Identifier returns the part of a filename before its first '.'.
// A name without any '.' is returned unchanged.
func Identifier(name string) string {
	id, _, _ := strings.Cut(name, ".")
	return id
}

// ListNames lists dir (non-recursively) and returns the name of every
// entry that ends with suffix, in listing order.
func ListNames(dir, suffix string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, classify(dir, err)
	}
	if !info.IsDir() {
		return nil, &Error{Kind: ErrNotDirectory, Dir: dir}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, classify(dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), suffix) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// ListIdentifiers is ListNames reduced to identifiers.
// Duplicate identifiers are kept as separate entries.
func ListIdentifiers(dir, suffix string) ([]string, error) {
	names, err := ListNames(dir, suffix)
	if err != nil {
		return nil, err
	}
	return Identifiers(names), nil
}

// Identifiers maps each name to its identifier, keeping order and length.
func Identifiers(names []string) []string {
	ids := make([]string, len(names))
	for i, name := range names {
		ids[i] = Identifier(name)
	}
	return ids
}

// CheckUnique fails with ErrDuplicateIdentifier on the first identifier
// that appears more than once.
func CheckUnique(ids []string) error {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return &Error{Kind: ErrDuplicateIdentifier, ID: id}
		}
		seen[id] = struct{}{}
	}
	return nil
}
