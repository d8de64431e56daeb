// Package ids provides identifier helpers over RFC 4122 UUIDs.
package ids

import (
	"strings"

	"github.com/google/uuid"
)

// New returns a random (version 4) UUID string.
func New() string {
	return uuid.NewString()
}

// Parse validates and normalizes an id, accepting the usual UUID textual
// forms (with or without hyphens, any case).
func Parse(s string) (string, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// IsValid reports whether s parses as a UUID.
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// Short returns the first hyphen-free segment of an id, handy for log
// lines and display labels. Invalid ids come back unchanged.
func Short(s string) string {
	id, err := uuid.Parse(s)
	if err != nil {
		return s
	}
	return strings.SplitN(id.String(), "-", 2)[0]
}

// Namespaced derives a stable (version 5) UUID for a name within the
// given namespace id. The same inputs always produce the same id.
func Namespaced(namespace, name string) (string, error) {
	ns, err := uuid.Parse(namespace)
	if err != nil {
		return "", err
	}
	return uuid.NewSHA1(ns, []byte(name)).String(), nil
}
