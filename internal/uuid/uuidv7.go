// Package uuid issues the identifiers of browsing sessions and requests.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New generates a new UUIDv7. UUIDv7 is time-ordered, so session IDs sort
// by creation time in logs.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Fallback to UUIDv4 if the clock sequence cannot be read
		return googleuuid.New().String()
	}
	return id.String()
}

// Parse validates a UUID string and returns its canonical form.
func Parse(s string) (string, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

// IsValid checks if a string is a valid UUID. Request IDs sent by clients
// are kept only when this holds.
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
