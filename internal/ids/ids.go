// Package ids generates identifiers for requests and encoded level items.
package ids

import "github.com/google/uuid"

// New returns a fresh random identifier string.
func New() string {
	return uuid.NewString()
}
