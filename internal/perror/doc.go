// Package perror defines the taxonomy of parse and evaluation errors, each
// carrying a location in the original source so callers can point a user at
// the offending text.
package perror
