// Package publicid generates the externally exposed identifiers handed out for
// companies. Identifiers are UUIDv4 bytes encoded as lowercase base32
// (RFC 4648) with no padding: 26 characters, URL safe and non-sequential.
package publicid

import (
	"encoding/base32"
	"strings"

	"github.com/google/uuid"
)

// Length is the length of every generated identifier.
const Length = 26

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Generator produces public identifiers.
type Generator interface {
	NewID() (string, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func() (string, error)

// NewID calls f.
func (f GeneratorFunc) NewID() (string, error) { return f() }

// Default is the UUIDv4-backed generator.
var Default Generator = GeneratorFunc(New)

// New returns a fresh public identifier.
func New() (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return strings.ToLower(encoding.EncodeToString(u[:])), nil
}

// Valid reports whether s has the shape of a generated identifier.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	_, err := encoding.DecodeString(strings.ToUpper(s))
	return err == nil
}
