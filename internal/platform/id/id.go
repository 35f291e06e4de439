// Package id issues the opaque identifiers stamped onto generated training
// plans.
package id

import (
	"crypto/rand"
	"encoding/hex"
)

// Generator abstracts id creation so tests can pin deterministic values.
type Generator interface {
	New() string
}

// RandomHex produces 32-character random hex identifiers.
type RandomHex struct{}

func (RandomHex) New() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
