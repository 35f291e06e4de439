package id_test

import (
	"encoding/hex"
	"testing"

	"trainlog/internal/platform/id"
)

func TestRandomHexShapeAndUniqueness(t *testing.T) {
	t.Parallel()
	gen := id.RandomHex{}
	seen := map[string]bool{}
	for i := 0; i < 64; i++ {
		v := gen.New()
		if len(v) != 32 {
			t.Fatalf("id length = %d, want 32", len(v))
		}
		if _, err := hex.DecodeString(v); err != nil {
			t.Fatalf("id %q is not hex: %v", v, err)
		}
		if seen[v] {
			t.Fatalf("duplicate id %q", v)
		}
		seen[v] = true
	}
}
