package crypto

import (
	crand "crypto/rand"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// SeedSize is the seed length accepted by math/rand/v2's ChaCha8.
const SeedSize = 32

// RandomSeed reads a fresh seed from crypto/rand.
func RandomSeed() ([SeedSize]byte, error) {
	var seed [SeedSize]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return seed, fmt.Errorf("read random seed: %w", err)
	}
	return seed, nil
}

// SeedFromPhrase derives a deterministic seed from a human-readable phrase,
// so the same phrase always replays the same draw.
func SeedFromPhrase(phrase string) [SeedSize]byte {
	return blake2b.Sum256([]byte(phrase))
}
