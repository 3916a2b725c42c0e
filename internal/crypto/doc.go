// Package crypto exposes the small set of primitives used by secretsanta.
//
// Contents
//
//   - Draw fingerprints for display and comparison (Fingerprint)
//   - ChaCha8 seeds, random or derived from a phrase (RandomSeed, SeedFromPhrase)
//   - Best-effort memory wiping for derived keys (Wipe)
package crypto
