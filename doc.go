// Package vep implements a deterministic variable-length expansion function
// over a pluggable cryptographic digest.
//
// Given a short secret byte sequence (typically a password) and a fresh
// digest instance, vep produces a much longer pseudorandom byte sequence
// whose length scales with the input length, suitable as an intermediate
// step before further key derivation or storage hardening.
//
// vep supports any digest satisfying the [digest.Digester] contract; the
// following algorithms ship in the digest package registry:
//   - SHA2-256, SHA2-384, SHA2-512
//   - SHA3-256, SHA3-384, SHA3-512, Keccak-256
//   - BLAKE2b-256, BLAKE2b-512, BLAKE2s-256
//
// vep is not a general-purpose KDF standard: it makes no claim of
// compliance with PBKDF2, Argon2 or HKDF, and it does not manage keys or
// salts. Expansion is deterministic; same secret, same algorithm, same
// output.
package vep

import (
	"github.com/blang/semver/v4"

	"github.com/veplib/vep/digest"
)

var Version = semver.MustParse("1.0.0")

// Hashes returns the digest algorithms available in the registry.
func Hashes() []digest.Hash {
	return []digest.Hash{
		digest.SHA2_256,
		digest.SHA2_384,
		digest.SHA2_512,
		digest.SHA3_256,
		digest.SHA3_384,
		digest.SHA3_512,
		digest.KECCAK_256,
		digest.BLAKE2B_256,
		digest.BLAKE2B_512,
		digest.BLAKE2S_256,
	}
}
