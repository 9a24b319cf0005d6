// Copyright 2020 ConsenSys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package engine implements the middle process of the expansion function:
// the padding rule, the per-position salted iterated-hash chain, and the
// combination and reduction passes over the chain output.
package engine

import "github.com/veplib/vep/digest"

// MinPaddedLen is the smallest length the padding rule produces. It
// guarantees the mirrored-index salt lookup never goes out of bounds.
const MinPaddedLen = 2

// Pad returns a fresh copy of secret, length-normalized to at least
// MinPaddedLen bytes: an empty secret becomes two zero bytes, a single byte
// is duplicated, anything longer is copied unchanged. The caller's slice is
// never written to.
func Pad(secret []byte) []byte {
	switch len(secret) {
	case 0:
		return []byte{0x00, 0x00}
	case 1:
		return []byte{secret[0], secret[0]}
	default:
		p := make([]byte, len(secret))
		copy(p, secret)
		return p
	}
}

// MiddleProcess runs the salted iterated-hash chain over the padded secret p
// and returns, per position, the first byte of the chain output (the "last
// salt") and the full chain output.
//
// At position i the mirrored byte p[len(p)-1-i] is appended to the chain
// buffer as salt, and the value of p[i] sets the number of extra hashing
// rounds, so per-position cost is data-dependent (1 to 256 digest calls).
//
// p is zero-filled before MiddleProcess returns; it holds the secret and
// must not be read afterwards.
func MiddleProcess(d digest.Digester, p []byte) (lastSalt []byte, chunks [][]byte) {
	n := len(p)
	lastSalt = make([]byte, n)
	chunks = make([][]byte, n)

	// chain state; starts as the padded secret, then carries the previous
	// position's chain output
	buf := make([]byte, n, n+1)
	copy(buf, p)

	for i := 0; i < n; i++ {
		salt := p[n-1-i]
		times := int(p[i])

		buf = append(buf, salt)
		temp := d.Digest(buf)
		for r := 0; r < times; r++ {
			temp = d.Digest(temp)
		}

		Wipe(buf) // for i == 0 this still holds the secret
		// copy rather than alias temp: buf is wiped next iteration,
		// temp is recorded as this position's chunk
		buf = append(buf[:0], temp...)

		lastSalt[i] = temp[0]
		chunks[i] = temp
	}

	Wipe(p)
	return lastSalt, chunks
}

// Combine folds the per-position salt back into each chunk: chunk i is the
// digest of chunks[i] followed by the single byte lastSalt[i]. The result
// preserves position order and has exactly len(chunks) entries of d.Size()
// bytes each.
func Combine(d digest.Digester, lastSalt []byte, chunks [][]byte) [][]byte {
	out := make([][]byte, len(chunks))
	for i := range chunks {
		d.Update(chunks[i])
		d.Update([]byte{lastSalt[i]})
		out[i] = d.FinalizeReset()
	}
	return out
}

// Reduce folds the combined chunk sequence into one d.Size() block,
// strictly left to right. The fold order is load-bearing for
// reproducibility; do not re-associate it.
//
// The chunk sequence is never empty through the public entry points, since
// padding guarantees at least MinPaddedLen positions.
func Reduce(d digest.Digester, combined [][]byte) []byte {
	acc := combined[0]
	for i := 1; i < len(combined); i++ {
		d.Update(acc)
		d.Update(combined[i])
		acc = d.FinalizeReset()
	}
	return acc
}

// Wipe zero-fills b. In a garbage-collected runtime this is best effort:
// earlier copies made by the collector or by append growth are out of reach.
// It still narrows the window during which secret bytes sit in memory.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
