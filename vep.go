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

package vep

import (
	"github.com/veplib/vep/digest"
	"github.com/veplib/vep/internal/engine"
	"github.com/veplib/vep/logger"
)

// Expand runs the expansion function over secret and returns the
// concatenation of all combined chunks. The output length is
// ExpandedSize(d, secret): one d.Size() chunk per byte of the padded
// secret, in input order.
//
// d must be freshly constructed and must not be reused after Expand
// returns; see [digest.Digester]. The scratch copy of secret is zero-filled
// before Expand returns. Expand is deterministic: the same secret and
// algorithm always yield byte-identical output.
func Expand(d digest.Digester, secret []byte) []byte {
	log := logger.Logger()

	p := engine.Pad(secret)
	n := len(p)
	lastSalt, chunks := engine.MiddleProcess(d, p)
	combined := engine.Combine(d, lastSalt, chunks)

	out := make([]byte, 0, n*d.Size())
	for _, c := range combined {
		out = append(out, c...)
	}

	log.Debug().Int("positions", n).Int("digestSize", d.Size()).Int("outputLen", len(out)).Msg("expand")
	return out
}

// ExpandReduce runs the expansion function over secret and folds the
// combined chunk sequence, left to right, into a single block of
// ReducedSize(d) bytes, independent of the secret length.
//
// Same preconditions and guarantees as Expand.
func ExpandReduce(d digest.Digester, secret []byte) []byte {
	log := logger.Logger()

	p := engine.Pad(secret)
	n := len(p)
	lastSalt, chunks := engine.MiddleProcess(d, p)
	combined := engine.Combine(d, lastSalt, chunks)
	out := engine.Reduce(d, combined)

	log.Debug().Int("positions", n).Int("digestSize", d.Size()).Int("outputLen", len(out)).Msg("expand reduce")
	return out
}

// ExpandedSize returns the length of the Expand output for secret without
// running the expansion: d.Size() bytes per byte of the padded secret.
func ExpandedSize(d digest.Digester, secret []byte) int {
	n := len(secret)
	if n < engine.MinPaddedLen {
		n = engine.MinPaddedLen
	}
	return n * d.Size()
}

// ReducedSize returns the length of the ExpandReduce output; it is the
// digest size, independent of the secret.
func ReducedSize(d digest.Digester) int {
	return d.Size()
}
