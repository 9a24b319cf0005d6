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

// Package digest defines the digest capability the expansion engine is
// generic over, and a registry of concrete algorithms. The structure of the
// package is similar to what can be found in golang's crypto/ package.
package digest

import "hash"

// Digester is the contract a cryptographic hash must satisfy to participate
// in expansion. The expansion engine performs many sequential digest
// operations on one instance, so finalization must reset the internal state
// rather than consume the instance.
//
// Digest operations over arbitrary byte sequences always succeed; there are
// no error conditions.
//
// An instance handed to an expansion call must be freshly constructed (no
// previously accumulated state) and must not be reused after the call
// returns. Violating either precondition silently produces wrong,
// non-reproducible output; it is not detected at runtime.
type Digester interface {
	// Size returns the fixed number of bytes produced by one finalize call.
	Size() int

	// Update feeds bytes into the running internal state.
	Update(p []byte)

	// FinalizeReset produces the digest over all data fed since the last
	// reset, then resets the internal state so the instance can be reused
	// immediately.
	FinalizeReset() []byte

	// Digest is Update(p) followed by FinalizeReset().
	Digest(p []byte) []byte
}

// hashDigester adapts a stdlib-compatible hash.Hash to the Digester contract.
type hashDigester struct {
	h hash.Hash
}

// Wrap adapts any stdlib-compatible hash.Hash to a Digester. The wrapped
// hash must be freshly constructed.
func Wrap(h hash.Hash) Digester {
	return &hashDigester{h: h}
}

func (d *hashDigester) Size() int {
	return d.h.Size()
}

func (d *hashDigester) Update(p []byte) {
	// hash.Hash.Write never returns an error
	_, _ = d.h.Write(p)
}

func (d *hashDigester) FinalizeReset() []byte {
	sum := d.h.Sum(nil)
	d.h.Reset()
	return sum
}

func (d *hashDigester) Digest(p []byte) []byte {
	d.Update(p)
	return d.FinalizeReset()
}
