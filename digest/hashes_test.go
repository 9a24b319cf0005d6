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

package digest

import (
	"crypto/sha256"
	"crypto/sha512"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

var allHashes = []Hash{
	SHA2_256,
	SHA2_384,
	SHA2_512,
	SHA3_256,
	SHA3_384,
	SHA3_512,
	KECCAK_256,
	BLAKE2B_256,
	BLAKE2B_512,
	BLAKE2S_256,
}

func TestRegistrySizes(t *testing.T) {
	for _, h := range allHashes {
		t.Run(h.String(), func(t *testing.T) {
			d := h.New()
			require.Equal(t, h.Size(), d.Size())
			require.Len(t, d.Digest([]byte("size check")), h.Size())
		})
	}
}

func TestFinalizeResets(t *testing.T) {
	msg := []byte("the state must be empty again after FinalizeReset")
	for _, h := range allHashes {
		t.Run(h.String(), func(t *testing.T) {
			d := h.New()
			first := d.Digest(msg)
			second := d.Digest(msg)
			require.Equal(t, first, second, "a second digest over the same bytes must match; the reset failed otherwise")
		})
	}
}

func TestUpdateMatchesOneShot(t *testing.T) {
	for _, h := range allHashes {
		t.Run(h.String(), func(t *testing.T) {
			d := h.New()
			d.Update([]byte("split "))
			d.Update([]byte("input"))
			streamed := d.FinalizeReset()
			assert.Equal(t, h.New().Digest([]byte("split input")), streamed)
		})
	}
}

// the wrapped digests must agree with their underlying implementations
func TestWrapAgainstStdlib(t *testing.T) {
	msg := []byte("hello world!")

	s2 := sha256.Sum256(msg)
	assert.Equal(t, s2[:], SHA2_256.New().Digest(msg))

	s5 := sha512.Sum512(msg)
	assert.Equal(t, s5[:], SHA2_512.New().Digest(msg))

	s3 := sha3.Sum512(msg)
	assert.Equal(t, s3[:], SHA3_512.New().Digest(msg))
}

func TestWrapCustomHash(t *testing.T) {
	d := Wrap(sha256.New())
	require.Equal(t, sha256.Size, d.Size())
	want := sha256.Sum256([]byte("custom"))
	require.Equal(t, want[:], d.Digest([]byte("custom")))
}
