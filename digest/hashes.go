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

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

type Hash uint

const (
	SHA2_256 Hash = iota
	SHA2_384
	SHA2_512
	SHA3_256
	SHA3_384
	SHA3_512
	KECCAK_256
	BLAKE2B_256
	BLAKE2B_512
	BLAKE2S_256
)

// size of digests in bytes
var digestSize = []uint8{
	SHA2_256:    32,
	SHA2_384:    48,
	SHA2_512:    64,
	SHA3_256:    32,
	SHA3_384:    48,
	SHA3_512:    64,
	KECCAK_256:  32,
	BLAKE2B_256: 32,
	BLAKE2B_512: 64,
	BLAKE2S_256: 32,
}

// New creates a fresh Digester for the corresponding hash function.
func (m Hash) New() Digester {
	switch m {
	case SHA2_256:
		return Wrap(sha256.New())
	case SHA2_384:
		return Wrap(sha512.New384())
	case SHA2_512:
		return Wrap(sha512.New())
	case SHA3_256:
		return Wrap(sha3.New256())
	case SHA3_384:
		return Wrap(sha3.New384())
	case SHA3_512:
		return Wrap(sha3.New512())
	case KECCAK_256:
		return Wrap(sha3.NewLegacyKeccak256())
	case BLAKE2B_256:
		h, err := blake2b.New256(nil)
		if err != nil {
			// only reachable with an oversized key; nil key is valid
			panic(err)
		}
		return Wrap(h)
	case BLAKE2B_512:
		h, err := blake2b.New512(nil)
		if err != nil {
			panic(err)
		}
		return Wrap(h)
	case BLAKE2S_256:
		h, err := blake2s.New256(nil)
		if err != nil {
			panic(err)
		}
		return Wrap(h)
	default:
		panic("Unknown hash ID")
	}
}

// String returns the hash ID to string format.
func (m Hash) String() string {
	switch m {
	case SHA2_256:
		return "SHA2_256"
	case SHA2_384:
		return "SHA2_384"
	case SHA2_512:
		return "SHA2_512"
	case SHA3_256:
		return "SHA3_256"
	case SHA3_384:
		return "SHA3_384"
	case SHA3_512:
		return "SHA3_512"
	case KECCAK_256:
		return "KECCAK_256"
	case BLAKE2B_256:
		return "BLAKE2B_256"
	case BLAKE2B_512:
		return "BLAKE2B_512"
	case BLAKE2S_256:
		return "BLAKE2S_256"
	default:
		panic("Unknown hash ID")
	}
}

// Size returns the size of the digest of
// the corresponding hash function
func (m Hash) Size() int {
	return int(digestSize[m])
}
