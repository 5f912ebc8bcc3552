// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package bytecode

import (
	"sync"

	"github.com/Fantom-foundation/Fidelio/go/fidelio"
	"golang.org/x/crypto/sha3"
)

// Keccak256 computes the Keccak256 hash of the given data.
func Keccak256(data []byte) fidelio.Hash {
	hasher := keccakHasherPool.Get().(keccakHasher)
	hasher.Reset()
	hasher.Write(data)
	var res fidelio.Hash
	hasher.Read(res[:])
	keccakHasherPool.Put(hasher)
	return res
}

var keccakHasherPool = sync.Pool{New: func() any { return sha3.NewLegacyKeccak256() }}

type keccakHasher interface {
	Reset()
	Write(in []byte) (int, error)
	Read(out []byte) (int, error)
}

// EmptyCodeHash is the canonical hash shared by all representations of empty
// code, regardless of how the code value was constructed.
var EmptyCodeHash = Keccak256([]byte{})
