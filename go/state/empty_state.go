// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package state

import (
	"encoding/binary"

	"github.com/Fantom-foundation/Fidelio/go/bytecode"
	"github.com/Fantom-foundation/Fidelio/go/fidelio"
)

// EmptyState is a backing state returning default values for every query.
// It serves as the base of a cache stack and as a test double. Block hashes
// are the only non-zero answers; they are derived deterministically from the
// block number.
type EmptyState struct{}

func (EmptyState) Account(fidelio.Address) AccountInfo {
	return AccountInfo{}
}

func (EmptyState) Storage(fidelio.Address, fidelio.Key) fidelio.Word {
	return fidelio.Word{}
}

func (EmptyState) CodeByHash(fidelio.Hash) bytecode.Bytecode {
	return bytecode.New()
}

func (EmptyState) BlockHash(number int64) fidelio.Hash {
	var buffer [32]byte
	binary.BigEndian.PutUint64(buffer[24:], uint64(number))
	return bytecode.Keccak256(buffer[:])
}

// NewInMemoryState creates a state store holding all its data in memory,
// with nothing behind it.
func NewInMemoryState() *CacheState {
	return NewCacheState(EmptyState{})
}
