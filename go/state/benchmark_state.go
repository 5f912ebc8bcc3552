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
	"github.com/Fantom-foundation/Fidelio/go/bytecode"
	"github.com/Fantom-foundation/Fidelio/go/fidelio"
)

// BenchmarkState is a backing state with account information for the zero
// address only, holding one pre-loaded contract. Any other address resolves
// to an empty account. It is intended for interpreter benchmarks that run
// the same contract over and over.
type BenchmarkState struct {
	code     *bytecode.Bytecode
	codeHash fidelio.Hash
}

// NewBenchmarkState creates a benchmark state serving the given code at the
// zero address.
func NewBenchmarkState(code bytecode.Bytecode) BenchmarkState {
	return BenchmarkState{
		code:     &code,
		codeHash: code.Hash(),
	}
}

func (s BenchmarkState) Account(addr fidelio.Address) AccountInfo {
	if addr == (fidelio.Address{}) {
		return AccountInfo{
			Nonce:    1,
			Balance:  fidelio.NewValue(10_000_000),
			CodeHash: s.codeHash,
			Code:     s.code,
		}
	}
	return AccountInfo{}
}

func (s BenchmarkState) Storage(fidelio.Address, fidelio.Key) fidelio.Word {
	return fidelio.Word{}
}

func (s BenchmarkState) CodeByHash(hash fidelio.Hash) bytecode.Bytecode {
	if hash == s.codeHash {
		return *s.code
	}
	return bytecode.New()
}

func (s BenchmarkState) BlockHash(int64) fidelio.Hash {
	return fidelio.Hash{}
}
