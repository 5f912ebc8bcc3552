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

// LockedBytecode is the finalized, analysis-complete view of a contract's
// code. It is only produced from analyzed Bytecode values and exposes the
// padded buffer for direct iteration by an interpreter's dispatch loop.
type LockedBytecode struct {
	code     []byte
	length   int
	analysis *CodeAnalysis
}

// Bytes grants access to the padded buffer. The padding lets interpreters
// treat the buffer as STOP-terminated without length checks. Callers must
// not modify the result.
func (b LockedBytecode) Bytes() []byte {
	return b.code
}

// OriginalBytes grants access to the code without padding.
func (b LockedBytecode) OriginalBytes() []byte {
	return b.code[:b.length]
}

// Len is the semantic length of the code, not counting padding.
func (b LockedBytecode) Len() int {
	return b.length
}

// Analysis returns the frozen jump-destination and gas-block table.
func (b LockedBytecode) Analysis() *CodeAnalysis {
	return b.analysis
}

// Unlock is the exact inverse of Bytecode.Lock, producing an analyzed
// Bytecode from the same buffer and table without recomputation.
func (b LockedBytecode) Unlock() Bytecode {
	return Bytecode{
		code:     b.code,
		state:    codeStateAnalyzed,
		length:   b.length,
		analysis: b.analysis,
	}
}
