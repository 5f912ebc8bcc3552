// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package bytecode provides the code-preparation pipeline of Fidelio. Raw
// contract code is padded into a bounds-safe buffer, analyzed into a jump
// destination and gas-block table, and finally locked into an immutable,
// execution-ready view consumed by interpreters.
package bytecode

import (
	"github.com/Fantom-foundation/Fidelio/go/fidelio"
)

// codeState tags how far a Bytecode value has been prepared for execution.
type codeState byte

const (
	// codeStateRaw marks code bytes as supplied, with no padding guarantees.
	codeStateRaw codeState = iota
	// codeStateChecked marks code padded such that any operand read starting
	// within the original length stays inside the buffer.
	codeStateChecked
	// codeStateAnalyzed marks checked code with a computed analysis table.
	codeStateAnalyzed
)

// checkedPadding is the number of zero bytes appended by ToChecked. It
// exceeds the widest push operand (32 bytes) plus the opcode byte, so a scan
// starting at any offset below the original length never leaves the buffer.
const checkedPadding = 33

// Bytecode is an immutable byte sequence in one of three preparation states:
// raw, checked, or analyzed. Values are cheap to copy; clones share the
// underlying buffer and, once analyzed, the frozen analysis table.
type Bytecode struct {
	code     []byte
	state    codeState
	length   int           // semantic code length, maintained by checked and analyzed states
	analysis *CodeAnalysis // only set in the analyzed state
}

var emptyAnalysis = &CodeAnalysis{}

// New creates the canonical empty Bytecode: a single STOP instruction with a
// semantic length of zero, already analyzed.
func New() Bytecode {
	return Bytecode{
		code:     []byte{byte(STOP)},
		state:    codeStateAnalyzed,
		length:   0,
		analysis: emptyAnalysis,
	}
}

// NewRaw creates a Bytecode wrapping the given code bytes without copying.
func NewRaw(code fidelio.Code) Bytecode {
	return Bytecode{
		code:  code,
		state: codeStateRaw,
	}
}

// NewChecked creates a Bytecode in the checked state. The caller must
// guarantee that the buffer extends at least 33 zero bytes beyond length, as
// produced by ToChecked; the analysis scan relies on this bound.
func NewChecked(code fidelio.Code, length int) Bytecode {
	return Bytecode{
		code:   code,
		state:  codeStateChecked,
		length: length,
	}
}

// Len is the semantic length of the code, not counting any padding.
func (b Bytecode) Len() int {
	if b.state == codeStateRaw {
		return len(b.code)
	}
	return b.length
}

// IsEmpty reports whether the code has a semantic length of zero.
func (b Bytecode) IsEmpty() bool {
	return b.Len() == 0
}

// Bytes grants access to the underlying buffer, including padding for
// checked and analyzed code. Callers must not modify the result.
func (b Bytecode) Bytes() []byte {
	return b.code
}

// OriginalBytes grants access to the code without padding.
func (b Bytecode) OriginalBytes() []byte {
	return b.code[:b.Len()]
}

// Analysis returns the analysis table of the code, or nil if the code has
// not been analyzed yet.
func (b Bytecode) Analysis() *CodeAnalysis {
	return b.analysis
}

// Hash computes the Keccak256 hash of the code, ignoring padding. All empty
// code values share the canonical EmptyCodeHash.
func (b Bytecode) Hash() fidelio.Hash {
	toHash := b.code
	if b.state != codeStateRaw {
		toHash = b.code[:b.length]
	}
	if len(toHash) == 0 {
		return EmptyCodeHash
	}
	return Keccak256(toHash)
}

// ToChecked pads raw code with 33 zero bytes and records the original
// length. Checked and analyzed code is returned unchanged.
func (b Bytecode) ToChecked() Bytecode {
	if b.state != codeStateRaw {
		return b
	}
	length := len(b.code)
	padded := make([]byte, length+checkedPadding)
	copy(padded, b.code)
	return Bytecode{
		code:   padded,
		state:  codeStateChecked,
		length: length,
	}
}

// ToAnalyzed runs the analysis pass for the given revision, checking the
// code first if needed. Already analyzed code is returned unchanged.
func (b Bytecode) ToAnalyzed(revision fidelio.Revision) Bytecode {
	if b.state == codeStateAnalyzed {
		return b
	}
	checked := b.ToChecked()
	return Bytecode{
		code:     checked.code,
		state:    codeStateAnalyzed,
		length:   checked.length,
		analysis: analyze(revision, checked.code),
	}
}

// Lock forces the code into the analyzed state and yields the immutable,
// execution-ready view of it.
func (b Bytecode) Lock(revision fidelio.Revision) LockedBytecode {
	analyzed := b.ToAnalyzed(revision)
	return LockedBytecode{
		code:     analyzed.code,
		length:   analyzed.length,
		analysis: analyzed.analysis,
	}
}
