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
	"github.com/Fantom-foundation/Fidelio/go/fidelio"
)

// CodeAnalysis is the per-offset jump-destination and gas-block table of a
// code. It is built once by the analysis pass and frozen afterwards; all
// clones of the same Bytecode share one instance without copying.
//
// Each offset holds a flag marking valid jump destinations and, at offsets
// starting a gas block, the accumulated static gas cost of all instructions
// up to and including the next block boundary.
type CodeAnalysis struct {
	firstGasBlock fidelio.Gas
	data          []uint32 // low bit: jump destination, upper bits: gas block cost
}

const jumpFlag = 1

// FirstGasBlock is the accumulated cost of the block starting at offset
// zero. Execution always begins there, so interpreters can charge it before
// entering the per-block accounting loop.
func (a *CodeAnalysis) FirstGasBlock() fidelio.Gas {
	return a.firstGasBlock
}

// IsJumpDest reports whether the given offset is a valid jump destination.
// Offsets outside the analyzed range are not.
func (a *CodeAnalysis) IsJumpDest(pos int) bool {
	return 0 <= pos && pos < len(a.data) && a.data[pos]&jumpFlag != 0
}

// GasBlock is the accumulated cost of the gas block starting at the given
// offset, or zero if no block starts there.
func (a *CodeAnalysis) GasBlock(pos int) fidelio.Gas {
	if pos < 0 || pos >= len(a.data) {
		return 0
	}
	return fidelio.Gas(a.data[pos] >> 1)
}

// Len is the number of annotated offsets.
func (a *CodeAnalysis) Len() int {
	return len(a.data)
}

// analyze scans the given checked (padded) code left to right and produces
// its jump-destination and gas-block table for the given revision.
//
// The scan advances by one byte per instruction, or by 1+n bytes for a PUSHn
// instruction, so operand bytes are never interpreted as instructions. The
// padding guaranteed by ToChecked keeps every such advance within the
// buffer; the trailing zero bytes decode as STOP and close any open block.
func analyze(revision fidelio.Revision, code []byte) *CodeAnalysis {
	infos := getOpInfos(revision)

	res := &CodeAnalysis{data: make([]uint32, len(code))}
	data := res.data

	index := 0
	var gasInBlock fidelio.Gas
	blockStart := 0

	// The first block is accounted separately, see FirstGasBlock.
	for index < len(code) {
		info := &infos[code[index]]
		res.firstGasBlock += info.gas

		if info.isPush {
			index += int(code[index]-byte(PUSH1)) + 2
		} else {
			index++
		}

		if info.blockEnd {
			blockStart = index - 1
			if info.isJump {
				data[blockStart] |= jumpFlag
			}
			break
		}
	}

	for index < len(code) {
		info := &infos[code[index]]
		gasInBlock += info.gas

		if info.blockEnd {
			if info.isJump {
				data[index] |= jumpFlag
			}
			data[blockStart] |= uint32(gasInBlock) << 1
			blockStart = index
			gasInBlock = 0
			index++
		} else if info.isPush {
			index += int(code[index]-byte(PUSH1)) + 2
		} else {
			index++
		}
	}

	// Code may end mid-block; record the open block at its start offset.
	if gasInBlock != 0 {
		data[blockStart] |= uint32(gasInBlock) << 1
	}
	return res
}
