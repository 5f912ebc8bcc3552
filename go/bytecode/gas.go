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

// opInfo is the per-opcode information driving the analysis scan: the static
// gas price charged up-front for the instruction, the push classification,
// and whether the instruction terminates a gas block. Instructions with
// runtime-dependent gas cost (jumps, calls, SSTORE, GAS) must end a block so
// the interpreter can account them individually.
type opInfo struct {
	gas      fidelio.Gas
	isPush   bool
	isJump   bool
	blockEnd bool
}

var opInfosIstanbul = [256]opInfo{}
var opInfosBerlin = [256]opInfo{}

func init() {
	for i := 0; i < 256; i++ {
		op := OpCode(i)
		info := opInfo{
			gas:      getStaticGasPriceInternal(op),
			isPush:   op.IsPush(),
			isJump:   op == JUMPDEST,
			blockEnd: isGasBlockEnd(op),
		}
		opInfosIstanbul[i] = info
		opInfosBerlin[i] = info
	}
	initBerlinGasPrice()
}

func initBerlinGasPrice() {
	// Changed static gas prices with EIP2929
	opInfosBerlin[SLOAD].gas = 0
	opInfosBerlin[EXTCODECOPY].gas = 100
	opInfosBerlin[EXTCODESIZE].gas = 100
	opInfosBerlin[EXTCODEHASH].gas = 100
	opInfosBerlin[BALANCE].gas = 100
	opInfosBerlin[CALL].gas = 100
	opInfosBerlin[CALLCODE].gas = 100
	opInfosBerlin[STATICCALL].gas = 100
	opInfosBerlin[DELEGATECALL].gas = 100
	opInfosBerlin[SELFDESTRUCT].gas = 5000
}

func getOpInfos(revision fidelio.Revision) *[256]opInfo {
	if revision >= fidelio.R09_Berlin {
		return &opInfosBerlin
	}
	return &opInfosIstanbul
}

// isGasBlockEnd determines whether the given instruction closes a gas block.
// Control-flow instructions and terminators do, as well as instructions
// whose gas cost depends on runtime state and is charged individually.
func isGasBlockEnd(op OpCode) bool {
	switch op {
	case STOP, JUMP, JUMPI, JUMPDEST, GAS, SSTORE,
		CREATE, CREATE2, CALL, CALLCODE, DELEGATECALL, STATICCALL,
		RETURN, REVERT, INVALID, SELFDESTRUCT:
		return true
	}
	return false
}

func getStaticGasPriceInternal(op OpCode) fidelio.Gas {
	if PUSH1 <= op && op <= PUSH32 {
		return 3
	}
	if DUP1 <= op && op <= DUP16 {
		return 3
	}
	if SWAP1 <= op && op <= SWAP16 {
		return 3
	}
	if LT <= op && op <= SAR {
		return 3
	}
	if COINBASE <= op && op <= CHAINID {
		return 2
	}
	switch op {
	case POP:
		return 2
	case PUSH0:
		return 2
	case ADD:
		return 3
	case SUB:
		return 3
	case MUL:
		return 5
	case DIV:
		return 5
	case SDIV:
		return 5
	case MOD:
		return 5
	case SMOD:
		return 5
	case ADDMOD:
		return 8
	case MULMOD:
		return 8
	case EXP:
		return 10
	case SIGNEXTEND:
		return 5
	case SHA3:
		return 30
	case ADDRESS:
		return 2
	case BALANCE:
		return 700 // Should be 100 for warm access, 2600 for cold access
	case ORIGIN:
		return 2
	case CALLER:
		return 2
	case CALLVALUE:
		return 2
	case CALLDATALOAD:
		return 3
	case CALLDATASIZE:
		return 2
	case CALLDATACOPY:
		return 3
	case CODESIZE:
		return 2
	case CODECOPY:
		return 3
	case GASPRICE:
		return 2
	case EXTCODESIZE:
		return 700
	case EXTCODECOPY:
		return 700 // From EIP150 it is 700, was 20
	case RETURNDATASIZE:
		return 2
	case RETURNDATACOPY:
		return 3
	case EXTCODEHASH:
		return 700 // Should be 100 for warm access, 2600 for cold access
	case BLOCKHASH:
		return 20
	case SELFBALANCE:
		return 5
	case BASEFEE:
		return 2
	case BLOBHASH:
		return 3
	case BLOBBASEFEE:
		return 2
	case MLOAD:
		return 3
	case MSTORE:
		return 3
	case MSTORE8:
		return 3
	case SLOAD:
		return 800 // This is supposed to be 100 for warm and 2100 for cold accesses
	case SSTORE:
		return 0 // Costs depend on the slot state and are charged by the interpreter
	case JUMP:
		return 8
	case JUMPI:
		return 10
	case JUMPDEST:
		return 1
	case TLOAD:
		return 100
	case TSTORE:
		return 100
	case PC:
		return 2
	case MSIZE:
		return 2
	case GAS:
		return 2
	case MCOPY:
		return 3
	case LOG0:
		return 375
	case LOG1:
		return 750
	case LOG2:
		return 1125
	case LOG3:
		return 1500
	case LOG4:
		return 1875
	case CREATE:
		return 32000
	case CREATE2:
		return 32000
	case CALL:
		return 700 // Should be 100 according to evm.code
	case CALLCODE:
		return 700
	case STATICCALL:
		return 700 // Should be 100 according to evm.code
	case RETURN:
		return 0
	case STOP:
		return 0
	case REVERT:
		return 0
	case DELEGATECALL:
		return 700 // Should be 100 according to evm.code
	case SELFDESTRUCT:
		return 0 // should be 5000 according to evm.code
	}
	return 0
}
