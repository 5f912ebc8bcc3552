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

// AccountInfo is the basic information of an account as provided by a state
// source: its nonce, balance, and code identity.
type AccountInfo struct {
	Nonce   uint64
	Balance fidelio.Value
	// CodeHash identifies the account's code; the zero hash is accepted as
	// a sentinel for "no code" and normalized on insertion.
	CodeHash fidelio.Hash
	// Code is the account's code, if the source chose to attach it. A nil
	// code does not mean the account has none; it can always be obtained
	// through CodeByHash using the CodeHash field.
	Code *bytecode.Bytecode
}

// Empty reports whether the info is the all-default value used for unknown
// and destroyed accounts.
func (i AccountInfo) Empty() bool {
	return i == AccountInfo{}
}

// StorageSlot is the commit-time delta of a single storage slot.
type StorageSlot struct {
	// OriginalValue is the value of the slot before the transaction.
	OriginalValue fidelio.Word
	// PresentValue is the value to persist, independent of how many times
	// the slot was written within the transaction.
	PresentValue fidelio.Word
}

// Account is the post-execution delta of a single account, consumed by
// Committer implementations.
type Account struct {
	Info    AccountInfo
	Storage map[fidelio.Key]StorageSlot
	// StorageCleared signals that the account's storage was wiped during
	// execution, for instance by a self-destruct followed by a re-create.
	StorageCleared bool
	// IsDestroyed signals that the account was destroyed; committing such a
	// delta clears the account's storage and resets its info.
	IsDestroyed bool
}
