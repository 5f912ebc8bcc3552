// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package state provides the caching state store sitting between an
// execution engine and an arbitrary backing chain-state source. The store
// memoizes reads and folds atomic post-execution account deltas into its
// local state; stores can be layered over each other to form snapshot or
// speculative-execution stacks.
//
// All queries in this package are infallible: every lookup produces a value,
// defaulting to zero or empty instead of reporting absence. Backing sources
// that can fail internally (disk, network) must resolve their errors before
// answering, either by retrying or by returning a default value.
package state

import (
	"github.com/Fantom-foundation/Fidelio/go/bytecode"
	"github.com/Fantom-foundation/Fidelio/go/fidelio"
)

//go:generate mockgen -source state.go -destination state_mock.go -package state

// StateReader is the read-only query capability of a chain-state source.
// Implementations must not mutate their externally visible state when
// answering queries.
type StateReader interface {
	// Account returns the basic information of the given account.
	Account(fidelio.Address) AccountInfo
	// Storage returns the value of the given storage slot of an account.
	Storage(fidelio.Address, fidelio.Key) fidelio.Word
	// CodeByHash returns the code identified by the given hash.
	CodeByHash(fidelio.Hash) bytecode.Bytecode
	// BlockHash returns the hash of the block with the given number.
	BlockHash(int64) fidelio.Hash
}

// State is the mutable query capability of a chain-state source, offering
// the same operations as StateReader. Implementations may memoize fetched
// results as a side effect of answering a query.
type State interface {
	// Account returns the basic information of the given account.
	Account(fidelio.Address) AccountInfo
	// Storage returns the value of the given storage slot of an account.
	Storage(fidelio.Address, fidelio.Key) fidelio.Word
	// CodeByHash returns the code identified by the given hash.
	CodeByHash(fidelio.Hash) bytecode.Bytecode
	// BlockHash returns the hash of the block with the given number.
	BlockHash(int64) fidelio.Hash
}

// Committer accepts post-execution account deltas. A commit is a single
// logical batch; each address is applied atomically, while the order in
// which addresses are applied is unconstrained.
type Committer interface {
	Commit(changes map[fidelio.Address]Account)
}
