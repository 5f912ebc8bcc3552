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

// accountState describes how far this cache layer owns an account's storage.
type accountState byte

const (
	// accountUntouched marks a record created only as a side effect of a
	// storage read; the engine never interacted with the account.
	accountUntouched accountState = iota
	// accountTouched marks an account the engine interacted with, without
	// clearing its storage.
	accountTouched
	// accountStorageCleared marks an account whose storage this layer has
	// authoritatively cleared, mostly by self-destruct. Missing slots
	// resolve to zero and never fall back to the backing state.
	accountStorageCleared
)

// accountRecord is the cached per-address entry of a CacheState.
type accountRecord struct {
	info    AccountInfo
	state   accountState
	storage *orderedMap[fidelio.Key, fidelio.Word]
}

func newAccountRecord(info AccountInfo) *accountRecord {
	return &accountRecord{
		info:    info,
		storage: newOrderedMap[fidelio.Key, fidelio.Word](keyLess),
	}
}

// CacheState is a caching state store decorating an arbitrary backing
// StateReader. Every query is answered from local state first, falling back
// to and memoizing from the backing state on a miss; Commit folds a batch of
// post-execution account deltas into the local state.
//
// A CacheState is exclusively owned by one execution context; it performs no
// internal locking. Since the store's read-only view is itself a
// StateReader, stores can be layered to form snapshot or overlay stacks.
type CacheState struct {
	accounts    *orderedMap[fidelio.Address, *accountRecord]
	contracts   map[fidelio.Hash]bytecode.Bytecode
	logs        []fidelio.Log
	blockHashes map[int64]fidelio.Hash
	backend     StateReader
}

// NewCacheState creates a cache layer over the given backing state. The
// code cache is pre-seeded so that both "no code" sentinels, the canonical
// empty-code hash and the all-zero hash, resolve to the empty Bytecode
// without a backing round trip.
func NewCacheState(backend StateReader) *CacheState {
	return &CacheState{
		accounts: newOrderedMap[fidelio.Address, *accountRecord](addressLess),
		contracts: map[fidelio.Hash]bytecode.Bytecode{
			bytecode.EmptyCodeHash: bytecode.New(),
			{}:                     bytecode.New(),
		},
		blockHashes: map[int64]fidelio.Hash{},
		backend:     backend,
	}
}

// Account returns the cached information of the given account, loading and
// memoizing it from the backing state if needed.
func (s *CacheState) Account(addr fidelio.Address) AccountInfo {
	if record, exists := s.accounts.get(addr); exists {
		return record.info
	}
	info := s.backend.Account(addr)
	record := newAccountRecord(info)
	record.state = accountTouched
	s.accounts.set(addr, record)
	return info
}

// Storage returns the value of the given storage slot. Resolution is
// four-way: a cached slot is returned as is; a missing slot of a
// storage-cleared account is zero, without consulting the backing state; a
// missing slot of any other cached account is fetched and memoized; and a
// slot of an unknown account loads the account first so follow-up reads are
// coherent.
func (s *CacheState) Storage(addr fidelio.Address, key fidelio.Key) fidelio.Word {
	if record, exists := s.accounts.get(addr); exists {
		if value, exists := record.storage.get(key); exists {
			return value
		}
		if record.state == accountStorageCleared {
			return fidelio.Word{}
		}
		value := s.backend.Storage(addr, key)
		record.storage.set(key, value)
		return value
	}

	record := newAccountRecord(s.backend.Account(addr))
	value := s.backend.Storage(addr, key)
	record.storage.set(key, value)
	s.accounts.set(addr, record)
	return value
}

// CodeByHash returns the code identified by the given hash, memoizing it
// from the backing state on a miss.
func (s *CacheState) CodeByHash(hash fidelio.Hash) bytecode.Bytecode {
	if code, exists := s.contracts[hash]; exists {
		return code
	}
	code := s.backend.CodeByHash(hash)
	s.contracts[hash] = code
	return code
}

// BlockHash returns the hash of the block with the given number, memoizing
// it from the backing state on a miss.
func (s *CacheState) BlockHash(number int64) fidelio.Hash {
	if hash, exists := s.blockHashes[number]; exists {
		return hash
	}
	hash := s.backend.BlockHash(number)
	s.blockHashes[number] = hash
	return hash
}

// Commit folds a batch of post-execution account deltas into the local
// state. Destroyed accounts end up as empty-info records with cleared
// storage that no longer falls back to the backing state; all other
// accounts get their code registered, their info replaced, and the deltas'
// present values merged into their storage.
func (s *CacheState) Commit(changes map[fidelio.Address]Account) {
	for addr, account := range changes {
		if account.IsDestroyed {
			record := s.getOrCreateRecord(addr)
			record.storage.clear()
			record.state = accountStorageCleared
			record.info = AccountInfo{}
			continue
		}
		s.insertContract(&account.Info)

		record := s.getOrCreateRecord(addr)
		record.info = account.Info
		if account.StorageCleared {
			record.storage.clear()
			record.state = accountStorageCleared
		} else {
			record.state = accountTouched
		}
		for key, slot := range account.Storage {
			record.storage.set(key, slot.PresentValue)
		}
	}
}

// InsertAccountInfo pre-seeds the cache with account information without
// touching the account's storage.
func (s *CacheState) InsertAccountInfo(addr fidelio.Address, info AccountInfo) {
	s.insertContract(&info)
	s.getOrCreateRecord(addr).info = info
}

// InsertAccountStorage sets a single storage slot without overriding the
// account's information.
func (s *CacheState) InsertAccountStorage(addr fidelio.Address, key fidelio.Key, value fidelio.Word) {
	s.getOrLoadRecord(addr).storage.set(key, value)
}

// ReplaceAccountStorage wholesale-replaces the account's storage with the
// given slots. Previously cached slots become unreachable, and slots missing
// from the replacement resolve to zero rather than to the backing state.
func (s *CacheState) ReplaceAccountStorage(addr fidelio.Address, storage map[fidelio.Key]fidelio.Word) {
	record := s.getOrLoadRecord(addr)
	record.state = accountStorageCleared
	record.storage.clear()
	for key, value := range storage {
		record.storage.set(key, value)
	}
}

// AddLog appends a log entry to the store's log buffer.
func (s *CacheState) AddLog(log fidelio.Log) {
	s.logs = append(s.logs, log)
}

// Logs returns the log entries collected by this layer so far.
func (s *CacheState) Logs() []fidelio.Log {
	return s.logs
}

// ForEachAccount calls op for every cached account in address order.
func (s *CacheState) ForEachAccount(op func(fidelio.Address, AccountInfo) bool) {
	s.accounts.forEach(func(addr fidelio.Address, record *accountRecord) bool {
		return op(addr, record.info)
	})
}

// ForEachStorageSlot calls op for every cached storage slot of the given
// account in key order.
func (s *CacheState) ForEachStorageSlot(addr fidelio.Address, op func(fidelio.Key, fidelio.Word) bool) {
	if record, exists := s.accounts.get(addr); exists {
		record.storage.forEach(op)
	}
}

// Reader returns a read-only view of the store. The view answers queries
// from the local state and falls through to the backing state without
// memoizing anything, leaving the store untouched. Passing the view to
// NewCacheState layers a new store on top of this one.
func (s *CacheState) Reader() StateReader {
	return cacheStateReader{s}
}

// getOrCreateRecord returns the record of the given address, creating a
// default (zero-info, untouched) record if none is cached yet.
func (s *CacheState) getOrCreateRecord(addr fidelio.Address) *accountRecord {
	if record, exists := s.accounts.get(addr); exists {
		return record
	}
	record := newAccountRecord(AccountInfo{})
	s.accounts.set(addr, record)
	return record
}

// getOrLoadRecord returns the record of the given address, creating one
// populated with the backing state's account info if none is cached yet.
func (s *CacheState) getOrLoadRecord(addr fidelio.Address) *accountRecord {
	if record, exists := s.accounts.get(addr); exists {
		return record
	}
	record := newAccountRecord(s.backend.Account(addr))
	s.accounts.set(addr, record)
	return record
}

// insertContract registers the info's code in the code cache, computing its
// hash first; a zero code hash is normalized to the canonical empty-code
// hash.
func (s *CacheState) insertContract(info *AccountInfo) {
	if info.Code != nil && !info.Code.IsEmpty() {
		info.CodeHash = info.Code.Hash()
		if _, exists := s.contracts[info.CodeHash]; !exists {
			s.contracts[info.CodeHash] = *info.Code
		}
	}
	if info.CodeHash == (fidelio.Hash{}) {
		info.CodeHash = bytecode.EmptyCodeHash
	}
}

// cacheStateReader is the non-memoizing read-only view of a CacheState.
type cacheStateReader struct {
	state *CacheState
}

func (r cacheStateReader) Account(addr fidelio.Address) AccountInfo {
	if record, exists := r.state.accounts.get(addr); exists {
		return record.info
	}
	return r.state.backend.Account(addr)
}

func (r cacheStateReader) Storage(addr fidelio.Address, key fidelio.Key) fidelio.Word {
	record, exists := r.state.accounts.get(addr)
	if !exists {
		return r.state.backend.Storage(addr, key)
	}
	if value, exists := record.storage.get(key); exists {
		return value
	}
	if record.state == accountStorageCleared {
		return fidelio.Word{}
	}
	return r.state.backend.Storage(addr, key)
}

func (r cacheStateReader) CodeByHash(hash fidelio.Hash) bytecode.Bytecode {
	if code, exists := r.state.contracts[hash]; exists {
		return code
	}
	return r.state.backend.CodeByHash(hash)
}

func (r cacheStateReader) BlockHash(number int64) fidelio.Hash {
	if hash, exists := r.state.blockHashes[number]; exists {
		return hash
	}
	return r.state.backend.BlockHash(number)
}
