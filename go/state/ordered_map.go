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
	"bytes"

	"github.com/Fantom-foundation/Fidelio/go/fidelio"
	"github.com/google/btree"
)

// orderedMap is a btree-backed map with deterministic in-order iteration,
// used for the per-address account records and the per-account storage slots
// so that state dumps and commits are reproducible.
type orderedMap[K any, V any] struct {
	tree *btree.BTreeG[mapEntry[K, V]]
}

type mapEntry[K any, V any] struct {
	key   K
	value V
}

func newOrderedMap[K any, V any](less func(a, b K) bool) *orderedMap[K, V] {
	return &orderedMap[K, V]{
		tree: btree.NewG(16, func(a, b mapEntry[K, V]) bool {
			return less(a.key, b.key)
		}),
	}
}

func (m *orderedMap[K, V]) get(key K) (V, bool) {
	entry, found := m.tree.Get(mapEntry[K, V]{key: key})
	return entry.value, found
}

func (m *orderedMap[K, V]) set(key K, value V) {
	m.tree.ReplaceOrInsert(mapEntry[K, V]{key: key, value: value})
}

func (m *orderedMap[K, V]) size() int {
	return m.tree.Len()
}

func (m *orderedMap[K, V]) clear() {
	m.tree.Clear(false)
}

// forEach calls op for every entry in ascending key order until op returns
// false.
func (m *orderedMap[K, V]) forEach(op func(K, V) bool) {
	m.tree.Ascend(func(entry mapEntry[K, V]) bool {
		return op(entry.key, entry.value)
	})
}

func addressLess(a, b fidelio.Address) bool {
	return bytes.Compare(a[:], b[:]) < 0
}

func keyLess(a, b fidelio.Key) bool {
	return bytes.Compare(a[:], b[:]) < 0
}
