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
	"sync"
	"testing"

	"github.com/Fantom-foundation/Fidelio/go/fidelio"
	"github.com/ethereum/go-ethereum/crypto"
)

func TestKeccak256_MatchesReferenceImplementation(t *testing.T) {
	inputs := [][]byte{
		nil,
		{},
		{0x00},
		{0x01, 0x02, 0x03},
		longExampleCode(),
		make([]byte, 1<<16),
	}

	for _, input := range inputs {
		want := fidelio.Hash(crypto.Keccak256Hash(input))
		if got := Keccak256(input); got != want {
			t.Errorf("unexpected hash of %x, wanted %v, got %v", input, want, got)
		}
	}
}

func TestKeccak256_EmptyCodeHashIsCanonical(t *testing.T) {
	want := fidelio.Hash{
		0xc5, 0xd2, 0x46, 0x01, 0x86, 0xf7, 0x23, 0x3c,
		0x92, 0x7e, 0x7d, 0xb2, 0xdc, 0xc7, 0x03, 0xc0,
		0xe5, 0x00, 0xb6, 0x53, 0xca, 0x82, 0x27, 0x3b,
		0x7b, 0xfa, 0xd8, 0x04, 0x5d, 0x85, 0xa4, 0x70,
	}
	if EmptyCodeHash != want {
		t.Errorf("unexpected empty-code hash, wanted %v, got %v", want, EmptyCodeHash)
	}
}

func TestKeccak256_IsSafeForConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if got, want := Keccak256([]byte{}), EmptyCodeHash; got != want {
					t.Errorf("unexpected hash, wanted %v, got %v", want, got)
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkKeccak256_ShortInput(b *testing.B) {
	input := []byte{0x01, 0x02, 0x03}
	for i := 0; i < b.N; i++ {
		Keccak256(input)
	}
}
