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
	"bytes"
	"testing"

	"github.com/Fantom-foundation/Fidelio/go/fidelio"
)

func TestBytecode_NewIsEmptyAndAnalyzed(t *testing.T) {
	code := New()

	if got, want := code.Len(), 0; got != want {
		t.Errorf("unexpected length, wanted %d, got %d", want, got)
	}
	if !code.IsEmpty() {
		t.Errorf("new code should be empty")
	}
	if code.Analysis() == nil {
		t.Errorf("new code should be analyzed")
	}
	if got, want := code.Bytes(), []byte{byte(STOP)}; !bytes.Equal(got, want) {
		t.Errorf("unexpected buffer, wanted %v, got %v", want, got)
	}
}

func TestBytecode_ToCheckedAddsPadding(t *testing.T) {
	raw := []byte{byte(PUSH1), 0x01, byte(ADD)}
	checked := NewRaw(raw).ToChecked()

	if got, want := checked.Len(), len(raw); got != want {
		t.Errorf("unexpected semantic length, wanted %d, got %d", want, got)
	}
	if got, want := len(checked.Bytes()), len(raw)+33; got != want {
		t.Errorf("unexpected buffer length, wanted %d, got %d", want, got)
	}
	if !bytes.Equal(checked.Bytes()[:len(raw)], raw) {
		t.Errorf("padding altered the code prefix")
	}
	for i, b := range checked.Bytes()[len(raw):] {
		if b != 0 {
			t.Fatalf("padding byte %d is not zero: %d", i, b)
		}
	}
}

func TestBytecode_ToCheckedIsNoOpOnPreparedCode(t *testing.T) {
	checked := NewRaw([]byte{byte(ADD)}).ToChecked()
	if got, want := len(checked.ToChecked().Bytes()), len(checked.Bytes()); got != want {
		t.Errorf("re-checking grew the buffer, wanted %d, got %d", want, got)
	}

	analyzed := checked.ToAnalyzed(fidelio.R13_Cancun)
	if analyzed.ToChecked().Analysis() == nil {
		t.Errorf("re-checking analyzed code dropped the analysis")
	}
}

func TestBytecode_ToAnalyzedIsNoOpOnAnalyzedCode(t *testing.T) {
	analyzed := NewRaw([]byte{byte(JUMPDEST)}).ToAnalyzed(fidelio.R13_Cancun)
	again := analyzed.ToAnalyzed(fidelio.R13_Cancun)
	if analyzed.Analysis() != again.Analysis() {
		t.Errorf("re-analyzing recomputed the analysis table")
	}
}

func TestBytecode_HashOfEmptyCodeIsCanonicalForAllPaths(t *testing.T) {
	tests := map[string]Bytecode{
		"default":     New(),
		"raw nil":     NewRaw(nil),
		"raw empty":   NewRaw([]byte{}),
		"checked":     NewRaw(nil).ToChecked(),
		"analyzed":    NewRaw(nil).ToAnalyzed(fidelio.R13_Cancun),
		"constructed": NewChecked(make([]byte, 33), 0),
	}

	for name, code := range tests {
		t.Run(name, func(t *testing.T) {
			if got, want := code.Hash(), EmptyCodeHash; got != want {
				t.Errorf("unexpected hash, wanted %v, got %v", want, got)
			}
		})
	}
}

func TestBytecode_HashIgnoresPadding(t *testing.T) {
	tests := [][]byte{
		{0x00},
		{byte(PUSH1), 0x5B},
		{byte(PUSH32)},
		longExampleCode(),
	}

	for _, raw := range tests {
		want := NewRaw(raw).Hash()
		if got := NewRaw(raw).ToChecked().Hash(); got != want {
			t.Errorf("checking altered the hash, wanted %v, got %v", want, got)
		}
		if got := NewRaw(raw).ToAnalyzed(fidelio.R13_Cancun).Hash(); got != want {
			t.Errorf("analyzing altered the hash, wanted %v, got %v", want, got)
		}
	}
}

func TestBytecode_LockUnlockRoundTrip(t *testing.T) {
	raw := []byte{byte(PUSH1), 0x02, byte(JUMP), byte(JUMPDEST), byte(STOP)}
	locked := NewRaw(raw).Lock(fidelio.R13_Cancun)

	unlocked := locked.Unlock()
	if got, want := unlocked.Len(), len(raw); got != want {
		t.Errorf("unexpected length after unlock, wanted %d, got %d", want, got)
	}
	if unlocked.Analysis() != locked.Analysis() {
		t.Errorf("unlock should reuse the analysis table without recomputation")
	}
	if &unlocked.Bytes()[0] != &locked.Bytes()[0] {
		t.Errorf("unlock should reuse the buffer")
	}

	relocked := unlocked.Lock(fidelio.R13_Cancun)
	if relocked.Analysis() != locked.Analysis() {
		t.Errorf("re-locking analyzed code recomputed the analysis table")
	}
}

func TestBytecode_LockForcesPreparation(t *testing.T) {
	raw := []byte{byte(JUMPDEST), byte(STOP)}
	locked := NewRaw(raw).Lock(fidelio.R13_Cancun)

	if got, want := locked.Len(), len(raw); got != want {
		t.Errorf("unexpected length, wanted %d, got %d", want, got)
	}
	if !bytes.Equal(locked.OriginalBytes(), raw) {
		t.Errorf("unexpected original code, wanted %v, got %v", raw, locked.OriginalBytes())
	}
	if got, want := len(locked.Bytes()), len(raw)+33; got != want {
		t.Errorf("unexpected padded length, wanted %d, got %d", want, got)
	}
	if locked.Analysis() == nil {
		t.Fatalf("locked code is missing its analysis")
	}
	if !locked.Analysis().IsJumpDest(0) {
		t.Errorf("missing jump destination at offset 0")
	}
}

func TestBytecode_ClonesShareBufferAndAnalysis(t *testing.T) {
	analyzed := NewRaw([]byte{byte(JUMPDEST)}).ToAnalyzed(fidelio.R13_Cancun)
	clone := analyzed

	if analyzed.Analysis() != clone.Analysis() {
		t.Errorf("clones should share the analysis table")
	}
	if &analyzed.Bytes()[0] != &clone.Bytes()[0] {
		t.Errorf("clones should share the buffer")
	}
}

func TestBytecode_TruncatedPushIsAnalyzableAfterChecking(t *testing.T) {
	// The push declares 32 operand bytes, but the raw code ends right after
	// the opcode; only the padding makes the operand scan safe.
	for op := PUSH1; op <= PUSH32; op++ {
		code := NewRaw([]byte{byte(op)}).ToAnalyzed(fidelio.R13_Cancun)
		if got, want := code.Analysis().FirstGasBlock(), fidelio.Gas(3); got != want {
			t.Errorf("unexpected first gas block for %d, wanted %d, got %d", op, want, got)
		}
	}
}

// longExampleCode produces a code snippet larger than a single gas block.
func longExampleCode() []byte {
	res := make([]byte, 0, 1024)
	for i := 0; i < 100; i++ {
		res = append(res, byte(PUSH1), byte(i), byte(PUSH1), 0x20, byte(ADD), byte(POP), byte(JUMPDEST))
	}
	return append(res, byte(STOP))
}
