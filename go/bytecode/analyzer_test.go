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
	"testing"

	"github.com/Fantom-foundation/Fidelio/go/fidelio"
)

func TestAnalyzer_ResultsAreCachedByHash(t *testing.T) {
	analyzer, err := NewAnalyzer(AnalyzerConfig{})
	if err != nil {
		t.Fatalf("failed to create analyzer: %v", err)
	}

	code := fidelio.Code{byte(JUMPDEST), byte(STOP)}
	hash := Keccak256(code)

	first := analyzer.Analyze(code, fidelio.R13_Cancun, &hash)
	second := analyzer.Analyze(code, fidelio.R13_Cancun, &hash)

	if first.Analysis() != second.Analysis() {
		t.Errorf("cached result should share the analysis table")
	}
}

func TestAnalyzer_NilHashSkipsTheCache(t *testing.T) {
	analyzer, err := NewAnalyzer(AnalyzerConfig{})
	if err != nil {
		t.Fatalf("failed to create analyzer: %v", err)
	}

	code := fidelio.Code{byte(JUMPDEST), byte(STOP)}
	first := analyzer.Analyze(code, fidelio.R13_Cancun, nil)
	second := analyzer.Analyze(code, fidelio.R13_Cancun, nil)

	if first.Analysis() == second.Analysis() {
		t.Errorf("uncached results should not share the analysis table")
	}
	if got, want := analyzer.cache.Len(), 0; got != want {
		t.Errorf("unexpected cache size, wanted %d, got %d", want, got)
	}
}

func TestAnalyzer_CacheIsKeyedByRevision(t *testing.T) {
	analyzer, err := NewAnalyzer(AnalyzerConfig{})
	if err != nil {
		t.Fatalf("failed to create analyzer: %v", err)
	}

	code := fidelio.Code{byte(BALANCE), byte(STOP)}
	hash := Keccak256(code)

	istanbul := analyzer.Analyze(code, fidelio.R07_Istanbul, &hash)
	berlin := analyzer.Analyze(code, fidelio.R09_Berlin, &hash)

	if got, want := istanbul.Analysis().FirstGasBlock(), fidelio.Gas(700); got != want {
		t.Errorf("unexpected Istanbul cost, wanted %d, got %d", want, got)
	}
	if got, want := berlin.Analysis().FirstGasBlock(), fidelio.Gas(100); got != want {
		t.Errorf("unexpected Berlin cost, wanted %d, got %d", want, got)
	}
	if got, want := analyzer.cache.Len(), 2; got != want {
		t.Errorf("unexpected cache size, wanted %d, got %d", want, got)
	}
}

func TestAnalyzer_CacheSizeIsBounded(t *testing.T) {
	const capacity = 10
	analyzer, err := NewAnalyzer(AnalyzerConfig{CacheCapacity: capacity})
	if err != nil {
		t.Fatalf("failed to create analyzer: %v", err)
	}

	for i := 0; i < 2*capacity; i++ {
		code := fidelio.Code{byte(PUSH1), byte(i), byte(STOP)}
		hash := Keccak256(code)
		analyzer.Analyze(code, fidelio.R13_Cancun, &hash)

		if got := analyzer.cache.Len(); got > capacity {
			t.Fatalf("cache grew beyond its capacity, got %d entries", got)
		}
	}
}

func TestAnalyzer_OversizedCodesAreNotCached(t *testing.T) {
	analyzer, err := NewAnalyzer(AnalyzerConfig{})
	if err != nil {
		t.Fatalf("failed to create analyzer: %v", err)
	}

	code := make(fidelio.Code, maxCachedCodeLength+1)
	hash := Keccak256(code)
	res := analyzer.Analyze(code, fidelio.R13_Cancun, &hash)

	if got, want := res.Len(), len(code); got != want {
		t.Errorf("unexpected result length, wanted %d, got %d", want, got)
	}
	if got, want := analyzer.cache.Len(), 0; got != want {
		t.Errorf("oversized code should not be cached, got %d entries", got)
	}
}

func TestAnalyzer_NegativeCapacityDisablesTheCache(t *testing.T) {
	analyzer, err := NewAnalyzer(AnalyzerConfig{CacheCapacity: -1})
	if err != nil {
		t.Fatalf("failed to create analyzer: %v", err)
	}
	if analyzer.cache != nil {
		t.Fatalf("expected no cache to be created")
	}

	code := fidelio.Code{byte(JUMPDEST), byte(STOP)}
	hash := Keccak256(code)
	res := analyzer.Analyze(code, fidelio.R13_Cancun, &hash)
	if !res.Analysis().IsJumpDest(0) {
		t.Errorf("analysis without cache produced a wrong result")
	}
}

func TestAnalyzer_ZeroCapacityUsesTheDefault(t *testing.T) {
	analyzer, err := NewAnalyzer(AnalyzerConfig{})
	if err != nil {
		t.Fatalf("failed to create analyzer: %v", err)
	}
	if got, want := analyzer.config.CacheCapacity, defaultCacheCapacity; got != want {
		t.Errorf("unexpected capacity, wanted %d, got %d", want, got)
	}
}

func BenchmarkAnalyzer_CacheHit(b *testing.B) {
	analyzer, err := NewAnalyzer(AnalyzerConfig{})
	if err != nil {
		b.Fatalf("failed to create analyzer: %v", err)
	}

	code := fidelio.Code(longExampleCode())
	hash := Keccak256(code)
	analyzer.Analyze(code, fidelio.R13_Cancun, &hash)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		analyzer.Analyze(code, fidelio.R13_Cancun, &hash)
	}
}
