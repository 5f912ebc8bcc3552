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
	lru "github.com/hashicorp/golang-lru/v2"
)

// AnalyzerConfig contains a set of configuration options for the code
// analysis pipeline.
type AnalyzerConfig struct {
	// CacheCapacity is the maximum number of analysis results retained by
	// the analyzer. If set to 0, a default capacity is used. If negative,
	// no cache is used.
	CacheCapacity int
}

// defaultCacheCapacity bounds the cache to roughly 1 GiB of retained code,
// assuming every entry holds a maximum-size deployed code.
const defaultCacheCapacity = (1 << 30) / maxCachedCodeLength

// maxCachedCodeLength is the maximum length of a code in bytes that is
// retained in the cache. The defined limit is the current limit for codes
// stored on the chain (see https://eips.ethereum.org/EIPS/eip-170). Only
// initialization codes can be longer; those are deliberately not cached due
// to the expected limited re-use.
const maxCachedCodeLength = 1<<14 + 1<<13 // = 24_576 bytes

// analysisKey identifies one analysis result. The same code analyzed under
// different revisions yields different gas-block tables, so the revision is
// part of the key.
type analysisKey struct {
	hash     fidelio.Hash
	revision fidelio.Revision
}

// Analyzer runs the code-preparation pipeline, memoizing results by code
// hash so that identical code is analyzed at most once.
type Analyzer struct {
	config AnalyzerConfig
	cache  *lru.Cache[analysisKey, Bytecode]
}

// NewAnalyzer creates a new code analyzer with the provided configuration.
func NewAnalyzer(config AnalyzerConfig) (*Analyzer, error) {
	if config.CacheCapacity == 0 {
		config.CacheCapacity = defaultCacheCapacity
	}

	var cache *lru.Cache[analysisKey, Bytecode]
	if config.CacheCapacity > 0 {
		var err error
		cache, err = lru.New[analysisKey, Bytecode](config.CacheCapacity)
		if err != nil {
			return nil, err
		}
	}
	return &Analyzer{
		config: config,
		cache:  cache,
	}, nil
}

// Analyze prepares the given code for execution under the given revision.
// If the provided code hash is not nil, it is assumed to be a valid hash of
// the code and is used to cache the analysis result. If the hash is nil,
// the result is not cached.
func (a *Analyzer) Analyze(code fidelio.Code, revision fidelio.Revision, codeHash *fidelio.Hash) Bytecode {
	if a.cache == nil || codeHash == nil {
		return NewRaw(code).ToAnalyzed(revision)
	}

	key := analysisKey{hash: *codeHash, revision: revision}
	res, exists := a.cache.Get(key)
	if exists {
		return res
	}

	res = NewRaw(code).ToAnalyzed(revision)
	if len(code) > maxCachedCodeLength {
		return res
	}

	a.cache.Add(key, res)
	return res
}
