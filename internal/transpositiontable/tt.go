//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package transpositiontable implements a lock-less transposition table
// (cache) for a chess engine search: two-slot buckets (depth-preferred +
// always-replace), a lock-less XOR-folded key per entry, and a generation
// counter bumped once per search so stale entries from earlier searches
// are preferentially replaced without being actively purged.
// The TtTable class is not thread safe for Resize and Clear, which must
// not be called concurrently with a running search.
package transpositiontable

import (
	"math"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/mathmoi/m8-sub000/internal/logging"
	"github.com/mathmoi/m8-sub000/internal/position"
	. "github.com/mathmoi/m8-sub000/internal/types"
	"github.com/mathmoi/m8-sub000/internal/util"
)

var out = message.NewPrinter(language.German)

const (
	// MaxSizeInMB maximal memory usage of tt
	MaxSizeInMB = 65_536

	// BucketSize is the size in bytes of one Bucket (one cache line).
	BucketSize = 64
)

// TtTable is the actual transposition table object holding data and state.
// Create with NewTtTable().
type TtTable struct {
	log               *logging.Logger
	buckets           []Bucket
	sizeInByte        uint64
	hashKeyMask       uint64
	maxNumberOfBucket uint64
	generation        uint8
	Stats             TtStats
}

// TtStats holds statistical data on tt usage
type TtStats struct {
	numberOfPuts       uint64
	numberOfCollisions uint64
	numberOfUpdates    uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// NewTtTable creates a new TtTable with the given number of megabytes
// as a maximum of memory usage. actual size will be determined
// by the number of buckets fitting into this size which need
// to be a power of 2 for efficient hashing/addressing via bit
// masks.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := TtTable{
		log: myLogging.GetLog(),
	}
	tt.Resize(sizeInMByte)
	return &tt
}

// Resize resizes the tt table. All entries will be cleared.
// The TtTable class is not thread safe and needs to be synchronized
// externally if used from multiple threads. Is especially relevant
// for Resize and Clear which should not be called in parallel
// while searching.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("Requested size for TT of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	// calculate the maximum power of 2 of buckets fitting into the given size in MB
	tt.sizeInByte = uint64(sizeInMByte) * MB
	if tt.sizeInByte == 0 {
		tt.maxNumberOfBucket = 0
	} else {
		tt.maxNumberOfBucket = 1 << uint64(math.Floor(math.Log2(float64(tt.sizeInByte/BucketSize))))
	}
	tt.hashKeyMask = 0
	if tt.maxNumberOfBucket > 0 {
		tt.hashKeyMask = tt.maxNumberOfBucket - 1 // --> 0x0001111....111
	}

	// calculate the real memory usage
	tt.sizeInByte = tt.maxNumberOfBucket * BucketSize

	// Create new slice/array - garbage collections takes care of cleanup
	tt.buckets = make([]Bucket, tt.maxNumberOfBucket)
	tt.generation = 0

	tt.log.Info(out.Sprintf("TT Size %d MByte, Capacity %d buckets (size=%dByte) (Requested were %d MBytes)",
		tt.sizeInByte/MB, tt.maxNumberOfBucket, unsafe.Sizeof(Bucket{}), sizeInMByte))
	tt.log.Debug(util.MemStat())
}

// NewSearch bumps the generation counter. It must be called exactly once
// per outer search, before the first probe/insert of that search, so that
// depth-preferred slots written by earlier searches are recognised as
// stale and replaced rather than defended against deeper same-generation
// writes.
func (tt *TtTable) NewSearch() {
	tt.generation++
}

// Generation returns the current search generation.
func (tt *TtTable) Generation() uint8 {
	return tt.generation
}

// GetEntry returns a pointer to the corresponding tt entry.
// Given key is checked against the entry's key. When
// equal pointer to entry will be returned. Otherwise
// nil will be returned.
// Does not change statistics.
func (tt *TtTable) GetEntry(key position.Key) *TtEntry {
	if tt.maxNumberOfBucket == 0 {
		return nil
	}
	return tt.buckets[tt.hash(key)].probe(key)
}

// Probe returns a pointer to the corresponding tt entry, or nil if it was
// not found. Updates hit/miss statistics.
func (tt *TtTable) Probe(key position.Key) *TtEntry {
	tt.Stats.numberOfProbes++
	if tt.maxNumberOfBucket == 0 {
		tt.Stats.numberOfMisses++
		return nil
	}
	e := tt.buckets[tt.hash(key)].probe(key)
	if e != nil {
		tt.Stats.numberOfHits++
		return e
	}
	tt.Stats.numberOfMisses++
	return nil
}

// Put inserts a value into the tt for the given key, depth and bound type.
// value must already be mate-distance-adjusted for storage (see
// valueToTT in the search package).
func (tt *TtTable) Put(key position.Key, move Move, depth int, valueType ValueType, value Value) {
	if tt.maxNumberOfBucket == 0 {
		return
	}

	tt.Stats.numberOfPuts++
	bucket := &tt.buckets[tt.hash(key)]

	switch existing := bucket.probe(key); {
	case existing == nil && (!bucket.depthPreferred.empty() || !bucket.alwaysReplace.empty()):
		tt.Stats.numberOfCollisions++
	case existing != nil:
		tt.Stats.numberOfUpdates++
	}

	bucket.insert(key, move, tt.generation, valueType, depth, value)
}

// Clear clears all entries of the tt
// The TtTable class is not thread safe and needs to be synchronized
// externally if used from multiple threads. Is especially relevant
// for Resize and Clear which should not be called in parallel
// while searching.
func (tt *TtTable) Clear() {
	tt.buckets = make([]Bucket, tt.maxNumberOfBucket)
	tt.generation = 0
	tt.Stats = TtStats{}
}

// Hashfull returns how full the transposition table is in permill as per UCI
func (tt *TtTable) Hashfull() int {
	if tt.maxNumberOfBucket == 0 {
		return 0
	}
	sampleSize := tt.maxNumberOfBucket
	if sampleSize > 1000 {
		sampleSize = 1000
	}
	var used uint64
	for i := uint64(0); i < sampleSize; i++ {
		b := &tt.buckets[i]
		if !b.depthPreferred.empty() {
			used++
		}
		if !b.alwaysReplace.empty() {
			used++
		}
	}
	return int((1000 * used) / (2 * sampleSize))
}

// String returns a string representation of this TtTable instance
func (tt *TtTable) String() string {
	return out.Sprintf("TT: size %d MB max buckets %d of size %d Bytes (%d%%) generation %d puts %d "+
		"updates %d collisions %d probes %d hits %d (%d%%) misses %d (%d%%)",
		tt.sizeInByte/MB, tt.maxNumberOfBucket, unsafe.Sizeof(Bucket{}), tt.Hashfull()/10, tt.generation,
		tt.Stats.numberOfPuts, tt.Stats.numberOfUpdates, tt.Stats.numberOfCollisions, tt.Stats.numberOfProbes,
		tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+tt.Stats.numberOfProbes),
		tt.Stats.numberOfMisses, (tt.Stats.numberOfMisses*100)/(1+tt.Stats.numberOfProbes))
}

// Len returns the number of occupied slots in the tt. Expensive - walks
// the full table - intended for tests/diagnostics, not the hot path.
func (tt *TtTable) Len() uint64 {
	var n uint64
	for i := range tt.buckets {
		if !tt.buckets[i].depthPreferred.empty() {
			n++
		}
		if !tt.buckets[i].alwaysReplace.empty() {
			n++
		}
	}
	return n
}

// ///////////////////////////////////////////////////////////
// Private
// ///////////////////////////////////////////////////////////

// hash generates the internal bucket index for the given key.
func (tt *TtTable) hash(key position.Key) uint64 {
	return uint64(key) & tt.hashKeyMask
}
