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

package transpositiontable

import (
	"github.com/mathmoi/m8-sub000/internal/position"
	. "github.com/mathmoi/m8-sub000/internal/types"
)

// bucketPadding rounds a Bucket up to one 64-byte cache line so that a
// probe/insert touches a single line instead of straddling two.
const bucketPadding = 64 - 2*TtEntrySize

// Bucket is the unit of storage in the table: two slots sharing one hash
// index. depthPreferred is kept across collisions as long as it is still
// from the current search generation and deeper than the
// incoming write; alwaysReplace absorbs every other collision so recent
// positions (e.g. repeated quiescence probes) are never starved out.
type Bucket struct {
	depthPreferred TtEntry
	alwaysReplace  TtEntry
	_              [bucketPadding]byte
}

// probe returns the slot matching trueKey, or nil if neither slot does.
func (b *Bucket) probe(trueKey position.Key) *TtEntry {
	if b.depthPreferred.matches(trueKey) {
		return &b.depthPreferred
	}
	if b.alwaysReplace.matches(trueKey) {
		return &b.alwaysReplace
	}
	return nil
}

// insert writes a new entry for trueKey, choosing which slot to evict.
func (b *Bucket) insert(trueKey position.Key, move Move, generation uint8, vtype ValueType, depth int, value Value) {
	dp := &b.depthPreferred
	if dp.empty() || dp.Generation() != generation || dp.Depth() <= depth {
		dp.set(trueKey, move, generation, vtype, depth, value)
		return
	}
	b.alwaysReplace.set(trueKey, move, generation, vtype, depth, value)
}
