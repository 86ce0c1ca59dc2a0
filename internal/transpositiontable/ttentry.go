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

// Bit layout of the 64-bit data word packed into each TtEntry. The move
// occupies the high bits and the value the low bits so that a freshly
// zeroed entry (data == 0) decodes as MoveNone / NoBound / depth 0 / value 0,
// which probe() and empty() rely on to recognise a never-written slot.
const (
	ttValueBits      = 16
	ttDepthBits      = 12
	ttTypeBits       = 2
	ttGenerationBits = 8
	ttMoveBits       = 26

	ttValueShift      = 0
	ttDepthShift      = ttValueShift + ttValueBits
	ttTypeShift       = ttDepthShift + ttDepthBits
	ttGenerationShift = ttTypeShift + ttTypeBits
	ttMoveShift       = ttGenerationShift + ttGenerationBits

	ttValueMask      = uint64(1)<<ttValueBits - 1
	ttDepthMask      = uint64(1)<<ttDepthBits - 1
	ttTypeMask       = uint64(1)<<ttTypeBits - 1
	ttGenerationMask = uint64(1)<<ttGenerationBits - 1
	ttMoveMask       = uint64(1)<<ttMoveBits - 1
)

// TtEntrySize is the size in bytes of one TtEntry (two 64-bit words).
const TtEntrySize = 16

// TtEntry is one slot of a Bucket. It is lock-less: key does not hold the
// true Zobrist key but key XOR data. A reader recovers the true key by
// XORing the stored key back with the stored data; under a torn read
// (another goroutine writing the same slot concurrently without a mutex)
// the recovered key will, with overwhelming probability, fail to match the
// probe key instead of silently handing out a mismatched move/value pair.
//
// data packs, from the low bit up: value (16 bits, search value or cached
// static eval, mate-distance adjusted), depth (12 bits), bound type
// (2 bits), generation (8 bits), move identity (26 bits, of which only the
// low 16 are ever non-zero - see Move.MoveOf).
type TtEntry struct {
	key  uint64
	data uint64
}

func (e *TtEntry) empty() bool {
	return e.key == 0 && e.data == 0
}

// matches reports whether this slot currently holds trueKey's entry.
func (e *TtEntry) matches(trueKey position.Key) bool {
	return !e.empty() && e.key^e.data == uint64(trueKey)
}

// Move returns the move identity (no sort value) stored for this entry.
func (e *TtEntry) Move() Move {
	return Move((e.data >> ttMoveShift) & ttMoveMask)
}

// Generation returns the search generation this entry was last written in.
func (e *TtEntry) Generation() uint8 {
	return uint8((e.data >> ttGenerationShift) & ttGenerationMask)
}

// Type returns the bound type (NoBound/Exact/UpperBound/LowerBound) stored.
func (e *TtEntry) Type() ValueType {
	return ValueType((e.data >> ttTypeShift) & ttTypeMask)
}

// Depth returns the search depth the stored value was computed at.
func (e *TtEntry) Depth() int {
	return int((e.data >> ttDepthShift) & ttDepthMask)
}

// Value returns the raw, mate-distance-adjusted value stored for this
// entry. Callers at a different ply must re-adjust it for their distance
// to root before using it (see valueFromTT in the search package).
func (e *TtEntry) Value() Value {
	return Value(int16(uint16((e.data >> ttValueShift) & ttValueMask)))
}

// set overwrites the slot with a new entry for trueKey.
func (e *TtEntry) set(trueKey position.Key, move Move, generation uint8, vtype ValueType, depth int, value Value) {
	data := (uint64(move.MoveOf())&ttMoveMask)<<ttMoveShift |
		(uint64(generation)&ttGenerationMask)<<ttGenerationShift |
		(uint64(vtype)&ttTypeMask)<<ttTypeShift |
		(uint64(depth)&ttDepthMask)<<ttDepthShift |
		(uint64(uint16(int16(value)))&ttValueMask)<<ttValueShift
	e.data = data
	e.key = uint64(trueKey) ^ data
}
