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

package types

import (
	"fmt"
	"strings"
)

// Move packs a chess move and the move generator's sort key into a single
// 32-bit value:
//
//	bits 0-5    to square
//	bits 6-11   from square
//	bits 12-13  promotion piece type, biased so Knight..Queen fits 2 bits
//	bits 14-15  move type (Normal/Promotion/EnPassant/Castling)
//	bits 16-31  move ordering value, biased by ValueNA
//
// MoveNone (0) is the distinguished "no move" value.
type Move uint32

const (
	MoveNone Move = 0

	moveFromShift     uint = 6
	movePromTypeShift uint = 12
	moveTypeShift     uint = 14
	moveValueShift    uint = 16

	moveSquareMask   Move = 0x3F
	moveToMask            = moveSquareMask
	moveFromMask     Move = moveSquareMask << moveFromShift
	movePromTypeMask Move = 3 << movePromTypeShift
	moveTypeMask     Move = 3 << moveTypeShift
	moveOfMask       Move = 0xFFFF
	moveValueMask    Move = 0xFFFF << moveValueShift
)

// MoveType distinguishes the four effect classes the move generator and
// board care about. The move generator always knows which one it is
// building (a pawn step onto the empty en-passant square, a king move two
// files over, a move ending on the back rank), so it is recorded directly
// in the move rather than re-derived from board state.
type MoveType uint8

const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling

	moveTypeLength
)

var moveTypeToString = [moveTypeLength]string{"n", "p", "e", "c"}

// String renders a one-letter move type tag (used in debug output).
func (t MoveType) String() string {
	return moveTypeToString[t]
}

// IsValid reports whether t is one of the four known move types.
func (t MoveType) IsValid() bool {
	return t < moveTypeLength
}

// CreateMove packs a move with no explicit sort value (ValueNA).
func CreateMove(from, to Square, t MoveType, promType PieceType) Move {
	if promType < Knight {
		promType = Knight
	}
	return Move(to) |
		Move(from)<<moveFromShift |
		Move(promType-Knight)<<movePromTypeShift |
		Move(t)<<moveTypeShift
}

// CreateMoveValue packs a move together with a move-ordering sort value.
func CreateMoveValue(from, to Square, t MoveType, promType PieceType, value Value) Move {
	if promType < Knight {
		promType = Knight
	}
	return Move(value-ValueNA)<<moveValueShift |
		Move(to) |
		Move(from)<<moveFromShift |
		Move(promType-Knight)<<movePromTypeShift |
		Move(t)<<moveTypeShift
}

func (m Move) To() Square   { return Square(m & moveToMask) }
func (m Move) From() Square { return Square((m & moveFromMask) >> moveFromShift) }

// MoveType returns the move's effect class.
func (m Move) MoveType() MoveType {
	return MoveType((m & moveTypeMask) >> moveTypeShift)
}

// PromotionType returns the piece type to promote to; meaningless unless
// MoveType() == Promotion.
func (m Move) PromotionType() PieceType {
	return PieceType((m&movePromTypeMask)>>movePromTypeShift) + Knight
}

// MoveOf returns m with its sort value stripped, so two moves that differ
// only in ordering value compare equal.
func (m Move) MoveOf() Move {
	return m & moveOfMask
}

// ValueOf returns the move's sort value, or ValueNA if none was set.
func (m Move) ValueOf() Value {
	return Value((m&moveValueMask)>>moveValueShift) + ValueNA
}

// SetValue encodes v as m's sort value and returns the updated move.
// MoveNone never carries a value.
func (m *Move) SetValue(v Value) Move {
	if *m == MoveNone {
		return *m
	}
	*m = *m&moveOfMask | Move(v-ValueNA)<<moveValueShift
	return *m
}

// IsCastle reports whether m is a castling move.
func (m Move) IsCastle() bool {
	return m.MoveType() == Castling
}

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.MoveType() == Promotion
}

// IsValid reports whether m carries valid squares, promotion type, move
// type and (if set) sort value. MoveNone is never valid in this sense.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.PromotionType().IsValid() &&
		m.MoveType().IsValid() &&
		(m.ValueOf() == ValueNA || m.ValueOf().IsValid())
}

// String renders m for debug/log output: UCI move plus type/promotion/value.
func (m Move) String() string {
	if m == MoveNone {
		return "Move: { MoveNone }"
	}
	return fmt.Sprintf("Move: { %-5s  type:%1s  prom:%1s  value:%-6d  (%d) }",
		m.StringUci(), m.MoveType().String(), m.PromotionType().Char(), m.ValueOf(), m)
}

// StringUci renders m the way the UCI protocol expects a move token.
func (m Move) StringUci() string {
	if m == MoveNone {
		return "NoMove"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.MoveType() == Promotion {
		b.WriteString(m.PromotionType().Char())
	}
	return b.String()
}

// StringBits renders every packed field of m, for low-level debugging.
func (m Move) StringBits() string {
	return fmt.Sprintf(
		"Move { From[%-0.6b](%s) To[%-0.6b](%s) Prom[%-0.2b](%s) tType[%-0.2b](%s) value[%-0.16b](%d) (%d)}",
		m.From(), m.From().String(),
		m.To(), m.To().String(),
		m.PromotionType(), m.PromotionType().Char(),
		m.MoveType(), m.MoveType().String(),
		m.ValueOf(), m.ValueOf(),
		m)
}
