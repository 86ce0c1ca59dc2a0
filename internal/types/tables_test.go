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
	"testing"

	"github.com/stretchr/testify/assert"
)

func naiveSliderAttack(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	var dirs []Direction
	if pt == Bishop {
		dirs = []Direction{Northeast, Southeast, Southwest, Northwest}
	} else {
		dirs = []Direction{North, East, South, West}
	}
	var attack Bitboard
	for _, d := range dirs {
		s := sq
		for {
			next := s.To(d)
			if !next.IsValid() || SquareDistance(s, next) != 1 {
				break
			}
			s = next
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

func TestMagicBishopMatchesNaiveRayWalk(t *testing.T) {
	occupations := []Bitboard{BbZero, SqD4.Bb() | SqF6.Bb() | SqB2.Bb(), BbAll}
	for sq := SqA1; sq <= SqH8; sq++ {
		for _, occ := range occupations {
			assert.Equal(t, naiveSliderAttack(Bishop, sq, occ), GetAttacksBb(Bishop, sq, occ), "bishop on %s, occ %d", sq, occ)
		}
	}
}

func TestMagicRookMatchesNaiveRayWalk(t *testing.T) {
	occupations := []Bitboard{BbZero, SqD4.Bb() | SqF6.Bb() | SqB2.Bb(), BbAll}
	for sq := SqA1; sq <= SqH8; sq++ {
		for _, occ := range occupations {
			assert.Equal(t, naiveSliderAttack(Rook, sq, occ), GetAttacksBb(Rook, sq, occ), "rook on %s, occ %d", sq, occ)
		}
	}
}

func TestQueenIsBishopUnionRook(t *testing.T) {
	occ := SqD4.Bb() | SqF6.Bb() | SqB2.Bb()
	for sq := SqA1; sq <= SqH8; sq++ {
		want := GetAttacksBb(Bishop, sq, occ) | GetAttacksBb(Rook, sq, occ)
		assert.Equal(t, want, GetAttacksBb(Queen, sq, occ))
	}
}

func TestKnightAttacksCorner(t *testing.T) {
	assert.Equal(t, SqB3.Bb()|SqC2.Bb(), GetPseudoAttacks(Knight, SqA1))
}

func TestKingAttacksCorner(t *testing.T) {
	assert.Equal(t, SqA2.Bb()|SqB2.Bb()|SqB1.Bb(), GetPseudoAttacks(King, SqA1))
}

func TestPawnAttacks(t *testing.T) {
	assert.Equal(t, SqD3.Bb()|SqF3.Bb(), GetPawnAttacks(White, SqE2))
	assert.Equal(t, SqD6.Bb()|SqF6.Bb(), GetPawnAttacks(Black, SqE7))
}

func TestIntermediateOnRank(t *testing.T) {
	assert.Equal(t, SqB1.Bb()|SqC1.Bb()|SqD1.Bb(), Intermediate(SqA1, SqE1))
	assert.Equal(t, BbZero, Intermediate(SqA1, SqB1))
}

func TestIntermediateUnaligned(t *testing.T) {
	assert.Equal(t, BbZero, Intermediate(SqA1, SqB3))
}

func TestIntermediateOnDiagonal(t *testing.T) {
	assert.Equal(t, SqB2.Bb()|SqC3.Bb(), Intermediate(SqA1, SqD4))
}
