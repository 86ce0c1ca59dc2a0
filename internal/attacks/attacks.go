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

package attacks

import (
	myLogging "github.com/mathmoi/m8-sub000/internal/logging"
	"github.com/mathmoi/m8-sub000/internal/position"
	. "github.com/mathmoi/m8-sub000/internal/types"

	"github.com/op/go-logging"
)

// Attacks is a computed snapshot of every attack/defend relationship on a
// position. Recomputing it is the expensive part of static evaluation, so
// it caches the Zobrist key it was computed for; calling Compute again
// for the same position is then a cheap no-op.
type Attacks struct {
	log *logging.Logger

	// Zobrist is the position key the attacks below were computed for.
	Zobrist position.Key
	// From[color][sq]: squares attacked by the piece of that color on sq.
	From [ColorLength][SqLength]Bitboard
	// To[color][sq]: squares (occupied by a piece of that color) that attack sq.
	To [ColorLength][SqLength]Bitboard
	// All[color]: union of every square attacked by that color.
	All [ColorLength]Bitboard
	// Piece[color][pt]: union of every square attacked by that color's pieces of type pt.
	Piece [ColorLength][PtLength]Bitboard
	// Mobility[color]: count of attacked squares not occupied by the color's own pieces.
	Mobility [ColorLength]int
	// Pawns[color]: squares attacked by that color's pawns.
	Pawns [ColorLength]Bitboard
	// PawnsDouble[color]: squares attacked by two of that color's pawns at once.
	PawnsDouble [ColorLength]Bitboard
}

// NewAttacks creates a new, uncomputed instance of Attacks.
func NewAttacks() *Attacks {
	return &Attacks{
		log: myLogging.GetLog("attacks"),
	}
}

// Clear resets all fields of a without a fresh allocation, so it can be
// reused across search nodes.
func (a *Attacks) Clear() {
	a.Zobrist = 0
	for sq := Square(0); sq < SqLength; sq++ {
		a.From[White][sq] = BbZero
		a.From[Black][sq] = BbZero
		a.To[White][sq] = BbZero
		a.To[Black][sq] = BbZero
	}
	for pt := PtNone; pt < PtLength; pt++ {
		a.Piece[White][pt] = BbZero
		a.Piece[Black][pt] = BbZero
	}
	a.All[White] = BbZero
	a.All[Black] = BbZero
	a.Mobility[White] = 0
	a.Mobility[Black] = 0
	a.Pawns[White] = 0
	a.Pawns[Black] = 0
	a.PawnsDouble[White] = 0
	a.PawnsDouble[Black] = 0
}

// Compute fills a with the attack sets of p. A repeated call for the same
// position (by Zobrist key) leaves the previous result untouched.
func (a *Attacks) Compute(p *position.Position) {
	if p.ZobristKey() == a.Zobrist {
		a.log.Debugf("attacks compute: position already computed")
		return
	}
	a.Zobrist = p.ZobristKey()
	a.nonPawnAttacks(p)
	a.pawnAttacks(p)
}

// nonPawnAttacks calculates the attacks of every king, knight and slider
// for both colors.
func (a *Attacks) nonPawnAttacks(p *position.Position) {
	ptList := [5]PieceType{King, Knight, Bishop, Rook, Queen}
	var att Bitboard
	allPieces := p.OccupiedAll()

	for c := White; c <= Black; c++ {
		myPieces := p.OccupiedBb(c)
		for _, pt := range ptList {
			for pieces := p.PiecesBb(c, pt); pieces != BbZero; {
				psq := pieces.PopLsb()
				att = GetAttacksBb(pt, psq, allPieces)
				a.From[c][psq] = att
				a.Piece[c][pt] |= att
				a.All[c] |= att
				tmp := att
				for tmp != BbZero {
					toSq := tmp.PopLsb()
					a.To[c][toSq].PushSquare(psq)
				}
				a.Mobility[c] += (att &^ myPieces).PopCount()
			}
		}
	}
}

// pawnAttacks calculates the attacks of every pawn for both colors.
func (a *Attacks) pawnAttacks(p *position.Position) {
	wp := p.PiecesBb(White, Pawn)
	bp := p.PiecesBb(Black, Pawn)
	a.Pawns[White] = ShiftBitboard(wp, Northwest) | ShiftBitboard(wp, Northeast)
	a.Pawns[Black] = ShiftBitboard(bp, Southwest) | ShiftBitboard(bp, Southeast)
	a.PawnsDouble[White] = ShiftBitboard(wp, Northwest) & ShiftBitboard(wp, Northeast)
	a.PawnsDouble[Black] = ShiftBitboard(bp, Southwest) & ShiftBitboard(bp, Southeast)
}

// AttacksTo determines every square occupied by a piece of color attacking
// square, including an en-passant capturer of square if applicable.
func AttacksTo(p *position.Position, square Square, color Color) Bitboard {
	epAttacks := BbZero
	enPassantSquare := p.GetEnPassantSquare()
	if enPassantSquare != SqNone && enPassantSquare == square {
		pawnSquare := enPassantSquare.To(color.Flip().MoveDirection())
		epAttacker := pawnSquare.NeighbourFilesMask() & pawnSquare.RankOf().Bb() & p.PiecesBb(color, Pawn)
		if epAttacker != BbZero {
			epAttacks |= pawnSquare.Bb()
		}
	}

	occupiedAll := p.OccupiedAll()

	// Reverse approach: place each piece type on square and intersect its
	// attack set with where pieces of that type actually sit.
	return (GetPawnAttacks(color.Flip(), square) & p.PiecesBb(color, Pawn)) |
		(GetAttacksBb(Knight, square, occupiedAll) & p.PiecesBb(color, Knight)) |
		(GetAttacksBb(King, square, occupiedAll) & p.PiecesBb(color, King)) |
		(GetAttacksBb(Rook, square, occupiedAll) & (p.PiecesBb(color, Rook) | p.PiecesBb(color, Queen))) |
		(GetAttacksBb(Bishop, square, occupiedAll) & (p.PiecesBb(color, Bishop) | p.PiecesBb(color, Queen))) |
		epAttacks
}

// RevealedAttacks returns the slider attacks of color onto square once a
// piece has been lifted out of occupied - used to find discovered
// attacks/checks as a blocking piece moves away.
func RevealedAttacks(p *position.Position, square Square, occupied Bitboard, color Color) Bitboard {
	return (GetAttacksBb(Rook, square, occupied) & (p.PiecesBb(color, Rook) | p.PiecesBb(color, Queen)) & occupied) |
		(GetAttacksBb(Bishop, square, occupied) & (p.PiecesBb(color, Bishop) | p.PiecesBb(color, Queen)) & occupied)
}
