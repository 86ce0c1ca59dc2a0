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

// PieceType is one of the six chess piece kinds, or PtNone.
type PieceType int8

const (
	PtNone PieceType = 0
	Pawn   PieceType = 1
	Knight PieceType = 2
	Bishop PieceType = 3
	Rook   PieceType = 4
	Queen  PieceType = 5
	King   PieceType = 6

	PtLength PieceType = 7
)

var pieceTypeToChar = string("-PNBRQK")
var pieceTypeToString = [PtLength]string{"NoPieceType", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// Char returns the single-letter FEN/SAN piece letter (uppercase).
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}

// Str returns the piece type's name.
func (pt PieceType) Str() string {
	return pieceTypeToString[pt]
}

// IsSliding reports whether the piece type's attacks depend on occupancy.
func (pt PieceType) IsSliding() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

// IsValid checks if pt is one of the six piece types (not PtNone).
func (pt PieceType) IsValid() bool {
	return pt > PtNone && pt < PtLength
}

// pieceTypeValue is material value in centipawns, indexed by PieceType.
var pieceTypeValue = [PtLength]Value{0, 100, 320, 330, 500, 900, 0}

// Value returns the material value of the piece type in centipawns.
func (pt PieceType) Value() Value {
	return pieceTypeValue[pt]
}

// ValueOf is an alias of Value kept for call sites that read piece type,
// move and color fields in a uniform "XOf"/"ValueOf" naming style.
func (pt PieceType) ValueOf() Value {
	return pt.Value()
}

// gamePhaseValue is the officer-weight used to estimate how far a game
// has progressed towards the endgame; pawns and the king contribute 0.
var gamePhaseValue = [PtLength]int{0, 0, 1, 1, 2, 4, 0}

// GamePhaseValue returns the phase weight of the piece type.
func (pt PieceType) GamePhaseValue() int {
	return gamePhaseValue[pt]
}
