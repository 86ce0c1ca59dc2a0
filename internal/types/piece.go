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

import "strings"

// Piece tags a PieceType with a Color. PieceNone is the distinguished
// empty-square value; bit 3 carries the color so ColorOf/TypeOf are both
// a shift-and-mask away.
type Piece int8

const (
	PieceNone Piece = 0

	WhitePawn   Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhiteRook   Piece = Piece(Rook)
	WhiteQueen  Piece = Piece(Queen)
	WhiteKing   Piece = Piece(King)

	BlackPawn   Piece = Piece(Pawn) | 8
	BlackKnight Piece = Piece(Knight) | 8
	BlackBishop Piece = Piece(Bishop) | 8
	BlackRook   Piece = Piece(Rook) | 8
	BlackQueen  Piece = Piece(Queen) | 8
	BlackKing   Piece = Piece(King) | 8

	PieceLength = 16
)

// MakePiece combines a color and a piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(pt) | Piece(c)<<3
}

// TypeOf returns the piece type of p.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// ColorOf returns the color of p. Undefined for PieceNone.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// IsValid reports whether p is a real, non-empty piece.
func (p Piece) IsValid() bool {
	return p != PieceNone && p.TypeOf().IsValid()
}

var pieceToChar = string("-PNBRQK--pnbrqk-")

// Char returns the FEN piece letter: uppercase for White, lowercase for Black.
func (p Piece) Char() string {
	return string(pieceToChar[p])
}

func (p Piece) String() string {
	return p.Char()
}

// PieceFromChar parses a single FEN piece letter, returning PieceNone for
// any character that is not one of "PNBRQKpnbrqk".
func PieceFromChar(s string) Piece {
	if len(s) != 1 {
		return PieceNone
	}
	idx := strings.IndexByte(pieceToChar, s[0])
	if idx <= 0 {
		return PieceNone
	}
	return Piece(idx)
}
