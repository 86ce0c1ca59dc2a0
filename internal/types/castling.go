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

// CastlingRights packs the four independent castling bits: White/Black
// times queen-side/king-side.
type CastlingRights uint8

const (
	CastlingNone CastlingRights = 0

	CastlingWhiteOO  CastlingRights = 1
	CastlingWhiteOOO CastlingRights = CastlingWhiteOO << 1
	CastlingWhite    CastlingRights = CastlingWhiteOO | CastlingWhiteOOO

	CastlingBlackOO  CastlingRights = CastlingWhiteOO << 2
	CastlingBlackOOO CastlingRights = CastlingBlackOO << 1
	CastlingBlack    CastlingRights = CastlingBlackOO | CastlingBlackOOO

	CastlingAny    CastlingRights = CastlingWhite | CastlingBlack
	CastlingLength CastlingRights = 16
)

// Has reports whether every bit set in rhs is also set in lhs.
func (lhs CastlingRights) Has(rhs CastlingRights) bool {
	return lhs&rhs == rhs && rhs != CastlingNone
}

// Remove clears the given castling right(s) and returns the new state.
func (lhs *CastlingRights) Remove(rhs CastlingRights) CastlingRights {
	*lhs &= ^rhs
	return *lhs
}

// Add sets the given castling right(s) and returns the new state.
func (lhs *CastlingRights) Add(rhs CastlingRights) CastlingRights {
	*lhs |= rhs
	return *lhs
}

// OOFor returns the king-side castling bit for c.
func OOFor(c Color) CastlingRights {
	if c == White {
		return CastlingWhiteOO
	}
	return CastlingBlackOO
}

// OOOFor returns the queen-side castling bit for c.
func OOOFor(c Color) CastlingRights {
	if c == White {
		return CastlingWhiteOOO
	}
	return CastlingBlackOOO
}

// ForColor returns both castling bits belonging to c.
func ForColor(c CastlingRights, color Color) CastlingRights {
	if color == White {
		return c & CastlingWhite
	}
	return c & CastlingBlack
}

// GetCastlingRights returns the castling right(s) invalidated when a piece
// moves to or from sq - the king's home square clears both rights of its
// color, a rook's home square clears the one right on that side.
func GetCastlingRights(sq Square) CastlingRights {
	switch sq {
	case SqE1:
		return CastlingWhite
	case SqA1:
		return CastlingWhiteOOO
	case SqH1:
		return CastlingWhiteOO
	case SqE8:
		return CastlingBlack
	case SqA8:
		return CastlingBlackOOO
	case SqH8:
		return CastlingBlackOO
	default:
		return CastlingNone
	}
}

var castlingStrings = [4]string{"K", "Q", "k", "q"}

// String renders the rights in FEN order: KQkq, "-" if none are set.
func (lhs CastlingRights) String() string {
	if lhs == CastlingNone {
		return "-"
	}
	s := ""
	if lhs.Has(CastlingWhiteOO) {
		s += castlingStrings[0]
	}
	if lhs.Has(CastlingWhiteOOO) {
		s += castlingStrings[1]
	}
	if lhs.Has(CastlingBlackOO) {
		s += castlingStrings[2]
	}
	if lhs.Has(CastlingBlackOOO) {
		s += castlingStrings[3]
	}
	return s
}
