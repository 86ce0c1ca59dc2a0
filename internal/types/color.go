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

// Color represents one of the two sides playing, White or Black.
// White is 0 and Black is 1 so pawn-direction and rank-mirroring
// arithmetic (8-16*c) works without a branch.
type Color uint8

const (
	White Color = 0
	Black Color = 1

	ColorLength = 2
)

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid checks if c is White or Black.
func (c Color) IsValid() bool {
	return c == White || c == Black
}

// MoveDirection returns +1 for White and -1 for Black, the sign pawns
// and ranks move/mirror by for this color.
func (c Color) MoveDirection() int {
	if c == White {
		return 1
	}
	return -1
}

// PromotionRankBb returns the rank a pawn of color c promotes on.
func (c Color) PromotionRankBb() Bitboard {
	if c == White {
		return Rank8.Bb()
	}
	return Rank1.Bb()
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}
