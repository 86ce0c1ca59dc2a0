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

import "fmt"

// Square is one of the 64 board squares, a1=0 .. h8=63, plus the
// distinguished SqNone.
type Square uint8

const (
	SqA1 Square = iota
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8
	SqNone
)

// IsValid checks sq < 64.
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file (column) of sq: index & 7.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank (row) of sq: index >> 3.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// MakeSquare builds a square from a file and a rank.
func MakeSquare(f File, r Rank) Square {
	return Square(uint8(r)<<3 | uint8(f))
}

// DiagOf returns the diagonal index (a1-h8 direction) of sq, used only
// by magic-mask precomputation.
func (sq Square) DiagOf() int {
	return int(sq.RankOf()) - int(sq.FileOf()) + 7
}

// AntiDiagOf returns the anti-diagonal index (a8-h1 direction) of sq,
// used only by magic-mask precomputation.
func (sq Square) AntiDiagOf() int {
	return int(sq.RankOf()) + int(sq.FileOf())
}

// To steps sq one unit in direction d. Caller must ensure the result
// stays on the board; To is used only where that is already guaranteed
// (e.g. en-passant capture-square derivation).
func (sq Square) To(d Direction) Square {
	return Square(int(sq) + int(d))
}

func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%s%s", sq.FileOf().String(), sq.RankOf().String())
}

// SquareFromString parses a two-character algebraic square such as "e4".
// Returns SqNone if s is not a valid square string.
func SquareFromString(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := FileFromChar(s[0])
	if f == FileNone || s[1] < '1' || s[1] > '8' {
		return SqNone
	}
	return MakeSquare(f, Rank(s[1]-'1'))
}
