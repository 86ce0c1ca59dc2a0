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
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set, one bit per board square.
type Bitboard uint64

const (
	BbZero Bitboard = 0
	BbAll  Bitboard = ^BbZero
	BbOne  Bitboard = 1
)

var (
	fileBb [8]Bitboard
	rankBb [8]Bitboard
	sqBb   [SqLength]Bitboard
)

func init() {
	var f Bitboard = 0x0101010101010101
	for i := FileA; i <= FileH; i++ {
		fileBb[i] = f << uint(i)
	}
	var r Bitboard = 0xFF
	for i := Rank1; i <= Rank8; i++ {
		rankBb[i] = r << (8 * uint(i))
	}
	for sq := SqA1; sq < SqNone; sq++ {
		sqBb[sq] = BbOne << uint(sq)
	}
}

// Bb returns the single-bit Bitboard for sq.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// SquareOf builds a Square from file and rank (alias of MakeSquare kept
// for callers that read board coordinates in f,r order).
func SquareOf(f File, r Rank) Square {
	return MakeSquare(f, r)
}

// PushSquare sets sq's bit in b.
func (b *Bitboard) PushSquare(sq Square) Bitboard {
	*b |= sq.Bb()
	return *b
}

// PopSquare clears sq's bit in b.
func (b *Bitboard) PopSquare(sq Square) Bitboard {
	*b &^= sq.Bb()
	return *b
}

// Has reports whether sq's bit is set in b.
func (b Bitboard) Has(sq Square) bool {
	return b&sqBb[sq] != 0
}

// ShiftBitboard shifts every bit of b by one square in direction d,
// clearing bits that would wrap around the board edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ fileBb[FileH]) << 1
	case West:
		return (b &^ fileBb[FileA]) >> 1
	case Northeast:
		return (b &^ fileBb[FileH]) << 9
	case Southeast:
		return (b &^ fileBb[FileH]) >> 7
	case Southwest:
		return (b &^ fileBb[FileA]) >> 9
	case Northwest:
		return (b &^ fileBb[FileA]) << 7
	}
	return b
}

// Lsb returns the least-significant set square, or SqNone if b is empty.
func (b Bitboard) Lsb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most-significant set square, or SqNone if b is empty.
func (b Bitboard) Msb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb returns and clears the least-significant set square.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b &= *b - 1
	return lsb
}

// PopCount returns the number of set bits in b.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

func (b Bitboard) String() string {
	return fmt.Sprintf("%064b", uint64(b))
}

// StringBoard renders b as an 8x8 ascii board, rank 8 first.
func (b Bitboard) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, r)) {
				os.WriteString("| X ")
			} else {
				os.WriteString("|   ")
			}
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return os.String()
}

// FileDistance returns the absolute distance in files between f1 and f2.
func FileDistance(f1, f2 File) int {
	return absInt(int(f2) - int(f1))
}

// RankDistance returns the absolute distance in ranks between r1 and r2.
func RankDistance(r1, r2 Rank) int {
	return absInt(int(r2) - int(r1))
}

// SquareDistance is the Chebyshev distance between two squares, the
// number of king moves needed to go from one to the other.
func SquareDistance(s1, s2 Square) int {
	fd := FileDistance(s1.FileOf(), s2.FileOf())
	rd := RankDistance(s1.RankOf(), s2.RankOf())
	if fd > rd {
		return fd
	}
	return rd
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
