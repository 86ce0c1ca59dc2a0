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

var (
	// pseudoAttacks[pt][sq] holds the attack set of a King or Knight placed
	// on sq on an otherwise empty board. Indexed by PieceType for Queen too
	// (Bishop|Rook combined) to serve GetPseudoAttacks, but Queen/Bishop/Rook
	// attacks depend on occupancy in practice and go through the magic
	// tables instead.
	pseudoAttacks [PtLength][SqLength]Bitboard

	// pawnAttacks[color][sq] holds the squares a pawn of color attacks from sq.
	pawnAttacks [ColorLength][SqLength]Bitboard

	rookTable    []Bitboard
	rookMagics   [SqLength]Magic
	bishopTable  []Bitboard
	bishopMagics [SqLength]Magic

	// rays[d][sq] is the full-length ray from sq in direction d on an
	// empty board, stopping at the edge.
	rays [8][SqLength]Bitboard

	// between[from][to] holds the squares strictly between from and to
	// when they share a rank, file or diagonal; BbZero otherwise.
	between [SqLength][SqLength]Bitboard
)

var rayDirections = [8]Direction{North, East, South, West, Northeast, Southeast, Southwest, Northwest}

func init() {
	pseudoAttacksPreCompute()
	initMagicBitboards()
	raysPreCompute()
	betweenPreCompute()
}

// pseudoAttacksPreCompute fills pseudoAttacks for King/Knight and
// pawnAttacks for both colors, using unit "step" offsets that are
// rejected when they would wrap around a board edge.
func pseudoAttacksPreCompute() {
	kingSteps := []Direction{North, Northeast, East, Southeast, South, Southwest, West, Northwest}
	knightSteps := []Direction{
		North + North + East, North + North + West,
		South + South + East, South + South + West,
		East + East + North, East + East + South,
		West + West + North, West + West + South,
	}
	pawnSteps := [ColorLength][]Direction{
		White: {Northeast, Northwest},
		Black: {Southeast, Southwest},
	}

	for sq := SqA1; sq <= SqH8; sq++ {
		for _, d := range kingSteps {
			to := sq.To(d)
			if to.IsValid() && SquareDistance(sq, to) == 1 {
				pseudoAttacks[King][sq].PushSquare(to)
			}
		}
		for _, d := range knightSteps {
			to := sq.To(d)
			if to.IsValid() && SquareDistance(sq, to) == 2 {
				pseudoAttacks[Knight][sq].PushSquare(to)
			}
		}
		for c := White; c <= Black; c++ {
			for _, d := range pawnSteps[c] {
				to := sq.To(d)
				if to.IsValid() && SquareDistance(sq, to) == 1 {
					pawnAttacks[c][sq].PushSquare(to)
				}
			}
		}
	}
}

func initMagicBitboards() {
	rookDirections := [4]Direction{North, East, South, West}
	bishopDirections := [4]Direction{Northeast, Southeast, Southwest, Northwest}

	rookTable = make([]Bitboard, 0x19000)
	bishopTable = make([]Bitboard, 0x1480)

	initMagics(&rookTable, &rookMagics, &rookDirections)
	initMagics(&bishopTable, &bishopMagics, &bishopDirections)
}

// raysPreCompute derives the 8 ray tables from the rook/bishop magic
// tables evaluated on an empty board.
func raysPreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		m := &rookMagics[sq]
		rookRays := m.Attacks[m.index(BbZero)]
		mb := &bishopMagics[sq]
		bishopRays := mb.Attacks[mb.index(BbZero)]

		for _, d := range []Direction{North, East, South, West} {
			rays[dirIndex(d)][sq] = rayInDirection(sq, d, rookRays)
		}
		for _, d := range []Direction{Northeast, Southeast, Southwest, Northwest} {
			rays[dirIndex(d)][sq] = rayInDirection(sq, d, bishopRays)
		}
	}
}

// rayInDirection isolates the subset of an attack bitboard that lies in a
// single direction from sq, by walking that direction until the board
// edge and masking.
func rayInDirection(sq Square, d Direction, full Bitboard) Bitboard {
	var ray Bitboard
	s := sq
	for {
		next := s.To(d)
		if !next.IsValid() || SquareDistance(s, next) != 1 {
			break
		}
		s = next
		ray.PushSquare(s)
	}
	return ray & full
}

func dirIndex(d Direction) int {
	for i, rd := range rayDirections {
		if rd == d {
			return i
		}
	}
	panic("types: not a ray direction")
}

// betweenPreCompute fills between[from][to] for every aligned pair of
// squares using the ray tables: the ray from "from" through "to", minus
// the ray from "to" onward in the same direction, minus "to" itself.
func betweenPreCompute() {
	for from := SqA1; from <= SqH8; from++ {
		for _, d := range rayDirections {
			idx := dirIndex(d)
			ray := rays[idx][from]
			tmp := ray
			for tmp != BbZero {
				to := tmp.PopLsb()
				between[from][to] = ray &^ rays[idx][to] &^ to.Bb()
			}
		}
	}
}

// GetAttacksBb returns the attack bitboard of a piece of type pt (not
// Pawn) standing on sq, given the full board occupancy. Sliders consult
// the magic tables; King/Knight ignore occupied and use the pseudo-attack
// tables.
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		m := &bishopMagics[sq]
		return m.Attacks[m.index(occupied)]
	case Rook:
		m := &rookMagics[sq]
		return m.Attacks[m.index(occupied)]
	case Queen:
		mb := &bishopMagics[sq]
		mr := &rookMagics[sq]
		return mb.Attacks[mb.index(occupied)] | mr.Attacks[mr.index(occupied)]
	default:
		return pseudoAttacks[pt][sq]
	}
}

// GetPseudoAttacks returns the attack bitboard of a non-sliding piece (or
// a slider's attack set on an empty board) on sq.
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	if pt == Bishop || pt == Rook || pt == Queen {
		return GetAttacksBb(pt, sq, BbZero)
	}
	return pseudoAttacks[pt][sq]
}

// GetPawnAttacks returns the squares a pawn of color c on sq attacks.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// Intermediate returns the squares strictly between from and to if they
// are aligned on a rank, file or diagonal; BbZero otherwise.
func Intermediate(from, to Square) Bitboard {
	return between[from][to]
}

// Aligned reports whether sq1, sq2 and sq3 lie on a common rank, file or
// diagonal - used for pin detection.
func Aligned(sq1, sq2, sq3 Square) bool {
	return (Intermediate(sq1, sq2)|sq2.Bb())&sq3.Bb() != BbZero ||
		(Intermediate(sq1, sq3)|sq3.Bb())&sq2.Bb() != BbZero ||
		(Intermediate(sq2, sq3)|sq3.Bb())&sq1.Bb() != BbZero
}
