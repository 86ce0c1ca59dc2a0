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

// Magic holds the fancy-magic bitboard data for a single square of a
// single slider piece type (bishop or rook).
//
// Taken from Stockfish / chessprogramming.org's "fancy magic bitboards".
type Magic struct {
	Mask    Bitboard
	Number  Bitboard
	Attacks []Bitboard
	Shift   uint
}

// index calculates the index into m.Attacks for a given occupancy.
func (m *Magic) index(occupied Bitboard) uint {
	occ := occupied & m.Mask
	occ *= m.Number
	return uint(occ >> m.Shift)
}

// initMagics computes, for every square, a magic multiplier that maps
// every relevant occupancy subset of the slider's movement mask to a
// unique index into a per-square slice of a shared attacks table.
//
// Taken from Stockfish.
func initMagics(table *[]Bitboard, magics *[SqLength]Magic, directions *[4]Direction) {
	// Optimal PRNG seeds to find the magics in a reasonable time, one per rank.
	seeds := [8]uint64{728, 10316, 55013, 32803, 12281, 15100, 16645, 255}

	var occupancy, reference [4096]Bitboard
	var epoch [4096]int
	var edges, b Bitboard
	cnt := 0
	size := 0

	for sq := SqA1; sq <= SqH8; sq++ {
		edges = ((Rank1.Bb() | Rank8.Bb()) &^ sq.RankOf().Bb()) | ((FileA.Bb() | FileH.Bb()) &^ sq.FileOf().Bb())

		m := &magics[sq]
		m.Mask = slidingAttack(directions, sq, BbZero) &^ edges
		m.Shift = uint(64 - m.Mask.PopCount())

		if sq == SqA1 {
			m.Attacks = *table
		} else {
			m.Attacks = magics[sq-1].Attacks[size:]
		}

		// Carry-Rippler trick: enumerate every subset of m.Mask.
		b = 0
		size = 0
		for {
			occupancy[size] = b
			reference[size] = slidingAttack(directions, sq, b)
			size++
			b = (b - m.Mask) & m.Mask
			if b == 0 {
				break
			}
		}

		rng := newPrnG(seeds[sq.RankOf()])

		for i := 0; i < size; {
			for {
				m.Number = Bitboard(rng.sparseRand())
				if Bitboard((m.Number*m.Mask)>>56).PopCount() < 6 {
					break
				}
			}

			cnt++
			for i = 0; i < size; i++ {
				idx := m.index(occupancy[i])
				if epoch[idx] < cnt {
					epoch[idx] = cnt
					m.Attacks[idx] = reference[i]
				} else if m.Attacks[idx] != reference[i] {
					break
				}
			}
		}
	}
}

// slidingAttack walks each of the four given ray directions one step at a
// time until it falls off the board or hits an occupied square. Only used
// during table construction, never on the hot path.
func slidingAttack(directions *[4]Direction, sq Square, occupied Bitboard) Bitboard {
	attack := BbZero
	for i := 0; i < 4; i++ {
		s := sq
		for {
			next := s.To(directions[i])
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

// prnG is the xorshift64star PRNG used to search for magic numbers, taken
// from Stockfish (itself crediting Sebastiano Vigna's public-domain code).
type prnG struct {
	s uint64
}

func newPrnG(seed uint64) *prnG {
	return &prnG{s: seed}
}

func (r *prnG) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * 2685821657736338717
}

// sparseRand returns values with roughly 1/8th of their bits set on
// average, which converges on a working magic number much faster than a
// uniform random 64-bit value.
func (r *prnG) sparseRand() uint64 {
	return r.rand64() & r.rand64() & r.rand64()
}
