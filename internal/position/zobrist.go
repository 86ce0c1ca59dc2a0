/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package position

import (
	. "github.com/mathmoi/m8-sub000/internal/types"
)

// zobristSeed is a fixed seed so the zobrist tables (and therefore every
// key derived from them) are identical across runs and processes - a
// requirement for reproducible search and for comparing hash keys between
// independently started engine instances.
const zobristSeed uint64 = 5489

// zobristKeys packs every random 64-bit key a position's hash is built
// from: one per (piece, square), one per en-passant file, one for the
// side to move, and one per the 16 possible castling-rights patterns.
type zobristKeys struct {
	pieces         [PieceLength][SqLength]Key
	enPassantFile  [8]Key
	nextPlayer     Key
	castlingRights [CastlingLength]Key
}

var zobristBase zobristKeys

// initZobrist fills zobristBase with deterministic pseudo-random keys.
// Called once from this package's init().
func initZobrist() {
	rand := NewRandom(zobristSeed)

	for pc := WhitePawn; pc < PieceLength; pc++ {
		for sq := SqA1; sq <= SqH8; sq++ {
			zobristBase.pieces[pc][sq] = Key(rand.Rand64())
		}
	}
	for f := FileA; f <= FileH; f++ {
		zobristBase.enPassantFile[f] = Key(rand.Rand64())
	}
	zobristBase.nextPlayer = Key(rand.Rand64())
	for cr := CastlingRights(0); cr < CastlingLength; cr++ {
		zobristBase.castlingRights[cr] = Key(rand.Rand64())
	}
}
