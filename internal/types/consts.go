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

// Package types contains the board-representation primitives (colors, piece
// types, squares, bitboards, moves and values) shared by every other package
// in the engine. Nothing in here depends on position, movegen or search.
package types

const (
	// SqLength is the number of squares on a board.
	SqLength = 64

	// MaxDepth is the largest search depth/ply distance the engine supports;
	// it bounds mate-distance scoring and PV/killer table sizes.
	MaxDepth = 128

	// MaxMoves bounds the number of pseudo-legal moves generated in any one
	// position (safely above the true maximum, which is in the low hundreds).
	MaxMoves = 512

	// GamePhaseMax is the maximum game phase value: the sum of
	// PieceType.GamePhaseValue() over a full set of officers.
	GamePhaseMax = 24

	KB uint64 = 1024
	MB uint64 = KB * KB
	GB uint64 = KB * MB
)
