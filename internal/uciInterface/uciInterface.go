//
// FrankyGo - UCI chess engine in GO for learning purposes
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

// Package uciInterface breaks the import cycle between internal/search and
// internal/uci: search needs to push progress back to whatever is driving
// it, and uci needs to drive search, so neither package can import the
// other directly. UciDriver is the narrow surface search actually calls;
// internal/uci.UciHandler implements it.
package uciInterface

import (
	"time"

	"github.com/mathmoi/m8-sub000/internal/moveslice"
	. "github.com/mathmoi/m8-sub000/internal/types"
)

// UciDriver is implemented by whatever is driving a Search and wants to
// receive its progress and results in UCI-reportable form.
type UciDriver interface {
	SendReadyOk()
	SendInfoString(info string)
	SendIterationEndInfo(depth int, seldepth int, value Value, nodes uint64, nps uint64, time time.Duration, pv moveslice.MoveSlice)
	SendAspirationResearchInfo(depth int, seldepth int, value Value, bound string, nodes uint64, nps uint64, time time.Duration, pv moveslice.MoveSlice)
	SendCurrentRootMove(currMove Move, moveNumber int)
	SendSearchUpdate(depth int, seldepth int, nodes uint64, nps uint64, time time.Duration, hashfull int)
	SendCurrentLine(moveList moveslice.MoveSlice)
	SendResult(bestMove Move, ponderMove Move)
}
