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
	"strconv"
	"strings"
)

// Value is a centipawn evaluation, or a mate score close to +/-ValueMate.
type Value int16

const (
	ValueZero Value = 0
	ValueDraw Value = 0

	// ValueInf is larger than any real evaluation; used as +/- infinity
	// for alpha-beta window initialisation.
	ValueInf Value = 15_000

	// ValueNA marks "no value" (e.g. an empty TT slot's eval field).
	ValueNA Value = -ValueInf - 1

	// ValueMate is returned (possibly adjusted by distance) when one side
	// is checkmated.
	ValueMate Value = 10_000

	// ValueMateThreshold: any |value| above this is a mate score rather
	// than a material evaluation. MaxDepth is the widest a mate distance
	// adjustment can shift ValueMate by.
	ValueMateThreshold Value = ValueMate - MaxDepth

	// ValueMax/ValueMin bound the range of a "real" (non-NA, non-infinite)
	// value - e.g. a move's packed sort value.
	ValueMax Value = ValueMate
	ValueMin Value = -ValueMax
)

// IsValid reports whether v is within the real evaluation range, i.e. not
// ValueNA and not beyond +/-ValueMax.
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

func abs16(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// IsMateValue reports whether v encodes a forced mate rather than a
// material evaluation.
func (v Value) IsMateValue() bool {
	a := abs16(int(v))
	return a > int(ValueMateThreshold) && a <= int(ValueMate)
}

// MateIn returns the number of moves (not plies) to mate, signed from the
// perspective of the side v favours. Only meaningful when IsMateValue.
func (v Value) MateIn() int {
	plies := int(ValueMate) - abs16(int(v))
	moves := (plies + 1) / 2
	if v < 0 {
		return -moves
	}
	return moves
}

// String renders v the way a UCI "score" token would: "cp N" or "mate N".
func (v Value) String() string {
	var b strings.Builder
	switch {
	case v == ValueNA:
		b.WriteString("N/A")
	case v.IsMateValue():
		b.WriteString("mate ")
		b.WriteString(strconv.Itoa(v.MateIn()))
	default:
		b.WriteString("cp ")
		b.WriteString(strconv.Itoa(int(v)))
	}
	return b.String()
}
