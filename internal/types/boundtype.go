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

package types

// ValueType tags what a stored search value actually means: an exact
// score, or only one side of a fail-high/fail-low cutoff.
//  NoBound    ValueType = 0
//  Exact      ValueType = 1
//  UpperBound ValueType = 2 // search failed low, value never raised alpha
//  LowerBound ValueType = 3 // search failed high, a beta cutoff occurred
//  boundTypeLength int  = 4
type ValueType int8

const (
	NoBound    ValueType = 0
	Exact      ValueType = 1
	UpperBound ValueType = 2
	LowerBound ValueType = 3

	boundTypeLength int = 4
)

// IsValid checks if vt is a valid bound type.
func (vt ValueType) IsValid() bool {
	return vt >= NoBound && int(vt) < boundTypeLength
}

var boundTypeToString = [boundTypeLength]string{"NoBound", "Exact", "UpperBound", "LowerBound"}

// String returns a string representation of the bound type.
func (vt ValueType) String() string {
	return boundTypeToString[vt]
}
