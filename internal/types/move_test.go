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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateMove(t *testing.T) {
	tests := []struct {
		name     string
		from, to Square
		t        MoveType
		promType PieceType
		want     Move
	}{
		{"e2e4", SqE2, SqE4, Normal, PtNone, Move(796)},
		{"e1g1 castling", SqE1, SqG1, Castling, PtNone, Move(49414)},
		{"a2a1Q", SqA2, SqA1, Promotion, Queen, Move(29184)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CreateMove(tt.from, tt.to, tt.t, tt.promType)
			assert.Equal(t, tt.want, got, "got %s, want %s", got.StringBits(), tt.want.StringBits())
		})
	}
}

func TestMoveSetValue(t *testing.T) {
	m := CreateMove(SqE2, SqE4, Normal, PtNone)
	m.SetValue(999)
	assert.Equal(t, Value(999), m.ValueOf())

	m = CreateMove(SqE2, SqE4, Promotion, Queen)
	m.SetValue(ValueMax)
	assert.Equal(t, ValueMax, m.ValueOf())
}

func TestMoveOf(t *testing.T) {
	m := CreateMoveValue(SqE2, SqE4, Normal, PtNone, Value(123))
	assert.Equal(t, CreateMove(SqE2, SqE4, Normal, PtNone), m.MoveOf())
}

func TestMoveStringUci(t *testing.T) {
	assert.Equal(t, "e2e4", CreateMove(SqE2, SqE4, Normal, PtNone).StringUci())
	assert.Equal(t, "e7e5", CreateMove(SqE7, SqE5, Normal, PtNone).StringUci())
	assert.Equal(t, "a2a1Q", CreateMove(SqA2, SqA1, Promotion, Queen).StringUci())
}

func TestMoveIsValid(t *testing.T) {
	assert.True(t, CreateMove(SqE2, SqE4, Normal, PtNone).IsValid())
	assert.False(t, MoveNone.IsValid())
}
