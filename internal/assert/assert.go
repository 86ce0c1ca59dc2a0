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

//go:build !debug

// Package assert lets internal invariants be checked cheaply in development
// builds without costing anything in a release build. Call sites should
// always gate the call with "if assert.DEBUG" too: DEBUG is a const, so the
// Go compiler eliminates the whole guarded block when it is false, but the
// arguments to Assert would otherwise still be evaluated (e.g. a .String()
// call) even though Assert itself is a no-op.
//
//	if assert.DEBUG {
//		assert.Assert(v.IsValid(), "invalid value %s", v.String())
//	}
package assert

// DEBUG gates whether Assert does anything. It is false in this build;
// build with -tags debug to flip it (see assert_debug.go).
const DEBUG = false

// Assert panics with msg (formatted like fmt.Sprintf) if test is false.
// A no-op when DEBUG is false.
func Assert(test bool, msg string, a ...interface{}) {}
