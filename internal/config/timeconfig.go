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

package config

// timeConfiguration holds time-control tunables for turning UCI "go"
// limits into a search budget (target/max duration, when another
// iterative-deepening iteration may start). They are loaded and printed
// with the rest of the configuration; the search's own time control
// (setupTimeControl in internal/search) does not read them.
type timeConfiguration struct {
	MinDepth            int     // iterations below this depth always run to completion regardless of the clock
	MovesToGoDefault    int     // assumed moves remaining to the time control when the GUI doesn't send movestogo
	TargetTimeFraction   float64 // fraction of the computed slice to aim for with the root iteration
	MaxTimeFraction      float64 // hard ceiling, as a fraction of the computed slice, never to be exceeded
	MoveOverheadMs       int     // communication/IO safety margin subtracted from every budget
	BranchingFactorGrace int     // number of iterations before effective-branching-factor prediction kicks in
	MinNodeCheckInterval int     // smallest allowed node count between clock checks
	MaxNodeCheckInterval int     // largest allowed node count between clock checks
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Time.MinDepth = 3
	Settings.Time.MovesToGoDefault = 35
	Settings.Time.TargetTimeFraction = 1.0
	Settings.Time.MaxTimeFraction = 3.0
	Settings.Time.MoveOverheadMs = 30
	Settings.Time.BranchingFactorGrace = 2
	Settings.Time.MinNodeCheckInterval = 10_000
	Settings.Time.MaxNodeCheckInterval = 250_000
}
