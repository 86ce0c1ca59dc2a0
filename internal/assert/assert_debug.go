//go:build debug

//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package assert

import "fmt"

// DEBUG is true in a build tagged "debug"; Assert then actually panics.
const DEBUG = true

// Assert panics with msg (formatted like fmt.Sprintf) if test is false.
func Assert(test bool, msg string, a ...interface{}) {
	if !test {
		panic(fmt.Sprintf(msg, a...))
	}
}
