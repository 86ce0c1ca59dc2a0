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

// Package logging wraps "github.com/op/go-logging" so every other package
// can get a preconfigured *logging.Logger in one line instead of wiring up
// backends and formatters itself.
package logging

import (
	"log"
	"os"

	golog "github.com/op/go-logging"

	"github.com/mathmoi/m8-sub000/internal/config"
)

var (
	standardFormat = golog.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-10.10s}:%{shortfile:-16.16s} %{level:-7.7s}:  %{message}`)
	searchFormat = golog.MustStringFormatter(
		`%{time:15:04:05.000} %{level:-7.7s}: %{message}`)
	uciFormat = golog.MustStringFormatter(`%{time:15:04:05.000} UCI %{message}`)
)

var (
	standardLog = golog.MustGetLogger("engine")
	searchLog   = golog.MustGetLogger("search")
	uciLog      = golog.MustGetLogger("uci")
)

// GetLog returns the process-wide standard logger ("engine"), backed by
// stdout. The pkg argument is not used: every caller gets the same logger.
func GetLog(pkg string) *golog.Logger {
	backend := golog.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := golog.NewBackendFormatter(backend, standardFormat)
	leveled := golog.AddModuleLevel(formatted)
	leveled.SetLevel(golog.Level(config.Settings.Log.Level), "")
	standardLog.SetBackend(leveled)
	return standardLog
}

// GetSearchLog returns the logger used for iteration/PV search traces. In
// addition to stdout it appends to the file search.log under
// config.Settings.Log.Dir when that directory is usable; the file is not
// rotated.
func GetSearchLog() *golog.Logger {
	backend1 := golog.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted1 := golog.NewBackendFormatter(backend1, searchFormat)
	leveled1 := golog.AddModuleLevel(formatted1)
	leveled1.SetLevel(golog.Level(config.Settings.Log.SearchLevel), "")

	if config.Settings.Log.Dir == "" {
		searchLog.SetBackend(leveled1)
		return searchLog
	}

	if err := os.MkdirAll(config.Settings.Log.Dir, 0o755); err != nil {
		searchLog.SetBackend(leveled1)
		return searchLog
	}
	f, err := os.OpenFile(config.Settings.Log.Dir+"/search.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		searchLog.SetBackend(leveled1)
		return searchLog
	}
	backend2 := golog.NewLogBackend(f, "", log.Lmsgprefix)
	formatted2 := golog.NewBackendFormatter(backend2, searchFormat)
	leveled2 := golog.AddModuleLevel(formatted2)
	leveled2.SetLevel(golog.Level(config.Settings.Log.SearchLevel), "")
	searchLog.SetBackend(golog.SetBackend(leveled1, leveled2))
	return searchLog
}

// GetUciLog returns the logger used to trace raw UCI protocol traffic.
func GetUciLog() *golog.Logger {
	backend := golog.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := golog.NewBackendFormatter(backend, uciFormat)
	leveled := golog.AddModuleLevel(formatted)
	leveled.SetLevel(golog.DEBUG, "")
	uciLog.SetBackend(leveled)
	return uciLog
}
