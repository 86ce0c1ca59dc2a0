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

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"

	"github.com/mathmoi/m8-sub000/internal/config"
	"github.com/mathmoi/m8-sub000/internal/logging"
	"github.com/mathmoi/m8-sub000/internal/movegen"
	"github.com/mathmoi/m8-sub000/internal/position"
	"github.com/mathmoi/m8-sub000/internal/search"
	"github.com/mathmoi/m8-sub000/internal/testsuite"
	"github.com/mathmoi/m8-sub000/internal/uci"
	"github.com/mathmoi/m8-sub000/internal/util"
)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchlogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	logPath := flag.String("logpath", "./logs", "path where to write log files to")
	testSuite := flag.String("testsuite", "", "path to file containing EPD tests or folder containing EPD files")
	testMovetime := flag.Int("testtime", 2000, "search time for each test position in milliseconds")
	testSearchdepth := flag.Int("testdepth", 0, "search depth limit for each test position")
	perft := flag.Int("perft", 0, "starts perft on the start position with the given depth\nuse -fen to provide a different position")
	fen := flag.String("fen", position.StartFen, "fen for perft and nps test")
	nps := flag.Int("nps", 0, "starts a nodes-per-second test on the given fen for the given number of seconds")
	cpuProfile := flag.Bool("profile", false, "wraps perft/nps/testsuite runs in a CPU profile (cpu.pprof)")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.ConfFile = *configFile
	config.Setup()

	if *logPath != "" {
		config.Settings.Log.LogPath = *logPath
	}
	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*searchlogLvl]; found {
		config.SearchLogLevel = lvl
	}
	logging.GetLog()

	if *nps != 0 {
		s := search.NewSearch()
		p := position.NewPosition(*fen)
		sl := search.NewSearchLimits()
		sl.TimeControl = true
		sl.MoveTime = time.Duration(*nps) * time.Second
		s.StartSearch(*p, *sl)
		s.WaitWhileSearching()
		fmt.Println("NPS:", util.Nps(s.NodesVisited(), s.LastSearchResult().SearchTime))
		return
	}

	if *perft != 0 {
		var perftTest movegen.Perft
		for i := 1; i <= *perft; i++ {
			perftTest.StartPerft(*fen, i, true)
		}
		return
	}

	if *testSuite != "" {
		name := *testSuite
		fi, err := os.Stat(name)
		if err != nil {
			fmt.Println(err)
			return
		}
		switch mode := fi.Mode(); {
		case mode.IsDir():
			testsuite.FeatureTests(name+"/", time.Duration(*testMovetime)*time.Millisecond, *testSearchdepth)
		case mode.IsRegular():
			ts, _ := testsuite.NewTestSuite(name, time.Duration(*testMovetime)*time.Millisecond, *testSearchdepth)
			ts.RunTests()
		}
		return
	}

	u := uci.NewUciHandler()
	u.Loop()
}
