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

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

// make tests run in the project's root directory.
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
}

func TestSetupDefaults(t *testing.T) {
	initialized = false
	ConfFile = "./does-not-exist.toml"
	Setup()

	assert.Equal(t, 3, Settings.Time.MinDepth)
	assert.Equal(t, 35, Settings.Time.MovesToGoDefault)
	assert.True(t, Settings.Search.UseTT)
	assert.Equal(t, 128, Settings.Search.TTSize)
	assert.False(t, Settings.Eval.UsePawnCache)
}

func TestSetupIsIdempotent(t *testing.T) {
	initialized = false
	ConfFile = "./does-not-exist.toml"
	Setup()
	Settings.Search.TTSize = 7
	Setup()
	assert.Equal(t, 7, Settings.Search.TTSize, "a second Setup call must not reload and clobber settings")
}

func TestSetupParsesJSON(t *testing.T) {
	initialized = false
	dir := t.TempDir()
	confPath := path.Join(dir, "config.json")
	err := os.WriteFile(confPath, []byte(`{"Search":{"TTSize":256}}`), 0o644)
	assert.NoError(t, err)
	ConfFile = confPath
	Setup()
	assert.Equal(t, 256, Settings.Search.TTSize)
}

func TestString(t *testing.T) {
	initialized = false
	ConfFile = "./does-not-exist.toml"
	Setup()
	s := Settings.String()
	assert.Contains(t, s, "Search Config:")
	assert.Contains(t, s, "Eval Config:")
	assert.Contains(t, s, "Time Config:")
}
