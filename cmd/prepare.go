// Copyright © 2018-2020 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"os"

	"github.com/dustin/go-humanize"
	gzip "github.com/klauspost/pgzip"
	"github.com/shenwei356/casmap"
	"github.com/shenwei356/casmap/db"
)

// prepareLibrary loads the spacer/constant TSVs (or, if cacheFile is
// non-empty, a previously built binary cache) and assembles a *casmap.Library.
// Errors here are fatal, per spec.md §7's prepare-phase policy.
func prepareLibrary(opt *Options, spacerFile, constantFile, cacheFile string) *casmap.Library {
	var spacers []casmap.Spacer
	var constants []casmap.Constant
	var err error

	if cacheFile != "" {
		if opt.Verbose {
			log.Infof("loading prepared library from cache: %s", cacheFile)
		}
		f, err2 := os.Open(cacheFile)
		checkError(err2)
		defer f.Close()
		gr, err2 := gzip.NewReader(f)
		checkError(err2)
		defer gr.Close()
		spacers, constants, err = casmapdb.Read(gr)
		checkError(err)
	} else {
		if opt.Verbose {
			log.Info("loading spacers and constants")
		}
		spacers, err = casmap.LoadSpacerTable(spacerFile)
		checkError(err)
		constants, err = casmap.LoadConstantTable(constantFile)
		checkError(err)
		if opt.Verbose {
			log.Infof("loaded %s spacers and %s constants", humanize.Comma(int64(len(spacers))), humanize.Comma(int64(len(constants))))
		}
	}

	lib, err := casmap.BuildLibrary(spacers, constants)
	checkError(err)

	if opt.Verbose {
		log.Infof("built %s constructs (%d-plex)", humanize.Comma(int64(len(lib.Constructs))), lib.Plexity)
	}
	return lib
}
