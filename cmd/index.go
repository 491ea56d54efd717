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
	"path/filepath"

	humanize "github.com/dustin/go-humanize"
	gzip "github.com/klauspost/pgzip"
	"github.com/shenwei356/casmap/db"
	"github.com/spf13/cobra"
)

// indexCmd prepares a spacer/constant table pair once and caches the
// resulting library to a binary file, so later runs can pass -x instead of
// re-parsing and re-deriving probes from TSV every time.
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "build and cache a prepared construct library",
	Long: `index parses a spacer table and a constant table, assembles the
construct library, and writes it to a binary cache file that the
constructs/tuples/describe commands can load directly with -x.
`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)

		spacerFile := getFlagString(cmd, "spacers")
		constantFile := getFlagString(cmd, "constants")
		outFile := getFlagString(cmd, "out-file")

		checkFiles(spacerFile, constantFile)

		lib := prepareLibrary(opt, spacerFile, constantFile, "")

		checkError(os.MkdirAll(filepath.Dir(outFile), 0o755))
		f, err := os.Create(outFile)
		checkError(err)
		defer f.Close()

		gw := gzip.NewWriter(f)
		checkError(casmapdb.Write(gw, lib))
		checkError(gw.Close())

		if opt.Verbose {
			log.Infof("wrote cache with %s constructs to %s", humanize.Comma(int64(len(lib.Constructs))), outFile)
		}
	},
}

func init() {
	RootCmd.AddCommand(indexCmd)

	indexCmd.Flags().StringP("spacers", "s", "", "spacer table TSV")
	indexCmd.Flags().StringP("constants", "c", "", "constant table TSV")
	indexCmd.Flags().StringP("out-file", "o", defaultCacheFile(), "output cache file")
}
