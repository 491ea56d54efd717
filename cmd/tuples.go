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
	"strings"

	"github.com/shenwei356/casmap"
	"github.com/spf13/cobra"
)

// tuplesCmd classifies read pairs by ordered spacer tuple, independent of
// constants. Only supported for 4-plex and 6-plex libraries.
var tuplesCmd = &cobra.Command{
	Use:   "tuples",
	Short: "classify read pairs by ordered spacer tuple",
	Long: `tuples recovers each construct's ordered spacer tuple from a read
pair and matches it against the library, without relying on constants.
Supported only for 4-plex and 6-plex libraries.
`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)

		r1File := getFlagString(cmd, "read1")
		r2File := getFlagString(cmd, "read2")
		spacerFile := getFlagString(cmd, "spacers")
		constantFile := getFlagString(cmd, "constants")
		cacheFile := getFlagString(cmd, "cache")
		outFile := getFlagString(cmd, "out-file")

		checkFiles(r1File, r2File)
		if cacheFile == "" {
			checkFiles(spacerFile, constantFile)
		} else {
			checkFiles(cacheFile)
		}

		lib := prepareLibrary(opt, spacerFile, constantFile, cacheFile)
		idx, err := casmap.NewTupleIndex(lib)
		checkError(err)

		pairs, err := casmap.OpenPairStream(r1File, r2File)
		checkError(err)

		counts, diag, err := casmap.ClassifyTuples(pairs, idx)
		checkError(err)

		outfh, gw, w, err := outStream(outFile, strings.HasSuffix(strings.ToLower(outFile), ".gz"))
		checkError(err)
		defer func() {
			outfh.Flush()
			if gw != nil {
				gw.Close()
			}
			w.Close()
		}()

		checkError(counts.WriteTSV(outfh))

		reportDiagnostics(diag)
	},
}

func init() {
	RootCmd.AddCommand(tuplesCmd)

	tuplesCmd.Flags().StringP("read1", "i", "", "R1 FASTQ file")
	tuplesCmd.Flags().StringP("read2", "I", "", "R2 FASTQ file")
	tuplesCmd.Flags().StringP("spacers", "s", "", "spacer table TSV")
	tuplesCmd.Flags().StringP("constants", "c", "", "constant table TSV")
	tuplesCmd.Flags().StringP("cache", "x", "", "prepared library cache, skips -s/-c")
	tuplesCmd.Flags().StringP("out-file", "o", "-", "output TSV file (\"-\" for stdout)")
}
