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

// describeCmd emits a per-read-pair breakdown of constants and spacers found.
var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "describe constants and spacers found in each read pair",
	Long: `describe scans each mate for up to 3 constants and up to 3 spacers
and writes one annotated TSV row per record pair, for manual inspection of
reads that the constructs/tuples commands fail to classify. Supported only
for 4-plex and 6-plex libraries.
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
		if lib.Plexity != 4 && lib.Plexity != 6 {
			checkError(&casmap.UnsupportedOperationError{Plexity: lib.Plexity})
		}
		spacerIdx := casmap.NewSpacerIndex(lib)
		constantIdx := casmap.NewConstantIndex(lib)

		pairs, err := casmap.OpenPairStream(r1File, r2File)
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

		diag, err := casmap.Describe(lib.Plexity, pairs, spacerIdx, constantIdx, outfh)
		checkError(err)

		if opt.Verbose {
			log.Infof("described %d record pairs", diag.Processed)
		}
	},
}

func init() {
	RootCmd.AddCommand(describeCmd)

	describeCmd.Flags().StringP("read1", "i", "", "R1 FASTQ file")
	describeCmd.Flags().StringP("read2", "I", "", "R2 FASTQ file")
	describeCmd.Flags().StringP("spacers", "s", "", "spacer table TSV")
	describeCmd.Flags().StringP("constants", "c", "", "constant table TSV")
	describeCmd.Flags().StringP("cache", "x", "", "prepared library cache, skips -s/-c")
	describeCmd.Flags().StringP("out-file", "o", "-", "output TSV file (\"-\" for stdout)")
}
