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

// spacersCmd reports every spacer occurrence found in either mate.
var spacersCmd = &cobra.Command{
	Use:   "spacers",
	Short: "report spacer occurrences in read pairs",
	Long: `spacers scans each mate of a read pair for any spacer in the
library and streams one TSV row per distinct spacer found per mate.
`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)

		r1File := getFlagString(cmd, "read1")
		r2File := getFlagString(cmd, "read2")
		spacerFile := getFlagString(cmd, "spacers")
		outFile := getFlagString(cmd, "out-file")

		checkFiles(r1File, r2File, spacerFile)

		if opt.Verbose {
			log.Info("loading spacers")
		}
		spacers, err := casmap.LoadSpacerTable(spacerFile)
		checkError(err)
		idx, err := casmap.NewSpacerIndexFromTable(spacers)
		checkError(err)

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

		diag, err := casmap.ReportSpacers(pairs, idx, outfh)
		checkError(err)

		if opt.Verbose {
			log.Infof("processed %d record pairs", diag.Processed)
		}
	},
}

func init() {
	RootCmd.AddCommand(spacersCmd)

	spacersCmd.Flags().StringP("read1", "i", "", "R1 FASTQ file")
	spacersCmd.Flags().StringP("read2", "I", "", "R2 FASTQ file")
	spacersCmd.Flags().StringP("spacers", "s", "", "spacer table TSV")
	spacersCmd.Flags().StringP("out-file", "o", "-", "output TSV file (\"-\" for stdout)")
}
