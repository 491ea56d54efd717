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

// buildCmd synthesizes the full sequence of every construct as FASTA.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "synthesize construct sequences as FASTA",
	Long: `build assembles the spacer and constant tables into a library and
writes the full left-to-right sequence of every construct as FASTA, record
name "cid_<construct_id>".
`,
	Run: func(cmd *cobra.Command, args []string) {
		opt := getOptions(cmd)

		spacerFile := getFlagString(cmd, "spacers")
		constantFile := getFlagString(cmd, "constants")
		outFile := getFlagString(cmd, "out-file")

		checkFiles(spacerFile, constantFile)

		lib := prepareLibrary(opt, spacerFile, constantFile, "")

		outfh, gw, w, err := outStream(outFile, strings.HasSuffix(strings.ToLower(outFile), ".gz"))
		checkError(err)
		defer func() {
			outfh.Flush()
			if gw != nil {
				gw.Close()
			}
			w.Close()
		}()

		checkError(casmap.WriteFASTA(outfh, lib))
	},
}

func init() {
	RootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringP("spacers", "s", "", "spacer table TSV")
	buildCmd.Flags().StringP("constants", "c", "", "constant table TSV")
	buildCmd.Flags().StringP("out-file", "o", "-", "output FASTA file (\"-\" for stdout)")
}
