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
	humanize "github.com/dustin/go-humanize"
	"github.com/shenwei356/casmap"
)

// reportDiagnostics logs the end-of-stream summary exactly once, per
// spec.md §4.5: record pairs processed, number classified, and the ratio.
func reportDiagnostics(diag casmap.Diagnostics) {
	log.Infof("processed %s record pairs, classified %s (%.4f)",
		humanize.Comma(int64(diag.Processed)), humanize.Comma(int64(diag.Classified)), diag.Ratio())
}

func logAmbiguous(a *casmap.AmbiguousMatch) {
	log.Warningf("ambiguous match among constructs %v", a.ConstructIDs)
}
