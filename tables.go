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

package casmap

import (
	"strconv"
	"strings"

	"github.com/shenwei356/breader"
)

// LoadSpacerTable parses a no-header spacer TSV (sequence, construct_id,
// variant_id) with github.com/shenwei356/breader, the same chunked-parseFunc
// idiom used elsewhere in this codebase for tabular ingest.
func LoadSpacerTable(file string) ([]Spacer, error) {
	parseFunc := func(line string) (interface{}, bool, error) {
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			return nil, false, nil
		}
		items := strings.Split(line, "\t")
		if len(items) < 3 {
			return nil, false, configErrorf("malformed spacer row: %q", line)
		}
		cid, err := strconv.Atoi(items[1])
		if err != nil {
			return nil, false, configErrorf("malformed construct_id in spacer row: %q", line)
		}
		vid, err := strconv.Atoi(items[2])
		if err != nil {
			return nil, false, configErrorf("malformed variant_id in spacer row: %q", line)
		}
		return Spacer{Sequence: items[0], ConstructID: cid, VariantID: vid}, true, nil
	}

	reader, err := breader.NewBufferedReader(file, 4, 100, parseFunc)
	if err != nil {
		return nil, configErrorf("reading spacer file %s: %s", file, err)
	}

	var spacers []Spacer
	for chunk := range reader.Ch {
		if chunk.Err != nil {
			return nil, configErrorf("reading spacer file %s: %s", file, chunk.Err)
		}
		for _, data := range chunk.Data {
			spacers = append(spacers, data.(Spacer))
		}
	}
	return spacers, nil
}

// LoadConstantTable parses a no-header constant TSV (sequence, position_id).
func LoadConstantTable(file string) ([]Constant, error) {
	parseFunc := func(line string) (interface{}, bool, error) {
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			return nil, false, nil
		}
		items := strings.Split(line, "\t")
		if len(items) < 2 {
			return nil, false, configErrorf("malformed constant row: %q", line)
		}
		pid, err := strconv.Atoi(items[1])
		if err != nil {
			return nil, false, configErrorf("malformed position_id in constant row: %q", line)
		}
		return Constant{Sequence: items[0], PositionID: pid}, true, nil
	}

	reader, err := breader.NewBufferedReader(file, 4, 100, parseFunc)
	if err != nil {
		return nil, configErrorf("reading constant file %s: %s", file, err)
	}

	var constants []Constant
	for chunk := range reader.Ch {
		if chunk.Err != nil {
			return nil, configErrorf("reading constant file %s: %s", file, chunk.Err)
		}
		for _, data := range chunk.Data {
			constants = append(constants, data.(Constant))
		}
	}
	return constants, nil
}
