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

import "strings"

// tupleKeySep separates concatenated spacer sequences in a tuple map key. It
// cannot appear in a nucleotide sequence, so it never causes a false join.
const tupleKeySep = "\x1f"

// TupleIndex identifies a construct by its ordered spacer tuple, independent
// of constants. Built only for plexity 4 or 6; construction otherwise returns
// an *UnsupportedOperationError.
type TupleIndex struct {
	spacers *SpacerIndex
	plexity int
	tuples  map[string]int
}

// NewTupleIndex builds the spacer set and the tuple->construct-id map. Only
// plexity 4 and 6 libraries are supported, per spec.md §4.4.
func NewTupleIndex(lib *Library) (*TupleIndex, error) {
	if lib.Plexity != 4 && lib.Plexity != 6 {
		return nil, &UnsupportedOperationError{Plexity: lib.Plexity}
	}

	tuples := make(map[string]int, len(lib.Constructs))
	for _, c := range lib.Constructs {
		seqs := make([]string, len(c.Spacers))
		for i, sp := range c.Spacers {
			seqs[i] = sp.Sequence
		}
		tuples[strings.Join(seqs, tupleKeySep)] = c.ConstructID
	}

	return &TupleIndex{
		spacers: NewSpacerIndex(lib),
		plexity: lib.Plexity,
		tuples:  tuples,
	}, nil
}

// FindSpacers is the uncapped spacer scan used by the tuple classifier.
func (idx *TupleIndex) FindSpacers(read string) []string {
	return idx.spacers.FindSpacers(read, 0)
}

// ClassifyPairByTuple recovers the ordered spacer tuple from r1 and r2
// independently of any constants and looks it up in the tuple map. The first
// match found while scanning i ascending over s1 and, for each i, j ascending
// over s2 wins; implementations must reproduce this exact order so counts are
// deterministic, per spec.md §4.4.
func (idx *TupleIndex) ClassifyPairByTuple(r1, r2 string) (id int, ok bool) {
	s1 := idx.FindSpacers(r1)
	s2 := idx.FindSpacers(r2)

	half := idx.plexity / 2

	if len(s1) < half || len(s2) < half {
		return 0, false
	}

	for i := 0; i+half <= len(s1); i++ {
		for j := 0; j+half <= len(s2); j++ {
			seqs := make([]string, 0, idx.plexity)
			seqs = append(seqs, s1[i:i+half]...)
			seqs = append(seqs, s2[j:j+half]...)
			key := strings.Join(seqs, tupleKeySep)
			if cid, found := idx.tuples[key]; found {
				return cid, true
			}
		}
	}
	return 0, false
}
