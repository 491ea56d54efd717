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

// SpacerIndex is a set of every spacer sequence in the library, plus the
// common spacer length, used to scan a read for spacer occurrences.
type SpacerIndex struct {
	set       map[string]struct{}
	spacerLen int
}

// NewSpacerIndex builds a SpacerIndex from the library's constructs.
func NewSpacerIndex(lib *Library) *SpacerIndex {
	set := make(map[string]struct{}, lib.SpacerCount)
	for _, c := range lib.Constructs {
		for _, sp := range c.Spacers {
			set[sp.Sequence] = struct{}{}
		}
	}
	return &SpacerIndex{set: set, spacerLen: lib.SpacerLen}
}

// NewSpacerIndexFromTable builds a SpacerIndex directly from a parsed spacer
// table, without assembling constructs. Used by the spacers command, which
// per spec.md §9 needs only the spacer set and common length, not a full
// construct library.
func NewSpacerIndexFromTable(spacers []Spacer) (*SpacerIndex, error) {
	if len(spacers) == 0 {
		return nil, configErrorf("no spacers given")
	}
	spacerLen := len(spacers[0].Sequence)
	set := make(map[string]struct{}, len(spacers))
	for _, sp := range spacers {
		if len(sp.Sequence) != spacerLen {
			return nil, configErrorf("inconsistent spacer length: expected %d, got %d (%q)", spacerLen, len(sp.Sequence), sp.Sequence)
		}
		set[sp.Sequence] = struct{}{}
	}
	return &SpacerIndex{set: set, spacerLen: spacerLen}, nil
}

// FindSpacers walks Kmers(read, spacerLen) in order and appends every k-mer
// present in the spacer set to the result, preserving discovery order and
// permitting duplicates. If cap > 0, enumeration stops after cap hits.
func (idx *SpacerIndex) FindSpacers(read string, cap int) []string {
	var hits []string
	it := Kmers(read, idx.spacerLen)
	for it.Next() {
		kmer := it.Kmer()
		if _, ok := idx.set[kmer]; ok {
			hits = append(hits, kmer)
			if cap > 0 && len(hits) >= cap {
				break
			}
		}
	}
	return hits
}

// SpacerLen returns the library's common spacer length.
func (idx *SpacerIndex) SpacerLen() int {
	return idx.spacerLen
}
