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

// ProbeIndex maps each construct's derived probe sequences back to construct
// ids. Built once from a Library during the prepare phase; read-only
// thereafter and safe for concurrent reads from any number of workers.
type ProbeIndex struct {
	r1Map map[string]map[int]struct{}
	r2Map map[string]map[int]struct{}
}

// NewProbeIndex builds r1Map and r2Map by inserting every construct's R1Probe
// and R2Probe. Distinct constructs may share a probe string (collisions are
// represented as sets) and are disambiguated at classification time.
func NewProbeIndex(lib *Library) *ProbeIndex {
	idx := &ProbeIndex{
		r1Map: make(map[string]map[int]struct{}),
		r2Map: make(map[string]map[int]struct{}),
	}
	for _, c := range lib.Constructs {
		addToSet(idx.r1Map, c.R1Probe, c.ConstructID)
		addToSet(idx.r2Map, c.R2Probe, c.ConstructID)
	}
	return idx
}

func addToSet(m map[string]map[int]struct{}, key string, id int) {
	set, ok := m[key]
	if !ok {
		set = make(map[int]struct{})
		m[key] = set
	}
	set[id] = struct{}{}
}

// LookupR1 returns the union of construct ids whose R1 probe occurs anywhere
// in read. Naive O(|map|*|read|) substring scan, per spec.md §4.3's explicit
// allowance; semantics (every matching probe's constructs included) must hold
// regardless of implementation strategy.
func (idx *ProbeIndex) LookupR1(read string) map[int]struct{} {
	return lookup(idx.r1Map, read)
}

// LookupR2 is symmetric to LookupR1 against r2Map.
func (idx *ProbeIndex) LookupR2(read string) map[int]struct{} {
	return lookup(idx.r2Map, read)
}

func lookup(m map[string]map[int]struct{}, read string) map[int]struct{} {
	hits := make(map[int]struct{})
	for probe, ids := range m {
		if strings.Contains(read, probe) {
			for id := range ids {
				hits[id] = struct{}{}
			}
		}
	}
	return hits
}

// ClassifyPair intersects LookupR1(r1) with LookupR2(r2). A singleton
// intersection returns that construct id; an empty or ambiguous (>=2)
// intersection returns ok=false. Ambiguity is reported via ambiguous so the
// caller can emit a diagnostic without halting processing.
func (idx *ProbeIndex) ClassifyPair(r1, r2 string) (id int, ok bool, ambiguous []int) {
	r1Hits := idx.LookupR1(r1)
	r2Hits := idx.LookupR2(r2)

	var inter []int
	for cid := range r1Hits {
		if _, ok := r2Hits[cid]; ok {
			inter = append(inter, cid)
		}
	}

	switch len(inter) {
	case 1:
		return inter[0], true, nil
	case 0:
		return 0, false, nil
	default:
		return 0, false, inter
	}
}
