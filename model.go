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
	"fmt"
	"sort"
)

// Spacer is a variable protospacer occupying one ordinal slot of a construct.
// Immutable once parsed.
type Spacer struct {
	Sequence    string
	ConstructID int
	VariantID   int
}

// Constant is a direct-repeat sequence occupying a fixed slot shared by every
// construct in the library. Immutable once parsed.
type Constant struct {
	Sequence   string
	PositionID int
}

// Construct is one fully assembled multiplexed cassette: P alternating
// constant/spacer pairs, plus its two derived probe sequences.
type Construct struct {
	ConstructID int
	Spacers     []Spacer
	Constants   []Constant
	R1Probe     string
	R2Probe     string
}

// Plexity is the number of spacer slots in the construct.
func (c *Construct) Plexity() int {
	return len(c.Spacers)
}

// Sequence is the full left-to-right concatenation of all P constant/spacer
// pairs, with no trimming and no reverse complement. Used by the build command.
func (c *Construct) Sequence() string {
	var buf []byte
	for i, sp := range c.Spacers {
		buf = append(buf, c.Constants[i].Sequence...)
		buf = append(buf, sp.Sequence...)
	}
	return string(buf)
}

// Library is the prepared, read-only collection of Constructs assembled from
// a parsed spacer table and constant table. Built once during the prepare
// phase; never mutated afterward.
type Library struct {
	Constructs  []Construct
	Constants   []Constant // full sorted constant table, may exceed Plexity entries
	Plexity     int
	SpacerLen   int
	ConstantLen int
	SpacerCount int // total spacers across the whole library (N*Plexity)
}

// takeCount is the §4.2 table T(P), exact per plexity, not derived from a
// formula at runtime so the table in spec.md is reproduced literally.
var takeCount = map[int]int{
	3: 2, 4: 2, 5: 3, 6: 3, 7: 4, 8: 4, 9: 5, 10: 5,
}

// minPlexity/maxPlexity bound the supported plexity range.
const minPlexity = 3
const maxPlexity = 10

// BuildLibrary sorts spacers by (ConstructID, VariantID) and constants by
// PositionID, infers the plexity from the leading run of equal construct ids,
// chunks the spacers into constructs, and derives both probes per construct.
func BuildLibrary(spacers []Spacer, constants []Constant) (*Library, error) {
	if len(spacers) == 0 {
		return nil, configErrorf("no spacers given")
	}
	if len(constants) == 0 {
		return nil, configErrorf("no constants given")
	}

	spacerLen := len(spacers[0].Sequence)
	for _, sp := range spacers {
		if len(sp.Sequence) != spacerLen {
			return nil, configErrorf("inconsistent spacer length: expected %d, got %d (%q)", spacerLen, len(sp.Sequence), sp.Sequence)
		}
	}
	constantLen := len(constants[0].Sequence)
	for _, c := range constants {
		if len(c.Sequence) != constantLen {
			return nil, configErrorf("inconsistent constant length: expected %d, got %d (%q)", constantLen, len(c.Sequence), c.Sequence)
		}
	}

	sorted := make([]Spacer, len(spacers))
	copy(sorted, spacers)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].ConstructID != sorted[j].ConstructID {
			return sorted[i].ConstructID < sorted[j].ConstructID
		}
		return sorted[i].VariantID < sorted[j].VariantID
	})

	sortedConstants := make([]Constant, len(constants))
	copy(sortedConstants, constants)
	sort.Slice(sortedConstants, func(i, j int) bool {
		return sortedConstants[i].PositionID < sortedConstants[j].PositionID
	})

	plexity, err := inferPlexity(sorted)
	if err != nil {
		return nil, err
	}
	if len(sortedConstants) < plexity {
		return nil, configErrorf("need at least %d constants for plexity %d, got %d", plexity, plexity, len(sortedConstants))
	}
	if len(sorted)%plexity != 0 {
		return nil, configErrorf("spacer count %d is not a multiple of inferred plexity %d", len(sorted), plexity)
	}

	n := len(sorted) / plexity
	constructs := make([]Construct, n)
	for cid := 0; cid < n; cid++ {
		chunk := sorted[cid*plexity : (cid+1)*plexity]
		for i, sp := range chunk {
			if sp.ConstructID != cid {
				return nil, configErrorf("spacer chunk %d has inconsistent construct id %d at variant %d", cid, sp.ConstructID, i)
			}
			if sp.VariantID != i {
				return nil, configErrorf("spacer chunk %d expected variant id %d at position %d, got %d", cid, i, i, sp.VariantID)
			}
		}
		con := Construct{
			ConstructID: cid,
			Spacers:     chunk,
			Constants:   sortedConstants[:plexity],
		}
		r1, r2, err := deriveProbes(&con)
		if err != nil {
			return nil, err
		}
		con.R1Probe, con.R2Probe = r1, r2
		constructs[cid] = con
	}

	return &Library{
		Constructs:  constructs,
		Constants:   sortedConstants,
		Plexity:     plexity,
		SpacerLen:   spacerLen,
		ConstantLen: constantLen,
		SpacerCount: len(sorted),
	}, nil
}

// inferPlexity inspects the leading run of equal construct ids in the sorted
// spacer list, per spec.md §4.2, and validates it against the supported range.
func inferPlexity(sorted []Spacer) (int, error) {
	if len(sorted) == 0 {
		return 0, configErrorf("empty spacer list")
	}
	run := 1
	first := sorted[0].ConstructID
	for i := 1; i < len(sorted); i++ {
		if sorted[i].ConstructID != first {
			break
		}
		run++
	}
	if run < minPlexity || run > maxPlexity {
		return 0, configErrorf("inferred plexity %d out of supported range [%d,%d]", run, minPlexity, maxPlexity)
	}
	return run, nil
}

// deriveProbes computes R1Probe and R2Probe for a construct per spec.md §4.2.
func deriveProbes(c *Construct) (r1, r2 string, err error) {
	p := c.Plexity()
	t, ok := takeCount[p]
	if !ok {
		return "", "", configErrorf("unsupported plexity %d, expected one of 3..10", p)
	}

	var r1buf []byte
	for i := 0; i < t; i++ {
		r1buf = append(r1buf, c.Constants[i].Sequence...)
		r1buf = append(r1buf, c.Spacers[i].Sequence...)
	}

	var r2buf []byte
	for i := p - t; i < p; i++ {
		r2buf = append(r2buf, c.Constants[i].Sequence...)
		r2buf = append(r2buf, c.Spacers[i].Sequence...)
	}
	r2rc, err := ReverseComplement(string(r2buf))
	if err != nil {
		return "", "", fmt.Errorf("construct %d: %w", c.ConstructID, err)
	}

	return string(r1buf), r2rc, nil
}
