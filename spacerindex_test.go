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

import "testing"

func TestSpacerIndexFindsItself(t *testing.T) {
	lib := buildTestLibrary(t, 2, 4, 5, 4)
	idx := NewSpacerIndex(lib)

	for _, c := range lib.Constructs {
		for _, sp := range c.Spacers {
			got := idx.FindSpacers(sp.Sequence, 0)
			if len(got) != 1 || got[0] != sp.Sequence {
				t.Errorf("FindSpacers(%q) = %v, want [%q]", sp.Sequence, got, sp.Sequence)
			}
		}
	}
}

func TestSpacerIndexPreservesOrderAndDuplicates(t *testing.T) {
	lib := buildTestLibrary(t, 1, 4, 3, 4)
	idx := NewSpacerIndex(lib)
	s0 := lib.Constructs[0].Spacers[0].Sequence
	s1 := lib.Constructs[0].Spacers[1].Sequence
	s3 := lib.Constructs[0].Spacers[3].Sequence

	// s0+s1 is "AAC"+"AAG": the window straddling the junction is "ACA",
	// which is spacer 3, so it is found between s0 and s1.
	read := s0 + s1 + s0
	got := idx.FindSpacers(read, 0)
	want := []string{s0, s3, s1, s0}
	if len(got) != len(want) {
		t.Fatalf("FindSpacers(%q) = %v, want %v", read, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FindSpacers(%q)[%d] = %q, want %q", read, i, got[i], want[i])
		}
	}
}

func TestSpacerIndexCap(t *testing.T) {
	lib := buildTestLibrary(t, 1, 4, 3, 4)
	idx := NewSpacerIndex(lib)
	s0 := lib.Constructs[0].Spacers[0].Sequence

	read := s0 + s0 + s0 + s0
	got := idx.FindSpacers(read, 2)
	if len(got) != 2 {
		t.Errorf("FindSpacers with cap=2 returned %d hits, want 2", len(got))
	}
}

func TestSpacerIndexNoHits(t *testing.T) {
	lib := buildTestLibrary(t, 1, 4, 3, 4)
	idx := NewSpacerIndex(lib)
	if got := idx.FindSpacers("NNNNNNNNNNNN", 0); got != nil {
		t.Errorf("FindSpacers on unrelated read = %v, want nil", got)
	}
}

func TestNewSpacerIndexFromTable(t *testing.T) {
	spacers := []Spacer{
		{Sequence: "ACG", ConstructID: 0, VariantID: 0},
		{Sequence: "TGA", ConstructID: 0, VariantID: 1},
	}
	idx, err := NewSpacerIndexFromTable(spacers)
	if err != nil {
		t.Fatalf("NewSpacerIndexFromTable: %s", err)
	}
	if idx.SpacerLen() != 3 {
		t.Errorf("SpacerLen() = %d, want 3", idx.SpacerLen())
	}
	got := idx.FindSpacers("NNACGNNTGANN", 0)
	if len(got) != 2 {
		t.Errorf("FindSpacers = %v, want 2 hits", got)
	}
}

func TestNewSpacerIndexFromTableRejectsEmpty(t *testing.T) {
	if _, err := NewSpacerIndexFromTable(nil); err == nil {
		t.Errorf("expected error for empty spacer table")
	}
}

func TestNewSpacerIndexFromTableRejectsInconsistentLength(t *testing.T) {
	spacers := []Spacer{
		{Sequence: "ACG", ConstructID: 0, VariantID: 0},
		{Sequence: "ACGT", ConstructID: 0, VariantID: 1},
	}
	if _, err := NewSpacerIndexFromTable(spacers); err == nil {
		t.Errorf("expected error for inconsistent spacer length")
	}
}
