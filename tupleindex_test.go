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

func TestNewTupleIndexRejectsUnsupportedPlexity(t *testing.T) {
	lib := buildTestLibrary(t, 1, 5, 3, 4)
	_, err := NewTupleIndex(lib)
	if err == nil {
		t.Fatalf("expected *UnsupportedOperationError for plexity 5")
	}
	uoe, ok := err.(*UnsupportedOperationError)
	if !ok {
		t.Fatalf("expected *UnsupportedOperationError, got %T", err)
	}
	if uoe.Plexity != 5 {
		t.Errorf("UnsupportedOperationError.Plexity = %d, want 5", uoe.Plexity)
	}
}

func TestNewTupleIndexAcceptsFourAndSix(t *testing.T) {
	for _, p := range []int{4, 6} {
		lib := buildTestLibrary(t, 2, p, 3, 4)
		if _, err := NewTupleIndex(lib); err != nil {
			t.Errorf("NewTupleIndex with plexity %d: unexpected error: %s", p, err)
		}
	}
}

func TestClassifyPairByTupleExact(t *testing.T) {
	lib := buildTestLibrary(t, 3, 4, 4, 5)
	idx, err := NewTupleIndex(lib)
	if err != nil {
		t.Fatalf("NewTupleIndex: %s", err)
	}

	for _, c := range lib.Constructs {
		half := 2
		// An N between adjacent spacers keeps the windows that straddle the
		// junction from matching another library spacer ("AAAC"+"AAAG"
		// contains "AACA", spacer 3 of construct 0).
		r1 := "NN" + c.Spacers[0].Sequence + "N" + c.Spacers[1].Sequence + "NN"
		r2 := "NN" + c.Spacers[2].Sequence + "N" + c.Spacers[3].Sequence + "NN"
		id, ok := idx.ClassifyPairByTuple(r1, r2)
		if !ok {
			t.Fatalf("construct %d: expected tuple match (half=%d)", c.ConstructID, half)
		}
		if id != c.ConstructID {
			t.Errorf("construct %d: ClassifyPairByTuple returned %d", c.ConstructID, id)
		}
	}
}

func TestClassifyPairByTupleRobustToOffset(t *testing.T) {
	// Spacers embedded at a different offset in each mate, with unrelated
	// flanking bases on both sides: the tuple classifier must still find
	// them since it scans all window positions, independent of constants.
	lib := buildTestLibrary(t, 2, 4, 4, 5)
	c := lib.Constructs[1]

	r1 := "TTTTT" + c.Spacers[0].Sequence + c.Spacers[1].Sequence + "TTT"
	r2 := "TT" + c.Spacers[2].Sequence + c.Spacers[3].Sequence + "TTTTT"

	idx, err := NewTupleIndex(lib)
	if err != nil {
		t.Fatalf("NewTupleIndex: %s", err)
	}
	id, ok := idx.ClassifyPairByTuple(r1, r2)
	if !ok {
		t.Fatalf("expected tuple match regardless of flanking offset")
	}
	if id != c.ConstructID {
		t.Errorf("ClassifyPairByTuple = %d, want %d", id, c.ConstructID)
	}
}

func TestClassifyPairByTupleNoMatch(t *testing.T) {
	lib := buildTestLibrary(t, 2, 4, 4, 5)
	idx, err := NewTupleIndex(lib)
	if err != nil {
		t.Fatalf("NewTupleIndex: %s", err)
	}
	if _, ok := idx.ClassifyPairByTuple("NNNNNNNNNN", "NNNNNNNNNN"); ok {
		t.Errorf("expected no match for unrelated reads")
	}
}
