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
	"testing"
)

func TestReverseComplement(t *testing.T) {
	cases := map[string]string{
		"ACGT":     "ACGT",
		"AAAA":     "TTTT",
		"acgtACGT": "ACGTacgt",
		"":         "",
	}
	for in, want := range cases {
		got, err := ReverseComplement(in)
		if err != nil {
			t.Errorf("ReverseComplement(%q) unexpected error: %s", in, err)
		}
		if got != want {
			t.Errorf("ReverseComplement(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestReverseComplementInvalid(t *testing.T) {
	_, err := ReverseComplement("ACGN")
	if err == nil {
		t.Errorf("expected error for non-ACGT input")
	}
	if _, ok := err.(*SequenceDecodeError); !ok {
		t.Errorf("expected *SequenceDecodeError, got %T", err)
	}
}

func TestMustReverseComplementPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on invalid sequence")
		}
	}()
	MustReverseComplement("NNNN")
}

func TestIsNucleotide(t *testing.T) {
	if !IsNucleotide("ACGTacgt") {
		t.Errorf("expected ACGTacgt to be a valid nucleotide string")
	}
	if IsNucleotide("ACGN") {
		t.Errorf("expected ACGN to be rejected")
	}
	if !IsNucleotide("") {
		t.Errorf("expected empty string to be vacuously valid")
	}
}

func TestKmersOrder(t *testing.T) {
	got := AllKmers("ACGTAC", 3)
	want := []string{"ACG", "CGT", "GTA", "TAC"}
	if len(got) != len(want) {
		t.Fatalf("AllKmers length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AllKmers[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestKmersShorterThanK(t *testing.T) {
	if got := AllKmers("AC", 3); got != nil {
		t.Errorf("AllKmers on too-short sequence = %v, want nil", got)
	}
}

func TestKmersSelfFind(t *testing.T) {
	s := "ACGTACGTAA"
	for _, k := range AllKmers(s, 4) {
		found := false
		for _, other := range AllKmers(s, 4) {
			if other == k {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("kmer %q not found by its own enumeration", k)
		}
	}
}
