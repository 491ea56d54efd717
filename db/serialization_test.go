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

package casmapdb

import (
	"bytes"
	"testing"

	"github.com/shenwei356/casmap"
)

func buildSampleLibrary(t *testing.T) *casmap.Library {
	t.Helper()
	spacers := []casmap.Spacer{
		{Sequence: "AAAA", ConstructID: 0, VariantID: 0},
		{Sequence: "CCCC", ConstructID: 0, VariantID: 1},
		{Sequence: "GGGG", ConstructID: 0, VariantID: 2},
		{Sequence: "TTTT", ConstructID: 0, VariantID: 3},
		{Sequence: "ACAC", ConstructID: 1, VariantID: 0},
		{Sequence: "GTGT", ConstructID: 1, VariantID: 1},
		{Sequence: "CACA", ConstructID: 1, VariantID: 2},
		{Sequence: "TGTG", ConstructID: 1, VariantID: 3},
	}
	constants := []casmap.Constant{
		{Sequence: "AAAAA", PositionID: 0},
		{Sequence: "CCCCC", PositionID: 1},
		{Sequence: "GGGGG", PositionID: 2},
		{Sequence: "TTTTT", PositionID: 3},
	}
	lib, err := casmap.BuildLibrary(spacers, constants)
	if err != nil {
		t.Fatalf("BuildLibrary: %s", err)
	}
	return lib
}

func TestWriteReadRoundTrip(t *testing.T) {
	lib := buildSampleLibrary(t)

	var buf bytes.Buffer
	if err := Write(&buf, lib); err != nil {
		t.Fatalf("Write: %s", err)
	}

	spacers, constants, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %s", err)
	}

	rebuilt, err := casmap.BuildLibrary(spacers, constants)
	if err != nil {
		t.Fatalf("BuildLibrary(round-tripped tables): %s", err)
	}

	if rebuilt.Plexity != lib.Plexity {
		t.Errorf("Plexity = %d, want %d", rebuilt.Plexity, lib.Plexity)
	}
	if len(rebuilt.Constructs) != len(lib.Constructs) {
		t.Fatalf("len(Constructs) = %d, want %d", len(rebuilt.Constructs), len(lib.Constructs))
	}
	for i := range lib.Constructs {
		want := lib.Constructs[i]
		got := rebuilt.Constructs[i]
		if got.R1Probe != want.R1Probe || got.R2Probe != want.R2Probe {
			t.Errorf("construct %d: probes differ after round trip: got {%q,%q}, want {%q,%q}",
				i, got.R1Probe, got.R2Probe, want.R1Probe, want.R2Probe)
		}
		for j := range want.Spacers {
			if got.Spacers[j].Sequence != want.Spacers[j].Sequence {
				t.Errorf("construct %d spacer %d: got %q, want %q", i, j, got.Spacers[j].Sequence, want.Spacers[j].Sequence)
			}
		}
	}
}

func TestReadRejectsBadMagic(t *testing.T) {
	buf := bytes.NewBufferString("not-a-cache-file-------")
	if _, _, err := Read(buf); err != ErrInvalidFormat {
		t.Errorf("Read with bad magic: got err=%v, want ErrInvalidFormat", err)
	}
}

func TestReadRejectsTruncatedFile(t *testing.T) {
	lib := buildSampleLibrary(t)
	var buf bytes.Buffer
	if err := Write(&buf, lib); err != nil {
		t.Fatalf("Write: %s", err)
	}

	truncated := bytes.NewBuffer(buf.Bytes()[:buf.Len()-2])
	if _, _, err := Read(truncated); err == nil {
		t.Errorf("expected an error reading a truncated cache file")
	}
}
