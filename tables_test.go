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
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %s", path, err)
	}
	return path
}

func TestLoadSpacerTable(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "spacers.tsv", "ACG\t0\t0\nTGA\t0\t1\n\n")

	spacers, err := LoadSpacerTable(path)
	if err != nil {
		t.Fatalf("LoadSpacerTable: %s", err)
	}
	if len(spacers) != 2 {
		t.Fatalf("len(spacers) = %d, want 2", len(spacers))
	}
	if spacers[0].Sequence != "ACG" || spacers[0].ConstructID != 0 || spacers[0].VariantID != 0 {
		t.Errorf("spacers[0] = %+v, unexpected", spacers[0])
	}
	if spacers[1].Sequence != "TGA" || spacers[1].VariantID != 1 {
		t.Errorf("spacers[1] = %+v, unexpected", spacers[1])
	}
}

func TestLoadSpacerTableMalformedRow(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "spacers.tsv", "ACG\tnotanumber\t0\n")

	if _, err := LoadSpacerTable(path); err == nil {
		t.Errorf("expected error for malformed construct_id")
	}
}

func TestLoadConstantTable(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "constants.tsv", "AAAA\t0\nCCCC\t1\n")

	constants, err := LoadConstantTable(path)
	if err != nil {
		t.Fatalf("LoadConstantTable: %s", err)
	}
	if len(constants) != 2 {
		t.Fatalf("len(constants) = %d, want 2", len(constants))
	}
	if constants[0].Sequence != "AAAA" || constants[0].PositionID != 0 {
		t.Errorf("constants[0] = %+v, unexpected", constants[0])
	}
}

func TestLoadConstantTableMalformedRow(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "constants.tsv", "AAAA\tnotanumber\n")

	if _, err := LoadConstantTable(path); err == nil {
		t.Errorf("expected error for malformed position_id")
	}
}
