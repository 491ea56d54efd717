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
	"io"
	"sort"

	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
)

// PairStream walks two FASTQ streams in lockstep, extracting only the
// sequence line of each record. Buffers are owned locally and recycled per
// record pair. Both files are opened by OpenPairStream; PairStream has no
// Close method.
type PairStream struct {
	r1 *fastx.Reader
	r2 *fastx.Reader
}

// OpenPairStream opens the R1 and R2 FASTQ files (optionally .gz-compressed,
// handled transparently by fastx) for paired, synchronized iteration.
func OpenPairStream(r1File, r2File string) (*PairStream, error) {
	seq.ValidateSeq = false // IsNucleotide does its own per-read check downstream
	r1, err := fastx.NewDefaultReader(r1File)
	if err != nil {
		return nil, fmt.Errorf("casmap: opening R1 %s: %w", r1File, err)
	}
	r2, err := fastx.NewDefaultReader(r2File)
	if err != nil {
		return nil, fmt.Errorf("casmap: opening R2 %s: %w", r2File, err)
	}
	return &PairStream{r1: r1, r2: r2}, nil
}

// Next returns the next sequence pair. ok is false once either stream is
// exhausted (spec.md §4.5: processing stops at the shorter of the two), and
// err is non-nil only on a genuine I/O failure, which is fatal.
func (p *PairStream) Next() (r1seq, r2seq string, ok bool, err error) {
	rec1, err1 := p.r1.Read()
	if err1 != nil {
		if err1 == io.EOF {
			return "", "", false, nil
		}
		return "", "", false, fmt.Errorf("casmap: reading R1: %w", err1)
	}
	rec2, err2 := p.r2.Read()
	if err2 != nil {
		if err2 == io.EOF {
			return "", "", false, nil
		}
		return "", "", false, fmt.Errorf("casmap: reading R2: %w", err2)
	}
	return string(rec1.Seq.Seq), string(rec2.Seq.Seq), true, nil
}

// Counter is a per-construct hit count, keyed by construct id. Zero value is
// ready to use; the only mutable state during the stream phase.
type Counter map[int]int

// Add increments the counter for id by one.
func (c Counter) Add(id int) {
	c[id]++
}

// Merge adds every entry of other into c, the additive reduction used to
// combine per-worker counters in a sharded implementation (spec.md §5).
func (c Counter) Merge(other Counter) {
	for id, n := range other {
		c[id] += n
	}
}

// Total sums every count in the counter.
func (c Counter) Total() int {
	var total int
	for _, n := range c {
		total += n
	}
	return total
}

// WriteTSV serializes the counter as "ConstructID\tCounts", one row per
// observed construct in ascending id order; unobserved constructs are
// omitted, per spec.md §4.5.
func (c Counter) WriteTSV(w io.Writer) error {
	if _, err := fmt.Fprint(w, "ConstructID\tCounts\n"); err != nil {
		return err
	}
	ids := make([]int, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if _, err := fmt.Fprintf(w, "%d\t%d\n", id, c[id]); err != nil {
			return err
		}
	}
	return nil
}

// Diagnostics summarizes a streaming run: the number of record pairs seen and
// the number successfully classified. Reported exactly once, at end-of-stream.
type Diagnostics struct {
	Processed  int
	Classified int
}

// Ratio returns Classified/Processed, or 0 when nothing was processed.
func (d Diagnostics) Ratio() float64 {
	if d.Processed == 0 {
		return 0
	}
	return float64(d.Classified) / float64(d.Processed)
}

// ClassifyConstructs walks pairs, classifying each with idx.ClassifyPair, and
// returns the resulting Counter plus run Diagnostics. An ambiguous pair is
// reported via onAmbiguous (may be nil) and counted as unclassified.
func ClassifyConstructs(pairs *PairStream, idx *ProbeIndex, onAmbiguous func(*AmbiguousMatch)) (Counter, Diagnostics, error) {
	counts := make(Counter)
	var diag Diagnostics

	for {
		r1, r2, ok, err := pairs.Next()
		if err != nil {
			return counts, diag, err
		}
		if !ok {
			break
		}
		diag.Processed++

		if !IsNucleotide(r1) || !IsNucleotide(r2) {
			continue // SequenceDecodeError: treat the pair as unclassified
		}

		id, matched, ambiguous := idx.ClassifyPair(r1, r2)
		if matched {
			counts.Add(id)
			diag.Classified++
			continue
		}
		if len(ambiguous) > 0 && onAmbiguous != nil {
			onAmbiguous(&AmbiguousMatch{ConstructIDs: ambiguous})
		}
	}
	return counts, diag, nil
}

// ClassifyTuples walks pairs, classifying each with idx.ClassifyPairByTuple.
func ClassifyTuples(pairs *PairStream, idx *TupleIndex) (Counter, Diagnostics, error) {
	counts := make(Counter)
	var diag Diagnostics

	for {
		r1, r2, ok, err := pairs.Next()
		if err != nil {
			return counts, diag, err
		}
		if !ok {
			break
		}
		diag.Processed++

		if !IsNucleotide(r1) || !IsNucleotide(r2) {
			continue // SequenceDecodeError: treat the pair as unclassified
		}

		if id, matched := idx.ClassifyPairByTuple(r1, r2); matched {
			counts.Add(id)
			diag.Classified++
		}
	}
	return counts, diag, nil
}

// ReportSpacers walks pairs, finding every spacer occurrence in each mate, and
// streams one TSV row per distinct spacer found per mate per record pair:
// record_index<TAB>read<TAB>spacer_sequence<TAB>count. This is the stable
// schema chosen for the open question in spec.md §9 (schema choice documented
// in SPEC_FULL.md §8).
func ReportSpacers(pairs *PairStream, idx *SpacerIndex, w io.Writer) (Diagnostics, error) {
	var diag Diagnostics

	if _, err := fmt.Fprint(w, "record_index\tread\tspacer_sequence\tcount\n"); err != nil {
		return diag, err
	}

	for {
		r1, r2, ok, err := pairs.Next()
		if err != nil {
			return diag, err
		}
		if !ok {
			break
		}

		if err := writeMateSpacerCounts(w, diag.Processed, "r1", idx.FindSpacers(r1, 0)); err != nil {
			return diag, err
		}
		if err := writeMateSpacerCounts(w, diag.Processed, "r2", idx.FindSpacers(r2, 0)); err != nil {
			return diag, err
		}

		diag.Processed++
	}
	return diag, nil
}

func writeMateSpacerCounts(w io.Writer, recordIndex int, mate string, hits []string) error {
	if len(hits) == 0 {
		return nil
	}
	counts := make(map[string]int, len(hits))
	order := make([]string, 0, len(hits))
	for _, h := range hits {
		if counts[h] == 0 {
			order = append(order, h)
		}
		counts[h]++
	}
	for _, seq := range order {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", recordIndex, mate, seq, counts[seq]); err != nil {
			return err
		}
	}
	return nil
}

// ConstantIndex is a set of every constant sequence in the library, analogous
// to SpacerIndex, used by the describe command to locate direct repeats in a
// read independently of spacer positions.
type ConstantIndex struct {
	set    map[string]struct{}
	length int
}

// NewConstantIndex builds a ConstantIndex from the library's constants.
func NewConstantIndex(lib *Library) *ConstantIndex {
	set := make(map[string]struct{}, len(lib.Constants))
	for _, c := range lib.Constants {
		set[c.Sequence] = struct{}{}
	}
	return &ConstantIndex{set: set, length: lib.ConstantLen}
}

// FindConstants mirrors SpacerIndex.FindSpacers but against the constant set.
func (idx *ConstantIndex) FindConstants(read string, cap int) []string {
	var hits []string
	it := Kmers(read, idx.length)
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

// describeFields is the fixed header of the describe TSV, per spec.md §6.
var describeFields = []string{
	"index", "dr1", "dr2", "dr3", "spacer1", "spacer2", "spacer3",
	"dr4", "dr5", "dr6", "spacer4", "spacer5", "spacer6",
}

// Describe walks pairs, finding up to 3 constants and up to 3 spacers in each
// read; R2-derived fields are listed in reverse discovery order before being
// written. One row per record pair. Supported only for 4-plex and 6-plex
// libraries, the same restriction NewTupleIndex enforces, per spec.md §4.4
// and §4.6.
func Describe(plexity int, pairs *PairStream, spacers *SpacerIndex, constants *ConstantIndex, w io.Writer) (Diagnostics, error) {
	var diag Diagnostics

	if plexity != 4 && plexity != 6 {
		return diag, &UnsupportedOperationError{Plexity: plexity}
	}

	if err := writeRow(w, describeFields); err != nil {
		return diag, err
	}

	for {
		r1, r2, ok, err := pairs.Next()
		if err != nil {
			return diag, err
		}
		if !ok {
			break
		}

		r1Drs := constants.FindConstants(r1, 3)
		r1Spacers := spacers.FindSpacers(r1, 3)
		r2Drs := constants.FindConstants(r2, 3)
		r2Spacers := spacers.FindSpacers(r2, 3)
		reverseStrings(r2Drs)
		reverseStrings(r2Spacers)

		row := make([]string, 0, len(describeFields))
		row = append(row, fmt.Sprintf("%d", diag.Processed))
		row = append(row, padTo(r1Drs, 3)...)
		row = append(row, padTo(r1Spacers, 3)...)
		row = append(row, padTo(r2Drs, 3)...)
		row = append(row, padTo(r2Spacers, 3)...)

		if err := writeRow(w, row); err != nil {
			return diag, err
		}
		diag.Processed++
	}
	return diag, nil
}

func padTo(vals []string, n int) []string {
	out := make([]string, n)
	copy(out, vals)
	return out
}

func reverseStrings(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func writeRow(w io.Writer, fields []string) error {
	for i, f := range fields {
		if i > 0 {
			if _, err := fmt.Fprint(w, "\t"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, f); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, "\n")
	return err
}
