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

// complementByte maps a nucleotide byte to its complement, case-preserving.
// Only strict ACGT/acgt is accepted; anything else is a SequenceDecodeError.
var complementByte = map[byte]byte{
	'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A',
	'a': 't', 'c': 'g', 'g': 'c', 't': 'a',
}

// ReverseComplement returns the reverse complement of s, preserving case.
// Any byte outside {A,C,G,T,a,c,g,t} makes it return a *SequenceDecodeError.
func ReverseComplement(s string) (string, error) {
	n := len(s)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c, ok := complementByte[s[i]]
		if !ok {
			return "", &SequenceDecodeError{Char: s[i]}
		}
		out[n-1-i] = c
	}
	return string(out), nil
}

// MustReverseComplement is like ReverseComplement but panics on a non-ACGT
// byte. Library spacers and constants are not character-checked at ingest, so
// it is only safe on sequences known to be strictly ACGT/acgt, never on reads
// from a FASTQ stream.
func MustReverseComplement(s string) string {
	rc, err := ReverseComplement(s)
	if err != nil {
		panic(err)
	}
	return rc
}

// IsNucleotide reports whether every byte of s is in {A,C,G,T,a,c,g,t}.
func IsNucleotide(s string) bool {
	for i := 0; i < len(s); i++ {
		if _, ok := complementByte[s[i]]; !ok {
			return false
		}
	}
	return true
}

// KmerIter yields the length-k windows of a sequence in order, restartable:
// each call to Kmers returns a fresh iterator starting at position 0.
type KmerIter struct {
	seq string
	k   int
	pos int
}

// Kmers returns an iterator over s[0:k], s[1:k+1], ..., s[len(s)-k:len(s)].
// It yields nothing when len(s) < k.
func Kmers(s string, k int) *KmerIter {
	return &KmerIter{seq: s, k: k}
}

// Next reports whether a k-mer is available at the cursor. It does not move
// the cursor; Kmer does.
func (it *KmerIter) Next() bool {
	return it.pos+it.k <= len(it.seq)
}

// Kmer returns the current k-mer and advances the cursor. Only valid to call
// after Next returns true.
func (it *KmerIter) Kmer() string {
	kmer := it.seq[it.pos : it.pos+it.k]
	it.pos++
	return kmer
}

// AllKmers collects every k-mer of s into a slice, in order. Convenience
// wrapper around KmerIter for callers that do not need streaming.
func AllKmers(s string, k int) []string {
	if len(s) < k {
		return nil
	}
	out := make([]string, 0, len(s)-k+1)
	it := Kmers(s, k)
	for it.Next() {
		out = append(out, it.Kmer())
	}
	return out
}
