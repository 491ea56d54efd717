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

import "fmt"

// ConfigError means the library specification (spacer/constant tables, derived
// plexity) is malformed. Errors of this kind are fatal during the prepare phase.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return "casmap: config error: " + e.Msg
}

func configErrorf(format string, args ...interface{}) error {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// UnsupportedOperationError is returned when the tuple or describe operation
// is requested against a library whose plexity is not in {4, 6}.
type UnsupportedOperationError struct {
	Plexity int
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("casmap: tuple and describe operations unsupported for plexity %d, only 4 and 6 are supported", e.Plexity)
}

// SequenceDecodeError is returned by ReverseComplement when its input contains
// a character outside {A,C,G,T,a,c,g,t}. The stream classifiers do not build
// it for reads: they check each read with IsNucleotide and count a pair with
// such a character as unclassified.
type SequenceDecodeError struct {
	Char byte
}

func (e *SequenceDecodeError) Error() string {
	return fmt.Sprintf("casmap: non-ACGT character %q in read", e.Char)
}

// AmbiguousMatch describes a record pair for which more than one construct
// satisfied both probe lookups. It is a diagnostic, not a fatal error: the
// pair is counted as unclassified and processing continues.
type AmbiguousMatch struct {
	ConstructIDs []int
}

func (e *AmbiguousMatch) Error() string {
	return fmt.Sprintf("casmap: ambiguous match among constructs %v", e.ConstructIDs)
}
