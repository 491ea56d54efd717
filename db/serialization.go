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

// Package casmapdb serializes a prepared construct library to a single binary
// file so repeated runs against the same library can skip TSV re-parsing.
// Read returns spacer and constant tables; constructs and probes are derived
// from them again by casmap.BuildLibrary. The on-disk shape (magic number, versioned meta
// block, then a fixed-size record per entry) follows the same pattern the
// teacher codebase uses for its own k-mer signature index.
package casmapdb

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/shenwei356/casmap"
)

// Version is the cache file format version.
const Version uint8 = 1

// Magic is the 8-byte file signature.
var Magic = [8]byte{'.', 'c', 'a', 's', 'm', 'a', 'p', 'd'}

// ErrInvalidFormat means the magic number did not match.
var ErrInvalidFormat = errors.New("casmapdb: invalid cache file format")

// ErrVersionMismatch means the cache was written by an incompatible version.
var ErrVersionMismatch = errors.New("casmapdb: incompatible cache version")

var be = binary.BigEndian

// Header describes the cached library's shape, enough to validate
// compatibility before trusting the records that follow.
type Header struct {
	Version     uint8
	Plexity     uint8
	SpacerLen   uint32
	ConstantLen uint32
	NumConstructs uint32
}

// Write serializes lib to w: an 8-byte magic, the Header, then one record per
// construct (its P spacer sequences followed by its P constant sequences, in
// variant/position order). Callers that want the on-disk cache file
// gzip-compressed wrap w in a pgzip.Writer themselves, the same way cmd's
// outStream does for every other output (see cmd/index.go).
func Write(w io.Writer, lib *casmap.Library) error {
	if _, err := w.Write(Magic[:]); err != nil {
		return err
	}
	h := Header{
		Version:       Version,
		Plexity:       uint8(lib.Plexity),
		SpacerLen:     uint32(lib.SpacerLen),
		ConstantLen:   uint32(lib.ConstantLen),
		NumConstructs: uint32(len(lib.Constructs)),
	}
	if err := binary.Write(w, be, h.Version); err != nil {
		return err
	}
	if err := binary.Write(w, be, h.Plexity); err != nil {
		return err
	}
	if err := binary.Write(w, be, h.SpacerLen); err != nil {
		return err
	}
	if err := binary.Write(w, be, h.ConstantLen); err != nil {
		return err
	}
	if err := binary.Write(w, be, h.NumConstructs); err != nil {
		return err
	}

	for _, c := range lib.Constructs {
		for _, sp := range c.Spacers {
			if _, err := io.WriteString(w, sp.Sequence); err != nil {
				return err
			}
		}
		for _, ct := range c.Constants {
			if _, err := io.WriteString(w, ct.Sequence); err != nil {
				return err
			}
		}
	}
	return nil
}

// Read deserializes a cache file written by Write back into spacer and
// constant tables suitable for casmap.BuildLibrary, reconstructing construct
// ids and variant/position ids from record order. r must already be
// decompressed if Write's output was gzip-wrapped (see cmd/prepare.go).
func Read(r io.Reader) ([]casmap.Spacer, []casmap.Constant, error) {
	var m [8]byte
	if _, err := io.ReadFull(r, m[:]); err != nil {
		return nil, nil, err
	}
	if m != Magic {
		return nil, nil, ErrInvalidFormat
	}

	var h Header
	if err := binary.Read(r, be, &h.Version); err != nil {
		return nil, nil, err
	}
	if h.Version != Version {
		return nil, nil, ErrVersionMismatch
	}
	if err := binary.Read(r, be, &h.Plexity); err != nil {
		return nil, nil, err
	}
	if err := binary.Read(r, be, &h.SpacerLen); err != nil {
		return nil, nil, err
	}
	if err := binary.Read(r, be, &h.ConstantLen); err != nil {
		return nil, nil, err
	}
	if err := binary.Read(r, be, &h.NumConstructs); err != nil {
		return nil, nil, err
	}

	plexity := int(h.Plexity)
	spacers := make([]casmap.Spacer, 0, int(h.NumConstructs)*plexity)
	var constants []casmap.Constant

	spacerBuf := make([]byte, h.SpacerLen)
	constantBuf := make([]byte, h.ConstantLen)

	for cid := 0; cid < int(h.NumConstructs); cid++ {
		for vid := 0; vid < plexity; vid++ {
			if _, err := io.ReadFull(r, spacerBuf); err != nil {
				return nil, nil, fmt.Errorf("casmapdb: truncated cache reading construct %d spacer %d: %w", cid, vid, err)
			}
			spacers = append(spacers, casmap.Spacer{
				Sequence:    string(spacerBuf),
				ConstructID: cid,
				VariantID:   vid,
			})
		}
		for pid := 0; pid < plexity; pid++ {
			if _, err := io.ReadFull(r, constantBuf); err != nil {
				return nil, nil, fmt.Errorf("casmapdb: truncated cache reading construct %d constant %d: %w", cid, pid, err)
			}
			if cid == 0 {
				constants = append(constants, casmap.Constant{
					Sequence:   string(constantBuf),
					PositionID: pid,
				})
			}
		}
	}

	return spacers, constants, nil
}
