/*
Copyright 2011-2017 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package bitstream

import (
	"errors"
	"fmt"
	"io"
)

// DefaultBitSink is the default implementation of huffpack.BitSink. It
// buffers a single partial byte between calls to WriteBits, packing bits
// most-significant-first, and writes complete bytes to the underlying
// writer as soon as they fill up.
type DefaultBitSink struct {
	os        io.Writer
	written   uint64 // bits flushed to os, not counting the partial byte
	current   byte   // partial byte, bits packed high-to-low
	availBits uint   // free bit positions left in current, in [0..8]
}

// NewDefaultBitSink creates a bit sink writing to the provided stream.
func NewDefaultBitSink(stream io.Writer) (*DefaultBitSink, error) {
	if stream == nil {
		return nil, errors.New("Invalid null output stream parameter")
	}

	this := new(DefaultBitSink)
	this.os = stream
	this.availBits = 8
	return this, nil
}

// WriteBits writes the low 'width' bits of v, most significant bit
// first. width must be in [0..32].
func (this *DefaultBitSink) WriteBits(v uint32, width uint) error {
	if width > 32 {
		return fmt.Errorf("Invalid bit width: %d (must be in [0..32])", width)
	}

	for width > 0 {
		if this.availBits >= width {
			shift := this.availBits - width
			this.current |= byte((v & ((1 << width) - 1)) << shift)
			this.availBits -= width
			width = 0

			if this.availBits == 0 {
				if err := this.pushCurrent(); err != nil {
					return err
				}
			}
		} else {
			take := this.availBits
			shift := width - take
			this.current |= byte((v >> shift) & ((1 << take) - 1))

			if err := this.pushCurrent(); err != nil {
				return err
			}

			width = shift
		}
	}

	return nil
}

// pushCurrent flushes the completed partial byte to the underlying
// writer and resets the buffer to a fresh, empty byte.
func (this *DefaultBitSink) pushCurrent() error {
	if _, err := this.os.Write([]byte{this.current}); err != nil {
		return err
	}

	this.written += 8
	this.current = 0
	this.availBits = 8
	return nil
}

// Align flushes the current partial byte, padding with zero bits, so
// the next write starts on a fresh byte. A no-op if already aligned.
func (this *DefaultBitSink) Align() error {
	if this.availBits == 8 {
		return nil
	}

	return this.pushCurrent()
}

// Written returns the total number of bits written so far, including
// bits still sitting in the unflushed partial byte.
func (this *DefaultBitSink) Written() uint64 {
	return this.written + uint64(8-this.availBits)
}
