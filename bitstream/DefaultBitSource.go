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

// DefaultBitSource is the default implementation of huffpack.BitSource.
// It buffers a single partial byte read from the underlying reader,
// consuming bits most-significant-first.
type DefaultBitSource struct {
	is        io.Reader
	current   byte // partial byte, unread bits in the high 'availBits' positions
	availBits uint // unread bits left in current, in [0..8]
	one       [1]byte
}

// NewDefaultBitSource creates a bit source reading from the provided
// stream.
func NewDefaultBitSource(stream io.Reader) (*DefaultBitSource, error) {
	if stream == nil {
		return nil, errors.New("Invalid null input stream parameter")
	}

	this := new(DefaultBitSource)
	this.is = stream
	return this, nil
}

// ReadBits reads 'width' bits, most significant first, and returns them
// right-justified in the result. width must be in [0..32].
func (this *DefaultBitSource) ReadBits(width uint) (uint32, error) {
	if width > 32 {
		return 0, fmt.Errorf("Invalid bit width: %d (must be in [0..32])", width)
	}

	var result uint32

	for width > 0 {
		if this.availBits == 0 {
			if err := this.pullCurrent(); err != nil {
				return 0, err
			}
		}

		take := this.availBits

		if take > width {
			take = width
		}

		shift := this.availBits - take
		chunk := (this.current >> shift) & byte((1<<take)-1)
		result = (result << take) | uint32(chunk)
		this.availBits -= take
		width -= take
	}

	return result, nil
}

// pullCurrent reads the next byte from the underlying stream into the
// partial-byte buffer.
func (this *DefaultBitSource) pullCurrent() error {
	if _, err := io.ReadFull(this.is, this.one[:]); err != nil {
		return err
	}

	this.current = this.one[0]
	this.availBits = 8
	return nil
}

// Align discards any unread bits left in the current partial byte, so
// the next read starts on a fresh byte.
func (this *DefaultBitSource) Align() {
	this.availBits = 0
}
