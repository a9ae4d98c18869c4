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

package entropy

import (
	"fmt"

	"github.com/duffcomp/huffpack"
)

// BlockEncoder folds source bytes into blocks of at most
// huffpack.MaxBlockSize bytes, each one independently Huffman-coded,
// and writes the framed result - 16-bit length, 128-byte code-length
// header, packed payload bits - to a BitSink.
type BlockEncoder struct {
	sink huffpack.BitSink
	buf  []byte
}

// NewBlockEncoder creates a block encoder writing to sink.
func NewBlockEncoder(sink huffpack.BitSink) (*BlockEncoder, error) {
	if sink == nil {
		return nil, fmt.Errorf("Invalid null bit sink parameter")
	}

	return &BlockEncoder{sink: sink, buf: make([]byte, 0, huffpack.MaxBlockSize)}, nil
}

// Write appends p to the pending block buffer, flushing full blocks to
// the sink as the buffer fills. It never returns a short write.
func (this *BlockEncoder) Write(p []byte) (int, error) {
	n := 0

	for len(p) > 0 {
		room := huffpack.MaxBlockSize - len(this.buf)

		if room > len(p) {
			room = len(p)
		}

		this.buf = append(this.buf, p[:room]...)
		p = p[room:]
		n += room

		if len(this.buf) == huffpack.MaxBlockSize {
			if err := this.flushBlock(); err != nil {
				return n, err
			}
		}
	}

	return n, nil
}

// Close flushes any pending partial block and writes the zero-length
// terminator block that marks the end of this entry's block sequence.
// The terminator is written as a plain 16-bit zero value; the stream is
// already byte-aligned at this point because flushBlock always aligns.
func (this *BlockEncoder) Close() error {
	if len(this.buf) > 0 {
		if err := this.flushBlock(); err != nil {
			return err
		}
	}

	return this.sink.WriteBits(0, 16)
}

// flushBlock Huffman-codes the pending buffer and writes one framed
// block: length, header, payload.
func (this *BlockEncoder) flushBlock() error {
	var freq [256]int
	huffpack.ComputeHistogram(this.buf, freq[:])

	length := buildCodeLengths(freq)

	for i, f := range freq {
		if f > 0 && length[i] > 15 {
			return fmt.Errorf("code length %d for symbol %d exceeds 15 bits", length[i], i)
		}
	}

	code := buildCanonicalCodes(length)

	if err := this.sink.WriteBits(uint32(len(this.buf)), 16); err != nil {
		return err
	}

	for i := 0; i < 256; i++ {
		if err := this.sink.WriteBits(uint32(length[i]), 4); err != nil {
			return err
		}
	}

	for _, b := range this.buf {
		if err := this.sink.WriteBits(code[b], uint(length[b])); err != nil {
			return err
		}
	}

	// Each block is independently byte-aligned: the next block's 16-bit
	// length prefix, or the terminator, always starts on a fresh byte.
	if err := this.sink.Align(); err != nil {
		return err
	}

	this.buf = this.buf[:0]
	return nil
}
