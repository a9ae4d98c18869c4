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

// Package archive multiplexes any number of named files into a single
// container: a 2-byte magic, then one entry per file (a length-prefixed
// name followed by a sequence of Huffman-coded blocks), with no
// trailing terminator - physical end-of-file closes the archive.
package archive

import (
	"io"
	"time"

	"github.com/duffcomp/huffpack"
	"github.com/duffcomp/huffpack/bitstream"
	"github.com/duffcomp/huffpack/entropy"
)

// Writer creates an archive on an underlying io.Writer.
type Writer struct {
	sink       huffpack.BitSink
	listeners  []huffpack.Listener
	wroteMagic bool
}

// NewWriter creates a Writer over os. The magic bytes are written
// immediately.
func NewWriter(os io.Writer) (*Writer, error) {
	sink, err := bitstream.NewDefaultBitSink(os)

	if err != nil {
		return nil, err
	}

	w := &Writer{sink: sink}

	if err := w.writeMagic(); err != nil {
		return nil, err
	}

	return w, nil
}

func (this *Writer) writeMagic() error {
	if this.wroteMagic {
		return nil
	}

	if err := this.sink.WriteBits(huffpack.ArchiveMagicHi, 8); err != nil {
		return err
	}

	if err := this.sink.WriteBits(huffpack.ArchiveMagicLo, 8); err != nil {
		return err
	}

	this.wroteMagic = true
	return nil
}

// AddListener registers bl to receive progress events. Returns false if
// bl is already registered.
func (this *Writer) AddListener(bl huffpack.Listener) bool {
	for _, l := range this.listeners {
		if l == bl {
			return false
		}
	}

	this.listeners = append(this.listeners, bl)
	return true
}

// WriteEntry copies all of r into the archive as one named entry.
// name must be 1 to 255 bytes long.
func (this *Writer) WriteEntry(name string, r io.Reader) (int64, error) {
	if len(name) == 0 || len(name) > 255 {
		return 0, NewIOError("Invalid entry name length (must be in [1..255])", huffpack.ErrInvalidFile)
	}

	this.notify(huffpack.EvtEntryStart, name, -1)

	if err := this.sink.WriteBits(uint32(len(name)), 8); err != nil {
		return 0, err
	}

	for i := 0; i < len(name); i++ {
		if err := this.sink.WriteBits(uint32(name[i]), 8); err != nil {
			return 0, err
		}
	}

	enc, err := entropy.NewBlockEncoder(this.sink)

	if err != nil {
		return 0, err
	}

	n, err := io.Copy(enc, r)

	if err != nil {
		return n, err
	}

	if err := enc.Close(); err != nil {
		return n, err
	}

	this.notify(huffpack.EvtEntryEnd, name, n)
	return n, nil
}

// Close flushes any buffered bits. No trailing terminator is written;
// the reader relies on physical end-of-file to know the archive is
// exhausted, the same contract the original reference implementation
// uses.
func (this *Writer) Close() error {
	return this.sink.Align()
}

func (this *Writer) notify(evtType int, name string, size int64) {
	if len(this.listeners) == 0 {
		return
	}

	evt := huffpack.NewEvent(evtType, name, size, time.Time{})

	for _, l := range this.listeners {
		l.ProcessEvent(evt)
	}
}
