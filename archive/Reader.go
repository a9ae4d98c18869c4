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

package archive

import (
	"io"
	"time"

	"github.com/duffcomp/huffpack"
	"github.com/duffcomp/huffpack/bitstream"
	"github.com/duffcomp/huffpack/entropy"
)

// Reader demultiplexes an archive produced by Writer.
type Reader struct {
	source        huffpack.BitSource
	listeners     []huffpack.Listener
	lastEntry     *entropy.BlockDecoder
	lastEntryName string
	reachedEnd    bool
}

// NewReader creates a Reader over is, validating the 2-byte magic
// header immediately.
func NewReader(is io.Reader) (*Reader, error) {
	source, err := bitstream.NewDefaultBitSource(is)

	if err != nil {
		return nil, err
	}

	hi, err := source.ReadBits(8)

	if err != nil {
		return nil, NewIOError("Invalid archive: missing magic header", huffpack.ErrInvalidFile)
	}

	lo, err := source.ReadBits(8)

	if err != nil || hi != huffpack.ArchiveMagicHi || lo != huffpack.ArchiveMagicLo {
		return nil, NewIOError("Invalid archive: bad magic header", huffpack.ErrInvalidFile)
	}

	return &Reader{source: source}, nil
}

// AddListener registers bl to receive progress events. Returns false if
// bl is already registered.
func (this *Reader) AddListener(bl huffpack.Listener) bool {
	for _, l := range this.listeners {
		if l == bl {
			return false
		}
	}

	this.listeners = append(this.listeners, bl)
	return true
}

// Next advances to the next entry and returns its stored name and a
// reader over its decoded payload. It returns io.EOF once a zero-length
// name or the physical end of the stream is reached. Any unread bytes
// left over from the previous entry are discarded first.
func (this *Reader) Next() (string, io.Reader, error) {
	if this.reachedEnd {
		return "", nil, io.EOF
	}

	if this.lastEntry != nil {
		n, err := io.Copy(io.Discard, this.lastEntry)

		if err != nil {
			return "", nil, err
		}

		this.notify(huffpack.EvtEntryEnd, this.lastEntryName, n)
		this.lastEntry = nil
	}

	nameLen, err := this.source.ReadBits(8)

	if err != nil {
		this.reachedEnd = true
		return "", nil, io.EOF
	}

	if nameLen == 0 {
		this.reachedEnd = true
		return "", nil, io.EOF
	}

	nameBytes := make([]byte, nameLen)

	for i := range nameBytes {
		b, err := this.source.ReadBits(8)

		if err != nil {
			return "", nil, NewIOError("Truncated entry name", huffpack.ErrInvalidFile)
		}

		nameBytes[i] = byte(b)
	}

	name := string(nameBytes)
	this.notify(huffpack.EvtEntryStart, name, -1)

	dec, err := entropy.NewBlockDecoder(this.source)

	if err != nil {
		return "", nil, err
	}

	this.lastEntry = dec
	this.lastEntryName = name
	return name, dec, nil
}

func (this *Reader) notify(evtType int, name string, size int64) {
	if len(this.listeners) == 0 {
		return
	}

	evt := huffpack.NewEvent(evtType, name, size, time.Time{})

	for _, l := range this.listeners {
		l.ProcessEvent(evt)
	}
}
