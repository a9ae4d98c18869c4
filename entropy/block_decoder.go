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
	"hash/maphash"
	"io"

	"github.com/dgryski/go-tinylfu"

	"github.com/duffcomp/huffpack"
)

// treeCacheSize bounds the number of distinct code-length headers whose
// decode tree is kept around between blocks.
const treeCacheSize = 64

var treeCacheSeed = maphash.MakeSeed()

// headerKey is the packed 128-byte code-length header, used verbatim as
// a cache key: two blocks with the same header always produce the same
// decode tree.
type headerKey [128]byte

func hashHeaderKey(k headerKey) uint64 {
	return maphash.Comparable(treeCacheSeed, k)
}

// BlockDecoder reads the framed blocks written by a BlockEncoder off a
// BitSource and exposes their concatenated payload as an io.Reader. A
// small TinyLFU cache avoids rebuilding the canonical table and decode
// tree when consecutive blocks (or blocks from different entries) carry
// the same code-length header.
type BlockDecoder struct {
	source    huffpack.BitSource
	tree      []decodeNode
	remaining int
	done      bool
	treeCache *tinylfu.T[headerKey, []decodeNode]
}

// NewBlockDecoder creates a block decoder reading from source.
func NewBlockDecoder(source huffpack.BitSource) (*BlockDecoder, error) {
	if source == nil {
		return nil, fmt.Errorf("Invalid null bit source parameter")
	}

	return &BlockDecoder{
		source:    source,
		treeCache: tinylfu.New[headerKey, []decodeNode](treeCacheSize, treeCacheSize*10, hashHeaderKey),
	}, nil
}

// Read fills p with decoded payload bytes, transparently crossing block
// boundaries, and returns io.EOF once the terminator block has been
// consumed.
func (this *BlockDecoder) Read(p []byte) (int, error) {
	if this.done {
		return 0, io.EOF
	}

	n := 0

	for n < len(p) {
		if this.remaining == 0 {
			if err := this.startBlock(); err != nil {
				return n, err
			}

			if this.done {
				if n == 0 {
					return 0, io.EOF
				}

				return n, nil
			}
		}

		b, err := this.decodeByte()

		if err != nil {
			return n, err
		}

		p[n] = b
		n++
		this.remaining--
	}

	return n, nil
}

// startBlock reads the next block's length prefix and, unless it is the
// terminator, its code-length header, fetching or building the matching
// decode tree.
func (this *BlockDecoder) startBlock() error {
	this.source.Align()
	n, err := this.source.ReadBits(16)

	if err != nil {
		return err
	}

	if n == 0 {
		this.done = true
		return nil
	}

	var key headerKey
	var length [256]int

	for i := 0; i < 256; i++ {
		l, err := this.source.ReadBits(4)

		if err != nil {
			return err
		}

		length[i] = int(l)
		key[i/2] |= byte(l) << uint(4*(1-i%2))
	}

	if tree, ok := this.treeCache.Get(key); ok {
		this.tree = tree
	} else {
		code := buildCanonicalCodes(length)
		this.tree = buildDecodeTree(code, length)
		this.treeCache.Add(key, this.tree)
	}

	this.remaining = int(n)
	return nil
}

// decodeByte walks the decode tree one bit at a time, MSB first, from
// the root until it reaches a leaf.
func (this *BlockDecoder) decodeByte() (byte, error) {
	cur := 0

	for cur < 256 {
		bit, err := this.source.ReadBits(1)

		if err != nil {
			return 0, err
		}

		if bit != 0 {
			cur = this.tree[cur].n1
		} else {
			cur = this.tree[cur].n0
		}

		if cur < 0 {
			return 0, fmt.Errorf("corrupt decode tree: missing child")
		}
	}

	return byte(cur - 256), nil
}
