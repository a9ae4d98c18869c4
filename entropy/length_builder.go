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

// buildCodeLengths derives an optimal prefix code length, in bits, for
// each of the 256 symbols given their frequencies in freq. A symbol
// with freq[i] == 0 always comes back with length 0. When exactly one
// symbol is present, it gets length 1.
//
// The algorithm repeatedly combines the two highest-priority entries of
// a max-heap priority queue (leaves are queued at -freq, so these are
// the least frequent) into a composite node,
// until only the root remains, then walks the resulting parent chain
// backwards to turn "distance to root" into a bit length. Entries tie
// on frequency slightly in favor of leaves over composite nodes, which
// keeps the resulting lengths from clumping under skewed input.
func buildCodeLengths(freq [256]int) [256]int {
	// A lone present symbol would otherwise sink below the merged
	// zero-frequency leaves and get a code longer than one bit.
	present, last := 0, 0

	for i, f := range freq {
		if f > 0 {
			present++
			last = i
		}
	}

	if present == 1 {
		var length [256]int
		length[last] = 1
		return length
	}

	parent := make([]int, 512)
	q := newIndexedPriorityQueue(512)

	for i := 0; i < 256; i++ {
		q.put(i, -freq[i])
	}

	// Composite node ids continue on from the 256 leaf indexes, so
	// they share the same parent/queue index space without colliding.
	i := 256

	for ; q.len() > 1; i++ {
		c := q.get()
		f := q.priority[0]
		parent[c] = i

		c = q.get()
		f += q.priority[0]
		parent[c] = i

		q.put(i, f-1)
	}

	i--
	parent[i] = 0
	i--

	for ; i >= 0; i-- {
		parent[i] = parent[parent[i]] + 1
	}

	var length [256]int

	for i := 0; i < 256; i++ {
		if freq[i] > 0 {
			length[i] = parent[i]
		}
	}

	return length
}
