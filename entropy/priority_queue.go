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

// indexedPriorityQueue is a partially-ordered set of (data, priority)
// int pairs, arranged so that every item's priority is at least as
// large as either of its children's, stored at indexes 2k and 2k+1
// relative to its own index k. Both put and get are O(log n).
//
// Index 0 is a scratch slot only (it mirrors whatever was last popped);
// real entries live at indexes [1..top-1].
type indexedPriorityQueue struct {
	top      int
	data     []int
	priority []int
}

// newIndexedPriorityQueue allocates a queue with room for up to n
// entries.
func newIndexedPriorityQueue(n int) *indexedPriorityQueue {
	return &indexedPriorityQueue{
		top:      1,
		data:     make([]int, n+2),
		priority: make([]int, n+2),
	}
}

func (this *indexedPriorityQueue) len() int {
	return this.top - 1
}

// put inserts data/priority, sifting it up towards the root while its
// priority is at least its parent's.
func (this *indexedPriorityQueue) put(data, priority int) {
	i2 := this.top
	this.top++

	for i2 > 1 {
		i3 := i2 >> 1

		if this.priority[i3] > priority {
			break
		}

		this.priority[i2] = this.priority[i3]
		this.data[i2] = this.data[i3]
		i2 = i3
	}

	this.priority[i2] = priority
	this.data[i2] = data
}

// get removes and returns the data of the highest-priority entry,
// restoring the heap property by sifting the displaced last entry down.
func (this *indexedPriorityQueue) get() int {
	ret := this.data[1]
	this.data[0] = this.data[1]
	this.priority[0] = this.priority[1]

	if this.top <= 1 {
		return -1
	}

	this.top--
	i2 := 1

	for {
		i3 := i2 << 1

		if i3 >= this.top {
			break
		}

		if this.priority[i3] < this.priority[i3+1] {
			i3++
		}

		if this.priority[i3] <= this.priority[this.top] {
			break
		}

		this.data[i2] = this.data[i3]
		this.priority[i2] = this.priority[i3]
		i2 = i3
	}

	this.data[i2] = this.data[this.top]
	this.priority[i2] = this.priority[this.top]
	return ret
}
