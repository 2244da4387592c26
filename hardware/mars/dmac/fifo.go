// This file is part of Gopher32X.
//
// Gopher32X is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher32X is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher32X.  If not, see <https://www.gnu.org/licenses/>.

package dmac

// FIFOCapacity is the number of words the FIFO can hold.
const FIFOCapacity = 8

// ChunkSize is the number of staged words that trigger a transfer. A transfer
// happens when the number of staged words is a multiple of this value.
const ChunkSize = 4

// FIFO is the bounded queue of words staged by the primary processor.
type FIFO struct {
	words [FIFOCapacity]uint16
	head  int
	count int
}

// Len returns the number of words in the FIFO.
func (f *FIFO) Len() int {
	return f.count
}

// Full returns true if no more words can be pushed.
func (f *FIFO) Full() bool {
	return f.count == FIFOCapacity
}

// Push a word onto the FIFO. Returns false if the FIFO is full, in which case
// the word is dropped.
func (f *FIFO) Push(w uint16) bool {
	if f.Full() {
		return false
	}
	f.words[(f.head+f.count)%FIFOCapacity] = w
	f.count++
	return true
}

// Pop the oldest word from the FIFO. Returns false if the FIFO is empty.
func (f *FIFO) Pop() (uint16, bool) {
	if f.count == 0 {
		return 0, false
	}
	w := f.words[f.head]
	f.head = (f.head + 1) % FIFOCapacity
	f.count--
	return w, true
}

// Clear all words from the FIFO.
func (f *FIFO) Clear() {
	f.head = 0
	f.count = 0
}

// Ready returns true if the number of staged words should trigger a transfer.
func (f *FIFO) Ready() bool {
	return f.count > 0 && f.count%ChunkSize == 0
}
