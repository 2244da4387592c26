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

package digest

import (
	"crypto/sha1"
	"fmt"
)

// the length of the buffer we're using isn't really important. that said, it
// needs to be at least sha1.Size bytes in length
const audioBufferLength = 4096

// the previous digest value is stored in the first part of the buffer so
// that every digest depends on all the samples that came before it
const audioBufferStart = sha1.Size

// Audio implements the pwm.Mixer interface. It creates a chained digest of
// the samples produced by the PWM.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
	samples  int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	dig := &Audio{}
	dig.buffer = make([]uint8, audioBufferLength)
	dig.bufferCt = audioBufferStart
	return dig
}

func (dig *Audio) String() string {
	return fmt.Sprintf("%d samples %s", dig.samples, dig.Hash())
}

// Hash returns the current digest value. Samples that have not been included
// in the digest yet are flushed first.
func (dig *Audio) Hash() string {
	if dig.bufferCt > audioBufferStart {
		dig.flush()
	}
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest resets the current digest value to zero.
func (dig *Audio) ResetDigest() {
	clear(dig.digest[:])
	clear(dig.buffer)
	dig.bufferCt = audioBufferStart
	dig.samples = 0
}

// SetSample implements the pwm.Mixer interface.
func (dig *Audio) SetSample(left int16, right int16) error {
	if dig.bufferCt+4 > audioBufferLength {
		dig.flush()
	}

	dig.buffer[dig.bufferCt] = uint8(left >> 8)
	dig.buffer[dig.bufferCt+1] = uint8(left)
	dig.buffer[dig.bufferCt+2] = uint8(right >> 8)
	dig.buffer[dig.bufferCt+3] = uint8(right)
	dig.bufferCt += 4
	dig.samples++

	return nil
}

func (dig *Audio) flush() {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}
