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
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/gopher32x/curated"
	"github.com/jetsetilly/gopher32x/hardware/mars"
)

// State returns a digest of the registers and memory of the bus. Timing
// information is not included so the digest is the same when the same
// writes happen at different times.
func State(m *mars.Mars) (string, error) {
	st := m.Snapshot()

	h := sha1.New()

	err := binary.Write(h, binary.BigEndian, &st.Regs)
	if err != nil {
		return "", curated.Errorf("digest: %v", err)
	}

	for i := range st.DRAM {
		h.Write(st.DRAM[i][:])
	}
	h.Write(st.SDRAM[:])
	h.Write(st.ROMPage[:])

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
