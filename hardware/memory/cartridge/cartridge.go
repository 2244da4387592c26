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

package cartridge

import (
	"encoding/binary"

	"github.com/jetsetilly/gopher32x/cartridgeloader"
	"github.com/jetsetilly/gopher32x/curated"
)

// Header offsets used when performing the work of the BIOS.
const (
	// word containing the checksum written to the comm port at boot
	HeaderChecksum = 0x18e

	// initial data load for the master SH2: ROM source, SDRAM destination
	// and size
	HeaderIDLSource      = 0x3d4
	HeaderIDLDestination = 0x3d8
	HeaderIDLSize        = 0x3dc

	// SH2 start addresses and VBR values
	HeaderMasterStart = 0x3e0
	HeaderSlaveStart  = 0x3e4
	HeaderMasterVBR   = 0x3e8
	HeaderSlaveVBR    = 0x3ec
)

// Cartridge is the storage of a 32X cartridge.
type Cartridge struct {
	Filename string
	Hash     string

	data []byte
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The data is copied.
func NewCartridge(data []byte) (*Cartridge, error) {
	if len(data) == 0 {
		return nil, curated.Errorf("cartridge: %v", "no data")
	}

	cart := &Cartridge{
		data: make([]byte, len(data)),
	}
	copy(cart.data, data)

	return cart, nil
}

// NewCartridgeFromLoader creates a cartridge from a loader, loading the data
// if necessary.
func NewCartridgeFromLoader(cl cartridgeloader.Loader) (*Cartridge, error) {
	if err := cl.Load(); err != nil {
		return nil, curated.Errorf("cartridge: %v", err)
	}

	cart, err := NewCartridge(cl.Data)
	if err != nil {
		return nil, err
	}
	cart.Filename = cl.Filename
	cart.Hash = cl.Hash

	return cart, nil
}

// Size returns the number of bytes in the cartridge.
func (cart *Cartridge) Size() int {
	return len(cart.data)
}

// Data returns the entire cartridge storage. The returned slice is not a copy.
func (cart *Cartridge) Data() []byte {
	return cart.data
}

// Window returns a slice of the storage starting at offset and no longer than
// size. Returns false if the offset is outside of the storage.
func (cart *Cartridge) Window(offset int, size int) ([]byte, bool) {
	if offset < 0 || offset >= len(cart.data) {
		return nil, false
	}
	end := min(offset+size, len(cart.data))
	return cart.data[offset:end], true
}

// Read16 returns the big-endian 16-bit value at the offset. Returns false if
// the value is not entirely within the storage.
func (cart *Cartridge) Read16(offset int) (uint16, bool) {
	if offset < 0 || offset+2 > len(cart.data) {
		return 0, false
	}
	return binary.BigEndian.Uint16(cart.data[offset:]), true
}

// Read32 returns the big-endian 32-bit value at the offset. Returns false if
// the value is not entirely within the storage.
func (cart *Cartridge) Read32(offset int) (uint32, bool) {
	if offset < 0 || offset+4 > len(cart.data) {
		return 0, false
	}
	return binary.BigEndian.Uint32(cart.data[offset:]), true
}

// NumBanks returns the number of banks of the given size. A partial bank at
// the end of the storage counts as a bank.
func (cart *Cartridge) NumBanks(bankSize int) int {
	return (len(cart.data) + bankSize - 1) / bankSize
}
