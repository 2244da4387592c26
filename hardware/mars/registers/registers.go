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

package registers

import "fmt"

// Bank is the complete register state of the 32X hardware.
type Bank struct {
	// system registers shared by all processors. the comm ports are words
	// 0x10 to 0x17
	System [32]uint16

	// VDP registers
	VDP [8]uint16

	// registers only visible to the SH2 processors. see SH2Ctrl and
	// SH2HCount
	SH2 [3]uint16

	// interrupt mask register of each SH2
	IRQMask [2]uint8

	// pending interrupts shared by both SH2s
	IRQShared uint8

	// pending interrupts specific to an SH2. only the CMD interrupt is
	// raised this way
	IRQCPU [2]uint8

	// on-chip peripheral registers of each SH2
	Peripherals [2][PeriphBlockLen / 4]uint32

	// colour palette
	Palette [256]uint16
}

func (b *Bank) String() string {
	return fmt.Sprintf("adapter=%04x int=%04x bank=%04x dreq=%04x mode=%04x fb=%04x",
		b.System[AdapterCtrl/2], b.System[IntCtrl/2], b.System[BankSet/2],
		b.System[DREQCtrl/2], b.VDP[VDPMode/2], b.VDP[VDPFBCtrl/2])
}

// Reset all registers to zero.
func (b *Bank) Reset() {
	*b = Bank{}
}

// Word returns the 16-bit register at the byte offset. The lowest bit of the
// offset is ignored.
func Word(regs []uint16, offset uint32) uint16 {
	return regs[offset>>1]
}

// SetWord sets the 16-bit register at the byte offset. The lowest bit of the
// offset is ignored.
func SetWord(regs []uint16, offset uint32, data uint16) {
	regs[offset>>1] = data
}

// Byte returns the byte at the offset. An even offset addresses the high
// byte of the register.
func Byte(regs []uint16, offset uint32) uint8 {
	w := regs[offset>>1]
	if offset&1 == 0 {
		return uint8(w >> 8)
	}
	return uint8(w)
}

// SetByte sets the byte at the offset, leaving the other byte of the register
// unchanged.
func SetByte(regs []uint16, offset uint32, data uint8) {
	w := &regs[offset>>1]
	if offset&1 == 0 {
		*w = (*w & 0x00ff) | uint16(data)<<8
	} else {
		*w = (*w & 0xff00) | uint16(data)
	}
}

// Comm returns the comm port byte. The offset is relative to the start of
// the comm ports.
func (b *Bank) Comm(offset uint32) uint8 {
	return Byte(b.System[:], CommStart+offset&0x0f)
}

// IsComm returns true if the byte offset into the system registers addresses
// a comm port.
func IsComm(offset uint32) bool {
	return offset&0x30 == 0x20
}

// IsPWM returns true if the byte offset into the system registers addresses
// a PWM register.
func IsPWM(offset uint32) bool {
	return offset&0x30 == 0x30
}

// Periph8 returns the byte of the on-chip peripheral block of the SH2.
func (b *Bank) Periph8(sh2 int, offset uint32) uint8 {
	offset &= PeriphBlockLen - 1
	return uint8(b.Peripherals[sh2][offset>>2] >> ((3 - offset&3) * 8))
}

// SetPeriph8 sets the byte of the on-chip peripheral block of the SH2.
func (b *Bank) SetPeriph8(sh2 int, offset uint32, data uint8) {
	offset &= PeriphBlockLen - 1
	s := (3 - offset&3) * 8
	w := &b.Peripherals[sh2][offset>>2]
	*w = (*w &^ (0xff << s)) | uint32(data)<<s
}

// Periph16 returns the 16-bit value of the on-chip peripheral block of the
// SH2. The lowest bit of the offset is ignored.
func (b *Bank) Periph16(sh2 int, offset uint32) uint16 {
	offset &= PeriphBlockLen - 2
	return uint16(b.Peripherals[sh2][offset>>2] >> ((2 - offset&2) * 8))
}

// SetPeriph16 sets the 16-bit value of the on-chip peripheral block of the
// SH2. The lowest bit of the offset is ignored.
func (b *Bank) SetPeriph16(sh2 int, offset uint32, data uint16) {
	offset &= PeriphBlockLen - 2
	s := (2 - offset&2) * 8
	w := &b.Peripherals[sh2][offset>>2]
	*w = (*w &^ (0xffff << s)) | uint32(data)<<s
}

// Periph32 returns the 32-bit value of the on-chip peripheral block of the
// SH2. The lowest two bits of the offset are ignored.
func (b *Bank) Periph32(sh2 int, offset uint32) uint32 {
	return b.Peripherals[sh2][(offset&(PeriphBlockLen-1))>>2]
}

// SetPeriph32 sets the 32-bit value of the on-chip peripheral block of the
// SH2. The lowest two bits of the offset are ignored.
func (b *Bank) SetPeriph32(sh2 int, offset uint32, data uint32) {
	b.Peripherals[sh2][(offset&(PeriphBlockLen-1))>>2] = data
}
