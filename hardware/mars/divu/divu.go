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

// Package divu implements the division unit of the SH2 on-chip peripherals.
// A division is performed immediately when the dividend register is written.
package divu

import "github.com/jetsetilly/gopher32x/hardware/mars/registers"

// Divide32 performs the signed division of the DVDNT register by the DVSR
// register. The quotient is placed in DVDNT, DVDNTL and DVDNTUL and the
// remainder in DVDNTH and DVDNTUH.
//
// Division by zero leaves the quotient in DVDNT unchanged and zeroes the
// other result registers.
func Divide32(regs *registers.Bank, sh2 int) {
	divisor := int32(regs.Periph32(sh2, registers.PeriphDVSR))
	dividend := int32(regs.Periph32(sh2, registers.PeriphDVDNT))

	if divisor == 0 {
		zero(regs, sh2)
		return
	}

	q := uint32(dividend / divisor)
	r := uint32(dividend % divisor)

	regs.SetPeriph32(sh2, registers.PeriphDVDNTH, r)
	regs.SetPeriph32(sh2, registers.PeriphDVDNTUH, r)
	regs.SetPeriph32(sh2, registers.PeriphDVDNT, q)
	regs.SetPeriph32(sh2, registers.PeriphDVDNTL, q)
	regs.SetPeriph32(sh2, registers.PeriphDVDNTUL, q)
}

// Divide64 performs the signed division of the 64-bit value in DVDNTH and
// DVDNTL by the DVSR register. The quotient is placed in DVDNTL and DVDNTUL
// and the remainder in DVDNTH and DVDNTUH.
//
// A quotient that does not fit in 32 bits is clamped to 0x7fffffff or
// 0x80000000 depending on its sign. Division by zero zeroes the result
// registers.
func Divide64(regs *registers.Bank, sh2 int) {
	divisor := int64(int32(regs.Periph32(sh2, registers.PeriphDVSR)))
	hi := uint64(regs.Periph32(sh2, registers.PeriphDVDNTH))
	lo := uint64(regs.Periph32(sh2, registers.PeriphDVDNTL))
	dividend := int64(hi<<32 | lo)

	if divisor == 0 {
		zero(regs, sh2)
		return
	}

	q := dividend / divisor
	r := uint32(dividend % divisor)

	regs.SetPeriph32(sh2, registers.PeriphDVDNTH, r)
	regs.SetPeriph32(sh2, registers.PeriphDVDNTUH, r)

	quotient := uint32(q)
	if o := q >> 31; o != 0 && o != -1 {
		if o > 0 {
			quotient = 0x7fffffff
		} else {
			quotient = 0x80000000
		}
	}
	regs.SetPeriph32(sh2, registers.PeriphDVDNTL, quotient)
	regs.SetPeriph32(sh2, registers.PeriphDVDNTUL, quotient)
}

func zero(regs *registers.Bank, sh2 int) {
	regs.SetPeriph32(sh2, registers.PeriphDVDNTH, 0)
	regs.SetPeriph32(sh2, registers.PeriphDVDNTL, 0)
	regs.SetPeriph32(sh2, registers.PeriphDVDNTUH, 0)
	regs.SetPeriph32(sh2, registers.PeriphDVDNTUL, 0)
}
