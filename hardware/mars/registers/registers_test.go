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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher32x/hardware/mars/registers"
	"github.com/jetsetilly/gopher32x/test"
)

func TestByteAccess(t *testing.T) {
	var b registers.Bank

	registers.SetWord(b.System[:], registers.CommStart, 0x1234)
	test.ExpectEquality(t, registers.Byte(b.System[:], registers.CommStart), 0x12)
	test.ExpectEquality(t, registers.Byte(b.System[:], registers.CommStart+1), 0x34)
	test.ExpectEquality(t, b.Comm(0), 0x12)

	registers.SetByte(b.System[:], registers.CommStart+1, 0xff)
	test.ExpectEquality(t, registers.Word(b.System[:], registers.CommStart), 0x12ff)

	registers.SetByte(b.System[:], registers.CommStart, 0xab)
	test.ExpectEquality(t, registers.Word(b.System[:], registers.CommStart+1), 0xabff)

	test.ExpectSuccess(t, registers.IsComm(registers.CommStart+3))
	test.ExpectFailure(t, registers.IsComm(registers.PWMStart))
	test.ExpectSuccess(t, registers.IsPWM(registers.PWMStart+6))
}

func TestPeripheralAccess(t *testing.T) {
	var b registers.Bank

	b.SetPeriph32(0, registers.PeriphDVSR, 0x11223344)
	test.ExpectEquality(t, b.Periph8(0, registers.PeriphDVSR), 0x11)
	test.ExpectEquality(t, b.Periph8(0, registers.PeriphDVSR+3), 0x44)
	test.ExpectEquality(t, b.Periph16(0, registers.PeriphDVSR), 0x1122)
	test.ExpectEquality(t, b.Periph16(0, registers.PeriphDVSR+2), 0x3344)

	b.SetPeriph16(0, registers.PeriphDVSR+2, 0xaabb)
	test.ExpectEquality(t, b.Periph32(0, registers.PeriphDVSR), 0x1122aabb)

	b.SetPeriph8(0, registers.PeriphDVSR+1, 0x00)
	test.ExpectEquality(t, b.Periph32(0, registers.PeriphDVSR), 0x1100aabb)

	// peripheral blocks are independent
	test.ExpectEquality(t, b.Periph32(1, registers.PeriphDVSR), 0)

	b.Reset()
	test.ExpectEquality(t, b.Periph32(0, registers.PeriphDVSR), 0)
}
