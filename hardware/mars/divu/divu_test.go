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

package divu_test

import (
	"testing"

	"github.com/jetsetilly/gopher32x/hardware/mars/divu"
	"github.com/jetsetilly/gopher32x/hardware/mars/registers"
	"github.com/jetsetilly/gopher32x/test"
)

func results(regs *registers.Bank, sh2 int) (uint32, uint32, uint32, uint32) {
	return regs.Periph32(sh2, registers.PeriphDVDNTH),
		regs.Periph32(sh2, registers.PeriphDVDNTL),
		regs.Periph32(sh2, registers.PeriphDVDNTUH),
		regs.Periph32(sh2, registers.PeriphDVDNTUL)
}

func TestDivide32(t *testing.T) {
	var regs registers.Bank

	regs.SetPeriph32(1, registers.PeriphDVSR, 7)
	regs.SetPeriph32(1, registers.PeriphDVDNT, uint32(0xffffffff-99)) // -100
	divu.Divide32(&regs, 1)

	rh, ql, ruh, qul := results(&regs, 1)
	test.ExpectEquality(t, int32(regs.Periph32(1, registers.PeriphDVDNT)), -14)
	test.ExpectEquality(t, int32(ql), -14)
	test.ExpectEquality(t, int32(qul), -14)
	test.ExpectEquality(t, int32(rh), -2)
	test.ExpectEquality(t, int32(ruh), -2)

	// the other SH2 is unaffected
	test.ExpectEquality(t, regs.Periph32(0, registers.PeriphDVDNTL), 0)
}

func TestDivide32ByZero(t *testing.T) {
	var regs registers.Bank

	regs.SetPeriph32(0, registers.PeriphDVDNTH, 0x1111)
	regs.SetPeriph32(0, registers.PeriphDVDNTL, 0x2222)
	regs.SetPeriph32(0, registers.PeriphDVDNTUH, 0x3333)
	regs.SetPeriph32(0, registers.PeriphDVDNTUL, 0x4444)
	regs.SetPeriph32(0, registers.PeriphDVDNT, 1234)
	divu.Divide32(&regs, 0)

	rh, ql, ruh, qul := results(&regs, 0)
	test.ExpectEquality(t, rh, 0)
	test.ExpectEquality(t, ql, 0)
	test.ExpectEquality(t, ruh, 0)
	test.ExpectEquality(t, qul, 0)

	// the dividend register is left as written
	test.ExpectEquality(t, regs.Periph32(0, registers.PeriphDVDNT), 1234)
}

func TestDivide64(t *testing.T) {
	var regs registers.Bank

	// 0x1_00000000 / 0x10
	regs.SetPeriph32(0, registers.PeriphDVSR, 0x10)
	regs.SetPeriph32(0, registers.PeriphDVDNTH, 1)
	regs.SetPeriph32(0, registers.PeriphDVDNTL, 5)
	divu.Divide64(&regs, 0)

	rh, ql, ruh, qul := results(&regs, 0)
	test.ExpectEquality(t, ql, 0x10000000)
	test.ExpectEquality(t, qul, 0x10000000)
	test.ExpectEquality(t, rh, 5)
	test.ExpectEquality(t, ruh, 5)
}

func TestDivide64Overflow(t *testing.T) {
	var regs registers.Bank

	regs.SetPeriph32(0, registers.PeriphDVSR, 2)
	regs.SetPeriph32(0, registers.PeriphDVDNTH, 0x10)
	regs.SetPeriph32(0, registers.PeriphDVDNTL, 0)
	divu.Divide64(&regs, 0)
	_, ql, _, qul := results(&regs, 0)
	test.ExpectEquality(t, ql, 0x7fffffff)
	test.ExpectEquality(t, qul, 0x7fffffff)

	// negative overflow
	regs.SetPeriph32(0, registers.PeriphDVSR, 0xffffffff)
	regs.SetPeriph32(0, registers.PeriphDVDNTH, 0x10)
	regs.SetPeriph32(0, registers.PeriphDVDNTL, 0)
	divu.Divide64(&regs, 0)
	_, ql, _, qul = results(&regs, 0)
	test.ExpectEquality(t, ql, 0x80000000)
	test.ExpectEquality(t, qul, 0x80000000)

	// a negative result that fits is not clamped
	regs.SetPeriph32(0, registers.PeriphDVSR, 0xffffffff)
	regs.SetPeriph32(0, registers.PeriphDVDNTH, 0)
	regs.SetPeriph32(0, registers.PeriphDVDNTL, 100)
	divu.Divide64(&regs, 0)
	_, ql, _, _ = results(&regs, 0)
	test.ExpectEquality(t, int32(ql), -100)
}

func TestDivide64ByZero(t *testing.T) {
	var regs registers.Bank

	regs.SetPeriph32(0, registers.PeriphDVDNTH, 0x10)
	regs.SetPeriph32(0, registers.PeriphDVDNTL, 0x20)
	divu.Divide64(&regs, 0)
	rh, ql, ruh, qul := results(&regs, 0)
	test.ExpectEquality(t, rh|ql|ruh|qul, 0)
}
