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

// Byte offsets of the system registers. The primary processor sees them at
// $a15100 and the SH2 processors at $4000.
const (
	AdapterCtrl = 0x00
	IntCtrl     = 0x02
	BankSet     = 0x04
	DREQCtrl    = 0x06
	DREQSrc     = 0x08
	DREQDst     = 0x0c
	DREQLen     = 0x10
	FIFO        = 0x12
	VRESClear   = 0x14
	VINTClear   = 0x16
	HINTClear   = 0x18
	CMDClear    = 0x1a
	PWMClear    = 0x1c
	CommStart   = 0x20
	CommEnd     = 0x2f
	PWMStart    = 0x30
	PWMEnd      = 0x3f
)

// Bits of the adapter control register.
const (
	FM    = 1 << 15
	NCart = 1 << 8
	REN   = 1 << 7
	NRES  = 1 << 1
	ADEN  = 1 << 0
)

// Bits of the DREQ control register.
const (
	FULL = 1 << 7
	S68  = 1 << 2
	DMA  = 1 << 1
	RV   = 1 << 0
)

// Byte offsets of the VDP registers. The primary processor sees them at
// $a15180 and the SH2 processors at $4100.
const (
	VDPMode      = 0x00
	VDPShift     = 0x02
	VDPFillLen   = 0x04
	VDPFillStart = 0x06
	VDPFillData  = 0x08
	VDPFBCtrl    = 0x0a
)

// Bits of the VDP mode register.
const (
	NPAL = 1 << 15
	PRI  = 1 << 7
	Mx   = 3
)

// Bits of the VDP framebuffer control register.
const (
	VBLK = 1 << 15
	HBLK = 1 << 14
	PEN  = 1 << 13
	NFEN = 1 << 1
	FS   = 1 << 0
)

// The SH2 only registers. Indexes into the Bank.SH2 array.
const (
	// the HEN bit of the interrupt mask register
	SH2Ctrl = 0

	// the H count register
	SH2HCount = 2
)

// Bits of the SH2 adapter control register. HEN is written with the
// interrupt mask and SH2ADEN is set when the adapter is enabled.
const (
	SH2ADEN = 1 << 9
	HEN     = 0x80
)

// Interrupt sources. The interrupt level of a source is twice the index of
// its bit.
const (
	IRQVRES = 1 << 7
	IRQVINT = 1 << 6
	IRQHINT = 1 << 5
	IRQCMD  = 1 << 4
	IRQPWM  = 1 << 3
)

// Byte offsets into the SH2 on-chip peripheral block. The block is seen by
// the SH2 at $fffffe00.
const (
	PeriphSCISMR   = 0x000
	PeriphSCISCR   = 0x002
	PeriphSCITDR   = 0x003
	PeriphSCISSR   = 0x004
	PeriphIPRB     = 0x060
	PeriphVCRA     = 0x062
	PeriphVCRB     = 0x063
	PeriphWDT      = 0x080
	PeriphDVSR     = 0x100
	PeriphDVDNT    = 0x104
	PeriphDVCR     = 0x108
	PeriphDVDNTH   = 0x110
	PeriphDVDNTL   = 0x114
	PeriphDVDNTUH  = 0x118
	PeriphDVDNTUL  = 0x11c
	PeriphSAR0     = 0x180
	PeriphDAR0     = 0x184
	PeriphTCR0     = 0x188
	PeriphCHCR0    = 0x18c
	PeriphDMAOR    = 0x1b0
	PeriphBlockLen = 0x200
)
