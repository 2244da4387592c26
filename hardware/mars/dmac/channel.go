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

import (
	"fmt"

	"github.com/jetsetilly/gopher32x/hardware/mars/registers"
)

// FIFOAddress is the source address of a channel that reads from the FIFO.
// It is the address of the FIFO register as seen by the SH2.
const FIFOAddress = 0x20004012

// TE is the transfer end bit of the channel control register.
const TE = 1 << 1

// Channel is a view of channel zero of the DMA controller of the master SH2
// along with the FIFO that feeds it.
type Channel struct {
	regs *registers.Bank
	FIFO FIFO
}

// NewChannel is the preferred method of initialisation for the Channel type.
func NewChannel(regs *registers.Bank) *Channel {
	return &Channel{regs: regs}
}

// Plumb a new register bank into the channel.
func (ch *Channel) Plumb(regs *registers.Bank) {
	ch.regs = regs
}

func (ch *Channel) String() string {
	return fmt.Sprintf("sar=%08x dar=%08x tcr=%06x chcr=%08x dmaor=%08x fifo=%d",
		ch.Source(), ch.Destination(), ch.Count(), ch.Control(), ch.regs.Periph32(0, registers.PeriphDMAOR),
		ch.FIFO.Len())
}

// Source returns the source address register.
func (ch *Channel) Source() uint32 {
	return ch.regs.Periph32(0, registers.PeriphSAR0)
}

// Destination returns the destination address register.
func (ch *Channel) Destination() uint32 {
	return ch.regs.Periph32(0, registers.PeriphDAR0)
}

// Count returns the transfer count register.
func (ch *Channel) Count() uint32 {
	return ch.regs.Periph32(0, registers.PeriphTCR0)
}

// Control returns the channel control register.
func (ch *Channel) Control() uint32 {
	return ch.regs.Periph32(0, registers.PeriphCHCR0)
}

// Enabled returns true if the channel and the controller are both enabled
// and the transfer end bit is clear.
func (ch *Channel) Enabled() bool {
	return ch.Control()&3 == 1 && ch.regs.Periph32(0, registers.PeriphDMAOR)&1 == 1
}

// Programmed is called after the SH2 has written to the channel control
// register or the operations register. The transfer count is a 24-bit value.
// Returns true if the channel reads from the FIFO and there are enough
// staged words for a transfer.
func (ch *Channel) Programmed() bool {
	ch.regs.SetPeriph32(0, registers.PeriphTCR0, ch.Count()&0xffffff)
	return ch.Source() == FIFOAddress && ch.FIFO.Ready()
}

// Result of a transfer.
type Result struct {
	// number of words written
	Words int

	// the transfer count and the DREQ length register differed at the start
	// of the transfer
	Mismatch   bool
	TCR        uint32
	DREQLength uint16

	// the transfer count reached zero
	Complete bool
}

// Transfer staged words to the destination with the write function. The
// DREQ length register is decremented in step with the transfer count.
// Transfer stops when either length reaches zero or the FIFO is empty.
func (ch *Channel) Transfer(dreqLen *uint16, write func(address uint32, data uint16)) Result {
	r := Result{
		TCR:        ch.Count(),
		DREQLength: *dreqLen,
	}
	r.Mismatch = r.TCR != uint32(r.DREQLength)

	dar := ch.Destination()
	tcr := ch.Count()
	for tcr > 0 && *dreqLen > 0 {
		w, ok := ch.FIFO.Pop()
		if !ok {
			break
		}
		write(dar, w)
		dar += 2
		tcr--
		*dreqLen--
		r.Words++
	}
	ch.regs.SetPeriph32(0, registers.PeriphDAR0, dar)
	ch.regs.SetPeriph32(0, registers.PeriphTCR0, tcr)

	if tcr == 0 {
		ch.regs.SetPeriph32(0, registers.PeriphCHCR0, ch.Control()|TE)
		r.Complete = true
	}

	return r
}
