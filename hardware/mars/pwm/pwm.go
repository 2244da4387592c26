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

package pwm

import (
	"fmt"

	"github.com/jetsetilly/gopher32x/logger"
)

// Mixer implementations receive the output of the PWM.
type Mixer interface {
	SetSample(left int16, right int16) error
}

// Register offsets relative to the start of the PWM registers.
const (
	Control = 0x00
	Cycle   = 0x02
	Left    = 0x04
	Right   = 0x06
	Mono    = 0x08
)

// Status bits returned by reads of the channel registers.
const (
	StatusFull  = 1 << 15
	StatusEmpty = 1 << 14
)

// depth of each channel FIFO
const fifoDepth = 3

type fifo struct {
	samples [fifoDepth]uint16
	count   int

	// the most recent sample popped. output when the FIFO is empty
	current uint16
}

func (f *fifo) push(v uint16) {
	if f.count == fifoDepth {
		// a full FIFO overwrites the newest sample
		f.samples[fifoDepth-1] = v
		return
	}
	f.samples[f.count] = v
	f.count++
}

func (f *fifo) pop() uint16 {
	if f.count > 0 {
		f.current = f.samples[0]
		copy(f.samples[:], f.samples[1:])
		f.count--
	}
	return f.current
}

func (f *fifo) status() uint16 {
	var s uint16
	if f.count == fifoDepth {
		s |= StatusFull
	}
	if f.count == 0 {
		s |= StatusEmpty
	}
	return s
}

// PWM is the state of the PWM sound source.
type PWM struct {
	env logger.Permission

	ctrl  uint16
	cycle uint16

	left  fifo
	right fifo

	// SH2 cycles since the last sample was output
	counter int

	// samples output since the last interrupt request
	samples int

	// the most recent value written to each channel register. used to
	// combine 8-bit writes
	latch [3]uint16

	mixer Mixer
}

// NewPWM is the preferred method of initialisation for the PWM type.
func NewPWM(env logger.Permission) *PWM {
	return &PWM{env: env}
}

func (p *PWM) String() string {
	return fmt.Sprintf("ctrl=%04x cycle=%04x fifo=%d/%d tm=%d/%d", p.ctrl, p.cycle,
		p.left.count, p.right.count, p.samples, p.interval())
}

// Snapshot creates a copy of the PWM in its current state. The mixer is not
// part of the snapshot.
func (p *PWM) Snapshot() *PWM {
	n := *p
	n.mixer = nil
	return &n
}

// Plumb a permission and mixer into the PWM after it has been created by
// Snapshot().
func (p *PWM) Plumb(env logger.Permission, mixer Mixer) {
	p.env = env
	p.mixer = mixer
}

// AttachMixer sets the mixer that receives samples. A nil value detaches any
// existing mixer.
func (p *PWM) AttachMixer(mixer Mixer) {
	p.mixer = mixer
}

// Reset the PWM to its power on state.
func (p *PWM) Reset() {
	*p = PWM{env: p.env, mixer: p.mixer}
}

// the number of SH2 cycles for each sample. zero means the PWM is stopped
func (p *PWM) period() int {
	return int((p.cycle - 1) & 0x0fff)
}

// the number of samples between interrupt requests
func (p *PWM) interval() int {
	tm := int(p.ctrl>>8) & 0x0f
	if tm == 0 {
		return 16
	}
	return tm
}

// Running returns true if the PWM is producing samples.
func (p *PWM) Running() bool {
	return p.period() > 0 && p.ctrl&0x0f != 0
}

// SampleRate returns the number of samples per second for the SH2 clock
// frequency. Returns zero if the PWM is stopped.
func (p *PWM) SampleRate(clock int) int {
	if p.period() == 0 {
		return 0
	}
	return clock / p.period()
}

// Read the PWM register at the offset.
func (p *PWM) Read(offset uint32) uint16 {
	switch offset & 0x0e {
	case Control:
		return p.ctrl
	case Cycle:
		return p.cycle
	case Left:
		return p.left.status()
	case Right:
		return p.right.status()
	case Mono:
		return p.left.status() | p.right.status()
	}
	return 0
}

// Write the 16-bit value to the PWM register at the offset.
func (p *PWM) Write(offset uint32, data uint16) {
	switch offset & 0x0e {
	case Control:
		p.ctrl = data & 0x0f8f
	case Cycle:
		p.cycle = data & 0x0fff
		p.counter = 0
	case Left:
		p.latch[0] = data
		p.left.push(data & 0x0fff)
	case Right:
		p.latch[1] = data
		p.right.push(data & 0x0fff)
	case Mono:
		p.latch[2] = data
		p.left.push(data & 0x0fff)
		p.right.push(data & 0x0fff)
	default:
		logger.Logf(p.env, "pwm", "write to unused register %02x", offset)
	}
}

// Write8 writes the byte to the PWM register at the offset. An even offset
// addresses the high byte of the register. Only a write to the low byte of
// a channel register pushes a sample.
func (p *PWM) Write8(offset uint32, data uint8) {
	var w uint16
	var latch *uint16

	switch offset & 0x0e {
	case Control:
		w = p.ctrl
	case Cycle:
		w = p.cycle
	case Left:
		latch = &p.latch[0]
	case Right:
		latch = &p.latch[1]
	case Mono:
		latch = &p.latch[2]
	}
	if latch != nil {
		w = *latch
	}

	if offset&1 == 0 {
		w = (w & 0x00ff) | uint16(data)<<8
		if latch != nil {
			*latch = w
			return
		}
	} else {
		w = (w & 0xff00) | uint16(data)
	}
	p.Write(offset, w)
}

// convert a pulse width to a signed sample
func (p *PWM) convert(v uint16) int16 {
	half := p.period() / 2
	if half == 0 {
		return 0
	}
	s := (int(v) - half) * 0x7fff / half
	return int16(max(min(s, 0x7fff), -0x8000))
}

// Step the PWM by the number of SH2 cycles. Returns true if an interrupt
// should be requested.
func (p *PWM) Step(cycles int) bool {
	if !p.Running() {
		return false
	}

	var irq bool

	period := p.period()
	p.counter += cycles
	for p.counter >= period {
		p.counter -= period

		l := p.left.pop()
		r := p.right.pop()

		// the mode bits of each channel select the source FIFO
		var left, right int16
		switch p.ctrl & 0x03 {
		case 1:
			left = p.convert(l)
		case 2:
			left = p.convert(r)
		}
		switch (p.ctrl >> 2) & 0x03 {
		case 1:
			right = p.convert(r)
		case 2:
			right = p.convert(l)
		}

		if p.mixer != nil {
			if err := p.mixer.SetSample(left, right); err != nil {
				logger.Log(p.env, "pwm", err)
			}
		}

		p.samples++
		if p.samples >= p.interval() {
			p.samples = 0
			irq = true
		}
	}

	return irq
}

// CyclesToInterrupt returns the number of SH2 cycles until the next interrupt
// request. Returns -1 if the PWM is stopped.
func (p *PWM) CyclesToInterrupt() int {
	if !p.Running() {
		return -1
	}
	return (p.interval()-p.samples)*p.period() - p.counter
}
