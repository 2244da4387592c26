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

package mars

import (
	"github.com/jetsetilly/gopher32x/hardware/mars/poll"
	"github.com/jetsetilly/gopher32x/hardware/mars/registers"
	"github.com/jetsetilly/gopher32x/hardware/processor"
	"github.com/jetsetilly/gopher32x/logger"
)

// Event is a change of state scheduled to happen at a specific time.
type Event int

// List of valid Event values.
const (
	// end of a VDP fill operation
	EventFillEnd Event = iota

	// the PWM is due to request an interrupt
	EventPWM

	numEvents
)

func (ev Event) String() string {
	switch ev {
	case EventFillEnd:
		return "fill end"
	case EventPWM:
		return "pwm"
	}
	return "unknown event"
}

type event struct {
	Enabled bool

	// time of event in primary processor cycles
	Time uint32
}

// schedule the event to happen after the number of primary cycles
func (m *Mars) schedule(ev Event, now uint32, after int) {
	m.state.Events[ev] = event{
		Enabled: true,
		Time:    now + uint32(after),
	}
}

// EventPending returns true and the time of the event if it is scheduled.
func (m *Mars) EventPending(ev Event) (uint32, bool) {
	e := m.state.Events[ev]
	return e.Time, e.Enabled
}

// the earliest scheduled event that happens at or before the target
func (m *Mars) nextEvent(target uint32) (Event, uint32, bool) {
	found := false
	var next Event
	var t uint32

	for ev := range numEvents {
		e := m.state.Events[ev]
		if !e.Enabled || processor.CyclesAfter(e.Time, target) {
			continue
		}
		if !found || processor.CyclesAfter(t, e.Time) {
			found = true
			next = ev
			t = e.Time
		}
	}

	return next, t, found
}

func (m *Mars) handleEvent(ev Event, now uint32) {
	m.state.Events[ev].Enabled = false

	switch ev {
	case EventFillEnd:
		m.state.Regs.VDP[registers.VDPFBCtrl/2] &^= registers.NFEN
	case EventPWM:
		m.state.Flags &^= poll.PWMPending
		m.updatePWM(now)
	default:
		logger.Logf(m.env, AnomalyTag, "unhandled event (%d)", ev)
	}
}

// schedule an event for the next PWM interrupt
func (m *Mars) schedulePWM(now uint32) {
	c := m.state.PWM.CyclesToInterrupt()
	if c < 0 {
		return
	}

	mult := m.multiplier()
	m.schedule(EventPWM, now, (c+mult-1)/mult)
	m.state.Flags |= poll.PWMPending
}

// run the PWM to the time in primary cycles
func (m *Mars) updatePWM(now uint32) {
	if !processor.CyclesAfter(now, m.state.PWMSynced) {
		return
	}

	elapsed := processor.CyclesSince(now, m.state.PWMSynced)
	m.state.PWMSynced = now

	if m.state.PWM.Step(int(elapsed) * m.multiplier()) {
		m.state.Regs.IRQShared |= registers.IRQPWM
		m.updateIRLs()
	}
}
