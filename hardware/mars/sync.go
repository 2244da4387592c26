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
	"github.com/jetsetilly/gopher32x/hardware/mars/registers"
	"github.com/jetsetilly/gopher32x/hardware/processor"
)

// upper limit on the number of times an SH2 is run to reach the target of a
// single synchronisation
const maxRunsPerSync = 64

// SyncSH2s runs both SH2 processors until they reach the target time. The
// target is measured in cycles of the primary processor. An SH2 that is
// already at or beyond the target is not run. Scheduled events that are due
// before the target are handled in time order.
//
// Nothing happens while the SH2 processors are being held in reset.
func (m *Mars) SyncSH2s(target uint32) {
	if m.state.Regs.System[registers.AdapterCtrl/2]&registers.NRES == 0 {
		return
	}

	for {
		ev, t, ok := m.nextEvent(target)
		if !ok {
			break
		}
		m.runSH2(processor.Master, t)
		m.runSH2(processor.Slave, t)
		m.handleEvent(ev, t)
	}

	m.runSH2(processor.Master, target)
	m.runSH2(processor.Slave, target)
	m.updatePWM(target)
}

// run a single SH2 to the target time
func (m *Mars) runSH2(id processor.ID, target uint32) {
	idx := id.SH2()
	mult := m.multiplier()

	for range maxRunsPerSync {
		done := m.state.Synced[idx]
		if !processor.CyclesAfter(target, done) {
			return
		}

		// polling processors are moved forward without running
		if m.detector(id).PollingAny() {
			m.state.Synced[idx] = target
			return
		}

		behind := int(processor.CyclesSince(target, done))
		consumed := m.sh2[idx].Run(behind * mult)
		if consumed <= 0 {
			m.state.Synced[idx] = target
			return
		}

		advance := (consumed + mult - 1) / mult
		if advance >= behind {
			m.state.Synced[idx] = target
			return
		}
		m.state.Synced[idx] = done + uint32(advance)
	}

	m.state.Synced[idx] = target
}

// Synced returns the time, in primary processor cycles, that the SH2 has
// been run to.
func (m *Mars) Synced(id processor.ID) uint32 {
	return m.state.Synced[id.SH2()]
}

// sync the SH2s if the master is further behind the primary processor than
// the threshold
func (m *Mars) syncIfBehind(now uint32, threshold int) {
	if int32(now-m.state.Synced[0]) > int32(threshold) {
		m.SyncSH2s(now)
	}
}
