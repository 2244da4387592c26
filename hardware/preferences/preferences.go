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

package preferences

import (
	"github.com/jetsetilly/gopher32x/curated"
	"github.com/jetsetilly/gopher32x/prefs"
	"github.com/jetsetilly/gopher32x/resources"
)

// the name of the preferences file in the resources directory
const prefsFile = "preferences"

// Preferences defines and collates all the preference values used by the
// 32X bus subsystem.
//
// The default values are the tuned values that games have been found to
// require. Changing them is a compatibility risk.
type Preferences struct {
	dsk *prefs.Disk

	// the primary processor reading a comm port will synchronise the SH2s if
	// they are further behind than this number of primary cycles
	SyncCommRead prefs.Int

	// threshold for a primary read of the interrupt mask registers
	SyncIntRead prefs.Int

	// threshold for a primary comm port write. the write will always
	// synchronise if the previous write has not been seen by an SH2
	SyncCommWrite prefs.Int

	// number of consecutive qualifying accesses before a processor is
	// considered to be polling
	PollThreshold prefs.Int

	// maximum number of cycles between two accesses for the second access
	// to qualify as part of a poll loop
	PollGapPrimary prefs.Int
	PollGapMaster  prefs.Int
	PollGapSlave   prefs.Int

	// number of SH2 cycles for every primary cycle
	SH2CycleMultiplier prefs.Int

	// PAL console. the nPAL bit in the VDP register is clear when this is
	// true
	PAL prefs.Bool

	// perform the work of the BIOS when BIOS images have not been supplied
	HLE prefs.Bool
}

func (p *Preferences) String() string {
	return "mars preferences"
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are set to their defaults and then to the values in the
// preferences file. Values on the command line stack take precedence over both.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.setHooks()
	p.SetDefaults()

	pth, err := resources.JoinPath(prefsFile)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	for _, v := range []struct {
		key string
		p   interface {
			Set(prefs.Value) error
			Get() prefs.Value
			Reset() error
			String() string
		}
	}{
		{key: "mars.sync.commRead", p: &p.SyncCommRead},
		{key: "mars.sync.intRead", p: &p.SyncIntRead},
		{key: "mars.sync.commWrite", p: &p.SyncCommWrite},
		{key: "mars.poll.threshold", p: &p.PollThreshold},
		{key: "mars.poll.gap.primary", p: &p.PollGapPrimary},
		{key: "mars.poll.gap.master", p: &p.PollGapMaster},
		{key: "mars.poll.gap.slave", p: &p.PollGapSlave},
		{key: "mars.sh2.cycleMultiplier", p: &p.SH2CycleMultiplier},
		{key: "mars.pal", p: &p.PAL},
		{key: "mars.hle", p: &p.HLE},
	} {
		err = p.dsk.Add(v.key, v.p)
		if err != nil {
			return nil, curated.Errorf("preferences: %v", err)
		}
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, curated.Errorf("preferences: %v", err)
	}

	return p, nil
}

// NewEphemeral returns preferences that are set to the default values and
// which are never loaded from or saved to disk. The command line stack is
// ignored.
func NewEphemeral() *Preferences {
	p := &Preferences{}
	p.setHooks()
	p.SetDefaults()
	return p
}

// range checks for the integer values. a refused value leaves the preference
// unchanged
func (p *Preferences) setHooks() {
	atLeast := func(key string, min int) func(prefs.Value) error {
		return func(v prefs.Value) error {
			if n, ok := v.(int); ok && n < min {
				return curated.Errorf("preferences: %s must be at least %d", key, min)
			}
			return nil
		}
	}

	p.SyncCommRead.SetHookPre(atLeast("mars.sync.commRead", 0))
	p.SyncIntRead.SetHookPre(atLeast("mars.sync.intRead", 0))
	p.SyncCommWrite.SetHookPre(atLeast("mars.sync.commWrite", 0))
	p.PollThreshold.SetHookPre(atLeast("mars.poll.threshold", 1))
	p.PollGapPrimary.SetHookPre(atLeast("mars.poll.gap.primary", 0))
	p.PollGapMaster.SetHookPre(atLeast("mars.poll.gap.master", 0))
	p.PollGapSlave.SetHookPre(atLeast("mars.poll.gap.slave", 0))
	p.SH2CycleMultiplier.SetHookPre(atLeast("mars.sh2.cycleMultiplier", 1))
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	p.SyncCommRead.Set(500)
	p.SyncIntRead.Set(64)
	p.SyncCommWrite.Set(120)
	p.PollThreshold.Set(6)
	p.PollGapPrimary.Set(64)
	p.PollGapMaster.Set(21)
	p.PollGapSlave.Set(16)
	p.SH2CycleMultiplier.Set(3)
	p.PAL.Set(false)
	p.HLE.Set(true)
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
