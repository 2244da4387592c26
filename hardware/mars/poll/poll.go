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

package poll

import (
	"fmt"
	"strings"
)

// Flags records which processors are spinning.
type Flags uint8

// List of valid Flags bits. The flags for polling the VDP registers are the
// register flags shifted left by VDPShift.
const (
	Primary Flags = 1 << 0
	Master  Flags = 1 << 1
	Slave   Flags = 1 << 2

	PrimaryVDP Flags = Primary << VDPShift
	MasterVDP  Flags = Master << VDPShift
	SlaveVDP   Flags = Slave << VDPShift

	// a PWM event is pending. not a poll flag but shares the storage
	PWMPending Flags = 1 << 6
)

// VDPShift is the distance between a register flag and its VDP equivalent.
const VDPShift = 3

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	s := strings.Builder{}
	for _, b := range []struct {
		f    Flags
		name string
	}{
		{f: Primary, name: "primary"},
		{f: Master, name: "master"},
		{f: Slave, name: "slave"},
		{f: PrimaryVDP, name: "primary(vdp)"},
		{f: MasterVDP, name: "master(vdp)"},
		{f: SlaveVDP, name: "slave(vdp)"},
		{f: PWMPending, name: "pwm"},
	} {
		if f&b.f == b.f {
			if s.Len() > 0 {
				s.WriteString("|")
			}
			s.WriteString(b.name)
		}
	}
	return s.String()
}

// Class of register being polled.
type Class int

// List of valid Class values.
const (
	Registers Class = iota
	VDP
)

// DefaultThreshold is the number of consecutive qualifying accesses required
// before a processor is considered to be polling.
const DefaultThreshold = 6

// Detector is the state of poll detection for a single processor.
type Detector struct {
	// address and cycle count of the most recent access
	Addr   uint32
	Cycles uint32

	// maximum number of cycles between accesses for an access to qualify
	MaxGap uint32

	// number of consecutive qualifying accesses
	Count int

	// number of qualifying accesses required
	Threshold int

	// the flag owned by the detector. VDP polling sets the flag shifted by
	// VDPShift
	Flag Flags

	// the flags of all processors. shared between the detectors of the
	// subsystem
	flags *Flags
}

// NewDetector is the preferred method of initialisation for the Detector type.
func NewDetector(flags *Flags, flag Flags, maxGap uint32, threshold int) *Detector {
	return &Detector{
		flags:     flags,
		Flag:      flag,
		MaxGap:    maxGap,
		Threshold: threshold,
	}
}

func (pd *Detector) String() string {
	return fmt.Sprintf("%s: addr=%08x cycles=%d count=%d", pd.Flag, pd.Addr, pd.Cycles, pd.Count)
}

// Plumb a new flags instance into the detector.
func (pd *Detector) Plumb(flags *Flags) {
	pd.flags = flags
}

func (pd *Detector) flag(class Class) Flags {
	if class == VDP {
		return pd.Flag << VDPShift
	}
	return pd.Flag
}

// Detect records an access to the address at the cycle count. Returns true
// only on the access that causes the flag to be set. The caller should end
// the timeslice of the processor when true is returned.
func (pd *Detector) Detect(addr uint32, cycles uint32, class Class) bool {
	var fired bool

	flag := pd.flag(class)

	// the tolerance test and the gap test use wrapping arithmetic
	if addr-2 <= pd.Addr && pd.Addr <= addr+2 && cycles-pd.Cycles <= pd.MaxGap {
		pd.Count++
		if pd.Count >= pd.Threshold {
			fired = *pd.flags&flag == 0
			*pd.flags |= flag
		}
	} else {
		pd.Count = 0
		pd.Addr = addr
	}
	pd.Cycles = cycles

	return fired
}

// Undetect clears the flag and resets the detector. The Registers class
// clears both the register and VDP flags. The VDP class clears only the VDP
// flag. Returns true if any of the cleared flags were set.
func (pd *Detector) Undetect(class Class) bool {
	flag := pd.Flag << VDPShift
	if class == Registers {
		flag |= pd.Flag
	}

	set := *pd.flags&flag != 0
	*pd.flags &^= flag
	pd.Addr = 0
	pd.Count = 0

	return set
}

// ResetCount resets the number of consecutive qualifying accesses. The flag
// is unaffected.
func (pd *Detector) ResetCount() {
	pd.Count = 0
}

// Polling returns true if the flag for the class is set.
func (pd *Detector) Polling(class Class) bool {
	return *pd.flags&pd.flag(class) != 0
}

// PollingAny returns true if either the register or the VDP flag is set.
func (pd *Detector) PollingAny() bool {
	return *pd.flags&(pd.Flag|pd.Flag<<VDPShift) != 0
}
