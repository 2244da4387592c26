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

// Package clocks defines the speed of the processor clocks of the console and
// of the 32X adapter.
//
// The SH2 processors are clocked at three times the speed of the primary
// processor. The primary clock is derived from the video clock and so
// differs between NTSC and PAL consoles.
package clocks

// Clock frequencies in MHz.
const (
	NTSC = 7.670454
	PAL  = 7.600489
)

// Clock frequencies of the SH2 processors in MHz.
const (
	NTSC_SH2 = NTSC * 3
	PAL_SH2  = PAL * 3
)

// SH2 returns the frequency of the SH2 clock in Hz.
func SH2(pal bool) int {
	if pal {
		return int(PAL_SH2 * 1000000)
	}
	return int(NTSC_SH2 * 1000000)
}

// Primary returns the frequency of the primary processor clock in Hz.
func Primary(pal bool) int {
	if pal {
		return int(PAL * 1000000)
	}
	return int(NTSC * 1000000)
}
