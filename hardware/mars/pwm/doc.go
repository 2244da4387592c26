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

// Package pwm implements the registers and timing of the 32X PWM sound
// source. The PWM is seen by all processors at offset 0x30 of the system
// registers.
//
// Samples are written by the processors into a small FIFO for each channel.
// The FIFOs are drained at the rate set by the cycle register and the output
// is forwarded to a Mixer. An interrupt is requested every TM samples, where
// TM is set by the control register.
package pwm
