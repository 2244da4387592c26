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

// Package digest creates SHA-1 values that summarise the output or the state
// of the emulation. The values are useful for regression testing: two runs
// of the same script should produce the same digests.
//
// The Audio type is a pwm.Mixer that creates a chained digest of every
// sample. The State() function creates a digest of the processor visible
// state of the bus.
package digest
