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

// Package registers holds the raw state of the 32X hardware registers. The
// Bank type is plain data, it has no behaviour beyond byte addressing. The
// meaning of register writes is implemented by the mars package.
//
// Registers are stored as 16-bit words in the byte order of the emulated
// hardware. An 8-bit access to an even offset addresses the high byte of the
// word. The on-chip peripheral blocks of the SH2 processors are stored as
// 32-bit words with the same convention.
package registers
