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

// Package cartridge holds the cartridge storage seen by the 32X bus. The
// data is stored in the big-endian byte order of the emulated hardware.
//
// The cartridge does not know how it is mapped into an address space. The
// bank switcher in the mars package requests windows onto the storage with
// the Window() function.
package cartridge
