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

// Package cartridgeloader is used to load cartridge and BIOS images from
// disk or over HTTP. The loaded data is hashed and the hash can be checked
// against an expected value.
//
// The data is returned exactly as it is stored in the file. Image files are
// expected to be in the big-endian byte order of the emulated hardware.
package cartridgeloader
