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

// Package poll detects processors that are spinning on a register while
// waiting for another processor to change it. Once detected the spinning
// processor can stop executing instructions until the register is written.
//
// Detection is a heuristic. An access qualifies as part of a poll loop if it
// is to an address within two bytes of the previous access and happens within
// a maximum number of cycles of it. A number of consecutive qualifying
// accesses sets the Flag owned by the Detector.
//
// The flag stays set until Undetect() is called, which happens when another
// processor writes to the class of register being polled.
package poll
