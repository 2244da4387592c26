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

// Package processor defines the capabilities the bus subsystem requires of a
// processor interpreter. The bus is interpreter-agnostic: any implementation
// of the Processor interface can be attached, whether it is an interpreter or
// a recompiler.
//
// The Stub type is a simple implementation of all the interfaces in the
// package. It is used by tests and by the script harness.
package processor
