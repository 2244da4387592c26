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

// Package dmac implements the transfer of data from the primary processor to
// the SH2 address space, using channel zero of the DMA controller on the
// master SH2.
//
// The primary processor stages words in the FIFO. When enough words have
// been staged and the channel is enabled, the words are written to the
// destination address of the channel. Words that have not been transferred
// remain in the FIFO until the next transfer.
package dmac
