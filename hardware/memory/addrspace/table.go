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

package addrspace

// Layout describes how addresses are mapped onto the slots of a Table.
type Layout struct {
	// name of the layout
	Name string

	// number of slots in a table using the layout
	Slots int

	// the index function maps an address onto a slot
	Index func(address uint32) int

	// origin is the lowest address that maps onto the slot
	Origin func(slot int) uint32

	// the size of the contiguous address range starting at Origin that maps
	// onto a slot
	Span uint32
}

// PrimaryLayout is used for the 24-bit bus of the primary processor. Each slot
// covers a 64KiB page.
var PrimaryLayout = Layout{
	Name:  "primary",
	Slots: 0x100,
	Index: func(address uint32) int {
		return int((address >> 16) & 0xff)
	},
	Origin: func(slot int) uint32 {
		return uint32(slot) << 16
	},
	Span: 0x10000,
}

// SH2ReadLayout is used for the SH2 read tables. The slot is selected by the
// top three address bits and the two chip select bits.
var SH2ReadLayout = Layout{
	Name:  "sh2 read",
	Slots: 0x20,
	Index: func(address uint32) int {
		return int(((address >> 25) & 3) | ((address >> 27) & 0x1c))
	},
	Origin: func(slot int) uint32 {
		return uint32(slot&3)<<25 | uint32(slot&0x1c)<<27
	},
	Span: 0x2000000,
}

// SH2WriteLayout is used for the SH2 write tables. Each slot covers a 32MiB
// range.
var SH2WriteLayout = Layout{
	Name:  "sh2 write",
	Slots: 0x80,
	Index: func(address uint32) int {
		return int(address >> 25)
	},
	Origin: func(slot int) uint32 {
		return uint32(slot) << 25
	},
	Span: 0x2000000,
}

// Table is a fixed size list of entries.
type Table struct {
	layout  Layout
	entries []Entry
}

// NewTable is the preferred method of initialisation for the Table type. All
// entries are set to the unmapped entry.
func NewTable(layout Layout, unmapped Entry) *Table {
	t := &Table{
		layout:  layout,
		entries: make([]Entry, layout.Slots),
	}
	for i := range t.entries {
		t.entries[i] = unmapped
	}
	return t
}

// Layout returns the layout of the table.
func (t *Table) Layout() Layout {
	return t.layout
}

// Len returns the number of slots in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Index returns the slot number for the address.
func (t *Table) Index(address uint32) int {
	return t.layout.Index(address)
}

// Lookup returns the entry for the address.
func (t *Table) Lookup(address uint32) *Entry {
	return &t.entries[t.layout.Index(address)]
}

// Slot returns the entry in the slot.
func (t *Table) Slot(slot int) *Entry {
	return &t.entries[slot]
}

// SetSlot sets the entry in one or more slots.
func (t *Table) SetSlot(e Entry, slots ...int) {
	for _, s := range slots {
		t.entries[s] = e
	}
}

// Map sets the entry for every slot covering the address range. The end
// address is inclusive.
func (t *Table) Map(start uint32, end uint32, e Entry) {
	for s := t.layout.Index(start); s <= t.layout.Index(end); s++ {
		t.entries[s] = e
	}
}
