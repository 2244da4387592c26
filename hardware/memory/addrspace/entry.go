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

import "fmt"

// Kind of table entry.
type Kind int

// List of valid Kind values.
const (
	KindMemory Kind = iota
	KindHandler
)

func (k Kind) String() string {
	switch k {
	case KindMemory:
		return "memory"
	case KindHandler:
		return "handler"
	}
	return "unknown kind"
}

// ReadFunc is the signature of a read handler. The returned value is masked
// to the width of the access by the caller.
type ReadFunc func(address uint32) uint32

// WriteFunc is the signature of a write handler. It returns true if the write
// may have raised an interrupt.
type WriteFunc func(address uint32, data uint32) bool

// Entry is a single slot in a Table.
type Entry struct {
	Kind Kind

	// Name is used in logging and in the summary of a View
	Name string

	// used by KindMemory entries
	Region []byte
	Base   uint32
	Mask   uint32

	// used by KindHandler entries. the function appropriate to the direction
	// of the Table must be set
	Read  ReadFunc
	Write WriteFunc

	// number of cycles charged for each access
	Cycles int
}

func (e Entry) String() string {
	if e.Kind == KindMemory {
		return fmt.Sprintf("%s (memory %#x bytes, mask %#x)", e.Name, len(e.Region), e.Mask)
	}
	return e.Name
}

// Memory is a convenience function that returns a memory Entry.
func Memory(name string, region []byte, base uint32, mask uint32) Entry {
	return Entry{
		Kind:   KindMemory,
		Name:   name,
		Region: region,
		Base:   base,
		Mask:   mask,
	}
}

// WithCycles returns a copy of the Entry that charges the number of cycles for
// each access.
func (e Entry) WithCycles(cycles int) Entry {
	e.Cycles = cycles
	return e
}

// ReadHandler is a convenience function that returns a read handler Entry.
func ReadHandler(name string, f ReadFunc) Entry {
	return Entry{
		Kind: KindHandler,
		Name: name,
		Read: f,
	}
}

// WriteHandler is a convenience function that returns a write handler Entry.
func WriteHandler(name string, f WriteFunc) Entry {
	return Entry{
		Kind:  KindHandler,
		Name:  name,
		Write: f,
	}
}

// offset returns the offset into the region for the address and true if the
// access of the given size lies entirely within the region.
func (e *Entry) offset(address uint32, size uint32) (uint32, bool) {
	o := (address - e.Base) & e.Mask
	if uint64(o)+uint64(size) > uint64(len(e.Region)) {
		return 0, false
	}
	return o, true
}
