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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher32x/logger"
)

// Width of a memory access.
type Width int

// List of valid Width values.
const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
)

// Result of a read access.
type Result struct {
	Value  uint32
	Cycles int
}

// UnmappedTag is the log tag used for unmapped accesses.
const UnmappedTag = "mars unmapped"

// View is the address space of a single processor.
type View struct {
	name string
	perm logger.Permission

	Read8   *Table
	Read16  *Table
	Write8  *Table
	Write16 *Table

	// native 32-bit handlers, indexed by the slot of the 16-bit table. a nil
	// entry means that 32-bit accesses are synthesised from two 16-bit
	// accesses
	read32  []ReadFunc
	write32 []WriteFunc
}

// NewView is the preferred method of initialisation for the View type. The
// permission argument is used when logging unmapped accesses.
func NewView(name string, perm logger.Permission, read Layout, write Layout) *View {
	v := &View{
		name: name,
		perm: perm,
	}

	v.Read8 = NewTable(read, v.unmappedRead(Width8))
	v.Read16 = NewTable(read, v.unmappedRead(Width16))
	v.Write8 = NewTable(write, v.unmappedWrite(Width8))
	v.Write16 = NewTable(write, v.unmappedWrite(Width16))
	v.read32 = make([]ReadFunc, read.Slots)
	v.write32 = make([]WriteFunc, write.Slots)

	return v
}

// Name returns the name of the view.
func (v *View) Name() string {
	return v.name
}

func (v *View) unmappedRead(width Width) Entry {
	return ReadHandler("unmapped", func(address uint32) uint32 {
		logger.Logf(v.perm, UnmappedTag, "%s r%d [%08x]", v.name, width, address)
		return 0
	})
}

func (v *View) unmappedWrite(width Width) Entry {
	return WriteHandler("unmapped", func(address uint32, data uint32) bool {
		logger.Logf(v.perm, UnmappedTag, "%s w%d [%08x] %x", v.name, width, address, data)
		return false
	})
}

// Unmap resets the entry covering the address range in every table to the
// unmapped stub. The end address is inclusive.
func (v *View) Unmap(start uint32, end uint32) {
	v.Read8.Map(start, end, v.unmappedRead(Width8))
	v.Read16.Map(start, end, v.unmappedRead(Width16))
	v.Write8.Map(start, end, v.unmappedWrite(Width8))
	v.Write16.Map(start, end, v.unmappedWrite(Width16))
	for s := v.Read16.Index(start); s <= v.Read16.Index(end); s++ {
		v.read32[s] = nil
	}
	for s := v.Write16.Index(start); s <= v.Write16.Index(end); s++ {
		v.write32[s] = nil
	}
}

// MapRead sets the entry for the address range in both read tables.
func (v *View) MapRead(start uint32, end uint32, e Entry) {
	v.Read8.Map(start, end, e)
	v.Read16.Map(start, end, e)
}

// MapWrite sets the entry for the address range in both write tables.
func (v *View) MapWrite(start uint32, end uint32, e Entry) {
	v.Write8.Map(start, end, e)
	v.Write16.Map(start, end, e)
}

// SetNative32 installs native 32-bit handlers for the slot containing the
// address. Either function can be nil.
func (v *View) SetNative32(address uint32, read ReadFunc, write WriteFunc) {
	v.read32[v.Read16.Index(address)] = read
	v.write32[v.Write16.Index(address)] = write
}

func (v *View) unmappedResult(address uint32, width Width) Result {
	logger.Logf(v.perm, UnmappedTag, "%s r%d [%08x] outside of region", v.name, width, address)
	return Result{}
}

// Read from the address. The access is resolved via the table for the width.
// Unmapped addresses return a zero value.
func (v *View) Read(address uint32, width Width) Result {
	switch width {
	case Width8:
		e := v.Read8.Lookup(address)
		if e.Kind == KindMemory {
			o, ok := e.offset(address, 1)
			if !ok {
				return v.unmappedResult(address, width)
			}
			return Result{Value: uint32(e.Region[o]), Cycles: e.Cycles}
		}
		if e.Read == nil {
			return v.unmappedResult(address, width)
		}
		return Result{Value: e.Read(address) & 0xff, Cycles: e.Cycles}

	case Width16:
		e := v.Read16.Lookup(address)
		if e.Kind == KindMemory {
			o, ok := e.offset(address&^1, 2)
			if !ok {
				return v.unmappedResult(address, width)
			}
			o &^= 1
			return Result{Value: uint32(e.Region[o])<<8 | uint32(e.Region[o+1]), Cycles: e.Cycles}
		}
		if e.Read == nil {
			return v.unmappedResult(address, width)
		}
		return Result{Value: e.Read(address) & 0xffff, Cycles: e.Cycles}

	case Width32:
		if f := v.read32[v.Read16.Index(address)]; f != nil {
			return Result{Value: f(address), Cycles: v.Read16.Lookup(address).Cycles}
		}
		hi := v.Read(address, Width16)
		lo := v.Read(address+2, Width16)
		return Result{Value: hi.Value<<16 | lo.Value, Cycles: hi.Cycles + lo.Cycles}
	}

	panic(fmt.Sprintf("addrspace: unsupported width (%d)", width))
}

// WriteCycles returns the number of cycles charged for a write to the address.
// A 32-bit write without a native handler costs two 16-bit writes.
func (v *View) WriteCycles(address uint32, width Width) int {
	switch width {
	case Width8:
		return v.Write8.Lookup(address).Cycles
	case Width16:
		return v.Write16.Lookup(address).Cycles
	}
	if v.write32[v.Write16.Index(address)] != nil {
		return v.Write16.Lookup(address).Cycles
	}
	return v.Write16.Lookup(address).Cycles + v.Write16.Lookup(address+2).Cycles
}

// Write to the address. The access is resolved via the table for the width.
// Writes to unmapped addresses are dropped. Returns true if the write may
// have raised an interrupt.
func (v *View) Write(address uint32, width Width, data uint32) bool {
	switch width {
	case Width8:
		e := v.Write8.Lookup(address)
		if e.Kind == KindMemory {
			o, ok := e.offset(address, 1)
			if !ok {
				v.unmappedWrite(width).Write(address, data)
				return false
			}
			e.Region[o] = uint8(data)
			return false
		}
		if e.Write == nil {
			v.unmappedWrite(width).Write(address, data)
			return false
		}
		return e.Write(address, data&0xff)

	case Width16:
		e := v.Write16.Lookup(address)
		if e.Kind == KindMemory {
			o, ok := e.offset(address&^1, 2)
			if !ok {
				v.unmappedWrite(width).Write(address, data)
				return false
			}
			o &^= 1
			e.Region[o] = uint8(data >> 8)
			e.Region[o+1] = uint8(data)
			return false
		}
		if e.Write == nil {
			v.unmappedWrite(width).Write(address, data)
			return false
		}
		return e.Write(address, data&0xffff)

	case Width32:
		if f := v.write32[v.Write16.Index(address)]; f != nil {
			return f(address, data)
		}
		hi := v.Write(address, Width16, data>>16)
		lo := v.Write(address+2, Width16, data&0xffff)
		return hi || lo
	}

	panic(fmt.Sprintf("addrspace: unsupported width (%d)", width))
}

// Summary returns a multiline string describing the entries of the table.
// Adjacent slots with the same name are summarised on one line.
func Summary(t *Table) string {
	s := strings.Builder{}
	l := t.Layout()

	start := 0
	for i := 1; i <= t.Len(); i++ {
		if i < t.Len() && t.Slot(i).Name == t.Slot(start).Name {
			continue
		}
		s.WriteString(fmt.Sprintf("%08x -> %08x\t%s\n", l.Origin(start), l.Origin(i-1)+l.Span-1, t.Slot(start).Name))
		start = i
	}

	return s.String()
}

// Peek returns the byte at the address without calling any handlers. Returns
// false if the address is not backed by a memory region.
func (v *View) Peek(address uint32) (uint8, bool) {
	e := v.Read8.Lookup(address)
	if e.Kind != KindMemory {
		return 0, false
	}
	o, ok := e.offset(address, 1)
	if !ok {
		return 0, false
	}
	return e.Region[o], true
}
