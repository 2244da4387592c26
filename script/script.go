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

package script

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopher32x/curated"
	"github.com/jetsetilly/gopher32x/digest"
	"github.com/jetsetilly/gopher32x/hardware/mars"
	"github.com/jetsetilly/gopher32x/hardware/memory/bus"
	"github.com/jetsetilly/gopher32x/hardware/processor"
	"github.com/jetsetilly/gopher32x/logger"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// LogTag is the tag used for entries made with the log() builtin.
const LogTag = "script"

type harness struct {
	mars  *mars.Mars
	stubs map[processor.ID]*processor.Stub
}

// Run executes the script in src. The filename is used for error messages
// only. Output from the print() builtin is written to out.
//
// The stubs map should contain the stub processors attached to the bus. The
// advance() and cycles() builtins fail for processors that are not in the map.
func Run(filename string, src any, m *mars.Mars, stubs map[processor.ID]*processor.Stub, out io.Writer) error {
	if m == nil {
		return curated.Errorf("script: %v", "no bus")
	}

	h := &harness{mars: m, stubs: stubs}

	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(out, msg)
		},
	}

	opts := syntax.FileOptions{}
	_, err := starlark.ExecFileOptions(&opts, thread, filename, src, h.predeclared())
	if err != nil {
		if evalErr, ok := err.(*starlark.EvalError); ok {
			return curated.Errorf("script: %v", evalErr.Backtrace())
		}
		return curated.Errorf("script: %v", err)
	}

	return nil
}

func (h *harness) predeclared() starlark.StringDict {
	return starlark.StringDict{
		"PRIMARY": starlark.MakeInt(int(processor.Primary)),
		"MASTER":  starlark.MakeInt(int(processor.Master)),
		"SLAVE":   starlark.MakeInt(int(processor.Slave)),

		"read8":   starlark.NewBuiltin("read8", h.read),
		"read16":  starlark.NewBuiltin("read16", h.read),
		"read32":  starlark.NewBuiltin("read32", h.read),
		"write8":  starlark.NewBuiltin("write8", h.write),
		"write16": starlark.NewBuiltin("write16", h.write),
		"write32": starlark.NewBuiltin("write32", h.write),
		"advance": starlark.NewBuiltin("advance", h.advance),
		"cycles":  starlark.NewBuiltin("cycles", h.cycles),
		"reset":   starlark.NewBuiltin("reset", h.reset),
		"blank":   starlark.NewBuiltin("blank", h.blank),
		"hblank":  starlark.NewBuiltin("hblank", h.blank),
		"peek":    starlark.NewBuiltin("peek", h.peek),
		"log":     starlark.NewBuiltin("log", h.log),
		"digest":  starlark.NewBuiltin("digest", h.stateDigest),
	}
}

func processorID(name string, cpu int) (processor.ID, error) {
	id := processor.ID(cpu)
	switch id {
	case processor.Primary, processor.Master, processor.Slave:
		return id, nil
	}
	return 0, fmt.Errorf("%s: unknown cpu (%d)", name, cpu)
}

func address(name string, v starlark.Value) (uint32, error) {
	var a uint32
	if err := starlark.AsInt(v, &a); err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return a, nil
}

func (h *harness) read(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var addr starlark.Value
	var cpu int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr, "cpu?", &cpu); err != nil {
		return nil, err
	}

	a, err := address(b.Name(), addr)
	if err != nil {
		return nil, err
	}
	id, err := processorID(b.Name(), cpu)
	if err != nil {
		return nil, err
	}

	switch b.Name() {
	case "read8":
		return starlark.MakeUint(uint(h.mars.Read8(a, id))), nil
	case "read16":
		return starlark.MakeUint(uint(h.mars.Read16(a, id))), nil
	}
	return starlark.MakeUint(uint(h.mars.Read32(a, id))), nil
}

func (h *harness) write(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var addr starlark.Value
	var value starlark.Value
	var cpu int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr, "value", &value, "cpu?", &cpu); err != nil {
		return nil, err
	}

	a, err := address(b.Name(), addr)
	if err != nil {
		return nil, err
	}
	id, err := processorID(b.Name(), cpu)
	if err != nil {
		return nil, err
	}

	// values are truncated to the width of the write
	var d uint64
	if err := starlark.AsInt(value, &d); err != nil {
		var s int64
		if err := starlark.AsInt(value, &s); err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}
		d = uint64(s)
	}

	var ok bool
	switch b.Name() {
	case "write8":
		ok = h.mars.Write8(a, uint8(d), id)
	case "write16":
		ok = h.mars.Write16(a, uint16(d), id)
	default:
		ok = h.mars.Write32(a, uint32(d), id)
	}

	return starlark.Bool(ok), nil
}

// peek returns None for addresses that are not backed by memory
func (h *harness) peek(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var addr starlark.Value
	var cpu int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr, "cpu?", &cpu); err != nil {
		return nil, err
	}

	a, err := address(b.Name(), addr)
	if err != nil {
		return nil, err
	}
	id, err := processorID(b.Name(), cpu)
	if err != nil {
		return nil, err
	}

	var dbg bus.DebuggerBus = h.mars.Port(id)
	v, ok := dbg.Peek(a)
	if !ok {
		return starlark.None, nil
	}
	return starlark.MakeUint(uint(v)), nil
}

func (h *harness) stub(name string, cpu int) (*processor.Stub, error) {
	id, err := processorID(name, cpu)
	if err != nil {
		return nil, err
	}
	s, ok := h.stubs[id]
	if !ok {
		return nil, fmt.Errorf("%s: %s is not a stub processor", name, id)
	}
	return s, nil
}

func (h *harness) advance(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var cpu int
	var cycles int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "cpu", &cpu, "cycles", &cycles); err != nil {
		return nil, err
	}
	if cycles < 0 {
		return nil, fmt.Errorf("%s: negative cycles (%d)", b.Name(), cycles)
	}

	s, err := h.stub(b.Name(), cpu)
	if err != nil {
		return nil, err
	}
	s.Advance(cycles)

	return starlark.MakeUint(uint(s.CyclesDone())), nil
}

func (h *harness) cycles(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var cpu int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "cpu", &cpu); err != nil {
		return nil, err
	}

	s, err := h.stub(b.Name(), cpu)
	if err != nil {
		return nil, err
	}

	return starlark.MakeUint(uint(s.CyclesDone())), nil
}

func (h *harness) reset(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
		return nil, err
	}
	h.mars.ResetAll()
	return starlark.None, nil
}

func (h *harness) blank(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var on bool
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "on", &on); err != nil {
		return nil, err
	}
	if b.Name() == "hblank" {
		h.mars.SetHBlank(on)
	} else {
		h.mars.SetBlanking(on)
	}
	return starlark.None, nil
}

func (h *harness) log(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var msg starlark.Value
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "msg", &msg); err != nil {
		return nil, err
	}

	// strings are logged without quotation marks
	if s, ok := starlark.AsString(msg); ok {
		logger.Log(logger.Allow, LogTag, s)
	} else {
		logger.Log(logger.Allow, LogTag, msg.String())
	}

	return starlark.None, nil
}

func (h *harness) stateDigest(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
		return nil, err
	}
	d, err := digest.State(h.mars)
	if err != nil {
		return nil, err
	}
	return starlark.String(d), nil
}
