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

package modalflag

import (
	"errors"
	"flag"
	"io"
	"slices"
	"strings"
)

// Modes is a layered command line parser. Each layer (or mode) has its own set
// of flags and an optional list of sub-modes. Parsing a layer consumes its
// flags and, if one is present, the name of the sub-mode. The next layer is
// started with NewMode() once the caller has decided what the sub-mode means.
//
// Output must be set before calling Parse() if help messages are wanted.
type Modes struct {
	Output io.Writer

	// flags for the current layer. replaced on every call to NewMode()
	flags *flag.FlagSet

	// arguments from NewArgs(). idx is the first argument that has not been
	// consumed by a previous layer
	args []string
	idx  int

	// sub-modes for the current layer. the first entry is the default
	subModes []string

	// modes selected so far. never reset
	path []string

	// extra text appended to the help message of the current layer
	help string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every selected mode joined with a forward slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

// NewArgs resets the parser with a new argument list and starts the first
// layer.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.idx = 0
	md.NewMode()
}

// NewMode starts a new layer. Flags and sub-modes from the previous layer are
// forgotten.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.subModes = md.subModes[:0]
	md.help = ""
}

// AdditionalHelp sets text to be printed after the flag and sub-mode summary
// of the current layer.
func (md *Modes) AdditionalHelp(help string) {
	md.help = help
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// ParseContinue means the layer was parsed and a sub-mode, if any were
	// listed, has been selected. Check Mode() to find out which.
	ParseContinue ParseResult = iota

	// ParseHelp means the -help flag was found and the help message has been
	// written to Output. Nothing further should be printed.
	ParseHelp

	// ParseError means the arguments could not be parsed. The error is
	// returned alongside.
	ParseError
)

// Parse the current layer of arguments. Usual pattern:
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.idx:])
	if errors.Is(err, flag.ErrHelp) {
		hw.Help(md.Output, md.Path(), md.subModes, md.help)
		return ParseHelp, nil
	}

	if len(md.subModes) == 0 {
		if err != nil {
			return ParseError, err
		}
		return ParseContinue, nil
	}

	// an unrecognised flag in a layer with sub-modes falls through to the
	// default sub-mode. the sub-mode will see the flag again
	mode := md.subModes[0]
	if err == nil {
		arg := strings.ToUpper(md.flags.Arg(0))
		if slices.Contains(md.subModes, arg) {
			mode = arg
			md.idx++
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// RemainingArgs returns the arguments of the current layer that are neither
// flags nor the selected sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered entry from RemainingArgs(). An empty string is
// returned if the entry doesn't exist.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddSubModes for the current layer. The first sub-mode added is the default.
// Sub-modes are matched without regard to case.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, s := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(s))
	}
}

// AddBool flag to the current layer.
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag to the current layer.
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag to the current layer.
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddAddress flag to the current layer. Hexadecimal values are accepted with
// either a "$" or a "0x" prefix.
func (md *Modes) AddAddress(name string, value uint32, usage string) *uint32 {
	a := address(value)
	md.flags.Var(&a, name, usage)
	return (*uint32)(&a)
}

// Visit calls fn with the name of every flag in the current layer that was
// set on the command line. Flags are visited in lexicographical order.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
