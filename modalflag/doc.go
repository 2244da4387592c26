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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At it's simplest it can be used as a replacement for the flag package.
// Whereas, with flag.FlagSet you call Parse() with the array of strings as
// the only argument, with modalflag you first NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Non-flag arguments can be retrieved with the RemainingArgs() or GetArg()
// function after the call to Parse().
//
// Adding flags is similar to the flag package. The functions return a
// pointer to a variable of the specified type, which is set by Parse():
//
//	log := md.AddBool("log", false, "echo log to stdout")
//	addr := md.AddAddress("addr", 0, "address to resolve")
//
// Address flags accept hexadecimal values with either a "$" or a "0x" prefix,
// as well as decimal values.
//
// Modes are special arguments that put the program into a different mode of
// operation, each with their own flags and arguments. Sub-modes are added
// with AddSubModes(). The first sub-mode in the list is the default:
//
//	md.AddSubModes("MAP", "SCRIPT", "MEMVIZ")
//
// Sub-mode comparisons are case insensitive. After Parse() the Mode()
// function returns the selected mode. A further call to NewMode() and
// Parse() processes the flags of the selected mode:
//
//	switch md.Mode() {
//	case "SCRIPT":
//		md.NewMode()
//		wav := md.AddString("wav", "", "capture PWM output")
//		p, err := md.Parse()
//		...
//	}
//
// Modes can be chained together as deep as required. The Path() function
// returns the list of modes encountered so far.
package modalflag
