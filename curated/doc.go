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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created by the
// Errorf() function with a specific pattern. The pattern is used to
// differentiate curated errors. For example:
//
//	e := curated.Errorf(mars.UnmappedAccess, 0x00a15180)
//
//	if curated.Is(e, mars.UnmappedAccess) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
// The Error() function normalises the message so that adjacent duplicate parts
// of the chain are removed. Parts are separated by the sub-string ': ' as
// suggested on p239 of "The Go Programming Language" (Donovan, Kernighan). For
// example, when wrapping a curated error with the same leading part:
//
//	error: error: not yet implemented
//
// will be reported as:
//
//	error: not yet implemented
//
// Curated errors are compatible with the errors package. Any error in the
// values list is returned by Unwrap() so that errors.Is() and errors.As() will
// see through a curated error.
//
// Sentinel patterns should be stored as a const string, suitably named and
// commented, in the package that produces the error.
package curated
