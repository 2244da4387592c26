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

// Package test bundles a bunch of useful functions useful for testing
// purposes, particular useful in conjunction with the standard go test harness.
//
// The "Expect" functions report a failure with t.Errorf() and allow the test
// to continue. The "Demand" functions report a failure with t.Fatalf() and
// stop the test immediately. Demand functions should be used when the value
// being tested is required by later parts of the test.
//
// The nil type is considered a success value. This is because of how errors
// usually work (nil to indicate no error).
//
// The optional tags argument to each function is prepended to the failure
// message and is useful when the test is being performed inside a loop.
//
// The CompareWriter type implements io.Writer and is useful for capturing
// output.
package test
