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

package test

import "testing"

// the Demand functions are the fatal versions of the Expect functions. use them
// when later parts of a test rely on the value being correct. for example, the
// length of a slice that is about to be indexed or an error from a constructor
// whose result will be used immediately

// demand stops the test if the result of an expectation is false. t.Errorf()
// will have been called already by the Expect function
func demand(t *testing.T, ok bool) {
	t.Helper()
	if !ok {
		t.FailNow()
	}
}

// DemandEquality is the fatal version of ExpectEquality()
func DemandEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) {
	t.Helper()
	demand(t, ExpectEquality(t, v, expectedValue, tags...))
}

// DemandSuccess is the fatal version of ExpectSuccess()
func DemandSuccess(t *testing.T, v any, tags ...any) {
	t.Helper()
	demand(t, ExpectSuccess(t, v, tags...))
}

// DemandFailure is the fatal version of ExpectFailure()
func DemandFailure(t *testing.T, v any, tags ...any) {
	t.Helper()
	demand(t, ExpectFailure(t, v, tags...))
}

// DemandImplements stops the test if instance does not satisfy the type of the
// implements argument. the implements argument is normally a nil value of an
// interface type. for example:
//
//	test.DemandImplements(t, stub, processor.BusAttacher(nil))
func DemandImplements[T any](t *testing.T, instance any, implements T, tags ...any) {
	t.Helper()
	if _, ok := instance.(T); !ok {
		t.Fatalf("%stype %T does not implement %T", id(tags...), instance, implements)
	}
}
