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

package clocks_test

import (
	"testing"

	"github.com/jetsetilly/gopher32x/hardware/clocks"
	"github.com/jetsetilly/gopher32x/test"
)

func TestClocks(t *testing.T) {
	test.ExpectEquality(t, clocks.Primary(false), 7670454)
	test.ExpectEquality(t, clocks.Primary(true), 7600489)
	test.ExpectApproximate(t, clocks.SH2(false), 23011362, 0.000001)
	test.ExpectApproximate(t, clocks.SH2(true), 22801467, 0.000001)
}
