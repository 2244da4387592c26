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

package resources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher32x/resources"
	"github.com/jetsetilly/gopher32x/test"
)

func TestJoinPath(t *testing.T) {
	t.Chdir(t.TempDir())

	p, err := resources.JoinPath("preferences")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(".gopher32x", "preferences"))

	// base path is not prepended twice
	q, err := resources.JoinPath(p)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q, p)

	// the directory has been created but not the file
	_, err = os.Stat(".gopher32x")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(p)
	test.ExpectFailure(t, err)

	// intermediate directories are created
	p, err = resources.JoinPath("scripts", "pwm", "sweep.star")
	test.DemandSuccess(t, err)
	st, err := os.Stat(filepath.Dir(p))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, st.IsDir())
}
