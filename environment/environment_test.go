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

package environment_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher32x/environment"
	"github.com/jetsetilly/gopher32x/hardware/preferences"
	"github.com/jetsetilly/gopher32x/logger"
	"github.com/jetsetilly/gopher32x/test"
)

func TestPermission(t *testing.T) {
	main, err := environment.NewEnvironment(environment.MainEmulation, preferences.NewEphemeral())
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, main.IsMainEmulation())

	other, err := environment.NewEnvironment("comparison", main.Prefs)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, other.IsMainEmulation())
	test.ExpectSuccess(t, other.IsEmulation("comparison"))

	log := logger.NewLogger(10)
	log.Log(main, "mars", "main")
	log.Log(other, "mars", "other")

	w := &strings.Builder{}
	log.Write(w)
	test.ExpectEquality(t, w.String(), "mars: main\n")
}

func TestNormalise(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainEmulation, preferences.NewEphemeral())
	test.DemandSuccess(t, err)
	env.Prefs.PollThreshold.Set(100)
	env.Normalise()
	test.ExpectEquality(t, env.Prefs.PollThreshold.Get().(int), 6)
}
