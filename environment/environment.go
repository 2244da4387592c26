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

package environment

import (
	"github.com/jetsetilly/gopher32x/hardware/preferences"
)

// Label names an emulation. More than one MARS instance can exist at once, a
// second instance being used to replay a script against a different set of
// preferences for example.
type Label string

// MainEmulation is the label of the emulation that the user is interacting
// with.
const MainEmulation = Label("")

// Environment is shared by every part of one emulation.
type Environment struct {
	Label Label
	Prefs *preferences.Preferences
}

// NewEnvironment creates the environment for a new emulation. If prefs is nil
// then the preferences are loaded from disk. Passing the Prefs field of
// another Environment means the two emulations share preferences.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}
	return &Environment{Label: label, Prefs: prefs}, nil
}

// Normalise resets the preferences to their default values. A script run in a
// normalised environment gives the same result on every machine.
func (env *Environment) Normalise() {
	env.Prefs.SetDefaults()
}

// IsMainEmulation returns true if the environment is for the main emulation.
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// IsEmulation returns true if the environment has the specified label.
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}

// AllowLogging implements the logger.Permission interface. Log entries from
// anything other than the main emulation are dropped.
func (env *Environment) AllowLogging() bool {
	return env.IsMainEmulation()
}
