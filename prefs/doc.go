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

// Package prefs facilitates the storage of preferential values in the
// Gopher32X system. The Bool and Int types wrap a live value that can be read
// and written concurrently. Callbacks can be registered with
// SetHookPre() and SetHookPost() and are called whenever the value is Set().
//
// Preference values are associated with a Disk instance by calling Add() with
// a key. Calling Save() and Load() on the Disk instance will write or read all
// of the preferences associated with it. The file format is a simple list of
// key/value pairs:
//
//	mars.sync.commRead :: 500
//	mars.poll.threshold :: 6
//
// Keys in the file that are not associated with the Disk instance are
// preserved when the file is saved. This allows more than one Disk instance to
// share the same file.
//
// Preferences can also be specified on the command line with a string of the
// form:
//
//	key::value; key::value
//
// The string is added to the command line stack with PushCommandLineStack().
// When a preference is added to a Disk instance the top of the stack is
// checked for the key and, if it is present, the value is Set(). Command line
// values are not saved to disk unless Save() is called explicitly.
package prefs
