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
	"fmt"
	"strconv"
	"strings"
)

// address implements the flag.Value interface for 32-bit bus addresses.
type address uint32

func (a *address) String() string {
	if a == nil {
		return "$00000000"
	}
	return fmt.Sprintf("$%08x", uint32(*a))
}

func (a *address) Set(s string) error {
	s = strings.TrimSpace(s)

	base := 10
	switch {
	case strings.HasPrefix(s, "$"):
		s = s[1:]
		base = 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s = s[2:]
		base = 16
	}

	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return fmt.Errorf("not a valid address")
	}
	*a = address(v)

	return nil
}
