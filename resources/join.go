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

package resources

import (
	"os"
	"path/filepath"
	"strings"
)

// JoinPath joins the path elements and roots the result in the resource
// directory. A path that is already rooted there is returned unchanged.
//
// Any missing directories leading to the final element are created. The final
// element is never created.
func JoinPath(elem ...string) (string, error) {
	base, err := resourcePath()
	if err != nil {
		return "", err
	}

	pth := filepath.Join(elem...)
	if !strings.HasPrefix(pth, base) {
		pth = filepath.Join(base, pth)
	}

	err = os.MkdirAll(filepath.Dir(pth), 0o700)
	if err != nil {
		return "", err
	}

	return pth, nil
}
