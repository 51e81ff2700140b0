/*
Copyright © 2018 the Regrid authors.
This file is part of Regrid.

Regrid is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Regrid is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Regrid.  If not, see <http://www.gnu.org/licenses/>.
*/

package regrid

import "fmt"

// A ShapeError reports coordinate or data arrays whose dimensions are
// incompatible with the grids being regridded between.
type ShapeError struct {
	Context string
	Got     []int
	Want    []int
}

func (e ShapeError) Error() string {
	if e.Want == nil {
		return fmt.Sprintf("regrid: %s (shape %v)", e.Context, e.Got)
	}
	return fmt.Sprintf("regrid: %s: got shape %v, want %v", e.Context, e.Got, e.Want)
}

// A MissingBoundsError indicates that a boundary-requiring regridding
// method was requested for a grid specification that does not include
// cell corner coordinates.
type MissingBoundsError struct {
	Method Method
	Var    string
}

func (e MissingBoundsError) Error() string {
	return fmt.Sprintf("regrid: the %s method requires cell corner coordinates, "+
		"but %s is not present in the grid specification", e.Method, e.Var)
}

// An ArtifactBuildError indicates that the geometric engine failed to
// compute or persist a weight file, or that a stale weight file could
// not be replaced.
type ArtifactBuildError struct {
	Path string
	Err  error
}

func (e ArtifactBuildError) Error() string {
	return fmt.Sprintf("regrid: building weight file %s: %v", e.Path, e.Err)
}

func (e ArtifactBuildError) Unwrap() error { return e.Err }

// An UnsupportedTypeError is returned by Regridder.RegridAny for input
// representations it does not know how to regrid.
type UnsupportedTypeError struct {
	Value interface{}
}

func (e UnsupportedTypeError) Error() string {
	return fmt.Sprintf("regrid: cannot regrid a value of type %T; "+
		"input must be a *sparse.DenseArray or a *DataArray", e.Value)
}
