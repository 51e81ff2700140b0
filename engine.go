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

import "github.com/ctessum/sparse"

// Method is a regridding algorithm.
type Method string

// The supported regridding algorithms. Conservative requires cell
// corner coordinates in addition to cell centers.
const (
	Bilinear     Method = "bilinear"
	Conservative Method = "conservative"
	Patch        Method = "patch"
	NearestS2D   Method = "nearest_s2d"
	NearestD2S   Method = "nearest_d2s"
)

func (m Method) valid() bool {
	switch m {
	case Bilinear, Conservative, Patch, NearestS2D, NearestD2S:
		return true
	}
	return false
}

// needsBounds reports whether the method requires cell corner
// coordinates.
func (m Method) needsBounds() bool { return m == Conservative }

// A GridHandle is an opaque grid representation owned by an Engine.
type GridHandle interface{}

// An Engine computes interpolation weights between two grids. It owns
// all geometric calculations; this package only manages the resulting
// weight files and applies them to data. Coordinate arrays passed to an
// Engine have their fastest-varying axis first, so a grid of shape
// (Ny, Nx) arrives as an array of shape (Nx, Ny).
//
// Engine calls may be long-running and are not interruptible by this
// package.
type Engine interface {
	// BuildGrid converts cell center coordinates into the engine's
	// grid representation. periodic indicates that the grid wraps
	// around in longitude.
	BuildGrid(lon, lat *sparse.DenseArray, periodic bool) (GridHandle, error)

	// AddCorners attaches cell corner coordinates to a previously
	// built grid.
	AddCorners(g GridHandle, lonB, latB *sparse.DenseArray) error

	// ComputeWeights calculates interpolation weights from grid in to
	// grid out and persists them to a triplet file at path (in the
	// format read by the weights package).
	ComputeWeights(in, out GridHandle, method Method, path string) error
}
