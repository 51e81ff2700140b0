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

import (
	"fmt"

	"github.com/ctessum/sparse"
)

// A GridSpec describes a horizontal grid through its cell center
// coordinates and, optionally, its cell corner coordinates. Lon and Lat
// must either both be 1-dimensional (a rectilinear grid; Lon varies
// along the last axis of the expanded mesh) or both be 2-dimensional
// arrays of shape (Ny, Nx) (a curvilinear grid). LonB and LatB, when
// present, hold cell corners of shape (Ny+1, Nx+1) and are only needed
// for the conservative method.
type GridSpec struct {
	Lon, Lat   *sparse.DenseArray
	LonB, LatB *sparse.DenseArray
}

// gridCoords is a normalized grid: 2-dimensional cell center arrays of
// shape (Ny, Nx) plus optional corner arrays of shape (Ny+1, Nx+1).
type gridCoords struct {
	lon, lat   *sparse.DenseArray
	lonB, latB *sparse.DenseArray
}

func (g *gridCoords) ny() int   { return g.lon.Shape[0] }
func (g *gridCoords) nx() int   { return g.lon.Shape[1] }
func (g *gridCoords) size() int { return g.ny() * g.nx() }

// normalizeGrid converts a user-supplied grid specification into
// 2-dimensional coordinate arrays, expanding matching 1-dimensional
// coordinates into a mesh. If needBounds is set, corner coordinates
// must be present and correctly sized; method is only used for error
// reporting.
func normalizeGrid(spec *GridSpec, needBounds bool, method Method) (*gridCoords, error) {
	if spec == nil || spec.Lon == nil || spec.Lat == nil {
		return nil, fmt.Errorf("regrid: grid specification must include lon and lat coordinates")
	}
	g := new(gridCoords)
	var err error
	if g.lon, g.lat, err = as2DMesh(spec.Lon, spec.Lat, "lon", "lat"); err != nil {
		return nil, err
	}
	if !needBounds {
		return g, nil
	}
	if spec.LonB == nil {
		return nil, MissingBoundsError{Method: method, Var: "lon_b"}
	}
	if spec.LatB == nil {
		return nil, MissingBoundsError{Method: method, Var: "lat_b"}
	}
	if g.lonB, g.latB, err = as2DMesh(spec.LonB, spec.LatB, "lon_b", "lat_b"); err != nil {
		return nil, err
	}
	// Corner arrays are one larger than center arrays in each
	// horizontal dimension.
	want := []int{g.ny() + 1, g.nx() + 1}
	if g.lonB.Shape[0] != want[0] || g.lonB.Shape[1] != want[1] {
		return nil, ShapeError{Context: "cell corner arrays must be one larger than center arrays in each dimension",
			Got: g.lonB.Shape, Want: want}
	}
	return g, nil
}

// as2DMesh returns lon and lat as 2-dimensional arrays, expanding them
// through an outer product if they are both 1-dimensional.
func as2DMesh(lon, lat *sparse.DenseArray, lonName, latName string) (*sparse.DenseArray, *sparse.DenseArray, error) {
	switch {
	case len(lon.Shape) == 2 && len(lat.Shape) == 2:
		if lon.Shape[0] != lat.Shape[0] || lon.Shape[1] != lat.Shape[1] {
			return nil, nil, ShapeError{
				Context: fmt.Sprintf("%s and %s must have the same shape", lonName, latName),
				Got:     lon.Shape, Want: lat.Shape}
		}
		return lon, lat, nil
	case len(lon.Shape) == 1 && len(lat.Shape) == 1:
		lon2, lat2 := meshgrid(lon, lat)
		return lon2, lat2, nil
	}
	return nil, nil, ShapeError{
		Context: fmt.Sprintf("%s and %s must both be 1-D or both be 2-D; %s has %d dimensions and %s has %d",
			lonName, latName, lonName, len(lon.Shape), latName, len(lat.Shape)),
		Got: lon.Shape}
}

// meshgrid expands 1-dimensional lon and lat vectors into matching
// 2-dimensional arrays of shape (len(lat), len(lon)), with lon varying
// along the last axis.
func meshgrid(lon, lat *sparse.DenseArray) (lon2, lat2 *sparse.DenseArray) {
	ny, nx := lat.Shape[0], lon.Shape[0]
	lon2 = sparse.ZerosDense(ny, nx)
	lat2 = sparse.ZerosDense(ny, nx)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			lon2.Set(lon.Elements[i], j, i)
			lat2.Set(lat.Elements[j], j, i)
		}
	}
	return lon2, lat2
}

// transpose swaps the axes of a 2-dimensional array. The geometric
// engine expects the fastest-varying axis first, so grids are
// transposed on the way in; this reorders storage without changing the
// grid itself.
func transpose(a *sparse.DenseArray) *sparse.DenseArray {
	ny, nx := a.Shape[0], a.Shape[1]
	t := sparse.ZerosDense(nx, ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			t.Set(a.Get(j, i), i, j)
		}
	}
	return t
}
