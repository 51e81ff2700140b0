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

// A DataArray pairs an N-dimensional data array with dimension names
// and coordinate values. The trailing two dimensions are the horizontal
// grid; the coordinates "lon" and "lat", when present, are
// 2-dimensional arrays spanning them. Coordinates keyed by a leading
// dimension name are 1-dimensional arrays along that dimension.
type DataArray struct {
	Name   string
	Data   *sparse.DenseArray
	Dims   []string
	Coords map[string]*sparse.DenseArray
	Attrs  map[string]string
}

func (d *DataArray) validate() error {
	if d.Data == nil {
		return fmt.Errorf("regrid: DataArray %q has no data", d.Name)
	}
	if len(d.Dims) != len(d.Data.Shape) {
		return fmt.Errorf("regrid: DataArray %q has %d dimension names for %d data dimensions",
			d.Name, len(d.Dims), len(d.Data.Shape))
	}
	return nil
}

// reattachMetadata wraps regridded data in a DataArray carrying the
// input's dimension names and leading-dimension coordinates, the
// destination grid's lon and lat coordinates, and a record of the
// method that produced the result. This is a pure metadata step: data
// has already been regridded.
func (r *Regridder) reattachMetadata(in *DataArray, data *sparse.DenseArray) *DataArray {
	dims := make([]string, len(in.Dims))
	copy(dims, in.Dims)

	out := &DataArray{
		Name:   in.Name,
		Data:   data,
		Dims:   dims,
		Coords: make(map[string]*sparse.DenseArray),
		Attrs:  map[string]string{"regrid_method": string(r.Method)},
	}
	out.Coords["lon"] = r.lonOut
	out.Coords["lat"] = r.latOut
	for _, dim := range dims[:len(dims)-2] {
		if c, ok := in.Coords[dim]; ok {
			out.Coords[dim] = c
		}
	}
	return out
}
