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

// Package regrid interpolates gridded geophysical fields between
// horizontal grids using precomputed sparse weight matrices.
//
// The geometric work of computing interpolation weights belongs to an
// external Engine; this package manages everything around it: it
// normalizes user-supplied grid coordinates, derives a canonical weight
// file name from the grid shapes and method, builds or reuses the
// weight file on disk, loads it into memory, and applies the sparse
// matrix to data arrays of arbitrary rank whose trailing two axes are
// the horizontal grid. Leading ("batch") axes such as time or vertical
// level pass through unchanged, and labeled arrays keep their dimension
// names and coordinates.
//
//	rg, err := regrid.NewRegridder(engine, gridIn, gridOut,
//		regrid.Bilinear, &regrid.Config{ReuseWeights: true})
//	if err != nil {
//		// ...
//	}
//	out, err := rg.Regrid(data) // data shape (..., NyIn, NxIn)
//
// All operations are synchronous and single-threaded. The weight file
// is a shared filesystem resource with no locking: building weights for
// the same file from multiple processes at once is undefined behavior.
package regrid
