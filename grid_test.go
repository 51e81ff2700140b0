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
	"reflect"
	"testing"

	"github.com/ctessum/sparse"
)

// dense1d creates a 1-dimensional array from vals.
func dense1d(vals ...float64) *sparse.DenseArray {
	a := sparse.ZerosDense(len(vals))
	copy(a.Elements, vals)
	return a
}

// dense creates an array of the given shape with the given elements.
func dense(shape []int, vals []float64) *sparse.DenseArray {
	a := sparse.ZerosDense(shape...)
	copy(a.Elements, vals)
	return a
}

func TestNormalizeGrid1DMatches2D(t *testing.T) {
	// A rectilinear grid given as 1-D vectors must expand to exactly
	// the arrays of the equivalent 2-D specification.
	lon1 := dense1d(0, 1, 2, 3)
	lat1 := dense1d(10, 20, 30)
	lon2 := dense([]int{3, 4}, []float64{
		0, 1, 2, 3,
		0, 1, 2, 3,
		0, 1, 2, 3,
	})
	lat2 := dense([]int{3, 4}, []float64{
		10, 10, 10, 10,
		20, 20, 20, 20,
		30, 30, 30, 30,
	})

	g1, err := normalizeGrid(&GridSpec{Lon: lon1, Lat: lat1}, false, Bilinear)
	if err != nil {
		t.Fatal(err)
	}
	g2, err := normalizeGrid(&GridSpec{Lon: lon2, Lat: lat2}, false, Bilinear)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(g1.lon.Shape, []int{3, 4}) {
		t.Fatalf("lon shape = %v, want [3 4]", g1.lon.Shape)
	}
	if !reflect.DeepEqual(g1.lon.Elements, g2.lon.Elements) {
		t.Errorf("expanded lon = %v, want %v", g1.lon.Elements, g2.lon.Elements)
	}
	if !reflect.DeepEqual(g1.lat.Elements, g2.lat.Elements) {
		t.Errorf("expanded lat = %v, want %v", g1.lat.Elements, g2.lat.Elements)
	}
}

func TestNormalizeGridMixedDims(t *testing.T) {
	_, err := normalizeGrid(&GridSpec{
		Lon: dense1d(0, 1, 2),
		Lat: dense([]int{2, 3}, make([]float64, 6)),
	}, false, Bilinear)
	if err == nil {
		t.Fatal("got nil error, want ShapeError")
	}
	if _, ok := err.(ShapeError); !ok {
		t.Errorf("got %T (%v), want ShapeError", err, err)
	}
}

func TestNormalizeGridCenterShapeMismatch(t *testing.T) {
	_, err := normalizeGrid(&GridSpec{
		Lon: dense([]int{2, 3}, make([]float64, 6)),
		Lat: dense([]int{3, 2}, make([]float64, 6)),
	}, false, Bilinear)
	if _, ok := err.(ShapeError); !ok {
		t.Errorf("got %T (%v), want ShapeError", err, err)
	}
}

func TestNormalizeGridMissingBounds(t *testing.T) {
	spec := &GridSpec{Lon: dense1d(0, 1, 2), Lat: dense1d(0, 1)}
	_, err := normalizeGrid(spec, true, Conservative)
	if e, ok := err.(MissingBoundsError); !ok {
		t.Fatalf("got %T (%v), want MissingBoundsError", err, err)
	} else if e.Var != "lon_b" {
		t.Errorf("missing variable = %q, want lon_b", e.Var)
	}

	spec.LonB = dense1d(-0.5, 0.5, 1.5, 2.5)
	_, err = normalizeGrid(spec, true, Conservative)
	if e, ok := err.(MissingBoundsError); !ok {
		t.Fatalf("got %T (%v), want MissingBoundsError", err, err)
	} else if e.Var != "lat_b" {
		t.Errorf("missing variable = %q, want lat_b", e.Var)
	}
}

func TestNormalizeGridBounds(t *testing.T) {
	spec := &GridSpec{
		Lon:  dense1d(0, 1, 2),
		Lat:  dense1d(0, 1),
		LonB: dense1d(-0.5, 0.5, 1.5, 2.5),
		LatB: dense1d(-0.5, 0.5, 1.5),
	}
	g, err := normalizeGrid(spec, true, Conservative)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(g.lonB.Shape, []int{3, 4}) {
		t.Errorf("corner shape = %v, want [3 4]", g.lonB.Shape)
	}
}

func TestNormalizeGridBadCornerSize(t *testing.T) {
	spec := &GridSpec{
		Lon:  dense1d(0, 1, 2),
		Lat:  dense1d(0, 1),
		LonB: dense1d(-0.5, 0.5, 1.5), // should have 4 elements
		LatB: dense1d(-0.5, 0.5, 1.5),
	}
	_, err := normalizeGrid(spec, true, Conservative)
	if _, ok := err.(ShapeError); !ok {
		t.Errorf("got %T (%v), want ShapeError", err, err)
	}
}

func TestTranspose(t *testing.T) {
	a := dense([]int{2, 3}, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	at := transpose(a)
	if !reflect.DeepEqual(at.Shape, []int{3, 2}) {
		t.Fatalf("shape = %v, want [3 2]", at.Shape)
	}
	want := []float64{
		1, 4,
		2, 5,
		3, 6,
	}
	if !reflect.DeepEqual(at.Elements, want) {
		t.Errorf("elements = %v, want %v", at.Elements, want)
	}
}
