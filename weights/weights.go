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

// Package weights holds sparse regridding weight matrices and reads and
// writes them as NetCDF triplet files.
//
// A weight file has a single dimension "n_s" (the number of stored
// entries) and three variables over it: "row" and "col" (int32, 0-based
// flattened destination and source cell indices) and "S" (float64
// weight values). The global attributes "n_out" and "n_in" record the
// matrix shape. Weight values round-trip exactly.
package weights

import (
	"fmt"
	"os"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
	"github.com/gonum/floats"
)

// A Matrix is a sparse interpolation weight matrix of shape
// (NRows, NCols) = (number of destination cells, number of source
// cells), stored as coordinate triplets. An entry (row, col, w) means
// destination cell 'row' receives the contribution w from source cell
// 'col'. A destination cell that appears in no entry is masked: its
// regridded value is always zero.
type Matrix struct {
	NRows, NCols int
	Rows, Cols   []int32
	Vals         []float64
}

// New creates an empty weight matrix with the given shape.
func New(nRows, nCols int) *Matrix {
	return &Matrix{NRows: nRows, NCols: nCols}
}

// Add appends the weight entry (row, col, w) to the matrix.
func (m *Matrix) Add(row, col int, w float64) {
	m.Rows = append(m.Rows, int32(row))
	m.Cols = append(m.Cols, int32(col))
	m.Vals = append(m.Vals, w)
}

// NNZ returns the number of stored entries.
func (m *Matrix) NNZ() int { return len(m.Vals) }

// Scale multiplies all weights by alpha in place.
func (m *Matrix) Scale(alpha float64) { floats.Scale(alpha, m.Vals) }

// RowSums returns the sum of the weights attributed to each destination
// cell. For a conservative weight matrix over an unmasked grid the sums
// should be close to one.
func (m *Matrix) RowSums() []float64 {
	s := make([]float64, m.NRows)
	for k, w := range m.Vals {
		s[m.Rows[k]] += w
	}
	return s
}

// Sparse returns the matrix as a 2-dimensional sparse array of shape
// (NRows, NCols). Duplicate triplet entries are summed.
func (m *Matrix) Sparse() *sparse.SparseArray {
	a := sparse.ZerosSparse(m.NRows, m.NCols)
	for k, w := range m.Vals {
		a.AddVal(w, int(m.Rows[k]), int(m.Cols[k]))
	}
	return a
}

// check verifies that all stored indices lie within the matrix shape
// and that the triplet slices have matching lengths.
func (m *Matrix) check(path string) error {
	if len(m.Rows) != len(m.Vals) || len(m.Cols) != len(m.Vals) {
		return FormatError{Path: path, Problem: fmt.Sprintf(
			"triplet lengths do not match: %d rows, %d cols, %d weights",
			len(m.Rows), len(m.Cols), len(m.Vals))}
	}
	for k := range m.Vals {
		if r := m.Rows[k]; r < 0 || int(r) >= m.NRows {
			return FormatError{Path: path, Problem: fmt.Sprintf(
				"row index %d out of range [0,%d)", r, m.NRows)}
		}
		if c := m.Cols[k]; c < 0 || int(c) >= m.NCols {
			return FormatError{Path: path, Problem: fmt.Sprintf(
				"column index %d out of range [0,%d)", c, m.NCols)}
		}
	}
	return nil
}

// A FormatError indicates that a weight file is corrupt or structurally
// inconsistent with the grid shapes it is being used with.
type FormatError struct {
	Path    string
	Problem string
}

func (e FormatError) Error() string {
	return fmt.Sprintf("regrid/weights: invalid weight file %s: %s", e.Path, e.Problem)
}

// Write persists m to a NetCDF triplet file at path, overwriting any
// existing file.
func (m *Matrix) Write(path string) error {
	if m.NNZ() == 0 {
		return fmt.Errorf("regrid/weights: refusing to write weight matrix with no entries")
	}
	if err := m.check(path); err != nil {
		return err
	}

	h := cdf.NewHeader([]string{"n_s"}, []int{m.NNZ()})
	h.AddVariable("row", []string{"n_s"}, []int32{0})
	h.AddAttribute("row", "description", "0-based flattened destination cell index")
	h.AddVariable("col", []string{"n_s"}, []int32{0})
	h.AddAttribute("col", "description", "0-based flattened source cell index")
	h.AddVariable("S", []string{"n_s"}, []float64{0})
	h.AddAttribute("S", "description", "interpolation weight")
	h.AddAttribute("", "n_out", []int32{int32(m.NRows)})
	h.AddAttribute("", "n_in", []int32{int32(m.NCols)})
	h.Define()
	for _, err := range h.Check() {
		return fmt.Errorf("regrid/weights: creating weight file header: %v", err)
	}

	ff, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("regrid/weights: creating weight file: %v", err)
	}
	defer ff.Close()
	f, err := cdf.Create(ff, h)
	if err != nil {
		return fmt.Errorf("regrid/weights: writing weight file header: %v", err)
	}
	for _, v := range []struct {
		name string
		data interface{}
	}{
		{"row", m.Rows},
		{"col", m.Cols},
		{"S", m.Vals},
	} {
		w := f.Writer(v.name, []int{0}, []int{m.NNZ()})
		if _, err := w.Write(v.data); err != nil {
			return fmt.Errorf("regrid/weights: writing variable %s: %v", v.name, err)
		}
	}
	return ff.Close()
}

// Read loads the weight matrix persisted at path. nIn and nOut are the
// flattened sizes of the source and destination grids as known to the
// caller; they are cross-checked against the shape recorded in the file
// and against every stored index, and any disagreement is reported as a
// FormatError rather than being silently truncated.
func Read(path string, nIn, nOut int) (*Matrix, error) {
	ff, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("regrid/weights: opening weight file: %v", err)
	}
	defer ff.Close()
	f, err := cdf.Open(ff)
	if err != nil {
		return nil, FormatError{Path: path, Problem: fmt.Sprintf("reading header: %v", err)}
	}

	if n, ok := attrInt(f, "n_out"); ok && n != nOut {
		return nil, FormatError{Path: path, Problem: fmt.Sprintf(
			"file holds weights for %d destination cells, but the destination grid has %d", n, nOut)}
	}
	if n, ok := attrInt(f, "n_in"); ok && n != nIn {
		return nil, FormatError{Path: path, Problem: fmt.Sprintf(
			"file holds weights for %d source cells, but the source grid has %d", n, nIn)}
	}

	m := New(nOut, nIn)
	if m.Rows, err = readInt32(f, path, "row"); err != nil {
		return nil, err
	}
	if m.Cols, err = readInt32(f, path, "col"); err != nil {
		return nil, err
	}
	if m.Vals, err = readFloat64(f, path, "S"); err != nil {
		return nil, err
	}
	if err := m.check(path); err != nil {
		return nil, err
	}
	return m, nil
}

// hasVariable reports whether the file defines a variable named v.
// Asking cdf for a reader on an undefined variable is not safe.
func hasVariable(f *cdf.File, v string) bool {
	for _, name := range f.Header.Variables() {
		if name == v {
			return true
		}
	}
	return false
}

// attrInt returns the global integer attribute named a, if present.
func attrInt(f *cdf.File, a string) (int, bool) {
	v, ok := f.Header.GetAttribute("", a).([]int32)
	if !ok || len(v) == 0 {
		return 0, false
	}
	return int(v[0]), true
}

func readInt32(f *cdf.File, path, v string) ([]int32, error) {
	buf, err := readFullVar(f, path, v)
	if err != nil {
		return nil, err
	}
	d, ok := buf.([]int32)
	if !ok {
		return nil, FormatError{Path: path, Problem: fmt.Sprintf("variable %s is %T, want []int32", v, buf)}
	}
	return d, nil
}

func readFloat64(f *cdf.File, path, v string) ([]float64, error) {
	buf, err := readFullVar(f, path, v)
	if err != nil {
		return nil, err
	}
	d, ok := buf.([]float64)
	if !ok {
		return nil, FormatError{Path: path, Problem: fmt.Sprintf("variable %s is %T, want []float64", v, buf)}
	}
	return d, nil
}

func readFullVar(f *cdf.File, path, v string) (interface{}, error) {
	if !hasVariable(f, v) {
		return nil, FormatError{Path: path, Problem: fmt.Sprintf("variable %s is missing", v)}
	}
	r := f.Reader(v, nil, nil)
	buf := r.Zero(-1)
	if _, err := r.Read(buf); err != nil {
		return nil, FormatError{Path: path, Problem: fmt.Sprintf("reading variable %s: %v", v, err)}
	}
	return buf, nil
}
