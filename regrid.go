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
	"os"

	"github.com/ctessum/sparse"
	"github.com/sirupsen/logrus"

	"github.com/spatialmodel/regrid/weights"
)

// A Regridder interpolates data from one horizontal grid to another
// using a precomputed sparse weight matrix. It binds one source grid,
// one destination grid, a method, and the loaded weights, and is
// immutable after construction except for the optional removal of its
// backing weight file. A Regridder is not safe for concurrent
// construction against the same weight file from multiple processes;
// applying weights is a read-only operation.
type Regridder struct {
	// Method is the regridding algorithm the weights were computed
	// with.
	Method Method

	// Periodic indicates that the source grid wraps around in
	// longitude. It is always false for the conservative method.
	Periodic bool

	// WeightFile is the path of the weight file backing this
	// regridder.
	WeightFile string

	// ReuseWeights reports whether reuse of an existing weight file
	// was requested at construction. It is set even when no file
	// existed and the weights had to be computed.
	ReuseWeights bool

	nyIn, nxIn   int
	nyOut, nxOut int
	nIn, nOut    int

	// Destination grid coordinates, retained for metadata
	// reattachment.
	lonOut, latOut *sparse.DenseArray

	matrix *weights.Matrix
	logger *logrus.Logger
}

// NewRegridder creates a regridder from the grid described by gridIn to
// the grid described by gridOut, using the geometric engine e to
// compute weights when no reusable weight file exists. cfg may be nil,
// in which case defaults apply: non-periodic, recompute weights, and a
// weight file named by the canonical scheme in the current working
// directory.
func NewRegridder(e Engine, gridIn, gridOut *GridSpec, method Method, cfg *Config) (*Regridder, error) {
	if !method.valid() {
		return nil, fmt.Errorf("regrid: invalid regridding method %q", method)
	}
	if e == nil {
		return nil, fmt.Errorf("regrid: a geometric engine is required")
	}
	if cfg == nil {
		cfg = new(Config)
	}

	r := &Regridder{
		Method:       method,
		Periodic:     cfg.Periodic,
		WeightFile:   cfg.WeightFile,
		ReuseWeights: cfg.ReuseWeights,
		logger:       cfg.Logger,
	}
	if r.logger == nil {
		r.logger = logrus.StandardLogger()
	}

	needBounds := method.needsBounds()
	if needBounds {
		// Corner arrays are not sized for periodic wrap.
		r.Periodic = false
	}

	in, err := normalizeGrid(gridIn, needBounds, method)
	if err != nil {
		return nil, err
	}
	out, err := normalizeGrid(gridOut, needBounds, method)
	if err != nil {
		return nil, err
	}

	r.nyIn, r.nxIn = in.ny(), in.nx()
	r.nyOut, r.nxOut = out.ny(), out.nx()
	r.nIn, r.nOut = in.size(), out.size()
	r.lonOut, r.latOut = out.lon, out.lat

	if r.WeightFile == "" {
		r.WeightFile = defaultWeightFile(method, r.nyIn, r.nxIn, r.nyOut, r.nxOut, r.Periodic)
	}

	if err := r.ensureWeightFile(e, in, out); err != nil {
		return nil, err
	}
	if r.matrix, err = weights.Read(r.WeightFile, r.nIn, r.nOut); err != nil {
		return nil, err
	}
	return r, nil
}

// Regrid interpolates a bare numeric array to the destination grid. The
// trailing two axes of in must match the source grid shape; any leading
// axes are preserved unchanged. The result is freshly allocated and in
// is not modified.
func (r *Regridder) Regrid(in *sparse.DenseArray) (*sparse.DenseArray, error) {
	if len(in.Shape) < 2 {
		return nil, ShapeError{Context: "input data must have at least 2 dimensions", Got: in.Shape}
	}
	nd := len(in.Shape)
	if in.Shape[nd-2] != r.nyIn || in.Shape[nd-1] != r.nxIn {
		return nil, ShapeError{Context: "the horizontal shape of the input data differs from that of the regridder",
			Got: in.Shape[nd-2:], Want: []int{r.nyIn, r.nxIn}}
	}
	return applyWeights(r.matrix, in, r.nyOut, r.nxOut)
}

// RegridDataArray interpolates a labeled array to the destination grid,
// tracking metadata: the output carries the input's dimension names and
// leading-dimension coordinates, the destination grid's lon and lat
// coordinates over the trailing two dimensions, and a "regrid_method"
// attribute.
func (r *Regridder) RegridDataArray(in *DataArray) (*DataArray, error) {
	if in == nil {
		return nil, fmt.Errorf("regrid: input DataArray is nil")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	data, err := r.Regrid(in.Data)
	if err != nil {
		return nil, err
	}
	return r.reattachMetadata(in, data), nil
}

// RegridAny regrids v, which must be either a *sparse.DenseArray or a
// *DataArray; the result has the same representation as the input.
// Callers with statically typed data should use Regrid or
// RegridDataArray directly.
func (r *Regridder) RegridAny(v interface{}) (interface{}, error) {
	switch a := v.(type) {
	case *sparse.DenseArray:
		return r.Regrid(a)
	case *DataArray:
		return r.RegridDataArray(a)
	}
	return nil, UnsupportedTypeError{Value: v}
}

// Weights returns the loaded weight matrix as a sparse array of shape
// (N_out, N_in). The returned array is a copy; modifying it does not
// affect the regridder.
func (r *Regridder) Weights() *sparse.SparseArray {
	return r.matrix.Sparse()
}

// CleanWeightFile removes the weight file from disk. The regridder
// stays fully usable afterwards because the weights are already in
// memory. Calling it when the file is already gone logs a warning
// instead of failing.
func (r *Regridder) CleanWeightFile() error {
	if _, err := os.Stat(r.WeightFile); err != nil {
		r.logger.WithField("file", r.WeightFile).Warn("weight file is already removed")
		return nil
	}
	r.logger.WithField("file", r.WeightFile).Info(
		"removing weight file; the regridder stays usable because the weights are in memory")
	if err := os.Remove(r.WeightFile); err != nil {
		return fmt.Errorf("regrid: removing weight file %s: %v", r.WeightFile, err)
	}
	return nil
}

// InShape returns the source grid shape (Ny, Nx).
func (r *Regridder) InShape() (ny, nx int) { return r.nyIn, r.nxIn }

// OutShape returns the destination grid shape (Ny, Nx).
func (r *Regridder) OutShape() (ny, nx int) { return r.nyOut, r.nxOut }

func (r *Regridder) String() string {
	return fmt.Sprintf("regrid.Regridder\n"+
		"Regridding algorithm:       %s\n"+
		"Weight filename:            %s\n"+
		"Reuse pre-computed weights? %v\n"+
		"Input grid shape:           (%d, %d)\n"+
		"Output grid shape:          (%d, %d)\n"+
		"Periodic in longitude?      %v",
		r.Method, r.WeightFile, r.ReuseWeights,
		r.nyIn, r.nxIn, r.nyOut, r.nxOut, r.Periodic)
}
