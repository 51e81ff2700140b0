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
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// defaultWeightFile derives the canonical weight file name for a
// combination of method, grid shapes and periodicity, e.g.
// "bilinear_400x600_300x400.nc" or "bilinear_400x600_300x400_peri.nc".
// The name is a pure function of its arguments so that equivalent
// regridders resolve to the same file.
func defaultWeightFile(method Method, nyIn, nxIn, nyOut, nxOut int, periodic bool) string {
	name := fmt.Sprintf("%s_%dx%d_%dx%d", method, nyIn, nxIn, nyOut, nxOut)
	if periodic {
		name += "_peri"
	}
	return name + ".nc"
}

// ensureWeightFile makes sure a weight file exists at r.WeightFile,
// invoking the engine to build one when the file is absent or when
// reuse of an existing file is declined. Engine grid handles are only
// constructed on the branches that build, so reusing an existing file
// makes no engine calls at all. A new file is computed at a temporary
// path and renamed into place, so a failed build never leaves a corrupt
// file behind.
func (r *Regridder) ensureWeightFile(e Engine, in, out *gridCoords) error {
	fields := logrus.Fields{"file": r.WeightFile, "method": r.Method}

	if _, err := os.Stat(r.WeightFile); err == nil {
		if r.ReuseWeights {
			r.logger.WithFields(fields).Info("reusing existing weight file")
			return nil
		}
		r.logger.WithFields(fields).Warn(
			"overwriting existing weight file; set ReuseWeights to save computing time")
		if err := os.Remove(r.WeightFile); err != nil {
			return ArtifactBuildError{Path: r.WeightFile, Err: err}
		}
	} else {
		r.logger.WithFields(fields).Info("creating weight file")
	}

	if err := r.buildWeightFile(e, in, out); err != nil {
		return ArtifactBuildError{Path: r.WeightFile, Err: err}
	}
	return nil
}

func (r *Regridder) buildWeightFile(e Engine, in, out *gridCoords) error {
	gIn, err := buildEngineGrid(e, in, r.Periodic)
	if err != nil {
		return err
	}
	gOut, err := buildEngineGrid(e, out, false)
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.WeightFile)
	tmp, err := ioutil.TempFile(dir, filepath.Base(r.WeightFile)+".tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	tmp.Close()

	if err := e.ComputeWeights(gIn, gOut, r.Method, tmpName); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, r.WeightFile)
}

// buildEngineGrid hands a normalized grid to the engine, transposing
// the coordinate arrays into the engine's expected axis order.
func buildEngineGrid(e Engine, g *gridCoords, periodic bool) (GridHandle, error) {
	h, err := e.BuildGrid(transpose(g.lon), transpose(g.lat), periodic)
	if err != nil {
		return nil, err
	}
	if g.lonB != nil {
		if err := e.AddCorners(h, transpose(g.lonB), transpose(g.latB)); err != nil {
			return nil, err
		}
	}
	return h, nil
}
