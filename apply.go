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
	"github.com/ctessum/sparse"
	"github.com/spatialmodel/regrid/weights"
)

// applyWeights multiplies the trailing two axes of in by the transposed
// weight matrix m, replacing them with axes of shape (nyOut, nxOut).
// Any leading axes are batch dimensions and are preserved unchanged.
// The input must have at least two dimensions and its trailing two axes
// must flatten to the matrix column count. Cost is O(NNZ·B) where B is
// the flattened batch size. Neither m nor in is modified; the returned
// array is freshly allocated, and destination cells with no weight
// entries stay zero (masked).
func applyWeights(m *weights.Matrix, in *sparse.DenseArray, nyOut, nxOut int) (*sparse.DenseArray, error) {
	if len(in.Shape) < 2 {
		return nil, ShapeError{Context: "input data must have at least 2 dimensions", Got: in.Shape}
	}
	nd := len(in.Shape)
	nIn := in.Shape[nd-2] * in.Shape[nd-1]
	if nIn != m.NCols {
		return nil, ShapeError{Context: "trailing two axes of input data do not cover the source grid",
			Got: in.Shape[nd-2:], Want: []int{m.NCols}}
	}
	nOut := nyOut * nxOut
	if nOut != m.NRows {
		return nil, ShapeError{Context: "destination grid does not cover the weight matrix rows",
			Got: []int{nyOut, nxOut}, Want: []int{m.NRows}}
	}

	batch := 1
	for _, n := range in.Shape[:nd-2] {
		batch *= n
	}
	outShape := make([]int, 0, nd)
	outShape = append(outShape, in.Shape[:nd-2]...)
	outShape = append(outShape, nyOut, nxOut)
	out := sparse.ZerosDense(outShape...)

	for b := 0; b < batch; b++ {
		src := in.Elements[b*nIn : (b+1)*nIn]
		dst := out.Elements[b*nOut : (b+1)*nOut]
		for k, w := range m.Vals {
			dst[m.Rows[k]] += w * src[m.Cols[k]]
		}
	}
	return out, nil
}
