// Package forest analyses a rectangular grid of tree heights.
//
// What:
//
//   - Grid wraps an immutable [][]int of single-digit heights, indexed by
//     (row, col).
//   - Visible casts a ray from a cell toward one edge and reports whether
//     every cell on the way is strictly lower. Equal heights block the view.
//   - ViewingDistance counts cells along a ray up to and including the first
//     cell at least as tall as the origin, or up to the edge.
//   - ScenicScore multiplies the four viewing distances; any edge cell scores 0.
//   - CountVisible and MaxScenicScore scan the whole grid.
//
// Complexity:
//
//   - Visible, ViewingDistance: O(max(W, H)).
//   - CountVisible, MaxScenicScore: O(W × H × (W + H)).
//
// Errors:
//
//   - ErrEmptyGrid:      no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrBadHeight:      a byte that is not a decimal digit.
//   - ErrOutOfBounds:    a query outside the grid.
package forest
