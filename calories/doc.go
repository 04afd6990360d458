// Package calories totals blank-line separated groups of integers and
// selects the heaviest ones.
//
// What:
//
//   - ParseGroups splits an inventory listing into Groups; a group ends at a
//     blank line or at the end of input.
//   - Max returns the largest group total.
//   - TopN sums the n largest totals using a container/heap max-heap.
//
// Complexity:
//
//   - ParseGroups: O(L) for L input lines.
//   - Max:         O(G) for G groups.
//   - TopN:        O(G + n log G).
//
// Errors:
//
//   - ErrBadCalories:     a non-blank line is not a non-negative integer.
//   - ErrNoGroups:        the input holds no numbers at all.
//   - ErrNotEnoughGroups: fewer than n groups were passed to TopN.
package calories
