// Package sections compares pairs of inclusive section ranges.
//
// A pair line has the shape "a-b,c-d" with a ≤ b and c ≤ d. CountContained
// counts pairs where one range fully contains the other; CountOverlapping
// counts pairs sharing at least one section.
//
// Complexity: O(1) per pair; ranges are compared by their bounds, never
// materialized.
package sections
