// Package signal locates start markers in a datastream.
//
// A marker is the first position at which the most recent N received
// symbols are pairwise distinct. Window is the fixed-capacity ring buffer
// holding those symbols; its capacity is chosen per call site
// (PacketMarkerSize or MessageMarkerSize) instead of being fixed at compile
// time.
//
// Complexity:
//
//   - Window.Push:      O(1).
//   - Window.AllUnique: O(N²) pairwise comparison; N ≤ 14 in practice.
//   - FirstMarker:      O(L × N²) for a stream of length L.
package signal
