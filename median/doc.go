// Package median provides fast 1D and 2D sliding-window median filters for
// float64 arrays.
//
// The engine partitions the input into overlapping blocks. Within a block the
// non-NaN cell values are sorted once into a dense rank order; window
// membership is then tracked in a popcount-indexed bitset over those ranks,
// and output positions are visited in snake order so that each step changes
// the window by a single row or column strip. Extracting a median is a
// rank-select query against the bitset, which stays near O(1) while
// consecutive medians are close.
//
// NaN values are excluded from every window. A window containing only NaN
// values produces NaN. Window rectangles are clipped at the array edges; no
// padding or reflection is applied.
package median
