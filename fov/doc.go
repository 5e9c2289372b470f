// Package fov computes symmetric shadowcasting field-of-view over a grid of
// opaque/transparent tiles.
//
// Fov sweeps four cardinal quadrants (north, east, south, west) outward from
// an origin cell, maintaining a LIFO stack of angular sectors per quadrant
// rather than recursing. Sector boundaries are tracked as signed rational
// slopes so no floating-point rounding can break the symmetric-visibility
// guarantee: if a sees b, b sees a.
package fov
