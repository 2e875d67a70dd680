// Package geom provides the axis-aligned geometry used by overlay placement.
//
// All values are float64 viewport coordinates (CSS pixels, not page
// coordinates). Types are re-exported through the root overlay package for
// public consumption.
package geom
