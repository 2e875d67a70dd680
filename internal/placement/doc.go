// Package placement decides where a floating source rectangle goes relative
// to a target rectangle.
//
// The main entry point is [Evaluate]: it tries the default placement first,
// then walks the flip order, and returns the first candidate whose rectangle
// lies inside the viewport boundary. When nothing fits, the default placement
// is returned with Overflow set; callers report that as a diagnostic and keep
// rendering.
package placement
