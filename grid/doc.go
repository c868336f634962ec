// Package grid holds the regular survey grid model and the geometry helpers
// that prepare it for spectral processing.
//
// A [Grid] stores samples as a flat row-major slice: Data[i*NY+j] is the
// sample at x index i and y index j. X and Y carry one coordinate per sample
// with the same layout, so they can come straight from a column file.
//
// # Padding
//
// [Pad] grows the grid to the next power-of-two square by replicating edge
// values outward. The leading offsets it returns are the only thing needed
// to crop back, so [Padded.Crop] always reproduces the original samples even
// when the padding on the two sides of an axis differs by one.
//
// # Wavenumbers
//
// [NewWavenumbers] derives the angular spatial-frequency meshes for a padded
// grid from the per-axis sample spacing. Rows of the meshes follow x and
// columns follow y, matching the grid layout.
package grid
