// Package parser provides spreadsheet and CSV reading utilities for the
// roster tooling.
package parser

// PixelsPerWidthUnit approximates how many screen pixels one Excel column
// width unit spans with the default Calibri 11 font.
const PixelsPerWidthUnit = 6.1

// PixelsToWidth converts a pixel width to Excel column width units.
func PixelsToWidth(pixels float64) float64 {
	return pixels / PixelsPerWidthUnit
}
