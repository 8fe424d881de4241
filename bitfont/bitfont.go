// Package bitfont builds a bitmap font from a 16x16 glyph sheet by scanning
// pixel data. Each cell holds one character in ASCII order; the glyph
// rectangle inside a cell is inferred by searching for the first
// non-background pixel from each side. The pixel at (0,0) defines the
// background color.
package bitfont

import (
	"fmt"
	"image"

	"github.com/pixeldrift/tilerunner/geometry"
)

const gridSize = 16

// Font holds the glyph clip rectangles inferred from a sheet, indexed by
// character code, plus spacing metrics. The top of every glyph is trimmed
// to the highest sprite top found in the sheet, and the baseline comes from
// the bottom of the capital 'A' so descenders don't inflate line height.
type Font struct {
	Glyphs  [256]geometry.Rect
	Space   float64 // advance for ' '
	NewLine float64 // vertical advance between lines
}

// Build scans sheet and returns the inferred font. The sheet dimensions
// must be divisible by 16 in both directions.
func Build(sheet image.Image) (*Font, error) {
	bounds := sheet.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 || w%gridSize != 0 || h%gridSize != 0 {
		return nil, fmt.Errorf("glyph sheet is %dx%d, want dimensions divisible by %d", w, h, gridSize)
	}

	cellW := w / gridSize
	cellH := h / gridSize

	bgR, bgG, bgB, bgA := sheet.At(bounds.Min.X, bounds.Min.Y).RGBA()
	isGlyph := func(x, y int) bool {
		r, g, b, a := sheet.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
		return r != bgR || g != bgG || b != bgB || a != bgA
	}

	font := &Font{}
	top := cellH
	baseA := cellH

	char := 0
	for row := 0; row < gridSize; row++ {
		for col := 0; col < gridSize; col++ {
			cellX := cellW * col
			cellY := cellH * row

			// Default to the full cell for empty glyphs.
			left := cellX
			width := cellW

			// Left edge: first glyph pixel scanning columns left to right.
		leftScan:
			for px := 0; px < cellW; px++ {
				for py := 0; py < cellH; py++ {
					if isGlyph(cellX+px, cellY+py) {
						left = cellX + px
						break leftScan
					}
				}
			}

			// Right edge: same scan from the other side.
		rightScan:
			for px := cellW - 1; px >= 0; px-- {
				for py := 0; py < cellH; py++ {
					if isGlyph(cellX+px, cellY+py) {
						width = cellX + px - left + 1
						break rightScan
					}
				}
			}

			// Track the highest sprite top across the whole sheet.
		topScan:
			for py := 0; py < cellH; py++ {
				for px := 0; px < cellW; px++ {
					if isGlyph(cellX+px, cellY+py) {
						if py < top {
							top = py
						}
						break topScan
					}
				}
			}

			// The baseline is the bottom of the capital A.
			if char == 'A' {
			baseScan:
				for py := cellH - 1; py >= 0; py-- {
					for px := 0; px < cellW; px++ {
						if isGlyph(cellX+px, cellY+py) {
							baseA = py
							break baseScan
						}
					}
				}
			}

			font.Glyphs[char] = geometry.Rect{
				X: float64(left),
				Y: float64(cellY),
				W: float64(width),
				H: float64(cellH),
			}
			char++
		}
	}

	font.Space = float64(cellW) / 2
	font.NewLine = float64(baseA - top)

	// Lop off the shared empty space above the tallest glyph.
	for i := range font.Glyphs {
		font.Glyphs[i].Y += float64(top)
		font.Glyphs[i].H -= float64(top)
	}

	return font, nil
}

// Measure returns the pixel width and height text would occupy when drawn
// with this font, accounting for spaces and newlines.
func (f *Font) Measure(text string) (float64, float64) {
	var lineW, maxW float64
	lines := 1.0
	for _, ch := range []byte(text) {
		switch ch {
		case ' ':
			lineW += f.Space
		case '\n':
			if lineW > maxW {
				maxW = lineW
			}
			lineW = 0
			lines++
		default:
			lineW += f.Glyphs[ch].W
		}
	}
	if lineW > maxW {
		maxW = lineW
	}
	return maxW, lines * f.NewLine
}
