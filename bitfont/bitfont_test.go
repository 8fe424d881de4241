package bitfont_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixeldrift/tilerunner/bitfont"
)

const cell = 8 // 8x8 cells, 128x128 sheet

// newSheet returns a 16x16-cell sheet filled with the background color.
func newSheet() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 16*cell, 16*cell))
	bg := color.RGBA{0, 255, 255, 255}
	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			img.SetRGBA(x, y, bg)
		}
	}
	return img
}

// stamp fills a pixel block inside the cell for character ch.
func stamp(img *image.RGBA, ch byte, x, y, w, h int) {
	cellX := int(ch%16) * cell
	cellY := int(ch/16) * cell
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			img.SetRGBA(cellX+px, cellY+py, color.RGBA{255, 255, 255, 255})
		}
	}
}

func TestBuildInfersGlyphBounds(t *testing.T) {
	img := newSheet()
	// 'A': 4 wide, from row 2 to row 6 (bottom at py=5).
	stamp(img, 'A', 2, 2, 4, 4)
	// 'B': full-height column at the left of its cell.
	stamp(img, 'B', 1, 2, 2, 6)

	font, err := bitfont.Build(img)
	require.NoError(t, err)

	// Highest top across the sheet is row 2, so the shared top trim is 2.
	a := font.Glyphs['A']
	assert.Equal(t, float64(int('A'%16)*cell+2), a.X)
	assert.Equal(t, 4.0, a.W)
	assert.Equal(t, float64(int('A'/16)*cell+2), a.Y)
	assert.Equal(t, float64(cell-2), a.H)

	b := font.Glyphs['B']
	assert.Equal(t, 2.0, b.W)

	// Baseline from the bottom of 'A' (py=5), newline = 5 - 2.
	assert.Equal(t, 3.0, font.NewLine)
	assert.Equal(t, float64(cell)/2, font.Space)
}

func TestBuildEmptyCellDefaultsToFullCell(t *testing.T) {
	img := newSheet()
	stamp(img, 'A', 0, 0, 2, cell) // defines top=0, baseline

	font, err := bitfont.Build(img)
	require.NoError(t, err)

	// 'Q' was never stamped: full cell width.
	q := font.Glyphs['Q']
	assert.Equal(t, float64(cell), q.W)
	assert.Equal(t, float64(int('Q'%16)*cell), q.X)
}

func TestBuildRejectsBadDimensions(t *testing.T) {
	_, err := bitfont.Build(image.NewRGBA(image.Rect(0, 0, 100, 128)))
	assert.Error(t, err)

	_, err = bitfont.Build(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	assert.Error(t, err)
}

func TestMeasure(t *testing.T) {
	img := newSheet()
	stamp(img, 'A', 0, 0, 4, 6)
	stamp(img, 'B', 0, 0, 3, 6)

	font, err := bitfont.Build(img)
	require.NoError(t, err)

	w, h := font.Measure("AB A")
	assert.Equal(t, 4.0+3.0+font.Space+4.0, w)
	assert.Equal(t, font.NewLine, h)

	_, h2 := font.Measure("A\nB")
	assert.Equal(t, 2*font.NewLine, h2)
}
