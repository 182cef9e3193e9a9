package main

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type FontSizeInPoints = float64

func NewMonoFace(size FontSizeInPoints, dpi float64) (font.Face, error) {
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse gomono: %w", err)
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}

// GlyphAtlas rasterizes runes 0..cols*rows-1 of a monospaced face into
// a grid of equal cells, row-major. Cells are as wide as 'M'.
func GlyphAtlas(face font.Face, sizeInTiles Size) (*image.Alpha, error) {
	cols, rows := sizeInTiles.X, sizeInTiles.Y
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("sizeInTiles must be positive, got %v", sizeInTiles)
	}
	adv, ok := face.GlyphAdvance('M')
	if !ok || adv.Ceil() <= 0 {
		return nil, fmt.Errorf("font face has no advance for 'M'")
	}
	cellW := adv.Ceil()
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	cellH := metrics.Height.Ceil()
	if cellH <= 0 {
		cellH = ascent + metrics.Descent.Ceil()
	}
	atlas := image.NewAlpha(image.Rect(0, 0, cellW*cols, cellH*rows))
	for i := 0; i < cols*rows; i++ {
		dot := fixed.P(i%cols*cellW, i/cols*cellH+ascent)
		dr, mask, maskp, _, ok := face.Glyph(dot, rune(i))
		if !ok || mask == nil {
			continue
		}
		draw.Draw(atlas, dr, mask, maskp, draw.Src)
	}
	return atlas, nil
}
