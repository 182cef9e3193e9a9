package main

import (
	"image"
	"testing"
)

func cellHasInk(atlas *image.Alpha, cell image.Rectangle) bool {
	for y := cell.Min.Y; y < cell.Max.Y; y++ {
		for x := cell.Min.X; x < cell.Max.X; x++ {
			if atlas.AlphaAt(x, y).A != 0 {
				return true
			}
		}
	}
	return false
}

func TestGlyphAtlas(t *testing.T) {
	face, err := NewMonoFace(12, 72)
	if err != nil {
		t.Fatal(err)
	}
	defer face.Close()
	sizeInTiles := Size{X: 16, Y: 8}
	atlas, err := GlyphAtlas(face, sizeInTiles)
	if err != nil {
		t.Fatal(err)
	}
	size := atlas.Bounds().Size()
	if size.X == 0 || size.Y == 0 || size.X%16 != 0 || size.Y%8 != 0 {
		t.Fatalf("atlas size %v is not a 16x8 grid", size)
	}
	cellW, cellH := size.X/16, size.Y/8
	cell := func(r rune) image.Rectangle {
		x, y := int(r)%16*cellW, int(r)/16*cellH
		return image.Rect(x, y, x+cellW, y+cellH)
	}
	if !cellHasInk(atlas, cell('M')) {
		t.Error("cell for 'M' is empty")
	}
	if cellHasInk(atlas, cell(' ')) {
		t.Error("cell for ' ' has ink")
	}
}

func TestGlyphAtlasRejectsEmptyGrid(t *testing.T) {
	face, err := NewMonoFace(12, 72)
	if err != nil {
		t.Fatal(err)
	}
	defer face.Close()
	if _, err := GlyphAtlas(face, Size{X: 0, Y: 8}); err == nil {
		t.Error("GlyphAtlas accepted a zero-column grid")
	}
}
