package main

import (
	"image"

	"github.com/cellux/fractalview/internal/nav"
)

const (
	hudFontSize FontSizeInPoints = 11
	hudMargin                    = 8
)

// HUD draws a single status line in the top-left corner.
type HUD struct {
	tm  *TileMap
	tdl *TileDrawList
}

func CreateHUD(contentScale float32) (*HUD, error) {
	face, err := NewMonoFace(hudFontSize, 96*float64(contentScale))
	if err != nil {
		return nil, err
	}
	defer face.Close()
	sizeInTiles := Size{X: 16, Y: 8}
	faceImage, err := GlyphAtlas(face, sizeInTiles)
	if err != nil {
		return nil, err
	}
	tm, err := CreateTileMap(faceImage, sizeInTiles)
	if err != nil {
		return nil, err
	}
	return &HUD{
		tm:  tm,
		tdl: tm.CreateDrawList(),
	}, nil
}

func (h *HUD) Render(f nav.Frame, vp nav.Viewport) {
	h.tdl.Clear()
	h.tdl.DrawString(0, 0, f.Status())
	h.tdl.Render(image.Pt(hudMargin, hudMargin), vp)
}

func (h *HUD) Close() error {
	return h.tm.Close()
}
