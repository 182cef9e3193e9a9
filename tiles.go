package main

import (
	"fmt"
	"image"
	"unsafe"

	gl "github.com/go-gl/gl/v3.1/gles2"
	mgl "github.com/go-gl/mathgl/mgl32"

	"github.com/cellux/fractalview/internal/nav"
)

const (
	tileVertexShader = `
    precision highp float;
    attribute vec2 a_position;
    attribute vec2 a_texcoord;
    uniform mat4 u_transform;
    varying vec2 v_texcoord;
    void main(void) {
      gl_Position = u_transform * vec4(a_position, 0.0, 1.0);
      v_texcoord = a_texcoord;
    }` + "\x00"
	tileFragmentShader = `
    precision mediump float;
    uniform sampler2D u_tex;
    varying vec2 v_texcoord;
    void main(void) {
      gl_FragColor = vec4(texture2D(u_tex, v_texcoord).a);
    }` + "\x00"
)

type Size = image.Point

type TileVertex struct {
	position [2]float32
	texcoord [2]float32
}

// TileMap is a glyph atlas uploaded as a texture, addressed by rune.
type TileMap struct {
	img         *image.Alpha
	cols, rows  int
	tex         Texture
	program     *Program
	a_position  int32
	a_texcoord  int32
	u_transform int32
	u_tex       int32
}

type TileDrawList struct {
	tm       *TileMap
	vertices []TileVertex
}

func CreateTileMap(img *image.Alpha, sizeInTiles Size) (*TileMap, error) {
	program, err := CreateProgram(tileVertexShader, tileFragmentShader)
	if err != nil {
		return nil, err
	}
	tex, err := CreateTexture()
	if err != nil {
		program.Close()
		return nil, err
	}
	mapSize := img.Bounds().Size()
	if mapSize.X == 0 || mapSize.Y == 0 {
		tex.Close()
		program.Close()
		return nil, fmt.Errorf("empty tile map image")
	}
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.ALPHA,
		int32(mapSize.X), int32(mapSize.Y),
		0, gl.ALPHA, gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	tm := &TileMap{
		img:         img,
		cols:        sizeInTiles.X,
		rows:        sizeInTiles.Y,
		tex:         tex,
		program:     program,
		a_position:  program.GetAttribLocation("a_position\x00"),
		a_texcoord:  program.GetAttribLocation("a_texcoord\x00"),
		u_transform: program.GetUniformLocation("u_transform\x00"),
		u_tex:       program.GetUniformLocation("u_tex\x00"),
	}
	return tm, nil
}

func (tm *TileMap) GetMapSize() Size {
	return tm.img.Bounds().Size()
}

func (tm *TileMap) GetTileSize() Size {
	mapSize := tm.GetMapSize()
	return Size{X: mapSize.X / tm.cols, Y: mapSize.Y / tm.rows}
}

func (tm *TileMap) CreateDrawList() *TileDrawList {
	return &TileDrawList{
		tm:       tm,
		vertices: make([]TileVertex, 0, 6*128),
	}
}

func (tdl *TileDrawList) Clear() {
	tdl.vertices = tdl.vertices[:0]
}

func (tdl *TileDrawList) DrawRune(x, y int, r rune) {
	rows := tdl.tm.rows
	cols := tdl.tm.cols
	if int(r) >= rows*cols {
		r = '?'
	}
	col := int(r) % cols
	row := int(r) / cols
	x0 := float32(x)
	x1 := float32(x + 1)
	y0 := float32(-y)
	y1 := float32(-y - 1)
	tx := float32(1.0) / float32(cols)
	ty := float32(1.0) / float32(rows)
	s0 := float32(col) / float32(cols)
	s1 := s0 + tx
	t0 := float32(row) / float32(rows)
	t1 := t0 + ty
	tdl.vertices = append(tdl.vertices,
		TileVertex{position: [2]float32{x0, y0}, texcoord: [2]float32{s0, t0}},
		TileVertex{position: [2]float32{x0, y1}, texcoord: [2]float32{s0, t1}},
		TileVertex{position: [2]float32{x1, y1}, texcoord: [2]float32{s1, t1}},
		TileVertex{position: [2]float32{x1, y1}, texcoord: [2]float32{s1, t1}},
		TileVertex{position: [2]float32{x1, y0}, texcoord: [2]float32{s1, t0}},
		TileVertex{position: [2]float32{x0, y0}, texcoord: [2]float32{s0, t0}},
	)
}

func (tdl *TileDrawList) DrawString(x, y int, s string) {
	offset := 0
	for _, r := range s {
		tdl.DrawRune(x+offset, y, r)
		offset++
	}
}

// Render draws the list with its top-left tile at pixel origin.
func (tdl *TileDrawList) Render(origin image.Point, vp nav.Viewport) {
	if len(tdl.vertices) == 0 {
		return
	}
	tm := tdl.tm
	tm.program.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	tm.tex.Bind()
	gl.Uniform1i(tm.u_tex, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.EnableVertexAttribArray(uint32(tm.a_position))
	gl.VertexAttribPointer(
		uint32(tm.a_position), 2, gl.FLOAT, false,
		int32(unsafe.Sizeof(TileVertex{})),
		gl.Ptr(&tdl.vertices[0].position[0]))
	gl.EnableVertexAttribArray(uint32(tm.a_texcoord))
	gl.VertexAttribPointer(
		uint32(tm.a_texcoord), 2, gl.FLOAT, false,
		int32(unsafe.Sizeof(TileVertex{})),
		gl.Ptr(&tdl.vertices[0].texcoord[0]))
	tileSize := tm.GetTileSize()
	mScale := mgl.Scale3D(float32(tileSize.X), float32(tileSize.Y), 1)
	mTranslate := mgl.Translate3D(float32(origin.X), float32(-origin.Y), 0)
	// tile rows grow downward along -y; flip back into pixel space
	mFlip := mgl.Scale3D(1, -1, 1)
	mTransform := PixelTransform(vp).Mul4(mFlip).Mul4(mTranslate).Mul4(mScale)
	gl.UniformMatrix4fv(tm.u_transform, 1, false, &mTransform[0])
	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.ONE, gl.ONE)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(tdl.vertices)))
	gl.Disable(gl.BLEND)
	gl.DisableVertexAttribArray(uint32(tm.a_position))
	gl.DisableVertexAttribArray(uint32(tm.a_texcoord))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (tm *TileMap) Close() error {
	tm.tex.Close()
	return tm.program.Close()
}
