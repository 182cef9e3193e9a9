package main

import (
	"fmt"

	gl "github.com/go-gl/gl/v3.1/gles2"

	"github.com/cellux/fractalview/internal/nav"
)

var (
	quadVertices = []float32{-1, -1, 1, -1, 1, 1, -1, 1}
	quadIndices  = []uint16{0, 1, 2, 2, 3, 0}
)

// FractalRenderer draws a full-screen quad with the fractal program
// and feeds it the navigation state through uniforms.
type FractalRenderer struct {
	program      *Program
	vbo          Buffer
	ebo          Buffer
	inPos        uint32
	uResolution  int32
	uZoom        int32
	uCenter      int32
	uLocalOffset int32
	uType        int32
	uAnimating   int32
}

func CreateFractalRenderer(vertexSource, fragmentSource string) (*FractalRenderer, error) {
	program, err := CreateProgram(vertexSource, fragmentSource, "inPos")
	if err != nil {
		return nil, err
	}
	vbo, err := CreateBuffer(gl.ARRAY_BUFFER, quadVertices, gl.STATIC_DRAW)
	if err != nil {
		program.Close()
		return nil, fmt.Errorf("quad vertices: %w", err)
	}
	ebo, err := CreateBuffer(gl.ELEMENT_ARRAY_BUFFER, quadIndices, gl.STATIC_DRAW)
	if err != nil {
		vbo.Close()
		program.Close()
		return nil, fmt.Errorf("quad indices: %w", err)
	}
	fr := &FractalRenderer{
		program:      program,
		vbo:          vbo,
		ebo:          ebo,
		inPos:        0,
		uResolution:  program.GetUniformLocation("resolution\x00"),
		uZoom:        program.GetUniformLocation("zoom\x00"),
		uCenter:      program.GetUniformLocation("center\x00"),
		uLocalOffset: program.GetUniformLocation("localOffset\x00"),
		uType:        program.GetUniformLocation("fractalType\x00"),
		uAnimating:   program.GetUniformLocation("isAnimating\x00"),
	}
	logger.Debug("fractal uniforms",
		"resolution", fr.uResolution,
		"zoom", fr.uZoom,
		"center", fr.uCenter,
		"localOffset", fr.uLocalOffset,
		"fractalType", fr.uType,
		"isAnimating", fr.uAnimating)
	return fr, nil
}

// SetUniforms pushes f into the program. Uniforms the shader does not
// declare are skipped.
func (fr *FractalRenderer) SetUniforms(f nav.Frame) {
	fr.program.Use()
	if fr.uResolution >= 0 {
		gl.Uniform2f(fr.uResolution, float32(f.Width), float32(f.Height))
	}
	if fr.uZoom >= 0 {
		gl.Uniform1f(fr.uZoom, float32(f.Zoom))
	}
	if fr.uCenter >= 0 {
		gl.Uniform2f(fr.uCenter, float32(f.CenterX), float32(f.CenterY))
	}
	if fr.uLocalOffset >= 0 {
		gl.Uniform2f(fr.uLocalOffset, float32(f.OffsetX), float32(f.OffsetY))
	}
	if fr.uType >= 0 {
		gl.Uniform1i(fr.uType, int32(f.Type))
	}
	if fr.uAnimating >= 0 {
		var animating int32
		if f.Animating {
			animating = 1
		}
		gl.Uniform1i(fr.uAnimating, animating)
	}
}

func (fr *FractalRenderer) Render(f nav.Frame) {
	fr.SetUniforms(f)
	fr.vbo.Bind()
	fr.ebo.Bind()
	gl.EnableVertexAttribArray(fr.inPos)
	gl.VertexAttribPointer(fr.inPos, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))
	gl.DrawElements(gl.TRIANGLES, int32(len(quadIndices)), gl.UNSIGNED_SHORT, gl.PtrOffset(0))
	gl.DisableVertexAttribArray(fr.inPos)
	fr.ebo.Unbind()
	fr.vbo.Unbind()
}

func (fr *FractalRenderer) Close() error {
	fr.ebo.Close()
	fr.vbo.Close()
	return fr.program.Close()
}
