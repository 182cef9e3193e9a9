package main

import (
	gl "github.com/go-gl/gl/v3.1/gles2"
	mgl "github.com/go-gl/mathgl/mgl32"

	"github.com/cellux/fractalview/internal/nav"
)

const (
	overlayVertexShader = `
    precision highp float;
    attribute vec2 a_position;
    uniform mat4 u_transform;
    void main(void) {
      gl_Position = u_transform * vec4(a_position, 0.0, 1.0);
    }` + "\x00"
	overlayFragmentShader = `
    precision mediump float;
    uniform vec3 u_color;
    void main(void) {
      gl_FragColor = vec4(u_color, 1.0);
    }` + "\x00"
)

// SelectionOverlay outlines the rectangle being dragged out.
type SelectionOverlay struct {
	program     *Program
	a_position  int32
	u_transform int32
	u_color     int32
	vertices    [8]float32
}

func CreateSelectionOverlay() (*SelectionOverlay, error) {
	program, err := CreateProgram(overlayVertexShader, overlayFragmentShader)
	if err != nil {
		return nil, err
	}
	so := &SelectionOverlay{
		program:     program,
		a_position:  program.GetAttribLocation("a_position\x00"),
		u_transform: program.GetUniformLocation("u_transform\x00"),
		u_color:     program.GetUniformLocation("u_color\x00"),
	}
	return so, nil
}

// PixelTransform maps framebuffer pixels (origin top-left) to clip space.
func PixelTransform(vp nav.Viewport) mgl.Mat4 {
	return mgl.Ortho2D(0, float32(vp.Width), float32(vp.Height), 0)
}

func (so *SelectionOverlay) Render(r nav.Rect, vp nav.Viewport) {
	// pixel centers keep the 1px lines from straddling two rows
	x0 := float32(r.Min.X) + 0.5
	y0 := float32(r.Min.Y) + 0.5
	x1 := float32(r.Max.X) + 0.5
	y1 := float32(r.Max.Y) + 0.5
	so.vertices = [8]float32{x0, y0, x1, y0, x1, y1, x0, y1}
	so.program.Use()
	transform := PixelTransform(vp)
	gl.UniformMatrix4fv(so.u_transform, 1, false, &transform[0])
	gl.Uniform3f(so.u_color, 1, 1, 1)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.EnableVertexAttribArray(uint32(so.a_position))
	gl.VertexAttribPointer(uint32(so.a_position), 2, gl.FLOAT, false, 0, gl.Ptr(&so.vertices[0]))
	gl.DrawArrays(gl.LINE_LOOP, 0, 4)
	gl.DisableVertexAttribArray(uint32(so.a_position))
}

func (so *SelectionOverlay) Close() error {
	return so.program.Close()
}
