package main

import (
	"runtime"

	gl "github.com/go-gl/gl/v3.1/gles2"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

type GlfwApp interface {
	Init(window *glfw.Window) error
	IsRunning() bool
	OnKey(key glfw.Key, scancode int, action glfw.Action, modes glfw.ModifierKey)
	OnChar(char rune)
	OnCursorPos(x, y float64)
	OnMouseButton(button glfw.MouseButton, action glfw.Action, x, y float64)
	OnFramebufferSize(width, height int)
	NeedsRedraw() bool
	IsAnimating() bool
	Render() error
	Update() error
	Close() error
}

// cursorToFramebuffer converts window coordinates to framebuffer pixels,
// which differ on high-DPI displays.
func cursorToFramebuffer(w *glfw.Window, x, y float64) (float64, float64) {
	winW, winH := w.GetSize()
	fbW, fbH := w.GetFramebufferSize()
	if winW > 0 && winH > 0 {
		x = x * float64(fbW) / float64(winW)
		y = y * float64(fbH) / float64(winH)
	}
	return x, y
}

// WithGL opens a window with a GL ES 2 context and runs app until it
// stops or the window is closed. Frames are drawn only when the app
// asks for one; while it animates, frames are paced to fps.
func WithGL(windowTitle string, width, height, fps int, app GlfwApp) error {
	err := glfw.Init()
	if err != nil {
		return err
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Focused, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)
	window, err := glfw.CreateWindow(width, height, windowTitle, nil, nil)
	if err != nil {
		return err
	}
	defer window.Destroy()
	framebufferSizeCallback := func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		app.OnFramebufferSize(width, height)
	}
	window.SetFramebufferSizeCallback(framebufferSizeCallback)
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		app.OnKey(key, scancode, action, mods)
	})
	window.SetCharCallback(func(w *glfw.Window, char rune) {
		app.OnChar(char)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		app.OnCursorPos(cursorToFramebuffer(w, x, y))
	})
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		cx, cy := w.GetCursorPos()
		x, y := cursorToFramebuffer(w, cx, cy)
		app.OnMouseButton(button, action, x, y)
	})
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		return err
	}
	glfw.SwapInterval(1)
	gl.ClearColor(0, 0, 0, 1)
	if err := app.Init(window); err != nil {
		return err
	}
	defer app.Close()
	fbWidth, fbHeight := window.GetFramebufferSize()
	framebufferSizeCallback(window, fbWidth, fbHeight)
	frameSeconds := 1.0 / float64(fps)
	for app.IsRunning() && !window.ShouldClose() {
		start := glfw.GetTime()
		if err := app.Update(); err != nil {
			return err
		}
		if app.NeedsRedraw() {
			gl.Clear(gl.COLOR_BUFFER_BIT)
			if err := app.Render(); err != nil {
				return err
			}
			window.SwapBuffers()
		}
		if !app.IsAnimating() {
			glfw.WaitEvents()
			continue
		}
		elapsedSeconds := glfw.GetTime() - start
		if frameSeconds > elapsedSeconds {
			glfw.WaitEventsTimeout(frameSeconds - elapsedSeconds)
		} else {
			glfw.PollEvents()
		}
	}
	return nil
}
