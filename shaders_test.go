package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadShaderSourceBuiltin(t *testing.T) {
	for _, name := range []string{builtinVertexShader, builtinFragmentShader} {
		want, err := assets.ReadFile(name)
		if err != nil {
			t.Fatal(err)
		}
		got, err := LoadShaderSource("", name)
		if err != nil {
			t.Fatalf("LoadShaderSource(%q): %v", name, err)
		}
		if got != string(want) || got == "" {
			t.Errorf("LoadShaderSource(\"\", %q) returned %d bytes, want %d", name, len(got), len(want))
		}
	}
}

func TestLoadShaderSourceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fragment.glsl")
	const src = "void main(void) { gl_FragColor = vec4(1.0); }\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadShaderSource(path, builtinFragmentShader)
	if err != nil {
		t.Fatal(err)
	}
	if got != src {
		t.Errorf("LoadShaderSource(%q) = %q, want %q", path, got, src)
	}
}

func TestLoadShaderSourceMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.glsl")
	_, err := LoadShaderSource(path, builtinVertexShader)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadShaderSource(%q) error = %v, want fs.ErrNotExist", path, err)
	}
}
