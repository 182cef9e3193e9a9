package main

import (
	"embed"
	"fmt"
	"os"
)

//go:embed assets/*
var assets embed.FS

const (
	builtinVertexShader   = "assets/vertex.glsl"
	builtinFragmentShader = "assets/fragment.glsl"
)

// LoadShaderSource reads the shader at path, or the built-in one if
// path is empty.
func LoadShaderSource(path, builtin string) (string, error) {
	if path == "" {
		data, err := assets.ReadFile(builtin)
		if err != nil {
			return "", fmt.Errorf("read built-in shader %s: %w", builtin, err)
		}
		logger.Info("using built-in shader", "name", builtin)
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read shader: %w", err)
	}
	logger.Info("loaded shader", "path", path, "bytes", len(data))
	return string(data), nil
}
