package main

import (
	"fmt"
	"log"
	"os"

	"github.com/cellux/fractalview/internal/config"
)

func run(cfg config.Config) error {
	vertexSource, err := LoadShaderSource(cfg.VertexShaderPath, builtinVertexShader)
	if err != nil {
		return err
	}
	fragmentSource, err := LoadShaderSource(cfg.FragmentShaderPath, builtinFragmentShader)
	if err != nil {
		return err
	}
	app := CreateApp(cfg, vertexSource, fragmentSource)
	return WithGL("Fractal Explorer", cfg.Width, cfg.Height, cfg.FPS, app)
}

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, config.Usage)
		log.Fatalf("%v\n", err)
	}
	InitLogger(cfg.LogLevel)
	if err := run(cfg); err != nil {
		log.Fatalf("%v\n", err)
	}
}
