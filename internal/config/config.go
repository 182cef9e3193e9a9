package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

const (
	DefaultWidth  = 1280
	DefaultHeight = 720
	DefaultFPS    = 60
)

const Usage = `usage: fractalview [options]
  -v PATH    vertex shader source (default: built-in)
  -f PATH    fragment shader source (default: built-in)
  -s WxH     initial window size (default: 1280x720)
  -l LEVEL   log level: debug, info, warn, error (default: info)
  -fps N     frame rate cap while animating (default: 60)
  -hud       show the status line`

type Config struct {
	VertexShaderPath   string
	FragmentShaderPath string
	Width              int
	Height             int
	LogLevel           slog.Level
	FPS                int
	HUD                bool
}

func Default() Config {
	return Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		LogLevel: slog.LevelInfo,
		FPS:      DefaultFPS,
	}
}

func ResolveLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", level)
	}
}

// ParseSize parses a window size given as WIDTHxHEIGHT.
func ParseSize(s string) (width, height int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size: %s", s)
	}
	width, err = strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size: %s: %w", s, err)
	}
	height, err = strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size: %s: %w", s, err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("invalid size: %s", s)
	}
	return width, height, nil
}

// Parse reads options from args, which must not include the program name.
func Parse(args []string) (Config, error) {
	cfg := Default()
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "-hud" {
			cfg.HUD = true
			continue
		}
		switch arg {
		case "-v", "-f", "-s", "-l", "-fps":
		default:
			return Config{}, fmt.Errorf("unknown argument: %s", arg)
		}
		if i+1 == len(args) {
			return Config{}, fmt.Errorf("missing value for %s", arg)
		}
		i++
		value := args[i]
		switch arg {
		case "-v":
			cfg.VertexShaderPath = value
		case "-f":
			cfg.FragmentShaderPath = value
		case "-s":
			w, h, err := ParseSize(value)
			if err != nil {
				return Config{}, err
			}
			cfg.Width, cfg.Height = w, h
		case "-l":
			level, err := ResolveLogLevel(value)
			if err != nil {
				return Config{}, err
			}
			cfg.LogLevel = level
		case "-fps":
			fps, err := strconv.Atoi(value)
			if err != nil {
				return Config{}, fmt.Errorf("invalid fps: %s: %w", value, err)
			}
			if fps <= 0 {
				return Config{}, fmt.Errorf("invalid fps: %s", value)
			}
			cfg.FPS = fps
		}
	}
	return cfg, nil
}
