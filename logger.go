package main

import (
	"log/slog"
	"os"
)

var logger = slog.Default()

func InitLogger(level slog.Level) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	logger = slog.New(handler)
}
