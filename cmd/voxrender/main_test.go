package main

import (
	"testing"

	"voxcast/internal/config"
	"voxcast/internal/imageio"
)

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want imageio.Format
	}{
		{"explicit", config.Config{Format: "TGA", Output: "x.png"}, imageio.TGA},
		{"from extension", config.Config{Output: "out/x.bmp"}, imageio.BMP},
		{"unknown extension", config.Config{Output: "x.gif"}, imageio.WebP},
		{"sequence ignores extension", config.Config{Output: "frames.png", Frames: 3}, imageio.WebP},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := outputFormat(tt.cfg)
			if err != nil || got != tt.want {
				t.Fatalf("outputFormat = %q, %v; want %q", got, err, tt.want)
			}
		})
	}
	if _, err := outputFormat(config.Config{Format: "gif"}); err == nil {
		t.Fatal("unknown explicit format should fail")
	}
}
