package store

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"commtool/internal/comm"
	"commtool/internal/fsgateway"
)

// newTestLayout returns a real gateway and a layout rooted in a temp dir.
func newTestLayout(t *testing.T) (comm.Gateway, Layout) {
	t.Helper()
	return fsgateway.NewOSGateway(), Layout{Root: t.TempDir()}
}

// encodePNG produces a valid PNG of the given size for preview tests.
func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding test png: %v", err)
	}
	return buf.Bytes()
}
