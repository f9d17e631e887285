// Package preview probes image payloads for display metadata.
package preview

import (
	"bytes"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Probe returns the pixel dimensions of encoded image data. The blank
// imports register decoders for every extension the reference store
// classifies as an image. ok is false when the data cannot be decoded;
// callers still serve the raw bytes as a preview in that case.
func Probe(data []byte) (width, height int, ok bool) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, false
	}
	return cfg.Width, cfg.Height, true
}
