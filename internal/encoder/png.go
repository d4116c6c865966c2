// Package encoder turns rendered sprites into bytes for disk.
package encoder

import (
	"bytes"
	"image"
	"image/png"
)

// EncodePNG encodes img as a lossless PNG. Sprites are small and
// flat-colored, so BestCompression stays fast.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(64 * 1024)

	enc := &png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
