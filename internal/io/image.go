package ioutils

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
)

// MIME types of the cover encodings this processor produces.
const (
	MimePNG  = "image/png"
	MimeJPEG = "image/jpeg"
)

// CoverProcessor prepares cover art for embedding.
//
// The asset CDN serves jackets as PNG, which is what gets embedded by
// default, byte for byte. The processor exists for the optional
// transformations:
//   - Resize to fit maximum dimensions before embedding
//   - Convert to JPEG for players that choke on large PNG frames
//
// Example usage:
//
//	proc := NewCoverProcessor()
//	resized, mime, _ := proc.Resize(coverPNG, 1000, 1000)
type CoverProcessor struct{}

// NewCoverProcessor creates a new CoverProcessor.
func NewCoverProcessor() *CoverProcessor {
	return &CoverProcessor{}
}

// Resize scales a cover to fit within the given maximum dimensions,
// preserving aspect ratio and the original encoding (PNG stays PNG).
//
// Covers already within bounds are returned unchanged, so the default
// pipeline embeds exactly the bytes the CDN served.
//
// Returns the image bytes and their MIME type. The Catmull-Rom
// algorithm is used for scaling.
func (p *CoverProcessor) Resize(data []byte, maxWidth, maxHeight int) ([]byte, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", err
	}

	mime := MimePNG
	if format == "jpeg" {
		mime = MimeJPEG
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= maxWidth && height <= maxHeight {
		return data, mime, nil
	}

	ratio := float64(width) / float64(height)
	if float64(maxWidth)/float64(maxHeight) > ratio {
		width = int(float64(maxHeight) * ratio)
		height = maxHeight
	} else {
		height = int(float64(maxWidth) / ratio)
		width = maxWidth
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if mime == MimeJPEG {
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 90})
	} else {
		err = png.Encode(&buf, dst)
	}
	if err != nil {
		return nil, "", err
	}

	return buf.Bytes(), mime, nil
}

// ConvertToJPEG re-encodes a cover as JPEG with 90% quality.
//
// Returns the JPEG bytes and MimeJPEG.
func (p *CoverProcessor) ConvertToJPEG(data []byte) ([]byte, string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), MimeJPEG, nil
}
