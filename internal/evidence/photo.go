package evidence

import (
	"bytes"
	"fmt"

	"progas-backend/pkg/config"

	"github.com/disintegration/imaging"
)

// PhotoProcessor downscales and re-encodes proof photos so they stay small
// enough to embed in a transaction record.
type PhotoProcessor struct {
	maxDimension int
	jpegQuality  int
}

func NewPhotoProcessor(cfg config.EvidenceConfig) *PhotoProcessor {
	return &PhotoProcessor{
		maxDimension: cfg.PhotoMaxDimension,
		jpegQuality:  cfg.PhotoJPEGQuality,
	}
}

// Compress decodes the incoming photo, fits it within the max dimension
// preserving aspect ratio, and re-encodes as JPEG at the fixed quality.
// Photos already within bounds are still re-encoded.
func (p *PhotoProcessor) Compress(dataURL string) (string, error) {
	raw, err := DecodeDataURL(dataURL)
	if err != nil {
		return "", err
	}

	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decoding photo: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > p.maxDimension || bounds.Dy() > p.maxDimension {
		img = imaging.Fit(img, p.maxDimension, p.maxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(p.jpegQuality)); err != nil {
		return "", fmt.Errorf("encoding photo: %w", err)
	}
	return EncodeDataURL("image/jpeg", buf.Bytes()), nil
}
