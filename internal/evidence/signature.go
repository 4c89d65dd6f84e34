package evidence

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"
)

// Point is one sampled pen position on the signature pad.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Stroke is one continuous pen-down to pen-up segment.
type Stroke []Point

const (
	signatureWidth  = 340
	signatureHeight = 200
)

// RenderSignature rasterizes the pad strokes onto a white canvas and returns
// a lossless PNG payload. An empty stroke list means the pad was cleared:
// the result is an empty payload, not an error.
func RenderSignature(strokes []Stroke) (string, error) {
	if !hasInk(strokes) {
		return "", nil
	}

	dc := gg.NewContext(signatureWidth, signatureHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB255(26, 26, 46)
	dc.SetLineWidth(2.5)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()

	for _, stroke := range strokes {
		if len(stroke) == 0 {
			continue
		}
		if len(stroke) == 1 {
			// A tap leaves a dot.
			dc.DrawPoint(stroke[0].X, stroke[0].Y, 1.25)
			dc.Fill()
			continue
		}
		dc.MoveTo(stroke[0].X, stroke[0].Y)
		for _, pt := range stroke[1:] {
			dc.LineTo(pt.X, pt.Y)
		}
		dc.Stroke()
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return "", fmt.Errorf("encoding signature: %w", err)
	}
	return EncodeDataURL("image/png", buf.Bytes()), nil
}

func hasInk(strokes []Stroke) bool {
	for _, stroke := range strokes {
		if len(stroke) > 0 {
			return true
		}
	}
	return false
}
