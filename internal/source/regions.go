package source

import (
	"bytes"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	"github.com/shashankg86/catalog-extractor/internal/common"
	"github.com/shashankg86/catalog-extractor/internal/entity"
)

// WholeImage is the default RegionDetector: the entire source image is one
// region. A real product-photo detector can replace it behind the same
// contract without touching the matcher.
type WholeImage struct{}

func (WholeImage) Detect(img []byte) ([]entity.ImageRegion, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(img))
	if err != nil {
		return nil, common.UnsupportedFormatError("decoding image dimensions", err)
	}
	return []entity.ImageRegion{{
		X:         0,
		Y:         0,
		Width:     float64(cfg.Width),
		Height:    float64(cfg.Height),
		ImageData: img,
	}}, nil
}
