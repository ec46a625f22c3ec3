package source

import (
	"context"

	"github.com/shashankg86/catalog-extractor/internal/entity"
)

// Recognized is the output of the image-recognition reader.
type Recognized struct {
	Text       string
	Confidence float64 // 0..100, mean word confidence when available
	Words      []entity.WordBox
}

// HasWordBoxes reports whether the recognizer supplied word-level boxes.
// Spatial image matching is only possible when it did.
func (r Recognized) HasWordBoxes() bool { return len(r.Words) > 0 }

// ImageReader turns encoded image bytes into recognized text plus word boxes.
type ImageReader interface {
	Recognize(ctx context.Context, img []byte) (Recognized, error)
}

// PDFReader returns per-page text for a PDF document.
type PDFReader interface {
	PageTexts(ctx context.Context, pdf []byte) ([]string, error)
}

// RegionDetector finds image regions within a source image.
type RegionDetector interface {
	Detect(img []byte) ([]entity.ImageRegion, error)
}
