package entity

import "github.com/google/uuid"

// WordBox is the top-left corner and text of one OCR-recognized word,
// in source-pixel coordinates. Only the OCR path produces word boxes.
type WordBox struct {
	Text string  `json:"text"`
	X0   float64 `json:"x0"`
	Y0   float64 `json:"y0"`
}

// ImageRegion is a detected image area within the source, carrying the
// encoded image bytes for that area.
type ImageRegion struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	ImageData []byte  `json:"image_data,omitempty"`
}

// CenterX returns the horizontal center of the region.
func (r ImageRegion) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the vertical center of the region.
func (r ImageRegion) CenterY() float64 { return r.Y + r.Height/2 }

// Candidate is an unvalidated, possibly duplicate extraction result.
type Candidate struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Currency   string  `json:"currency"`
	Category   string  `json:"category"`
	Confidence int     `json:"confidence"`
	Strategy   string  `json:"strategy"`
}

// Item is the externally visible result for one catalog-item candidate.
// IDs are assigned in emission order and are not stable across re-runs.
type Item struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Category    string  `json:"category"`
	Confidence  int     `json:"confidence"`
	Strategy    string  `json:"strategy"`
	NeedsReview bool    `json:"needs_review"`
	Image       []byte  `json:"image,omitempty"`
}

// Result is one completed extraction run. RawText, OCRConfidence and Regions
// are caller-side inspection metadata, not part of the item contract.
type Result struct {
	RunID         uuid.UUID     `json:"run_id"`
	Items         []Item        `json:"items"`
	Currency      string        `json:"currency"`
	RawText       string        `json:"raw_text"`
	OCRConfidence float64       `json:"ocr_confidence"`
	Regions       []ImageRegion `json:"image_regions,omitempty"`
}

// Row is one structured (CSV/XLSX) record keyed by column header.
type Row map[string]string
