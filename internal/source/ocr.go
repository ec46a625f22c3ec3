package source

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/shashankg86/catalog-extractor/internal/common"
	"github.com/shashankg86/catalog-extractor/internal/entity"
)

// TesseractConfig holds recognizer settings.
type TesseractConfig struct {
	Language    string // default "eng"
	TessdataDir string
}

// Tesseract recognizes text and word boxes from encoded image bytes.
type Tesseract struct {
	cfg    TesseractConfig
	logger *slog.Logger
}

func NewTesseract(cfg TesseractConfig, logger *slog.Logger) *Tesseract {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	return &Tesseract{cfg: cfg, logger: logger}
}

// Recognize runs OCR on the image and returns text, word boxes, and the mean
// word confidence in 0..100. The gosseract call is the run's only long
// suspension point on the image path; ctx is checked before starting.
func (t *Tesseract) Recognize(ctx context.Context, img []byte) (Recognized, error) {
	if err := ctx.Err(); err != nil {
		return Recognized{}, err
	}

	client := gosseract.NewClient()
	defer func() {
		if cerr := client.Close(); cerr != nil {
			t.logger.Warn("ocr.client.close", "error", cerr)
		}
	}()

	if err := client.SetLanguage(t.cfg.Language); err != nil {
		return Recognized{}, fmt.Errorf("set language: %w", err)
	}
	if t.cfg.TessdataDir != "" {
		if err := client.SetTessdataPrefix(t.cfg.TessdataDir); err != nil {
			return Recognized{}, fmt.Errorf("set tessdata dir: %w", err)
		}
	}
	if err := client.SetImageFromBytes(img); err != nil {
		return Recognized{}, common.UnsupportedFormatError("image not decodable by recognizer", err)
	}

	text, err := client.Text()
	if err != nil {
		return Recognized{}, common.UnsupportedFormatError("recognition failed", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		// Text without boxes degrades to no image matching, not a failed run.
		t.logger.Warn("ocr.boxes.unavailable", "error", err)
		boxes = nil
	}

	words := make([]entity.WordBox, 0, len(boxes))
	var sum float64
	var n int
	for _, b := range boxes {
		word := strings.TrimSpace(b.Word)
		if word == "" {
			continue
		}
		words = append(words, entity.WordBox{
			Text: word,
			X0:   float64(b.Box.Min.X),
			Y0:   float64(b.Box.Min.Y),
		})
		if b.Confidence > 0 {
			sum += b.Confidence
			n++
		}
	}

	conf := heuristicConfidence(text)
	if n > 0 {
		// weight reported word confidence over the text heuristic
		conf = 0.7*(sum/float64(n)) + 0.3*conf
	}
	if conf > 100 {
		conf = 100
	}

	t.logger.Debug("ocr.recognized",
		"run_id", common.RunIDFromContext(ctx),
		"bytes", len(img), "text_len", len(text), "words", len(words), "confidence", conf)

	return Recognized{Text: text, Confidence: conf, Words: words}, nil
}

var (
	reConfCurrency = regexp.MustCompile(`[$₹€£¥]|\b(usd|inr|eur|gbp|aed)\b`)
	reConfAmount   = regexp.MustCompile(`\b\d{1,3}(,\d{3})*(\.\d{1,2})?\b|\b\d+\.\d{1,2}\b`)
)

// heuristicConfidence scores decoded text on catalog-ish artifacts, 0..100.
func heuristicConfidence(txt string) float64 {
	txtL := strings.ToLower(txt)
	score := 20.0
	if reConfCurrency.MatchString(txtL) {
		score += 25
	}
	if reConfAmount.MatchString(txtL) {
		score += 25
	}
	if len(txt) > 120 {
		score += 15
	}
	words := strings.Fields(txt)
	if len(words) > 20 {
		score += 15
	}
	if score > 100 {
		score = 100
	}
	return score
}
