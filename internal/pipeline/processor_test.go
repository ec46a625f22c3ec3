package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashankg86/catalog-extractor/constants"
	"github.com/shashankg86/catalog-extractor/internal/common"
	"github.com/shashankg86/catalog-extractor/internal/entity"
	"github.com/shashankg86/catalog-extractor/internal/extract"
	"github.com/shashankg86/catalog-extractor/internal/source"
)

// stubImageReader lets tests supply recognizer output without Tesseract.
type stubImageReader struct {
	rec source.Recognized
	err error
}

func (s stubImageReader) Recognize(context.Context, []byte) (source.Recognized, error) {
	return s.rec, s.err
}

type stubPDFReader struct {
	pages []string
	err   error
}

func (s stubPDFReader) PageTexts(context.Context, []byte) ([]string, error) {
	return s.pages, s.err
}

type stubRegions struct {
	regions []entity.ImageRegion
	err     error
}

func (s stubRegions) Detect([]byte) ([]entity.ImageRegion, error) {
	return s.regions, s.err
}

func newTestProcessor(t *testing.T, images source.ImageReader, pdfs source.PDFReader, regions source.RegionDetector) *Processor {
	t.Helper()
	ex := extract.NewExtractor(extract.DefaultVocabulary(), extract.Options{}, nil)
	cfg := common.ExtractionConfig{
		DefaultCurrency: "$",
		MatchRadius:     300,
		ReviewThreshold: 80,
	}
	return NewProcessor(cfg, images, pdfs, regions, ex, nil)
}

func TestExtractImagePath(t *testing.T) {
	rec := source.Recognized{
		Text:       "Veg Burger\t\t\t250\nPaneer Tikka - ₹180",
		Confidence: 91.5,
		Words: []entity.WordBox{
			{Text: "Veg", X0: 115, Y0: 105},
			{Text: "Burger", X0: 125, Y0: 115},
			{Text: "Paneer", X0: 895, Y0: 895},
			{Text: "Tikka", X0: 905, Y0: 905},
		},
	}
	regions := stubRegions{regions: []entity.ImageRegion{
		{X: 50, Y: 50, Width: 100, Height: 100, ImageData: []byte("whole-image")},
	}}
	p := newTestProcessor(t, stubImageReader{rec: rec}, nil, regions)

	res, err := p.Extract(context.Background(), Input{Data: []byte("img"), Format: constants.IMAGE})
	require.NoError(t, err)

	require.Len(t, res.Items, 2)
	assert.Equal(t, 91.5, res.OCRConfidence)
	assert.Equal(t, "₹", res.Currency)
	assert.NotEmpty(t, res.RawText)
	assert.NotEqual(t, res.RunID.String(), "00000000-0000-0000-0000-000000000000")

	burger, tikka := res.Items[0], res.Items[1]
	if burger.Name != "Veg Burger" {
		burger, tikka = tikka, burger
	}
	assert.Equal(t, "Veg Burger", burger.Name)
	assert.Equal(t, float64(250), burger.Price)
	assert.Equal(t, "Main Course", burger.Category)
	assert.Equal(t, []byte("whole-image"), burger.Image)

	assert.Equal(t, "Paneer Tikka", tikka.Name)
	assert.Equal(t, "Appetizers", tikka.Category)
	assert.Nil(t, tikka.Image, "centroid is beyond the match radius")

	// sequence IDs are assigned in emission order
	assert.Equal(t, 1, res.Items[0].ID)
	assert.Equal(t, 2, res.Items[1].ID)
}

func TestExtractImageWithoutWordBoxesSkipsMatching(t *testing.T) {
	rec := source.Recognized{Text: "Veg Burger - 250", Confidence: 40}
	regions := stubRegions{regions: []entity.ImageRegion{{Width: 10, Height: 10, ImageData: []byte("x")}}}
	p := newTestProcessor(t, stubImageReader{rec: rec}, nil, regions)

	res, err := p.Extract(context.Background(), Input{Data: []byte("img"), Format: constants.IMAGE})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Nil(t, res.Items[0].Image)
}

func TestExtractImageRecognizerFailure(t *testing.T) {
	p := newTestProcessor(t, stubImageReader{err: common.UnsupportedFormatError("corrupt", nil)}, nil, stubRegions{})

	res, err := p.Extract(context.Background(), Input{Data: []byte("img"), Format: constants.IMAGE})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnsupportedFormat)
	assert.Empty(t, res.Items, "no partial results behind a failed run")
}

func TestExtractImageRegionFailureOnlyCostsImages(t *testing.T) {
	rec := source.Recognized{
		Text:  "Veg Burger - 250",
		Words: []entity.WordBox{{Text: "Veg", X0: 1, Y0: 1}},
	}
	p := newTestProcessor(t, stubImageReader{rec: rec}, nil, stubRegions{err: errors.New("bad image")})

	res, err := p.Extract(context.Background(), Input{Data: []byte("img"), Format: constants.IMAGE})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Nil(t, res.Items[0].Image)
}

func TestExtractPDFPath(t *testing.T) {
	pdfs := stubPDFReader{pages: []string{
		"Page 1\nMargherita Pizza - $12.99",
		"Garlic Bread....$4.50",
	}}
	p := newTestProcessor(t, nil, pdfs, nil)

	res, err := p.Extract(context.Background(), Input{Data: []byte("pdf"), Format: constants.PDF})
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "$", res.Currency)
	assert.NotContains(t, res.RawText, "Page 1")
	assert.Empty(t, res.Regions)
}

func TestExtractPDFReaderFailure(t *testing.T) {
	p := newTestProcessor(t, nil, stubPDFReader{err: common.UnsupportedFormatError("opening PDF", nil)}, nil)

	_, err := p.Extract(context.Background(), Input{Data: []byte("pdf"), Format: constants.PDF})
	assert.ErrorIs(t, err, common.ErrUnsupportedFormat)
}

func TestExtractCSVPath(t *testing.T) {
	p := newTestProcessor(t, nil, nil, nil)
	csv := []byte("Item,Rate\nPaneer Tikka,Rs. 180\n")

	res, err := p.Extract(context.Background(), Input{Data: csv, Format: constants.CSV})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)

	item := res.Items[0]
	assert.Equal(t, "Paneer Tikka", item.Name)
	assert.Equal(t, float64(180), item.Price)
	assert.Equal(t, 100, item.Confidence)
	assert.Equal(t, "General", item.Category)
	assert.False(t, item.NeedsReview)
}

func TestExtractEmptyResultIsNotAnError(t *testing.T) {
	rec := source.Recognized{Text: "nothing useful here", Confidence: 30}
	p := newTestProcessor(t, stubImageReader{rec: rec}, nil, stubRegions{})

	res, err := p.Extract(context.Background(), Input{Data: []byte("img"), Format: constants.IMAGE})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, "nothing useful here", res.RawText)
}

func TestExtractEmptyInput(t *testing.T) {
	p := newTestProcessor(t, nil, nil, nil)
	_, err := p.Extract(context.Background(), Input{Format: constants.IMAGE})
	assert.ErrorIs(t, err, common.ErrUnsupportedFormat)
}

func TestExtractUnknownFormat(t *testing.T) {
	p := newTestProcessor(t, nil, nil, nil)
	_, err := p.Extract(context.Background(), Input{Data: []byte("x"), Format: "DOCX"})
	assert.ErrorIs(t, err, common.ErrUnsupportedFormat)
}

func TestNeedsReviewFollowsConfidence(t *testing.T) {
	// multi-line pairing scores 70, below the default review threshold
	rec := source.Recognized{Text: "Chicken Biryani\n350"}
	p := newTestProcessor(t, stubImageReader{rec: rec}, nil, stubRegions{})

	res, err := p.Extract(context.Background(), Input{Data: []byte("img"), Format: constants.IMAGE})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, 70, res.Items[0].Confidence)
	assert.True(t, res.Items[0].NeedsReview)
}
