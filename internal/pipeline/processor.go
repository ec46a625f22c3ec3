// Package pipeline sequences one extraction run: normalize, detect currency,
// run the pattern strategies, validate and deduplicate, classify, match
// images, emit. One document in, one ordered item list out.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/shashankg86/catalog-extractor/constants"
	"github.com/shashankg86/catalog-extractor/internal/common"
	"github.com/shashankg86/catalog-extractor/internal/entity"
	"github.com/shashankg86/catalog-extractor/internal/extract"
	"github.com/shashankg86/catalog-extractor/internal/imagematch"
	"github.com/shashankg86/catalog-extractor/internal/source"
)

// Input is one raw document plus its routing information. Format selection
// (MIME/extension sniffing) is the caller's job.
type Input struct {
	Data   []byte
	Format constants.SourceFormat
	Ext    string // original extension, needed for HEIC pre-conversion
}

// Processor owns the run sequencing and the confidence policy. It holds no
// per-run state: concurrent Extract calls need no coordination.
type Processor struct {
	cfg     common.ExtractionConfig
	images  source.ImageReader
	pdfs    source.PDFReader
	regions source.RegionDetector
	ex      *extract.Extractor
	logger  *slog.Logger
}

func NewProcessor(
	cfg common.ExtractionConfig,
	images source.ImageReader,
	pdfs source.PDFReader,
	regions source.RegionDetector,
	ex *extract.Extractor,
	logger *slog.Logger,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ReviewThreshold <= 0 {
		cfg.ReviewThreshold = 80
	}
	if cfg.MatchRadius <= 0 {
		cfg.MatchRadius = imagematch.DefaultRadius
	}
	return &Processor{
		cfg:     cfg,
		images:  images,
		pdfs:    pdfs,
		regions: regions,
		ex:      ex,
		logger:  logger,
	}
}

// Extract runs the full pipeline for one document. A failed read or decode
// returns an error with zero items; a clean run with nothing extracted is a
// valid empty result, not an error.
func (p *Processor) Extract(ctx context.Context, in Input) (entity.Result, error) {
	runID := uuid.New()
	ctx = common.WithRunID(ctx, runID)
	res := entity.Result{RunID: runID}

	if len(in.Data) == 0 {
		return res, common.UnsupportedFormatError("empty input", nil)
	}

	switch in.Format {
	case constants.CSV, constants.XLSX:
		return p.extractStructured(in, res)
	case constants.PDF:
		return p.extractPDF(ctx, in, res)
	case constants.IMAGE:
		return p.extractImage(ctx, in, res)
	default:
		return res, common.UnsupportedFormatError(fmt.Sprintf("unknown source format %q", in.Format), nil)
	}
}

// extractStructured bypasses pattern extraction: rows map directly to items
// and never mix with OCR candidates.
func (p *Processor) extractStructured(in Input, res entity.Result) (entity.Result, error) {
	var rows []entity.Row
	var err error
	if in.Format == constants.CSV {
		rows, err = source.CSVRows(in.Data)
	} else {
		rows, err = source.XLSXRows(in.Data, p.logger)
	}
	if err != nil {
		p.logger.Error("pipeline.structured.failed", "run_id", res.RunID, "error", err)
		return res, err
	}

	candidates := p.ex.MapRows(rows, p.cfg.DefaultCurrency)
	res.Currency = p.cfg.DefaultCurrency
	res.Items = p.emit(candidates)

	p.logger.Info("pipeline.structured.ok",
		"run_id", res.RunID, "rows", len(rows), "items", len(res.Items))
	return res, nil
}

func (p *Processor) extractPDF(ctx context.Context, in Input, res entity.Result) (entity.Result, error) {
	pages, err := p.pdfs.PageTexts(ctx, in.Data)
	if err != nil {
		p.logger.Error("pipeline.pdf.failed", "run_id", res.RunID, "error", err)
		return res, err
	}
	text := source.Normalize(source.StripNoiseLines(strings.Join(pages, "\n")))
	res.RawText = text

	p.runStrategies(&res, text)
	p.logger.Info("pipeline.pdf.ok",
		"run_id", res.RunID, "pages", len(pages), "items", len(res.Items), "currency", res.Currency)
	return res, nil
}

func (p *Processor) extractImage(ctx context.Context, in Input, res entity.Result) (entity.Result, error) {
	img := in.Data
	if constants.IsHEICExt(in.Ext) {
		converted, err := source.ConvertHEIC(img)
		if err != nil {
			p.logger.Error("pipeline.heic.failed", "run_id", res.RunID, "error", err)
			return res, err
		}
		img = converted
	}

	rec, err := p.images.Recognize(ctx, img)
	if err != nil {
		p.logger.Error("pipeline.ocr.failed", "run_id", res.RunID, "error", err)
		return res, err
	}
	res.OCRConfidence = rec.Confidence

	if p.regions != nil {
		regions, rerr := p.regions.Detect(img)
		if rerr != nil {
			// text already recognized; a region decode failure only costs images
			p.logger.Warn("pipeline.regions.failed", "run_id", res.RunID, "error", rerr)
		} else {
			res.Regions = regions
		}
	}

	text := source.Normalize(rec.Text)
	res.RawText = text

	p.runStrategies(&res, text)
	if rec.HasWordBoxes() {
		imagematch.Match(res.Items, res.Regions, rec.Words, p.cfg.MatchRadius)
	}

	p.logger.Info("pipeline.image.ok",
		"run_id", res.RunID, "ocr_confidence", rec.Confidence,
		"words", len(rec.Words), "items", len(res.Items), "currency", res.Currency)
	return res, nil
}

// runStrategies is the shared text path: currency, strategies, categories.
func (p *Processor) runStrategies(res *entity.Result, text string) {
	res.Currency = p.ex.DetectCurrency(text, p.cfg.DefaultCurrency)
	candidates := p.ex.Extract(text, res.Currency)
	p.ex.ClassifyAll(candidates)
	res.Items = p.emit(candidates)
}

// emit assigns sequence IDs and applies the review-flag confidence policy.
func (p *Processor) emit(candidates []entity.Candidate) []entity.Item {
	items := make([]entity.Item, 0, len(candidates))
	for i, c := range candidates {
		items = append(items, entity.Item{
			ID:          i + 1,
			Name:        c.Name,
			Price:       c.Price,
			Currency:    c.Currency,
			Category:    c.Category,
			Confidence:  c.Confidence,
			Strategy:    c.Strategy,
			NeedsReview: c.Confidence < p.cfg.ReviewThreshold,
		})
	}
	return items
}
