package source

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gen2brain/go-fitz"

	"github.com/shashankg86/catalog-extractor/internal/common"
)

// FitzPDF reads the embedded text layer of a PDF, page by page.
type FitzPDF struct {
	logger *slog.Logger
}

func NewFitzPDF(logger *slog.Logger) *FitzPDF {
	if logger == nil {
		logger = slog.Default()
	}
	return &FitzPDF{logger: logger}
}

// PageTexts returns the text of each page in order. Page iteration is a
// suspension point: ctx is honored between pages.
func (f *FitzPDF) PageTexts(ctx context.Context, pdf []byte) ([]string, error) {
	doc, err := fitz.NewFromMemory(pdf)
	if err != nil {
		return nil, common.UnsupportedFormatError("opening PDF", err)
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil {
			f.logger.Warn("pdf.close", "error", cerr)
		}
	}()

	pages := make([]string, 0, doc.NumPage())
	for n := 0; n < doc.NumPage(); n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, err := doc.Text(n)
		if err != nil {
			return nil, common.UnsupportedFormatError("reading PDF page", err)
		}
		pages = append(pages, strings.TrimRight(text, "\n"))
	}
	f.logger.Debug("pdf.read", "run_id", common.RunIDFromContext(ctx), "pages", len(pages))
	return pages, nil
}
