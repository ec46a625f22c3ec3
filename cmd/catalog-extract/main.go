package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/shashankg86/catalog-extractor/constants"
	"github.com/shashankg86/catalog-extractor/internal/common"
	"github.com/shashankg86/catalog-extractor/internal/extract"
	"github.com/shashankg86/catalog-extractor/internal/pipeline"
	"github.com/shashankg86/catalog-extractor/internal/source"
)

var (
	flagCurrency string
	flagFormat   string
	flagVocab    string
	flagTimeout  time.Duration
	flagVerbose  bool
)

func main() {
	root := &cobra.Command{
		Use:   "catalog-extract <file>",
		Short: "Extract catalog-item candidates from a menu image, PDF, or spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}
	root.Flags().StringVar(&flagCurrency, "currency", "", "fallback currency when none is detected (default from DEFAULT_CURRENCY)")
	root.Flags().StringVar(&flagFormat, "format", "", "force source format: IMAGE|PDF|CSV|XLSX (default by extension)")
	root.Flags().StringVar(&flagVocab, "vocab", "", "path to a JSON vocabulary override file")
	root.Flags().DurationVar(&flagTimeout, "timeout", 2*time.Minute, "overall run timeout")
	root.Flags().BoolVar(&flagVerbose, "verbose", false, "debug logging")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if flagCurrency != "" {
		cfg.Extraction.DefaultCurrency = flagCurrency
	}
	if flagVocab != "" {
		cfg.Extraction.VocabPath = flagVocab
	}

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	ext := constants.NormalizeExt(filepath.Ext(path))
	format := constants.SourceFormat(flagFormat)
	if format == "" {
		format = constants.MapExtToFormat(ext)
	}
	if format == "" {
		return fmt.Errorf("cannot route extension %q; pass --format", ext)
	}

	vocab, err := extract.LoadVocabulary(cfg.Extraction.VocabPath)
	if err != nil {
		return common.WrapError(err, "load vocabulary")
	}
	ex := extract.NewExtractor(vocab, extract.Options{
		FallbackMinPrice: cfg.Extraction.FallbackMinPrice,
		FallbackMaxPrice: cfg.Extraction.FallbackMaxPrice,
	}, logger)

	proc := pipeline.NewProcessor(
		cfg.Extraction,
		source.NewTesseract(source.TesseractConfig{
			Language:    cfg.OCR.Language,
			TessdataDir: cfg.OCR.TessdataDir,
		}, logger),
		source.NewFitzPDF(logger),
		source.WholeImage{},
		ex,
		logger,
	)

	ctx, cancel := context.WithTimeout(cmd.Context(), flagTimeout)
	defer cancel()

	start := time.Now()
	res, err := proc.Extract(ctx, pipeline.Input{Data: data, Format: format, Ext: ext})
	if err != nil {
		logger.Error("extraction failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
		return err
	}
	logger.Info("extraction OK",
		"run_id", res.RunID, "items", len(res.Items), "duration_ms", time.Since(start).Milliseconds())

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
