package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/shashankg86/catalog-extractor/constants"
	"github.com/shashankg86/catalog-extractor/internal/common"
	"github.com/shashankg86/catalog-extractor/internal/extract"
	"github.com/shashankg86/catalog-extractor/internal/pipeline"
	"github.com/shashankg86/catalog-extractor/internal/source"
)

func main() {
	// Logger
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	// Env
	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Pipeline wiring; internals log through slog
	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	vocab, err := extract.LoadVocabulary(cfg.Extraction.VocabPath)
	if err != nil {
		log.Fatalf("vocabulary: %v", err)
	}
	ex := extract.NewExtractor(vocab, extract.Options{
		FallbackMinPrice: cfg.Extraction.FallbackMinPrice,
		FallbackMaxPrice: cfg.Extraction.FallbackMaxPrice,
	}, slogger)
	proc := pipeline.NewProcessor(
		cfg.Extraction,
		source.NewTesseract(source.TesseractConfig{
			Language:    cfg.OCR.Language,
			TessdataDir: cfg.OCR.TessdataDir,
		}, slogger),
		source.NewFitzPDF(slogger),
		source.WholeImage{},
		ex,
		slogger,
	)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/extract", extractHandler(proc, cfg, log))
	mux.HandleFunc("GET /v1/categories", categoriesHandler)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("catalogd listening on %s", cfg.Server.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
}

// categoriesHandler lists the known category labels in table order, General
// last, so callers can map extracted categories onto their own catalog IDs.
func categoriesHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(constants.AllCategories())
}

// extractHandler accepts the raw document body with ?ext=<extension> or
// ?format=<IMAGE|PDF|CSV|XLSX> and returns the extraction result as JSON.
// The daemon is thin glue: it persists nothing.
func extractHandler(proc *pipeline.Processor, cfg *common.Config, log *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ext := constants.NormalizeExt(r.URL.Query().Get("ext"))
		format := constants.SourceFormat(r.URL.Query().Get("format"))
		if format == "" {
			format = constants.MapExtToFormat(ext)
		}
		if format == "" {
			http.Error(w, "ext or format query parameter required", http.StatusBadRequest)
			return
		}

		data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, cfg.Server.MaxBodySize))
		if err != nil {
			http.Error(w, "read body: "+err.Error(), http.StatusBadRequest)
			return
		}

		res, err := proc.Extract(r.Context(), pipeline.Input{Data: data, Format: format, Ext: ext})
		if err != nil {
			log.Warnw("extract failed", "error", err)
			http.Error(w, common.StatusFromError(err).Message(), common.HTTPStatusFromError(err))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(res); err != nil {
			log.Errorw("encode response", "error", err)
		}
	}
}
