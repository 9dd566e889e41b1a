// Command wiktlexd serves the lexical query API. It loads the store from the
// configured snapshot and database at boot, fills misses from the dictionary
// host while running, and persists the store back on shutdown.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/wiktlex/wiktlex/fetch"
	"github.com/wiktlex/wiktlex/language"
	"github.com/wiktlex/wiktlex/lemma"
	"github.com/wiktlex/wiktlex/lexicon"
	"github.com/wiktlex/wiktlex/server"
	"github.com/wiktlex/wiktlex/wikt"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	level := slog.LevelInfo
	if env("LOG_LEVEL", "info") == "debug" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := server.LoadConfig(env("WIKTLEX_CONFIG", "wiktlex.yaml"))
	if err != nil {
		return err
	}
	cfg.Addr = env("WIKTLEX_ADDR", cfg.Addr)
	cfg.BaseURL = env("WIKTLEX_BASE_URL", cfg.BaseURL)
	cfg.SnapshotPath = env("WIKTLEX_SNAPSHOT", cfg.SnapshotPath)
	cfg.DBPath = env("WIKTLEX_DB", cfg.DBPath)
	cfg.LexiconDir = env("WIKTLEX_LEXICON_DIR", cfg.LexiconDir)

	store := lexicon.NewStore(lexicon.WithLogger(logger))
	if cfg.SnapshotPath != "" {
		if err := store.LoadSnapshotFile(cfg.SnapshotPath); err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
	}
	var db *lexicon.DB
	if cfg.DBPath != "" {
		db, err = lexicon.OpenDB(cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.LoadStore(context.Background(), store); err != nil {
			return err
		}
	}
	logger.Info("store loaded", "words", store.Len())

	meta := language.NewMetadata()
	if cfg.LexiconDir != "" {
		loadLexica(meta, cfg.LexiconDir, cfg.LexiconLimit, logger)
	}

	srv := server.New(
		store,
		lemma.NewResolver(store, meta, lemma.WithLogger(logger)),
		wikt.NewParser(wikt.WithLogger(logger)),
		fetch.NewClient(
			fetch.WithBaseURL(cfg.BaseURL),
			fetch.WithHTTPClient(&http.Client{Timeout: cfg.FetchTimeout}),
			fetch.WithLogger(logger),
		),
		server.WithLogger(logger),
	)

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	logger.Info("listening", "addr", cfg.Addr)

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown", "err", err)
	}

	if cfg.SnapshotPath != "" {
		if err := store.WriteSnapshotFile(cfg.SnapshotPath); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
	}
	if db != nil {
		saveCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := db.SaveStore(saveCtx, store); err != nil {
			return fmt.Errorf("save store: %w", err)
		}
	}
	logger.Info("store persisted", "words", store.Len())
	return nil
}

// loadLexica feeds per-language frequency lists into the metadata cache.
// Missing files are expected: coverage follows whatever lists are shipped.
func loadLexica(meta *language.Metadata, dir string, lim int, logger *slog.Logger) {
	for _, lang := range language.All() {
		code, _ := language.Code(lang)
		f, err := os.Open(filepath.Join(dir, code+".txt"))
		if err != nil {
			continue
		}
		if err := meta.LoadLexicon(lang, f, lim); err != nil {
			logger.Warn("load lexicon", "language", string(lang), "err", err)
		}
		f.Close()
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
