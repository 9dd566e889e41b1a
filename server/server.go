// Package server exposes the lexical store over HTTP. Queries are two-phase:
// a store miss triggers one fetch-parse-populate round before the query runs
// again, so repeat lookups are served from memory.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wiktlex/wiktlex/fetch"
	"github.com/wiktlex/wiktlex/grid"
	"github.com/wiktlex/wiktlex/language"
	"github.com/wiktlex/wiktlex/lemma"
	"github.com/wiktlex/wiktlex/lexicon"
	"github.com/wiktlex/wiktlex/markup"
	"github.com/wiktlex/wiktlex/wikt"
)

// PageFetcher retrieves the parsed page for a word. fetch.Client implements
// it; tests substitute fixtures.
type PageFetcher interface {
	WordPage(ctx context.Context, word string, lang language.Language) (markup.Node, error)
}

// Server answers lexical queries, filling store misses from the fetcher.
type Server struct {
	store    *lexicon.Store
	parser   *wikt.Parser
	resolver *lemma.Resolver
	fetcher  PageFetcher
	logger   *slog.Logger
}

// Option customises a Server.
type Option func(*Server)

// WithLogger sets the server's logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option { return func(s *Server) { s.logger = l } }

// New assembles the query surface. fetcher may be nil, serving only what the
// store already holds.
func New(store *lexicon.Store, resolver *lemma.Resolver, parser *wikt.Parser, fetcher PageFetcher, opts ...Option) *Server {
	s := &Server{
		store:    store,
		parser:   parser,
		resolver: resolver,
		fetcher:  fetcher,
		logger:   slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Handler returns the routed HTTP surface.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Route("/v1", func(r chi.Router) {
		r.Get("/lemmas", s.handleLemmas)
		r.Get("/morphemes", s.handleMorphemes)
		r.Get("/entry", s.handleEntry)
		r.Get("/declension", s.handleDeclension)
	})
	return r
}

// ensureEntry fetches and populates the word's page when the store has no
// entry for any capitalization variant. Fetch misses are not errors: the
// query then answers from whatever the store holds.
func (s *Server) ensureEntry(ctx context.Context, word string, lang language.Language) string {
	probed := s.store.EntryWord(word, lang)
	if _, ok := s.store.Lookup(probed, lang); ok {
		return probed
	}
	if s.fetcher == nil || markup.ContainsPunct(word) {
		return probed
	}
	root, err := s.fetcher.WordPage(ctx, word, lang)
	if err != nil {
		if !errors.Is(err, fetch.ErrNotFound) {
			s.logger.Warn("page fetch failed", "word", word, "err", err)
		}
		return probed
	}
	s.parser.Populate(s.store, word, root, lang)
	return s.store.EntryWord(word, lang)
}

func (s *Server) handleLemmas(w http.ResponseWriter, r *http.Request) {
	word, lang, ok := s.wordLang(w, r)
	if !ok {
		return
	}
	poses, err := parsePoses(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	word = s.ensureEntry(r.Context(), word, lang)
	writeJSON(w, http.StatusOK, map[string]any{
		"word":     word,
		"language": string(lang),
		"lemmas":   s.resolver.Lemmas(word, lang, poses),
	})
}

func (s *Server) handleMorphemes(w http.ResponseWriter, r *http.Request) {
	word, lang, ok := s.wordLang(w, r)
	if !ok {
		return
	}
	word = s.ensureEntry(r.Context(), word, lang)
	writeJSON(w, http.StatusOK, map[string]any{
		"word":      word,
		"language":  string(lang),
		"morphemes": s.resolver.AllMorphemes(word, lang),
	})
}

type definitionBody struct {
	Text  string `json:"text"`
	Lemma string `json:"lemma,omitempty"`
}

type entryBody struct {
	Word          string                      `json:"word"`
	Language      string                      `json:"language"`
	Etymology     []string                    `json:"etymology,omitempty"`
	Pronunciation []string                    `json:"pronunciation,omitempty"`
	Definitions   map[string][]definitionBody `json:"definitions,omitempty"`
	Declension    grid.Declension             `json:"declension,omitempty"`
}

func (s *Server) handleEntry(w http.ResponseWriter, r *http.Request) {
	word, lang, ok := s.wordLang(w, r)
	if !ok {
		return
	}
	word = s.ensureEntry(r.Context(), word, lang)
	if _, ok := s.store.Lookup(word, lang); !ok {
		writeError(w, http.StatusNotFound,
			fmt.Errorf("no entry for %q in %s", word, lang))
		return
	}
	// Everything below goes through the store's locked accessors, which hand
	// out copies: a concurrent populate of the same word must not be visible
	// mid-encode.
	body := entryBody{
		Word:          word,
		Language:      string(lang),
		Etymology:     s.store.Etymology(word, lang),
		Pronunciation: s.store.Pronunciation(word, lang),
	}
	if d, ok := s.store.Declension(word, lang); ok {
		body.Declension = d
	}
	for _, h := range s.store.PartsOfSpeech(word, lang) {
		if body.Definitions == nil {
			body.Definitions = make(map[string][]definitionBody)
		}
		for _, d := range s.store.Definitions(word, lang, h) {
			body.Definitions[string(h)] = append(body.Definitions[string(h)],
				definitionBody{Text: d.Text, Lemma: d.Lemma})
		}
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleDeclension(w http.ResponseWriter, r *http.Request) {
	word, lang, ok := s.wordLang(w, r)
	if !ok {
		return
	}
	word = s.ensureEntry(r.Context(), word, lang)
	d, ok := s.store.Declension(word, lang)
	if !ok {
		writeError(w, http.StatusNotFound,
			fmt.Errorf("no declension for %q in %s", word, lang))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"word":       word,
		"language":   string(lang),
		"declension": d,
	})
}

// wordLang validates the word and lang query parameters shared by every
// endpoint.
func (s *Server) wordLang(w http.ResponseWriter, r *http.Request) (string, language.Language, bool) {
	word := r.URL.Query().Get("word")
	if word == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("%w: word", ErrMissingParam))
		return "", "", false
	}
	langName := r.URL.Query().Get("lang")
	if langName == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("%w: lang", ErrMissingParam))
		return "", "", false
	}
	lang := language.Language(langName)
	if !language.Known(lang) {
		writeError(w, http.StatusBadRequest,
			fmt.Errorf("%w: %s", ErrUnknownLanguage, langName))
		return "", "", false
	}
	return word, lang, true
}

func parsePoses(r *http.Request) ([]lexicon.Heading, error) {
	values := r.URL.Query()["pos"]
	if len(values) == 0 {
		return nil, nil
	}
	poses := make([]lexicon.Heading, 0, len(values))
	for _, v := range values {
		h, ok := lexicon.ParseHeading(v)
		if !ok || !h.IsPartOfSpeech() {
			return nil, fmt.Errorf("unknown part of speech %q", v)
		}
		poses = append(poses, h)
	}
	return poses, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
