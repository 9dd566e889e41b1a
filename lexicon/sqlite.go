package lexicon

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/wiktlex/wiktlex/dbopen"
	"github.com/wiktlex/wiktlex/grid"
	"github.com/wiktlex/wiktlex/language"
)

// Schema is the persistence DDL. One row per (word, language, heading);
// content is the heading's payload as JSON: a string array for etymology
// and pronunciation, a definition array for parts of speech, and the
// nested path mapping for declensions.
const Schema = `
CREATE TABLE IF NOT EXISTS entries (
	word     TEXT NOT NULL,
	language TEXT NOT NULL,
	heading  TEXT NOT NULL,
	content  TEXT NOT NULL,
	PRIMARY KEY (word, language, heading)
);
CREATE INDEX IF NOT EXISTS entries_language ON entries (language);
`

// DB persists a Store to SQLite.
type DB struct {
	db *sql.DB
}

// OpenDB opens (and if needed creates) the database at path.
func OpenDB(path string) (*DB, error) {
	db, err := dbopen.Open(path, dbopen.WithMkdirAll(), dbopen.WithSchema(Schema))
	if err != nil {
		return nil, err
	}
	return &DB{db: db}, nil
}

// WrapDB adopts an already-open database, as from dbopen.OpenMemory.
// The caller keeps ownership of the handle.
func WrapDB(db *sql.DB) *DB { return &DB{db: db} }

// Close closes the underlying database.
func (d *DB) Close() error { return d.db.Close() }

type storedDef struct {
	Text  string `json:"text"`
	Lemma string `json:"lemma,omitempty"`
}

// SaveStore writes every entry of s, replacing rows that already exist.
// Content payloads are rebuilt from the in-memory state, so a save after
// a merge reflects the merged result. The write runs in one transaction
// and retries if another connection holds the write lock.
func (d *DB) SaveStore(ctx context.Context, s *Store) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return dbopen.RunTx(ctx, d.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO entries (word, language, heading, content)
			VALUES (?, ?, ?, ?)
			ON CONFLICT (word, language, heading) DO UPDATE SET content = excluded.content`)
		if err != nil {
			return fmt.Errorf("lexicon: prepare save: %w", err)
		}
		defer stmt.Close()

		put := func(word string, lang language.Language, h Heading, payload any) error {
			raw, err := json.Marshal(payload)
			if err != nil {
				return fmt.Errorf("lexicon: encode %s/%s/%s: %w", word, lang, h, err)
			}
			if _, err := stmt.ExecContext(ctx, word, string(lang), string(h), string(raw)); err != nil {
				return fmt.Errorf("lexicon: save %s/%s/%s: %w", word, lang, h, err)
			}
			return nil
		}

		for word, byLang := range s.words {
			for lang, e := range byLang {
				if len(e.Etymology) > 0 {
					if err := put(word, lang, Etymology, e.Etymology); err != nil {
						return err
					}
				}
				if len(e.Pronunciation) > 0 {
					if err := put(word, lang, Pronunciation, e.Pronunciation); err != nil {
						return err
					}
				}
				if e.HasDeclension() {
					if err := put(word, lang, Declension, e.Declension); err != nil {
						return err
					}
				}
				for _, h := range e.defOrder {
					defs := make([]storedDef, 0, len(e.defs[h]))
					for _, dd := range e.defs[h] {
						defs = append(defs, storedDef{Text: dd.Text, Lemma: dd.Lemma})
					}
					if err := put(word, lang, h, defs); err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
}

// LoadStore merges every persisted row into s. Rows carrying an unknown
// language or heading are dropped with a log line.
func (d *DB) LoadStore(ctx context.Context, s *Store) error {
	rows, err := d.db.QueryContext(ctx, `SELECT word, language, heading, content FROM entries`)
	if err != nil {
		return fmt.Errorf("lexicon: load: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var word, langName, rawHeading, content string
		if err := rows.Scan(&word, &langName, &rawHeading, &content); err != nil {
			return fmt.Errorf("lexicon: scan row: %w", err)
		}
		lang := language.Language(langName)
		if !language.Known(lang) {
			s.logger.Warn("load: unknown language dropped", "word", word, "language", langName)
			continue
		}
		h, ok := ParseHeading(rawHeading)
		if !ok {
			s.logger.Warn("load: unknown heading dropped", "word", word, "heading", rawHeading)
			continue
		}
		if err := mergeRow(s, word, lang, h, []byte(content)); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("lexicon: load: %w", err)
	}
	return nil
}

func mergeRow(s *Store, word string, lang language.Language, h Heading, raw []byte) error {
	switch {
	case h == Etymology:
		var roots []string
		if err := json.Unmarshal(raw, &roots); err != nil {
			return fmt.Errorf("lexicon: decode %s/%s/%s: %w", word, lang, h, err)
		}
		s.MergeEtymology(word, lang, roots)
	case h == Pronunciation:
		var ipas []string
		if err := json.Unmarshal(raw, &ipas); err != nil {
			return fmt.Errorf("lexicon: decode %s/%s/%s: %w", word, lang, h, err)
		}
		s.MergePronunciation(word, lang, ipas)
	case h == Declension:
		var decl grid.Declension
		if err := json.Unmarshal(raw, &decl); err != nil {
			return fmt.Errorf("lexicon: decode %s/%s/%s: %w", word, lang, h, err)
		}
		s.MergeDeclension(word, lang, decl)
	case h.IsPartOfSpeech():
		var defs []storedDef
		if err := json.Unmarshal(raw, &defs); err != nil {
			return fmt.Errorf("lexicon: decode %s/%s/%s: %w", word, lang, h, err)
		}
		pairs := make([]Definition, 0, len(defs))
		for _, dd := range defs {
			pairs = append(pairs, Definition{Text: dd.Text, Lemma: dd.Lemma})
		}
		s.MergeDefinitions(word, lang, h, pairs)
	}
	return nil
}
