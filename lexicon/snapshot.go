package lexicon

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wiktlex/wiktlex/grid"
	"github.com/wiktlex/wiktlex/language"
)

// snapshot is the on-disk shape of the store: word → language → entry.
type snapshot map[string]map[string]entrySnapshot

type entrySnapshot struct {
	Etymology     []string                       `yaml:"etymology,omitempty"`
	Pronunciation []string                       `yaml:"pronunciation,omitempty"`
	Definitions   map[string][]defSnapshot       `yaml:"definitions,omitempty"`
	Declension    map[string]map[string][]string `yaml:"declension,omitempty"`
}

type defSnapshot struct {
	Text  string `yaml:"text"`
	Lemma string `yaml:"lemma,omitempty"`
}

// WriteSnapshot emits the store contents as YAML.
func (s *Store) WriteSnapshot(w io.Writer) error {
	s.mu.RLock()
	snap := make(snapshot, len(s.words))
	for word, byLang := range s.words {
		langs := make(map[string]entrySnapshot, len(byLang))
		for lang, e := range byLang {
			langs[string(lang)] = snapshotEntry(e)
		}
		snap[word] = langs
	}
	s.mu.RUnlock()

	enc := yaml.NewEncoder(w)
	if err := enc.Encode(snap); err != nil {
		enc.Close()
		return fmt.Errorf("lexicon: encode snapshot: %w", err)
	}
	// Close flushes the emitter; a failed flush is a failed write.
	if err := enc.Close(); err != nil {
		return fmt.Errorf("lexicon: flush snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot merges a YAML snapshot into the store. Unknown languages and
// headings are dropped with a log line rather than propagated.
func (s *Store) LoadSnapshot(r io.Reader) error {
	var snap snapshot
	if err := yaml.NewDecoder(r).Decode(&snap); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("lexicon: decode snapshot: %w", err)
	}

	for word, byLang := range snap {
		for langName, es := range byLang {
			lang := language.Language(langName)
			if !language.Known(lang) {
				s.logger.Warn("snapshot: unknown language dropped",
					"word", word, "language", langName)
				continue
			}
			s.MergeEtymology(word, lang, es.Etymology)
			s.MergePronunciation(word, lang, es.Pronunciation)
			for rawHeading, defs := range es.Definitions {
				h, ok := ParseHeading(rawHeading)
				if !ok || !h.IsPartOfSpeech() {
					s.logger.Warn("snapshot: unknown heading dropped",
						"word", word, "heading", rawHeading)
					continue
				}
				pairs := make([]Definition, 0, len(defs))
				for _, d := range defs {
					pairs = append(pairs, Definition{Text: d.Text, Lemma: d.Lemma})
				}
				s.MergeDefinitions(word, lang, h, pairs)
			}
			if len(es.Declension) > 0 {
				s.MergeDeclension(word, lang, grid.Declension(es.Declension))
			}
		}
	}
	return nil
}

// LoadSnapshotFile loads a snapshot from path. A missing file is not an
// error: the session simply starts cold.
func (s *Store) LoadSnapshotFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	return s.LoadSnapshot(f)
}

// WriteSnapshotFile writes the snapshot to path atomically.
func (s *Store) WriteSnapshotFile(path string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := s.WriteSnapshot(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

// snapshotEntry deep-copies e. The caller releases the store lock before
// encoding, so nothing here may alias the live entry.
func snapshotEntry(e *Entry) entrySnapshot {
	es := entrySnapshot{
		Etymology:     append([]string(nil), e.Etymology...),
		Pronunciation: append([]string(nil), e.Pronunciation...),
	}
	if len(e.Declension) > 0 {
		d := make(grid.Declension)
		d.Merge(e.Declension)
		es.Declension = map[string]map[string][]string(d)
	}
	if len(e.defOrder) > 0 {
		es.Definitions = make(map[string][]defSnapshot, len(e.defOrder))
		for _, h := range e.defOrder {
			defs := make([]defSnapshot, 0, len(e.defs[h]))
			for _, d := range e.defs[h] {
				defs = append(defs, defSnapshot{Text: d.Text, Lemma: d.Lemma})
			}
			es.Definitions[string(h)] = defs
		}
	}
	return es
}
