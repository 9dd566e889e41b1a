package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wiktlex/wiktlex/language"
)

const kotPage = `<html><body>
<h2><span class="mw-headline" id="Polish">Polish</span></h2>
<h3><span class="mw-headline" id="Noun">Noun</span></h3>
<p><strong>kot</strong></p>
</body></html>`

const emptyPage = `<html><body><h2>Navigation menu</h2></body></html>`

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/wiki/kot", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(kotPage))
	})
	mux.HandleFunc("/wiki/ghost", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(emptyPage))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestWordPage(t *testing.T) {
	srv := testServer(t)
	c := NewClient(WithBaseURL(srv.URL))

	root, err := c.WordPage(context.Background(), "kot", language.Language("Polish"))
	if err != nil {
		t.Fatalf("word page: %v", err)
	}
	if !root.Valid() {
		t.Fatalf("word page: invalid root")
	}
}

func TestWordPageProbesCapitalization(t *testing.T) {
	srv := testServer(t)
	c := NewClient(WithBaseURL(srv.URL))

	// "KOT" has no page; the lowercased probe lands on /wiki/kot.
	root, err := c.WordPage(context.Background(), "KOT", language.Language("Polish"))
	if err != nil {
		t.Fatalf("word page: %v", err)
	}
	if !root.Valid() {
		t.Fatalf("word page: invalid root")
	}
}

func TestWordPageNotFound(t *testing.T) {
	srv := testServer(t)
	c := NewClient(WithBaseURL(srv.URL))

	_, err := c.WordPage(context.Background(), "missing", language.Language("Polish"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing page: got %v, want ErrNotFound", err)
	}
}

func TestWordPageWrongLanguage(t *testing.T) {
	srv := testServer(t)
	c := NewClient(WithBaseURL(srv.URL))

	_, err := c.WordPage(context.Background(), "kot", language.Language("Finnish"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("wrong language: got %v, want ErrNotFound", err)
	}
}

func TestWordPageChromeOnlyPage(t *testing.T) {
	srv := testServer(t)
	c := NewClient(WithBaseURL(srv.URL))

	// No language requested: a page whose first heading is chrome is a miss.
	_, err := c.WordPage(context.Background(), "ghost", "")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("chrome page: got %v, want ErrNotFound", err)
	}

	root, err := c.WordPage(context.Background(), "kot", "")
	if err != nil || !root.Valid() {
		t.Fatalf("any-language fetch: got (%v, %v)", root.Valid(), err)
	}
}
