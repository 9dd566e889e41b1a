// Package fetch retrieves dictionary pages over HTTP and parses them into
// markup trees. Missing pages surface as ErrNotFound, not as empty trees.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/cases"
	xlang "golang.org/x/text/language"

	"github.com/wiktlex/wiktlex/language"
	"github.com/wiktlex/wiktlex/markup"
)

// DefaultBaseURL is the production dictionary host.
const DefaultBaseURL = "https://en.wiktionary.org"

// ErrNotFound reports that no capitalization variant of the word has a page
// with the requested language's section.
var ErrNotFound = errors.New("fetch: page not found")

var titleCaser = cases.Title(xlang.Und)

// Client fetches word pages.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithBaseURL overrides the dictionary host, scheme included.
func WithBaseURL(u string) Option { return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") } }

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.http = h } }

// WithLogger sets the client's logger. Default: slog.Default().
func WithLogger(l *slog.Logger) Option { return func(c *Client) { c.logger = l } }

// NewClient returns a page-fetch client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  slog.Default(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// WordPage fetches the page for word, probing capitalization variants (as
// given, lowercased, Title-cased) until one parses to a page carrying a
// section for lang. Case matters: variants are distinct pages. lang == ""
// accepts any page whose first heading is a word entry rather than site
// chrome. Returns ErrNotFound when every variant misses.
func (c *Client) WordPage(ctx context.Context, word string, lang language.Language) (markup.Node, error) {
	seen := make(map[string]bool, 3)
	for _, variant := range []string{word, strings.ToLower(word), titleCaser.String(word)} {
		if variant == "" || seen[variant] {
			continue
		}
		seen[variant] = true

		root, err := c.fetch(ctx, variant)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				continue
			}
			return markup.Node{}, err
		}
		if pageValid(root, lang) {
			return root, nil
		}
		c.logger.Debug("page lacks requested section",
			"word", variant, "language", string(lang))
	}
	return markup.Node{}, fmt.Errorf("%w: %s", ErrNotFound, word)
}

func (c *Client) fetch(ctx context.Context, word string) (markup.Node, error) {
	u := c.baseURL + "/wiki/" + url.PathEscape(word)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return markup.Node{}, fmt.Errorf("fetch: build request for %s: %w", word, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return markup.Node{}, fmt.Errorf("fetch: get %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return markup.Node{}, fmt.Errorf("%w: %s", ErrNotFound, word)
	}
	if resp.StatusCode != http.StatusOK {
		return markup.Node{}, fmt.Errorf("fetch: get %s: status %d", u, resp.StatusCode)
	}
	root, err := markup.Parse(resp.Body)
	if err != nil {
		return markup.Node{}, fmt.Errorf("fetch: parse %s: %w", u, err)
	}
	return root, nil
}

// pageValid reports whether the fetched page holds a usable entry: the
// requested language's headline anchor, or with no language requested, a
// first h2 that is not navigation chrome.
func pageValid(root markup.Node, lang language.Language) bool {
	if lang == "" {
		h2 := root.FindTag("h2")
		return h2.Valid() &&
			!strings.HasPrefix(markup.CleanHeader(h2.Text()), "Navigation")
	}
	span := root.Find(func(n markup.Node) bool {
		if n.Tag() != "span" || !n.HasClass("mw-headline") {
			return false
		}
		id, ok := n.Attr("id")
		return ok && id == string(lang)
	})
	return span.Valid()
}
