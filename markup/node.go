// Package markup is the read-only boundary over parsed wiki HTML. It wraps
// golang.org/x/net/html nodes with typed accessors (tag, attribute, children,
// following siblings, visible text) so the rest of the module never touches
// raw tree pointers or relies on attribute presence by accident.
package markup

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node is a handle on one node of a parsed document. The zero Node is invalid;
// use Parse or the traversal accessors. Nodes are never mutated.
type Node struct {
	n *html.Node
}

// Parse reads an HTML document and returns its root node.
func Parse(r io.Reader) (Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Node{}, err
	}
	return Node{n: doc}, nil
}

// FromHTML wraps an already-parsed node. Used at package boundaries only.
func FromHTML(n *html.Node) Node { return Node{n: n} }

// Valid reports whether the node refers to anything.
func (nd Node) Valid() bool { return nd.n != nil }

// IsElement reports whether the node is an element (not text or comment).
func (nd Node) IsElement() bool {
	return nd.n != nil && nd.n.Type == html.ElementNode
}

// Tag returns the element tag name, lowercased, or "" for non-elements.
func (nd Node) Tag() string {
	if !nd.IsElement() {
		return ""
	}
	return nd.n.Data
}

// Attr looks up an attribute by key. The second return is false when the
// attribute is absent, which callers must treat differently from "".
func (nd Node) Attr(key string) (string, bool) {
	if !nd.IsElement() {
		return "", false
	}
	for _, a := range nd.n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasClass reports whether the node's class attribute contains name.
func (nd Node) HasClass(name string) bool {
	val, ok := nd.Attr("class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(val) {
		if c == name {
			return true
		}
	}
	return false
}

// Parent returns the parent node, or an invalid Node at the root.
func (nd Node) Parent() Node {
	if nd.n == nil {
		return Node{}
	}
	return Node{n: nd.n.Parent}
}

// Children returns the direct children in document order.
func (nd Node) Children() []Node {
	if nd.n == nil {
		return nil
	}
	var out []Node
	for c := nd.n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, Node{n: c})
	}
	return out
}

// FollowingSiblings returns every sibling after this node, in order.
func (nd Node) FollowingSiblings() []Node {
	if nd.n == nil {
		return nil
	}
	var out []Node
	for s := nd.n.NextSibling; s != nil; s = s.NextSibling {
		out = append(out, Node{n: s})
	}
	return out
}

// Find returns the first descendant (depth-first) satisfying match.
func (nd Node) Find(match func(Node) bool) Node {
	var found Node
	nd.walk(func(c Node) bool {
		if match(c) {
			found = c
			return false
		}
		return true
	})
	return found
}

// FindAll returns every descendant (depth-first) satisfying match.
func (nd Node) FindAll(match func(Node) bool) []Node {
	var out []Node
	nd.walk(func(c Node) bool {
		if match(c) {
			out = append(out, c)
		}
		return true
	})
	return out
}

// FindTag returns the first descendant with the given tag.
func (nd Node) FindTag(tag string) Node {
	return nd.Find(func(c Node) bool { return c.Tag() == tag })
}

// FindAllTags returns every descendant whose tag is one of tags.
func (nd Node) FindAllTags(tags ...string) []Node {
	want := make(map[string]bool, len(tags))
	for _, t := range tags {
		want[t] = true
	}
	return nd.FindAll(func(c Node) bool { return want[c.Tag()] })
}

// Link returns the href of the first anchor descendant. The second return is
// false when there is no anchor or it carries no href.
func (nd Node) Link() (string, bool) {
	a := nd.FindTag("a")
	if !a.Valid() {
		return "", false
	}
	return a.Attr("href")
}

// Ancestor walks up the tree to the nearest ancestor satisfying match.
func (nd Node) Ancestor(match func(Node) bool) Node {
	for p := nd.Parent(); p.Valid(); p = p.Parent() {
		if match(p) {
			return p
		}
	}
	return Node{}
}

// Previous returns the nearest node before this one in document order that
// satisfies match. Mirrors a reverse document scan: previous siblings are
// searched tail-first (deepest descendant last), then the walk climbs.
func (nd Node) Previous(match func(Node) bool) Node {
	cur := nd.n
	for cur != nil {
		for s := cur.PrevSibling; s != nil; s = s.PrevSibling {
			if found := lastMatch(s, match); found.Valid() {
				return found
			}
		}
		cur = cur.Parent
		if cur != nil && match(Node{n: cur}) {
			return Node{n: cur}
		}
	}
	return Node{}
}

// lastMatch returns the last node in document order within n's subtree that
// satisfies match.
func lastMatch(n *html.Node, match func(Node) bool) Node {
	var found Node
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if match(Node{n: c}) {
			found = Node{n: c}
		}
		for k := c.FirstChild; k != nil; k = k.NextSibling {
			walk(k)
		}
	}
	walk(n)
	return found
}

// walk visits nd's descendants depth-first. Returning false from fn stops the
// walk.
func (nd Node) walk(fn func(Node) bool) {
	if nd.n == nil {
		return
	}
	stopped := false
	var f func(*html.Node)
	f = func(c *html.Node) {
		if stopped {
			return
		}
		if !fn(Node{n: c}) {
			stopped = true
			return
		}
		for k := c.FirstChild; k != nil; k = k.NextSibling {
			f(k)
		}
	}
	for c := nd.n.FirstChild; c != nil; c = c.NextSibling {
		f(c)
	}
}

// Text returns the node's visible text: text nodes joined with single spaces,
// scripts and styles skipped, then cleaned.
func (nd Node) Text() string {
	return nd.TextExcluding(nil)
}

// TextExcluding returns visible text while skipping subtrees whose tag is in
// skip. Definition extraction uses it to drop sup/ul/dl/abbr sublists the way
// the source pages nest quotations and usage notes inside senses.
func (nd Node) TextExcluding(skip []string) string {
	if nd.n == nil {
		return ""
	}
	skipped := make(map[string]bool, len(skip)+2)
	for _, t := range skip {
		skipped[t] = true
	}
	var sb strings.Builder
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Noscript:
				return
			}
			if skipped[n.Data] {
				return
			}
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(nd.n)
	return CleanText(sb.String())
}
