package markup

import (
	"strings"

	"golang.org/x/net/html"
)

// Section is a run of sibling nodes belonging to one heading: everything
// after the heading element up to (not including) the next heading of
// equal-or-higher rank.
type Section struct {
	Heading Node
	Nodes   []Node
}

// SliceSection collects heading's following siblings until one whose tag is in
// stop. Comment nodes end the run the way the source pages mark section
// boundaries.
func SliceSection(heading Node, stop map[string]bool) Section {
	sec := Section{Heading: heading}
	for _, sib := range heading.FollowingSiblings() {
		if stop[sib.Tag()] {
			break
		}
		if sib.isComment() {
			break
		}
		if sib.isBlankText() {
			continue
		}
		sec.Nodes = append(sec.Nodes, sib)
	}
	return sec
}

func (nd Node) isComment() bool {
	return nd.n != nil && nd.n.Type == html.CommentNode
}

func (nd Node) isBlankText() bool {
	return nd.n != nil && nd.n.Type == html.TextNode && strings.TrimSpace(nd.n.Data) == ""
}

// Find returns the first descendant of any node in the section satisfying
// match, scanning nodes in order.
func (s Section) Find(match func(Node) bool) Node {
	for _, nd := range s.Nodes {
		if match(nd) {
			return nd
		}
		if found := nd.Find(match); found.Valid() {
			return found
		}
	}
	return Node{}
}

// FindAll returns every matching descendant across the section's nodes.
func (s Section) FindAll(match func(Node) bool) []Node {
	var out []Node
	for _, nd := range s.Nodes {
		if match(nd) {
			out = append(out, nd)
		}
		out = append(out, nd.FindAll(match)...)
	}
	return out
}

// FindAllTags returns every descendant across the section whose tag is one of
// tags.
func (s Section) FindAllTags(tags ...string) []Node {
	want := make(map[string]bool, len(tags))
	for _, t := range tags {
		want[t] = true
	}
	return s.FindAll(func(c Node) bool { return want[c.Tag()] })
}
