// Package scan turns raw HTML into the markup-level facts the
// analyzers score: plain text, word count, heading outline, image and
// link tallies, paragraph blocks, and structured-data flags. One parse
// serves all four analyzers.
package scan

import (
	"strings"

	"golang.org/x/net/html"
)

const bytesPerKB = 1024

// Heading is one <h1>-<h6> tag in document order, tag-stripped.
type Heading struct {
	Level int
	Text  string
}

// Document is the extraction result for one piece of HTML. It is
// immutable after Parse returns; analyzers only read it.
type Document struct {
	// Text is the plain text of the markup: script/style/noscript
	// subtrees dropped, tags stripped, entities decoded, whitespace
	// collapsed to single spaces and trimmed.
	Text string

	// WordCount is the number of whitespace-delimited tokens in Text.
	WordCount int

	// Headings lists every h1-h6 in document order.
	Headings []Heading

	// Paragraphs holds the plain text of each non-empty <p> block.
	Paragraphs []string

	ImageCount    int
	ImagesWithAlt int

	InternalLinks int
	ExternalLinks int

	HasJSONLD    bool
	HasMicrodata bool
	HasRDFa      bool
	HasCanonical bool

	// SizeKB approximates the raw payload size.
	SizeKB int
}

// HasSchema reports whether any structured-data flavor was detected.
func (d Document) HasSchema() bool {
	return d.HasJSONLD || d.HasMicrodata || d.HasRDFa
}

// HeadingTexts returns the texts of headings at the given level, in
// document order. The slice is never nil.
func (d Document) HeadingTexts(level int) []string {
	out := make([]string, 0, len(d.Headings))
	for _, h := range d.Headings {
		if h.Level == level {
			out = append(out, h.Text)
		}
	}
	return out
}

// Parse scans content and returns its Document. It is total: any
// input, including the empty string and malformed markup, yields a
// Document rather than an error. Empty input yields empty text and
// zero counts.
func Parse(content string) Document {
	doc := Document{SizeKB: len(content) / bytesPerKB}
	if content == "" {
		return doc
	}

	root, err := html.Parse(strings.NewReader(content))
	if err != nil {
		// The parser recovers from malformed markup on its own; an
		// error can only come from the reader, which never fails for
		// a string. Degrade to an empty document regardless.
		return doc
	}

	var words []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			switch n.Data {
			case "script":
				if strings.EqualFold(attrVal(n, "type"), "application/ld+json") {
					doc.HasJSONLD = true
				}
				return // script text is not content
			case "style", "noscript", "template":
				return
			case "h1", "h2", "h3", "h4", "h5", "h6":
				doc.Headings = append(doc.Headings, Heading{
					Level: int(n.Data[1] - '0'),
					Text:  nodeText(n),
				})
			case "p":
				if t := nodeText(n); t != "" {
					doc.Paragraphs = append(doc.Paragraphs, t)
				}
			case "img":
				doc.ImageCount++
				if strings.TrimSpace(attrVal(n, "alt")) != "" {
					doc.ImagesWithAlt++
				}
			case "a":
				if href, ok := attr(n, "href"); ok {
					doc.countLink(href)
				}
			case "link":
				if strings.EqualFold(attrVal(n, "rel"), "canonical") {
					doc.HasCanonical = true
				}
			}
			if hasAnyAttr(n, "itemscope", "itemprop", "itemtype") {
				doc.HasMicrodata = true
			}
			if hasAnyAttr(n, "vocab", "typeof") {
				doc.HasRDFa = true
			}
		case html.TextNode:
			words = append(words, strings.Fields(n.Data)...)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	doc.Text = strings.Join(words, " ")
	doc.WordCount = len(words)
	return doc
}

// countLink classifies one href. Internal: site-relative ("/"),
// fragment ("#"), or scheme-less paths. External: anything carrying
// "://". Empty hrefs point nowhere and are not counted.
func (d *Document) countLink(href string) {
	href = strings.TrimSpace(href)
	switch {
	case href == "":
	case strings.HasPrefix(href, "/"), strings.HasPrefix(href, "#"):
		d.InternalLinks++
	case strings.Contains(href, "://"):
		d.ExternalLinks++
	default:
		d.InternalLinks++
	}
}

// nodeText flattens the text content of a subtree, whitespace
// collapsed. Nested script/style text is excluded.
func nodeText(n *html.Node) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.ElementNode {
			switch c.Data {
			case "script", "style", "noscript", "template":
				return
			}
		}
		if c.Type == html.TextNode {
			parts = append(parts, strings.Fields(c.Data)...)
		}
		for cc := c.FirstChild; cc != nil; cc = cc.NextSibling {
			walk(cc)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}

func attrVal(n *html.Node, key string) string {
	v, _ := attr(n, key)
	return v
}

func hasAnyAttr(n *html.Node, keys ...string) bool {
	for _, k := range keys {
		if _, ok := attr(n, k); ok {
			return true
		}
	}
	return false
}
