// Package view renders a Configuration as HTML.
//
// The markup is built as an x/net/html node tree and serialized with
// html.Render, so the endpoint always ends up in a text node and markup
// significant characters are escaped on output. Rendering is a pure
// function of the Configuration.
package view

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/jschnasse/read-env-example/internal/config"
)

// Prefix precedes the endpoint in the displayed text.
const Prefix = "You have configured "

// Class names of the rendered elements.
const (
	ClassApp      = "App"
	ClassHeader   = "App-header"
	ClassEndpoint = "App-endpoint"
)

// Title is the document title used by RenderDocument.
const Title = "read-env-example"

// Text returns the visible text of the view for cfg.
func Text(cfg config.Configuration) string {
	return Prefix + cfg.APIEndpoint
}

// Endpoint strips Prefix from a displayed text. ok is false when text was
// not produced by the view.
func Endpoint(text string) (endpoint string, ok bool) {
	return strings.CutPrefix(text, Prefix)
}

// Tree builds the view fragment:
//
//	<div class="App"><header class="App-header"><div class="App-endpoint">…</div></header></div>
//
// NUL cannot appear in HTML text, so it is written as U+FFFD, the character
// an HTML parser would substitute for it.
func Tree(cfg config.Configuration) *html.Node {
	text := &html.Node{Type: html.TextNode, Data: strings.ReplaceAll(Text(cfg), "\x00", "\uFFFD")}
	return element(atom.Div, []html.Attribute{class(ClassApp)},
		element(atom.Header, []html.Attribute{class(ClassHeader)},
			element(atom.Div, []html.Attribute{class(ClassEndpoint)}, text),
		),
	)
}

// Render writes the view fragment for cfg to w.
func Render(w io.Writer, cfg config.Configuration) error {
	return html.Render(w, Tree(cfg))
}

// RenderDocument writes a complete HTML document containing the view.
func RenderDocument(w io.Writer, cfg config.Configuration) error {
	return html.Render(w, Document(cfg))
}

// String renders the fragment into a string.
func String(cfg config.Configuration) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, cfg); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Document wraps Tree in a document with a head referencing the embedded
// stylesheet.
func Document(cfg config.Configuration) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	head := element(atom.Head, nil,
		element(atom.Meta, []html.Attribute{{Key: "charset", Val: "utf-8"}}),
		element(atom.Meta, []html.Attribute{
			{Key: "name", Val: "viewport"},
			{Key: "content", Val: "width=device-width, initial-scale=1"},
		}),
		element(atom.Title, nil, &html.Node{Type: html.TextNode, Data: Title}),
		element(atom.Link, []html.Attribute{
			{Key: "rel", Val: "stylesheet"},
			{Key: "href", Val: StylesheetPath},
		}),
	)
	body := element(atom.Body, nil, Tree(cfg))

	doc.AppendChild(element(atom.Html, []html.Attribute{{Key: "lang", Val: "en"}}, head, body))
	return doc
}

func element(a atom.Atom, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func class(name string) html.Attribute {
	return html.Attribute{Key: "class", Val: name}
}
