package view

import (
	"errors"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
)

// ErrViewNotFound is returned by Extract when the markup has no endpoint
// element.
var ErrViewNotFound = errors.New("view: endpoint element not found")

// Extract parses an HTML document or fragment and returns the visible text
// of the first endpoint element, with entities decoded.
func Extract(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parsing html: %w", err)
	}

	sel := doc.Find("." + ClassEndpoint).First()
	if sel.Length() == 0 {
		return "", ErrViewNotFound
	}
	return sel.Text(), nil
}
