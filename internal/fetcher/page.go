package fetcher

import (
	"bytes"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Page is a fetched or rendered product page.
type Page struct {
	// Body is the raw page markup.
	Body []byte

	// StatusCode is the HTTP status code (200 for browser renders, which
	// do not expose status codes directly).
	StatusCode int

	// FinalURL is the URL after any redirects.
	FinalURL string

	// FetchDuration is how long the fetch took.
	FetchDuration time.Duration

	// FetchedAt is when this page was retrieved.
	FetchedAt time.Time

	doc  *goquery.Document
	root *html.Node
}

// NewPage creates a Page from raw markup.
func NewPage(body []byte, statusCode int, finalURL string, duration time.Duration) *Page {
	return &Page{
		Body:          body,
		StatusCode:    statusCode,
		FinalURL:      finalURL,
		FetchDuration: duration,
		FetchedAt:     time.Now(),
	}
}

// Document returns a parsed goquery document, lazily initializing it.
func (p *Page) Document() (*goquery.Document, error) {
	if p.doc != nil {
		return p.doc, nil
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(p.Body))
	if err != nil {
		return nil, err
	}
	p.doc = doc
	return doc, nil
}

// Root returns the parsed HTML root node for XPath evaluation, lazily
// initializing it.
func (p *Page) Root() (*html.Node, error) {
	if p.root != nil {
		return p.root, nil
	}
	root, err := html.Parse(bytes.NewReader(p.Body))
	if err != nil {
		return nil, err
	}
	p.root = root
	return root, nil
}

// IsSuccess returns true if the page status is 2xx.
func (p *Page) IsSuccess() bool {
	return p.StatusCode >= 200 && p.StatusCode < 300
}
