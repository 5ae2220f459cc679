// internal/app/system/extract/link.go
package extract

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"projetex/internal/domain/models"
)

// LinkResult holds whatever a fetched link produced: extracted text for
// documents and HTML pages, row records for tabular sources.
type LinkResult struct {
	Text    string
	Records []models.RowRecord
}

// Fetcher retrieves link content over HTTP with a fixed timeout and
// extracts it according to the URL's format.
type Fetcher struct {
	client *http.Client
}

// NewFetcher builds a Fetcher with the given per-request timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// Fetch downloads the URL and extracts its content. Failures to retrieve
// the resource wrap ErrFetch; unreadable payloads return plain parse
// errors.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (LinkResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return LinkResult{}, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return LinkResult{}, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return LinkResult{}, fmt.Errorf("%w: status %d", ErrFetch, resp.StatusCode)
	}

	body := io.LimitReader(resp.Body, MaxUploadSize)
	lower := strings.ToLower(rawURL)

	switch {
	case strings.HasSuffix(lower, ".csv"):
		records, err := ParseCSV(body)
		if err != nil {
			return LinkResult{}, err
		}
		return LinkResult{Records: records}, nil

	case strings.HasSuffix(lower, ".xlsx"):
		records, err := ParseXLSX(body)
		if err != nil {
			return LinkResult{}, err
		}
		return LinkResult{Records: records}, nil

	case strings.HasSuffix(lower, ".docx"):
		text, err := ParseDOCX(body)
		if err != nil {
			return LinkResult{}, err
		}
		return LinkResult{Text: text}, nil

	case strings.HasSuffix(lower, ".pdf"):
		text, err := ParsePDF(body)
		if err != nil {
			return LinkResult{}, err
		}
		return LinkResult{Text: text}, nil

	default:
		text, err := htmlText(body)
		if err != nil {
			return LinkResult{}, err
		}
		return LinkResult{Text: text}, nil
	}
}

// htmlText pulls the essential text from an HTML page: the first of
// <main>, <article>, or <body> that exists, capped at MaxTextRunes.
func htmlText(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	for _, sel := range []string{"main", "article", "body"} {
		node := doc.Find(sel).First()
		if node.Length() > 0 {
			return Truncate(collapseWhitespace(node.Text())), nil
		}
	}
	return Truncate(collapseWhitespace(doc.Text())), nil
}

// collapseWhitespace joins non-empty lines, trimming each, so page text
// stays readable without runs of blank lines.
func collapseWhitespace(s string) string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			lines = append(lines, t)
		}
	}
	return strings.Join(lines, "\n")
}
