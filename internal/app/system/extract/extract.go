// Package extract converts uploaded files and fetched links into
// normalized text or header-keyed row records for ingestion.
package extract

import "errors"

// Sentinel errors mapped to HTTP statuses by the ingest handlers.
var (
	// ErrUnsupportedFormat means the file extension is not one we ingest.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrFetch means a link could not be retrieved (non-2xx, timeout, DNS).
	ErrFetch = errors.New("link fetch failed")
)

// Row limits for tabular ingestion.
const (
	MaxUploadSize = 10 << 20 // 10 MB
	MaxRows       = 20000
)

// MaxTextRunes caps extracted text stored from links and documents.
const MaxTextRunes = 15000

// Truncate caps s at MaxTextRunes runes.
func Truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= MaxTextRunes {
		return s
	}
	return string(runes[:MaxTextRunes])
}
