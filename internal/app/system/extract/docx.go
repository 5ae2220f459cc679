// internal/app/system/extract/docx.go
package extract

import (
	"fmt"
	"io"

	"code.sajari.com/docconv"
)

// MIME types handed to docconv.
const (
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimePDF  = "application/pdf"
)

// ParseDOCX extracts paragraph text, in document order, from a .docx
// stream.
func ParseDOCX(r io.Reader) (string, error) {
	res, err := docconv.Convert(r, mimeDOCX, true)
	if err != nil {
		return "", fmt.Errorf("convert docx: %w", err)
	}
	return Truncate(res.Body), nil
}

// ParsePDF extracts text from a PDF stream. Used for reference-document
// links found in spreadsheets.
func ParsePDF(r io.Reader) (string, error) {
	res, err := docconv.Convert(r, mimePDF, true)
	if err != nil {
		return "", fmt.Errorf("convert pdf: %w", err)
	}
	return Truncate(res.Body), nil
}
