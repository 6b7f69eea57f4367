package convert

import (
	"bytes"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor pulls the plain text out of PDF documents.
type PDFExtractor struct{}

func (PDFExtractor) Extract(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	text, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(text); err != nil {
		return "", err
	}
	return buf.String(), nil
}
