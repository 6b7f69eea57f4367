package convert

import (
	"bytes"
	"os"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
)

// HTMLExtractor converts HTML documents to Markdown.
type HTMLExtractor struct{}

// Extract reads the file and converts its body to Markdown. When the
// document carries a <title>, it becomes a top-level heading, since the
// body conversion does not include head content.
func (HTMLExtractor) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(string(data))
	if err != nil {
		return "", err
	}

	if doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data)); err == nil {
		if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
			markdown = "# " + title + "\n\n" + markdown
		}
	}
	return markdown, nil
}
