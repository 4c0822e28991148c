package search

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PageTitle returns the <title> of an html search page.
func PageTitle(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("error parsing html: %w", err)
	}
	return strings.TrimSpace(doc.Find("title").First().Text()), nil
}
