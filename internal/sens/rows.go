package sens

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// extractRows returns the text content of every body row of the news table,
// in document order and untrimmed.
func extractRows(tableHTML string) ([]string, error) {
	doc, err := html.Parse(strings.NewReader(tableHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var rows []string
	goquery.NewDocumentFromNode(doc).Find(newsRowsSelector).Each(func(_ int, s *goquery.Selection) {
		rows = append(rows, s.Text())
	})
	return rows, nil
}
