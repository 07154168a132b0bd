/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package results

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseHTML extracts matches from the first <table class="results"> in an
// HTML page. Each data row carries the same columns as the CSV format;
// rows with <th> cells only are treated as headers.
func ParseHTML(r io.Reader) ([]Match, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	table := doc.Find("table.results").First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("results table not found")
	}

	var matches []Match
	var rowErr error
	table.Find("tr").EachWithBreak(func(idx int, row *goquery.Selection) bool {
		cells := row.Find("td")
		if cells.Length() == 0 {
			return true
		}

		fields := cells.Map(func(_ int, s *goquery.Selection) string {
			return strings.TrimSpace(s.Text())
		})
		if isHeader(fields) {
			return true
		}

		m, err := parseRow(fields)
		if err != nil {
			rowErr = fmt.Errorf("results row %d: %w", idx+1, err)
			return false
		}
		matches = append(matches, m)
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return matches, nil
}
