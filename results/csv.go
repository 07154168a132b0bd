/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package results

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ParseCSV reads matches from CSV rows of the form
//
//	date,player1,player2,score1,score2[,location]
//
// An optional header row starting with "date" and lines starting with '#' are
// skipped.
func ParseCSV(r io.Reader) ([]Match, error) {
	rdr := csv.NewReader(r)
	rdr.Comment = '#'
	rdr.FieldsPerRecord = -1
	rdr.TrimLeadingSpace = true

	var matches []Match
	for {
		fields, err := rdr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		if isHeader(fields) {
			continue
		}

		m, err := parseRow(fields)
		if err != nil {
			line, _ := rdr.FieldPos(0)
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
		matches = append(matches, m)
	}

	return matches, nil
}
