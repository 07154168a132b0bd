/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package results

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

const sampleCSV = `date,player1,player2,score1,score2,location
# opening week
2024-03-02,Harvard,Yale,3,1,Harvard
2024-03-01, Brown , Yale ,2,2
2024-03-09,Brown,Harvard,0,4,
`

func TestParseCSV(t *testing.T) {
	matches, err := ParseCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}

	want := []Match{
		{
			Date:     time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
			Player1:  "Harvard",
			Player2:  "Yale",
			Location: "Harvard",
			Score:    []float64{3, 1},
		},
		{
			Date:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Player1: "Brown",
			Player2: "Yale",
			Score:   []float64{2, 2},
		},
		{
			Date:    time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
			Player1: "Brown",
			Player2: "Harvard",
			Score:   []float64{0, 4},
		},
	}
	if diff := cmp.Diff(want, matches); diff != "" {
		t.Fatalf("ParseCSV mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCSV_Errors(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		wantErr string
	}{
		{name: "short row", in: "2024-03-01,A,B,1\n", wantErr: "at least 5 fields"},
		{name: "bad score", in: "2024-03-01,A,B,x,1\n", wantErr: "parsing score"},
		{name: "infinite score", in: "2024-03-01,A,B,Inf,1\n", wantErr: "not finite"},
		{name: "bad date", in: "2024-13-45,A,B,1,0\n", wantErr: "parsing date"},
		{name: "missing name", in: "2024-03-01,,B,1,0\n", wantErr: "missing player"},
		{name: "foreign location", in: "2024-03-01,A,B,1,0,C\n", wantErr: "location"},
		{name: "line number", in: "2024-03-01,A,B,1,0\n2024-03-02,A,B,1\n", wantErr: "csv line 2"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(c.in))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), c.wantErr) {
				t.Errorf("error %q does not mention %q", err, c.wantErr)
			}
		})
	}
}

func TestParseCSV_UndatedRows(t *testing.T) {
	matches, err := ParseCSV(strings.NewReader(",A,B,1,0\n-,B,A,2,2\n"))
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches; want 2", len(matches))
	}
	for _, m := range matches {
		if !m.Date.IsZero() {
			t.Errorf("expected zero date, got %v", m.Date)
		}
	}
}
