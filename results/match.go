/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package results

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mikeb26/marginelo/elo"
	"github.com/mikeb26/marginelo/internal"
)

// Match is one played match as read from a results source.
type Match struct {
	Date     time.Time
	Player1  string
	Player2  string
	Location string // hosting player, or "" for a neutral venue
	Score    []float64
}

func (m Match) String() string {
	return fmt.Sprintf("%v %v-%v %v", m.Player1, fmtScore(m.Score, 0),
		fmtScore(m.Score, 1), m.Player2)
}

func fmtScore(score []float64, idx int) string {
	if idx >= len(score) {
		return "?"
	}
	return strconv.FormatFloat(score[idx], 'f', -1, 64)
}

// SortByDate orders matches chronologically. Matches on the same date keep
// their source order.
func SortByDate(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Date.Before(matches[j].Date)
	})
}

// Replay records matches into reg in order. When addMissing is set, players
// not yet registered are added at the registry's base rating; otherwise an
// unknown player aborts the replay. Matches before a failing one remain
// applied; a failing match never leaves newly added players behind.
func Replay(reg *elo.Registry, matches []Match, addMissing bool) error {
	for i, m := range matches {
		if _, _, err := elo.Outcome(m.Score); err != nil {
			return fmt.Errorf("match %d (%v): %w", i+1, m, err)
		}
		if m.Player1 == m.Player2 {
			return fmt.Errorf("match %d (%v): %q cannot play itself: %w",
				i+1, m, m.Player1, elo.ErrInvalidInput)
		}
		if addMissing {
			for _, name := range []string{m.Player1, m.Player2} {
				if reg.Contains(name) {
					continue
				}
				if err := reg.AddPlayer(name); err != nil {
					return fmt.Errorf("match %d (%v): %w", i+1, m, err)
				}
			}
		}
		if err := reg.RecordMatch(m.Player1, m.Player2, m.Location,
			m.Score); err != nil {
			return fmt.Errorf("match %d (%v): %w", i+1, m, err)
		}
	}

	return nil
}

// parseRow converts date,player1,player2,score1,score2[,location] into a
// Match.
func parseRow(fields []string) (Match, error) {
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) < 5 {
		return Match{}, fmt.Errorf("expected at least 5 fields, got %d",
			len(fields))
	}

	date, err := internal.ParseDateOrZero(fields[0])
	if err != nil {
		return Match{}, fmt.Errorf("parsing date %q: %w", fields[0], err)
	}
	m := Match{
		Date:    date,
		Player1: fields[1],
		Player2: fields[2],
	}
	if m.Player1 == "" || m.Player2 == "" {
		return Match{}, fmt.Errorf("missing player name")
	}

	for _, f := range fields[3:5] {
		s, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Match{}, fmt.Errorf("parsing score %q: %w", f, err)
		}
		if math.IsInf(s, 0) || math.IsNaN(s) {
			return Match{}, fmt.Errorf("score %q is not finite", f)
		}
		m.Score = append(m.Score, s)
	}

	if len(fields) > 5 {
		m.Location = fields[5]
		if m.Location != "" && m.Location != m.Player1 &&
			m.Location != m.Player2 {
			return Match{}, fmt.Errorf("location %q is neither %q nor %q",
				m.Location, m.Player1, m.Player2)
		}
	}

	return m, nil
}

// isHeader reports whether fields look like a column header row.
func isHeader(fields []string) bool {
	return len(fields) > 0 &&
		strings.EqualFold(strings.TrimSpace(fields[0]), "date")
}
