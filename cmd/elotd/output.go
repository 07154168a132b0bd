/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mikeb26/marginelo/elo"
	"github.com/mikeb26/marginelo/results"
)

// buildRatingsOutput formats the rating list as an aligned table in
// registry order.
func buildRatingsOutput(ratings []elo.PlayerRating) string {
	if len(ratings) == 0 {
		return "No rated players\n"
	}

	type row struct{ num, player, rating string }
	rows := make([]row, 0, len(ratings))
	for idx, pr := range ratings {
		rows = append(rows, row{
			num:    fmt.Sprintf("%v.", idx+1),
			player: pr.Name,
			rating: fmt.Sprintf("%.1f", pr.Rating),
		})
	}

	maxP, maxN, maxR := len("#"), len("Name"), len("Rating")
	for _, r := range rows {
		if l := len(r.num); l > maxP {
			maxP = l
		}
		if l := len(r.player); l > maxN {
			maxN = l
		}
		if l := len(r.rating); l > maxR {
			maxR = l
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-*s  %-*s  %*s\n", maxP, "#", maxN, "Name",
		maxR, "Rating"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %*s\n", maxP, r.num, maxN,
			r.player, maxR, r.rating))
	}

	return sb.String()
}

func buildExpectOutput(r1 float64, r2 float64, home int) string {
	var adj float64
	switch home {
	case 1:
		adj = elo.HomeAdvantage
	case 2:
		adj = -elo.HomeAdvantage
	}

	e1 := elo.WinExpectancy(r1, r2, adj)
	e2 := elo.WinExpectancy(r2, r1, -adj)

	return fmt.Sprintf("player 1 (%v): %.4f\nplayer 2 (%v): %.4f\n", r1, e1,
		r2, e2)
}

func hasURL(sources []string) bool {
	for _, src := range sources {
		if results.IsURL(src) {
			return true
		}
	}
	return false
}

func seedPlayers(reg *elo.Registry, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return readPlayers(reg, f)
}

// readPlayers registers name[,rating] rows; a missing rating means the
// registry's base rating. A leading "name" header row is skipped.
func readPlayers(reg *elo.Registry, r io.Reader) error {
	rdr := csv.NewReader(r)
	rdr.Comment = '#'
	rdr.FieldsPerRecord = -1
	rdr.TrimLeadingSpace = true

	first := true
	for {
		fields, err := rdr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		name := strings.TrimSpace(fields[0])
		if name == "" {
			continue
		}
		if first {
			first = false
			if strings.EqualFold(name, "name") {
				continue
			}
		}
		if len(fields) < 2 || strings.TrimSpace(fields[1]) == "" {
			err = reg.AddPlayer(name)
		} else {
			rating, perr := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
			if perr != nil {
				return fmt.Errorf("rating for %q: %w", name, perr)
			}
			err = reg.AddPlayerWithRating(name, rating)
		}
		if err != nil {
			return err
		}
	}
}
