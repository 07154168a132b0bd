/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mikeb26/marginelo/elo"
)

func TestBuildRatingsOutput(t *testing.T) {
	out := buildRatingsOutput([]elo.PlayerRating{
		{Name: "Harvard", Rating: 1063},
		{Name: "Yale", Rating: 937.25},
	})
	want := "" +
		"#   Name     Rating\n" +
		"1.  Harvard  1063.0\n" +
		"2.  Yale      937.2\n"
	if out != want {
		t.Fatalf("buildRatingsOutput:\n%q\nwant\n%q", out, want)
	}

	if out := buildRatingsOutput(nil); out != "No rated players\n" {
		t.Errorf("empty output = %q", out)
	}
}

func TestBuildExpectOutput(t *testing.T) {
	out := buildExpectOutput(1000, 1000, 0)
	if !strings.Contains(out, "player 1 (1000): 0.5000") ||
		!strings.Contains(out, "player 2 (1000): 0.5000") {
		t.Errorf("neutral output = %q", out)
	}

	// hosting is worth the same as a 100 point edge: 1/(1+10^-0.25)
	out = buildExpectOutput(1000, 1000, 1)
	if !strings.Contains(out, "player 1 (1000): 0.6401") ||
		!strings.Contains(out, "player 2 (1000): 0.3599") {
		t.Errorf("home output = %q", out)
	}
}

func TestReadPlayers(t *testing.T) {
	reg := elo.NewRegistry(1200)
	in := "# seeded\nAlice,1500\nBob\nCarol, 1333.5\n\n"
	if err := readPlayers(reg, strings.NewReader(in)); err != nil {
		t.Fatalf("readPlayers: %v", err)
	}

	want := []elo.PlayerRating{
		{Name: "Alice", Rating: 1500},
		{Name: "Bob", Rating: 1200},
		{Name: "Carol", Rating: 1333.5},
	}
	if diff := cmp.Diff(want, reg.GetRatingList()); diff != "" {
		t.Fatalf("registry mismatch (-want +got):\n%s", diff)
	}

	err := readPlayers(reg, strings.NewReader("Alice,1400\n"))
	if !errors.Is(err, elo.ErrDuplicatePlayer) {
		t.Errorf("err = %v; want ErrDuplicatePlayer", err)
	}

	err = readPlayers(reg, strings.NewReader("Dave,-50\n"))
	if !errors.Is(err, elo.ErrInvalidInput) {
		t.Errorf("negative seed err = %v; want ErrInvalidInput", err)
	}
}

func TestReadPlayers_Header(t *testing.T) {
	reg := elo.NewRegistry(1000)
	in := "name,rating\nAlice,1500\nBob,\n"
	if err := readPlayers(reg, strings.NewReader(in)); err != nil {
		t.Fatalf("readPlayers: %v", err)
	}

	want := []elo.PlayerRating{
		{Name: "Alice", Rating: 1500},
		{Name: "Bob", Rating: 1000},
	}
	if diff := cmp.Diff(want, reg.GetRatingList()); diff != "" {
		t.Fatalf("registry mismatch (-want +got):\n%s", diff)
	}
}
