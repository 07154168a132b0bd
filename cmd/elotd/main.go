/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/mikeb26/marginelo/elo"
	"github.com/mikeb26/marginelo/internal"
	"github.com/mikeb26/marginelo/internal/httpcache"
	"github.com/mikeb26/marginelo/results"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":   handleHelp,
	"expect": handleExpect,
	"margin": handleMargin,
	"replay": handleReplay,
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(ctx, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, args []string) {
	usage()
}

func handleExpect(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("expect", flag.ExitOnError)
	r1 := fs.Float64("r1", elo.DefaultBaseRating, "Rating of player 1")
	r2 := fs.Float64("r2", elo.DefaultBaseRating, "Rating of player 2")
	home := fs.Int("home", 0, "Hosting player (1 or 2); 0 for neutral")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *home < 0 || *home > 2 {
		fmt.Fprintln(os.Stderr, "Please provide --home 0, 1 or 2.")
		fs.Usage()
		os.Exit(1)
	}

	fmt.Print(buildExpectOutput(*r1, *r2, *home))
}

func handleMargin(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("margin", flag.ExitOnError)
	diff := fs.Float64("diff", 0, "Absolute score difference")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *diff < 0 {
		fmt.Fprintln(os.Stderr, "Please provide a non-negative --diff.")
		fs.Usage()
		os.Exit(1)
	}

	fmt.Printf("margin adjustment for diff %v: %v\n", *diff,
		elo.MarginAdjustment(*diff))
}

func handleReplay(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	base := fs.Float64("base", elo.DefaultBaseRating, "Rating for new players")
	addMissing := fs.Bool("addmissing", true,
		"Register unknown players on first appearance")
	playersFile := fs.String("players", "", "CSV of name,rating to seed the registry")
	bucket := fs.String("bucket", internal.WebCacheBucket,
		"S3 bucket used to cache fetched results")
	noCache := fs.Bool("nocache", false, "Fetch remote results uncached")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Please provide at least one results source.")
		fs.Usage()
		os.Exit(1)
	}

	var client *http.Client
	if !*noCache && hasURL(fs.Args()) {
		// finished results rarely change, a day is plenty
		client = httpcache.NewCachedHttpClient(ctx, *bucket, 24*time.Hour)
	}

	matches, err := results.NewLoader(client).Load(ctx, fs.Args()...)
	if err != nil {
		log.Fatalf("Error loading results: %v", err)
	}

	reg := elo.NewRegistry(*base)
	if *playersFile != "" {
		if err := seedPlayers(reg, *playersFile); err != nil {
			log.Fatalf("Error seeding players from %v: %v", *playersFile, err)
		}
	}

	if err := results.Replay(reg, matches, *addMissing); err != nil {
		log.Fatalf("Error replaying results: %v", err)
	}

	fmt.Printf("Replayed %d matches\n\n", len(matches))
	fmt.Print(buildRatingsOutput(reg.GetRatingList()))
}
