/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package elo

import (
	"fmt"
	"math"
)

// DefaultBaseRating is the rating given to new players when a Registry is
// created without an explicit base rating.
const DefaultBaseRating = 1000.0

// Player is a rated competitor.
type Player struct {
	Name   string
	Rating float64
}

// PlayerRating is one row of a rating list.
type PlayerRating struct {
	Name   string
	Rating float64
}

// Registry owns a set of uniquely named players and applies match results to
// their ratings. Players are kept in insertion order.
//
// A Registry is not safe for concurrent use; callers sharing one across
// goroutines must serialize access themselves.
type Registry struct {
	baseRating float64
	players    []*Player
}

// NewRegistry returns an empty Registry whose new players start at
// baseRating.
func NewRegistry(baseRating float64) *Registry {
	return &Registry{baseRating: baseRating}
}

// BaseRating returns the rating assigned to players added without one.
func (reg *Registry) BaseRating() float64 {
	return reg.baseRating
}

// Len returns the number of registered players.
func (reg *Registry) Len() int {
	return len(reg.players)
}

// AddPlayer registers name at the base rating.
func (reg *Registry) AddPlayer(name string) error {
	return reg.AddPlayerWithRating(name, reg.baseRating)
}

// AddPlayerWithRating registers name at the given rating. Names must be
// unique within a Registry and ratings finite and non-negative.
func (reg *Registry) AddPlayerWithRating(name string, rating float64) error {
	if reg.find(name) >= 0 {
		return fmt.Errorf("adding %q: %w", name, ErrDuplicatePlayer)
	}
	if math.IsNaN(rating) || math.IsInf(rating, 0) || rating < 0 {
		return fmt.Errorf("adding %q with rating %v: %w", name, rating,
			ErrInvalidInput)
	}

	reg.players = append(reg.players, &Player{Name: name, Rating: rating})
	return nil
}

// RemovePlayer unregisters name.
func (reg *Registry) RemovePlayer(name string) error {
	idx := reg.find(name)
	if idx < 0 {
		return fmt.Errorf("removing %q: %w", name, ErrPlayerNotFound)
	}

	reg.players = append(reg.players[:idx], reg.players[idx+1:]...)
	return nil
}

// GetPlayer returns a copy of the named player and whether it was found.
func (reg *Registry) GetPlayer(name string) (Player, bool) {
	idx := reg.find(name)
	if idx < 0 {
		return Player{}, false
	}
	return *reg.players[idx], true
}

// Contains reports whether name is registered.
func (reg *Registry) Contains(name string) bool {
	return reg.find(name) >= 0
}

// GetPlayerRating returns the current rating of name.
func (reg *Registry) GetPlayerRating(name string) (float64, error) {
	idx := reg.find(name)
	if idx < 0 {
		return 0, fmt.Errorf("rating for %q: %w", name, ErrPlayerNotFound)
	}
	return reg.players[idx].Rating, nil
}

// GetRatingList returns a snapshot of every player's rating in insertion
// order.
func (reg *Registry) GetRatingList() []PlayerRating {
	ret := make([]PlayerRating, 0, len(reg.players))
	for _, p := range reg.players {
		ret = append(ret, PlayerRating{Name: p.Name, Rating: p.Rating})
	}
	return ret
}

// RecordMatch applies the result of a match between name1 and name2.
// location names the hosting player, or is empty for a neutral venue.
// score holds name1's and name2's scores in that order.
//
// Either both ratings are updated or, on error, neither is.
func (reg *Registry) RecordMatch(name1 string, name2 string, location string,
	score []float64) error {

	p1, p2, err := reg.matchPlayers(name1, name2)
	if err != nil {
		return err
	}

	// K depends on the population at the time of the match
	k := KFactor(len(reg.players))

	expected1 := WinExpectancy(p1.Rating, p2.Rating,
		HomeAdjustment(location, p1.Name, p2.Name))
	expected2 := WinExpectancy(p2.Rating, p1.Rating,
		HomeAdjustment(location, p2.Name, p1.Name))

	result1, result2, err := Outcome(score)
	if err != nil {
		return fmt.Errorf("recording %q vs %q: %w", name1, name2, err)
	}

	adj := MarginAdjustment(math.Abs(score[0] - score[1]))

	p1.Rating, p2.Rating = UpdatedRatings(p1.Rating, p2.Rating, expected1,
		expected2, k, adj, result1, result2)

	return nil
}

func (reg *Registry) matchPlayers(name1 string,
	name2 string) (*Player, *Player, error) {

	idx1 := reg.find(name1)
	if idx1 < 0 {
		return nil, nil, fmt.Errorf("recording match: %q: %w", name1,
			ErrPlayerNotFound)
	}
	idx2 := reg.find(name2)
	if idx2 < 0 {
		return nil, nil, fmt.Errorf("recording match: %q: %w", name2,
			ErrPlayerNotFound)
	}
	if idx1 == idx2 {
		return nil, nil, fmt.Errorf("recording match: %q cannot play itself: %w",
			name1, ErrInvalidInput)
	}

	return reg.players[idx1], reg.players[idx2], nil
}

// find returns the index of name, or -1.
func (reg *Registry) find(name string) int {
	for i, p := range reg.players {
		if p.Name == name {
			return i
		}
	}
	return -1
}
