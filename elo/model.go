/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package elo

import (
	"fmt"
	"math"
)

// Elo rating model extended for margin of victory and home advantage,
// following the methodology described at https://www.eloratings.net
//
// Expectancy uses the usual 400 point logistic spread. The K-factor is
// scaled by a multiplier that grows with the goal (score) difference, and the
// hosting side gets a fixed bonus when computing expectancies.

const (
	// HomeAdvantage is the rating bonus applied to the hosting player when
	// computing win expectancy.
	HomeAdvantage = 100.0

	// KPerPlayer is multiplied by the registry population to produce the
	// K-factor for a match.
	KPerPlayer = 42.0
)

// WinExpectancy returns the probability that a player rated myRating beats
// an opponent rated oppRating after homeAdj is added to myRating.
func WinExpectancy(myRating float64, oppRating float64, homeAdj float64) float64 {
	// 1/(10^((opp-(my+home))/400)+1)
	exp := math.Pow(10, (oppRating-(myRating+homeAdj))/400.0)
	return 1.0 / (1.0 + exp)
}

// HomeAdjustment returns the expectancy adjustment for player me facing
// opponent opp at location. An empty location is neutral.
func HomeAdjustment(location string, me string, opp string) float64 {
	if location == "" {
		return 0
	}
	if location == me {
		return HomeAdvantage
	}
	if location == opp {
		return -HomeAdvantage
	}
	return 0
}

// MarginAdjustment scales K by the absolute score difference of a match.
func MarginAdjustment(diff float64) float64 {
	switch {
	case diff == 2:
		return 1.5
	case diff == 3:
		return 1.75
	case diff > 3:
		return 1.75 + (diff-3)/8.0
	default:
		return 1.0
	}
}

// Outcome converts a score pair into match results for each side: 1 for a
// win, 0.5 for a draw and 0 for a loss.
func Outcome(score []float64) (float64, float64, error) {
	if len(score) != 2 {
		return 0, 0, fmt.Errorf("score must have 2 entries, got %v: %w",
			len(score), ErrInvalidInput)
	}
	s1, s2 := score[0], score[1]
	if math.IsNaN(s1) || math.IsNaN(s2) {
		return 0, 0, fmt.Errorf("score %v is not comparable: %w", score,
			ErrInvalidInput)
	}
	if math.IsInf(s1, 0) || math.IsInf(s2, 0) {
		return 0, 0, fmt.Errorf("score %v is not finite: %w", score,
			ErrInvalidInput)
	}

	switch {
	case s1 == s2:
		return 0.5, 0.5, nil
	case s1 > s2:
		return 1.0, 0.0, nil
	default:
		return 0.0, 1.0, nil
	}
}

// UpdatedRatings computes post-match ratings. When the update would push a
// side below zero, only that side is floored at 0; the other side is set to
// the pre-match rating difference, which is itself negative when the floored
// side was the higher rated one.
func UpdatedRatings(rating1, rating2, expected1, expected2, k, adj,
	result1, result2 float64) (float64, float64) {

	new1 := rating1 + k*adj*(result1-expected1)
	new2 := rating2 + k*adj*(result2-expected2)

	if new1 < 0 {
		new1 = 0
		new2 = rating2 - rating1
	} else if new2 < 0 {
		new2 = 0
		new1 = rating1 - rating2
	}

	return new1, new2
}

// KFactor returns the K-factor for a registry of the given population.
func KFactor(population int) float64 {
	return float64(population) * KPerPlayer
}
