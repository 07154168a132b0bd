/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package elo

import "errors"

var (
	// ErrPlayerNotFound is returned when an operation requires a player that
	// is not registered.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrInvalidInput is returned when a match cannot be scored, e.g. the
	// score pair is missing or not comparable.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicatePlayer is returned when adding a player whose name is
	// already registered.
	ErrDuplicatePlayer = errors.New("duplicate player")
)
