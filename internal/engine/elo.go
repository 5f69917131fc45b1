package engine

import "math"

const eloK = 32

// eloDelta returns the rating a single loser concedes to the winner,
// scaled down by the number of opponents so multiplayer matches move
// ratings about as much as a head-to-head game.
func eloDelta(winnerRating, loserRating, players int) int {
	if players < 2 {
		players = 2
	}
	expected := 1.0 / (1.0 + math.Pow(10, float64(loserRating-winnerRating)/400.0))
	d := eloK * (1.0 - expected) / float64(players-1)
	return int(math.Round(d))
}
