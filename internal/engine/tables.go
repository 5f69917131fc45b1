package engine

import "citadel_backend/internal/domain"

// Probability tables for the mill. Pure functions of (inputs, rolls) so
// balance tuning never touches transactional code. All rolls are uniform
// in [0,100). The numbers are authoritative game-balance constants and
// must be reproduced exactly.

// drawThresholds are the cumulative rarity bounds for a single draw:
// common 70%, uncommon 20%, rare 9%, legendary 1%.
var drawThresholds = [4]int{70, 90, 99, 100}

var rarityOrder = [4]domain.Rarity{
	domain.RarityCommon,
	domain.RarityUncommon,
	domain.RarityRare,
	domain.RarityLegendary,
}

// rarityForRoll resolves one draw roll against the cumulative thresholds.
func rarityForRoll(roll int) domain.Rarity {
	for i, t := range drawThresholds {
		if roll < t {
			return rarityOrder[i]
		}
	}
	return domain.RarityLegendary
}

// levelOutputTable keys cumulative output-level odds by total input level.
// Bands: <=2, 3-4, 5-6, 7-8, >=9. Columns are cumulative bounds for output
// levels 0..3.
var levelOutputTable = [5][4]int{
	{70, 95, 99, 100},
	{40, 80, 95, 100},
	{20, 60, 90, 100},
	{10, 40, 80, 100},
	{5, 25, 60, 100},
}

func levelBand(totalLevel int) int {
	switch {
	case totalLevel <= 2:
		return 0
	case totalLevel <= 4:
		return 1
	case totalLevel <= 6:
		return 2
	case totalLevel <= 8:
		return 3
	default:
		return 4
	}
}

// synthesisLevel resolves the output level for a combine.
func synthesisLevel(totalLevel, roll int) int {
	row := levelOutputTable[levelBand(totalLevel)]
	for lvl, bound := range row {
		if roll < bound {
			return lvl
		}
	}
	return domain.MaxCardLevel
}

// rarityOutputTable keys cumulative output-rarity odds by total input
// rarity weight (common=1, uncommon=2, rare=3, legendary=5; range 3-15).
// Bands: <=5, 6-8, 9-11, 12-13, >=14.
var rarityOutputTable = [5][4]int{
	{70, 90, 99, 100},
	{50, 85, 97, 100},
	{30, 70, 95, 100},
	{15, 55, 90, 100},
	{5, 40, 80, 100},
}

func rarityBand(totalWeight int) int {
	switch {
	case totalWeight <= 5:
		return 0
	case totalWeight <= 8:
		return 1
	case totalWeight <= 11:
		return 2
	case totalWeight <= 13:
		return 3
	default:
		return 4
	}
}

// synthesisRarity resolves the output rarity for a combine.
func synthesisRarity(totalWeight, roll int) domain.Rarity {
	row := rarityOutputTable[rarityBand(totalWeight)]
	for i, bound := range row {
		if roll < bound {
			return rarityOrder[i]
		}
	}
	return domain.RarityLegendary
}

// upgradeSucceeds resolves an upgrade roll for the card's current level.
// The asymmetry (<=80 at level 0, >50 and >80 above) mirrors the original
// odds of roughly 81%, 49% and 19%.
func upgradeSucceeds(level, roll int) bool {
	switch level {
	case 0:
		return roll <= 80
	case 1:
		return roll > 50
	case 2:
		return roll > 80
	default:
		return false
	}
}
