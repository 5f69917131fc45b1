package engine

import (
	"testing"

	"citadel_backend/internal/domain"
	"citadel_backend/internal/random"
)

func TestRarityForRoll(t *testing.T) {
	cases := []struct {
		roll int
		want domain.Rarity
	}{
		{0, domain.RarityCommon},
		{69, domain.RarityCommon},
		{70, domain.RarityUncommon},
		{89, domain.RarityUncommon},
		{90, domain.RarityRare},
		{98, domain.RarityRare},
		{99, domain.RarityLegendary},
	}
	for _, tc := range cases {
		if got := rarityForRoll(tc.roll); got != tc.want {
			t.Fatalf("rarityForRoll(%d) = %s; want %s", tc.roll, got, tc.want)
		}
	}
}

func TestDrawDistribution(t *testing.T) {
	// 70/20/9/1 over the whole roll space, checked exhaustively.
	counts := map[domain.Rarity]int{}
	for roll := 0; roll < 100; roll++ {
		counts[rarityForRoll(roll)]++
	}
	want := map[domain.Rarity]int{
		domain.RarityCommon:    70,
		domain.RarityUncommon:  20,
		domain.RarityRare:      9,
		domain.RarityLegendary: 1,
	}
	for r, n := range want {
		if counts[r] != n {
			t.Fatalf("rarity %s: %d rolls; want %d", r, counts[r], n)
		}
	}
}

func TestDrawDistributionStatistical(t *testing.T) {
	// A crypto source over many draws should land near 70/20/9/1.
	src := random.Crypto()
	const n = 20000
	counts := map[domain.Rarity]int{}
	for i := 0; i < n; i++ {
		counts[rarityForRoll(src.Intn(100))]++
	}
	common := float64(counts[domain.RarityCommon]) / n
	if common < 0.66 || common > 0.74 {
		t.Fatalf("common share %.3f outside [0.66, 0.74]", common)
	}
	legendary := float64(counts[domain.RarityLegendary]) / n
	if legendary > 0.03 {
		t.Fatalf("legendary share %.3f too high", legendary)
	}
}

func TestLevelBand(t *testing.T) {
	cases := []struct{ total, band int }{
		{0, 0}, {2, 0}, {3, 1}, {4, 1}, {5, 2}, {6, 2}, {7, 3}, {8, 3}, {9, 4}, {15, 4},
	}
	for _, tc := range cases {
		if got := levelBand(tc.total); got != tc.band {
			t.Fatalf("levelBand(%d) = %d; want %d", tc.total, got, tc.band)
		}
	}
}

func TestSynthesisLevel(t *testing.T) {
	cases := []struct{ total, roll, want int }{
		{0, 0, 0},
		{0, 69, 0},
		{0, 70, 1},
		{0, 99, 3},
		{9, 0, 0},
		{9, 5, 1},
		{9, 30, 2},
		{9, 60, 3},
	}
	for _, tc := range cases {
		if got := synthesisLevel(tc.total, tc.roll); got != tc.want {
			t.Fatalf("synthesisLevel(%d, %d) = %d; want %d", tc.total, tc.roll, got, tc.want)
		}
	}
}

func TestRarityBand(t *testing.T) {
	cases := []struct{ weight, band int }{
		{3, 0}, {5, 0}, {6, 1}, {8, 1}, {9, 2}, {11, 2}, {12, 3}, {13, 3}, {14, 4}, {15, 4},
	}
	for _, tc := range cases {
		if got := rarityBand(tc.weight); got != tc.band {
			t.Fatalf("rarityBand(%d) = %d; want %d", tc.weight, got, tc.band)
		}
	}
}

func TestSynthesisRarity(t *testing.T) {
	// Three commons (weight 3) with a max roll still reach legendary.
	if got := synthesisRarity(3, 99); got != domain.RarityLegendary {
		t.Fatalf("synthesisRarity(3, 99) = %s; want legendary", got)
	}
	// Three legendaries (weight 15) with a low roll can still drop common.
	if got := synthesisRarity(15, 4); got != domain.RarityCommon {
		t.Fatalf("synthesisRarity(15, 4) = %s; want common", got)
	}
	if got := synthesisRarity(15, 80); got != domain.RarityLegendary {
		t.Fatalf("synthesisRarity(15, 80) = %s; want legendary", got)
	}
}

func TestUpgradeSucceeds(t *testing.T) {
	cases := []struct {
		level, roll int
		want        bool
	}{
		{0, 0, true},
		{0, 80, true},
		{0, 81, false},
		{1, 50, false},
		{1, 51, true},
		{2, 80, false},
		{2, 81, true},
		{3, 99, false},
	}
	for _, tc := range cases {
		if got := upgradeSucceeds(tc.level, tc.roll); got != tc.want {
			t.Fatalf("upgradeSucceeds(%d, %d) = %v; want %v", tc.level, tc.roll, got, tc.want)
		}
	}
}

func TestTierCandidatesCoverCatalogue(t *testing.T) {
	for tier, candidates := range tierCandidates {
		if len(candidates) == 0 {
			t.Fatalf("tier %s has no candidates", tier)
		}
		for _, id := range candidates {
			ct, ok := Catalogue[id]
			if !ok {
				t.Fatalf("candidate %s missing from catalogue", id)
			}
			if ct.Rarity != tier {
				t.Fatalf("candidate %s has rarity %s in tier %s", id, ct.Rarity, tier)
			}
		}
	}
}
