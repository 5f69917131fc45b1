package engine

import "citadel_backend/internal/domain"

// Catalogue is the fixed card-type inventory. Tier candidate sets are what
// the second mill die selects from; deck-only types never leave the mill.
var Catalogue = map[domain.CardTypeID]domain.CardType{
	domain.CardSkip:           {ID: domain.CardSkip, Name: "Skip", Rarity: domain.RarityCommon, Description: "End your turn without drawing.", UsageCost: 1},
	domain.CardShuffle:        {ID: domain.CardShuffle, Name: "Shuffle", Rarity: domain.RarityCommon, Description: "Shuffle the draw pile.", UsageCost: 1},
	domain.CardCat:            {ID: domain.CardCat, Name: "Cat", Rarity: domain.RarityCommon, Description: "Pair with another cat to steal a card.", UsageCost: 1},
	domain.CardAttack:         {ID: domain.CardAttack, Name: "Attack", Rarity: domain.RarityUncommon, Description: "End your turn and force extra turns.", UsageCost: 2},
	domain.CardFavor:          {ID: domain.CardFavor, Name: "Favor", Rarity: domain.RarityUncommon, Description: "Another player gives you a card.", UsageCost: 2},
	domain.CardNope:           {ID: domain.CardNope, Name: "Nope", Rarity: domain.RarityUncommon, Description: "Cancel the last action.", UsageCost: 2},
	domain.CardSeeTheFuture:   {ID: domain.CardSeeTheFuture, Name: "See the Future", Rarity: domain.RarityRare, Description: "Peek at the top of the draw pile.", UsageCost: 3},
	domain.CardAlterTheFuture: {ID: domain.CardAlterTheFuture, Name: "Alter the Future", Rarity: domain.RarityRare, Description: "Rearrange the top of the draw pile.", UsageCost: 3},
	domain.CardBuryCard:       {ID: domain.CardBuryCard, Name: "Bury", Rarity: domain.RarityRare, Description: "Bury a drawn card back into the pile.", UsageCost: 3},
	domain.CardImplodingKit:   {ID: domain.CardImplodingKit, Name: "Imploding Kitten", Rarity: domain.RarityLegendary, Description: "Face-up kitten that cannot be defused.", UsageCost: 5},
	domain.CardShareTheFuture: {ID: domain.CardShareTheFuture, Name: "Share the Future", Rarity: domain.RarityLegendary, Description: "Show the future to everyone.", UsageCost: 5},

	domain.CardExplodingKit: {ID: domain.CardExplodingKit, Name: "Exploding Kitten", Rarity: domain.RarityCommon, Description: "Explodes unless defused.", UsageCost: 0},
	domain.CardDefuse:       {ID: domain.CardDefuse, Name: "Defuse", Rarity: domain.RarityCommon, Description: "Defuse an exploding kitten.", UsageCost: 0},
	domain.CardSpeedUp:      {ID: domain.CardSpeedUp, Name: "Speed Up", Rarity: domain.RarityCommon, Description: "Move the explosion closer.", UsageCost: 0},
}

// tierCandidates maps each rarity to its drawable card types. The order is
// fixed: the second die indexes into these slices.
var tierCandidates = map[domain.Rarity][]domain.CardTypeID{
	domain.RarityCommon:    {domain.CardSkip, domain.CardShuffle, domain.CardCat},
	domain.RarityUncommon:  {domain.CardAttack, domain.CardFavor, domain.CardNope},
	domain.RarityRare:      {domain.CardSeeTheFuture, domain.CardAlterTheFuture, domain.CardBuryCard},
	domain.RarityLegendary: {domain.CardImplodingKit, domain.CardShareTheFuture},
}

// DefaultDeckInventory is the card-type inventory a lobby match starts
// with, minus the lobby's disabled cards.
var DefaultDeckInventory = []domain.CardTypeID{
	domain.CardExplodingKit, domain.CardDefuse, domain.CardDefuse,
	domain.CardSkip, domain.CardSkip, domain.CardShuffle, domain.CardShuffle,
	domain.CardCat, domain.CardCat, domain.CardCat,
	domain.CardAttack, domain.CardAttack, domain.CardFavor, domain.CardNope,
	domain.CardSeeTheFuture, domain.CardAlterTheFuture, domain.CardBuryCard,
	domain.CardImplodingKit, domain.CardSpeedUp,
}
