package domain

// Rarity is one of four weighted card classes.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// Weight returns the synthesis weight of a rarity tier.
func (r Rarity) Weight() int {
	switch r {
	case RarityCommon:
		return 1
	case RarityUncommon:
		return 2
	case RarityRare:
		return 3
	case RarityLegendary:
		return 5
	default:
		return 0
	}
}

// CardTypeID names a card type in the catalogue.
type CardTypeID string

const (
	CardSkip           CardTypeID = "skip"
	CardShuffle        CardTypeID = "shuffle"
	CardCat            CardTypeID = "cat"
	CardAttack         CardTypeID = "attack"
	CardFavor          CardTypeID = "favor"
	CardNope           CardTypeID = "nope"
	CardSeeTheFuture   CardTypeID = "see_the_future"
	CardAlterTheFuture CardTypeID = "alter_the_future"
	CardBuryCard       CardTypeID = "bury_card"
	CardImplodingKit   CardTypeID = "imploding_kitten"
	CardShareTheFuture CardTypeID = "share_the_future"

	// Deck-only types: part of match decks, never produced by the mill.
	CardExplodingKit CardTypeID = "exploding_kitten"
	CardDefuse       CardTypeID = "defuse"
	CardSpeedUp      CardTypeID = "speed_up_explosion"
)

// CardType is a catalogue entry. Effect resolution is the referee's job;
// the engine only carries the descriptive fields.
type CardType struct {
	ID          CardTypeID `json:"id"`
	Name        string     `json:"name"`
	Rarity      Rarity     `json:"rarity"`
	Description string     `json:"description"`
	UsageCost   int64      `json:"usage_cost"`
}

// MaxCardLevel caps upgrades.
const MaxCardLevel = 3

// Card is an owned instance of a card type. Level only moves up.
type Card struct {
	ID        string     `json:"id"`
	TypeID    CardTypeID `json:"type_id"`
	Rarity    Rarity     `json:"rarity"`
	Level     int        `json:"level"`
	Owner     string     `json:"owner"`
	CreatedAt int64      `json:"created_at"`
}
