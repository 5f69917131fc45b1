package engine

import (
	"citadel_backend/internal/domain"
	"citadel_backend/internal/events"

	"github.com/google/uuid"
)

// The mill is the probabilistic card factory: draw, 3-into-1 synthesis and
// level upgrades. Every outcome is a pure function of the injected rolls;
// the transactional part only moves funds and card ownership.

func (e *Engine) mintCard(typeID domain.CardTypeID, level int, owner string) *domain.Card {
	return &domain.Card{
		ID:        uuid.NewString(),
		TypeID:    typeID,
		Rarity:    Catalogue[typeID].Rarity,
		Level:     level,
		Owner:     owner,
		CreatedAt: e.clock.NowMillis(),
	}
}

// pickFromTier selects a concrete card type within the rarity tier with a
// second uniform die over the tier's fixed candidate set.
func (e *Engine) pickFromTier(tier domain.Rarity) domain.CardTypeID {
	candidates := tierCandidates[tier]
	return candidates[e.rand.Intn(len(candidates))]
}

// Draw sells one level-0 card at the fixed price. The payment must match
// the price exactly and is deposited into the treasury.
func (e *Engine) Draw(identityID string, payment int64) (*domain.Card, error) {
	if payment != domain.DrawPrice {
		return nil, domain.ErrIncorrectPaymentAmount
	}
	if err := e.payCurrency(identityID, payment); err != nil {
		return nil, err
	}

	tier := rarityForRoll(e.rand.Intn(100))
	card := e.mintCard(e.pickFromTier(tier), 0, identityID)

	e.cards.mu.Lock()
	e.cards.byID[card.ID] = card
	snapshot := *card
	e.cards.mu.Unlock()

	e.emit(events.CardCreated, card.ID, map[string]any{
		"type":   string(card.TypeID),
		"rarity": string(card.Rarity),
		"owner":  identityID,
	})
	return &snapshot, nil
}

// Combine burns exactly three caller-owned cards plus the fixed fragment
// fee and mints exactly one output card. The output level comes from the
// total-input-level table, the output rarity from the total-rarity-weight
// table, each resolved with its own roll; a final die picks the concrete
// type inside the output tier.
func (e *Engine) Combine(identityID string, cardA, cardB, cardC string, fee int64) (*domain.Card, error) {
	if fee != domain.CombineFee {
		return nil, domain.ErrIncorrectPaymentAmount
	}
	if cardA == cardB || cardA == cardC || cardB == cardC {
		return nil, domain.ErrInvalidCard
	}

	e.cards.mu.Lock()
	defer e.cards.mu.Unlock()

	inputs := make([]*domain.Card, 0, 3)
	for _, id := range []string{cardA, cardB, cardC} {
		c, ok := e.cards.byID[id]
		if !ok {
			return nil, domain.ErrInvalidCard
		}
		if c.Owner != identityID {
			return nil, domain.ErrNotCardOwner
		}
		inputs = append(inputs, c)
	}

	// All checks passed; the fee payment is the last fallible step.
	if err := e.payFragments(identityID, fee); err != nil {
		return nil, err
	}

	totalLevel, totalWeight := 0, 0
	for _, c := range inputs {
		totalLevel += c.Level
		totalWeight += c.Rarity.Weight()
	}

	for _, c := range inputs {
		delete(e.cards.byID, c.ID)
		e.emit(events.CardBurned, c.ID, map[string]any{"owner": identityID})
	}

	outLevel := synthesisLevel(totalLevel, e.rand.Intn(100))
	outTier := synthesisRarity(totalWeight, e.rand.Intn(100))
	card := e.mintCard(e.pickFromTier(outTier), outLevel, identityID)
	e.cards.byID[card.ID] = card
	snapshot := *card

	e.emit(events.CardSynthesized, card.ID, map[string]any{
		"type":   string(card.TypeID),
		"rarity": string(card.Rarity),
		"level":  card.Level,
		"owner":  identityID,
	})
	return &snapshot, nil
}

// Upgrade attempts to raise the card one level. The fee is indexed by the
// current level and is consumed whether or not the roll succeeds; that
// asymmetry is deliberate.
func (e *Engine) Upgrade(identityID, cardID string, fee int64) (*domain.Card, bool, error) {
	e.cards.mu.Lock()
	defer e.cards.mu.Unlock()

	card, ok := e.cards.byID[cardID]
	if !ok {
		return nil, false, domain.ErrInvalidCard
	}
	if card.Owner != identityID {
		return nil, false, domain.ErrNotCardOwner
	}
	if card.Level >= domain.MaxCardLevel {
		return nil, false, domain.ErrInvalidLevel
	}
	if fee != domain.UpgradeFees[card.Level] {
		return nil, false, domain.ErrIncorrectPaymentAmount
	}
	if err := e.payCurrency(identityID, fee); err != nil {
		return nil, false, err
	}

	success := upgradeSucceeds(card.Level, e.rand.Intn(100))
	if success {
		card.Level++
	}
	snapshot := *card

	e.emit(events.CardUpgraded, cardID, map[string]any{
		"level":   card.Level,
		"success": success,
	})
	return &snapshot, success, nil
}

// Burn destroys a caller-owned card.
func (e *Engine) Burn(identityID, cardID string) error {
	e.cards.mu.Lock()
	card, ok := e.cards.byID[cardID]
	if !ok {
		e.cards.mu.Unlock()
		return domain.ErrInvalidCard
	}
	if card.Owner != identityID {
		e.cards.mu.Unlock()
		return domain.ErrNotCardOwner
	}
	delete(e.cards.byID, cardID)
	e.cards.mu.Unlock()

	e.emit(events.CardBurned, cardID, map[string]any{"owner": identityID})
	return nil
}

// GetCard returns a copy of the card.
func (e *Engine) GetCard(cardID string) (*domain.Card, error) {
	e.cards.mu.Lock()
	defer e.cards.mu.Unlock()
	card, ok := e.cards.byID[cardID]
	if !ok {
		return nil, domain.ErrInvalidCard
	}
	snapshot := *card
	return &snapshot, nil
}

// CardsOf lists the identity's cards.
func (e *Engine) CardsOf(identityID string) []domain.Card {
	e.cards.mu.Lock()
	defer e.cards.mu.Unlock()
	var out []domain.Card
	for _, c := range e.cards.byID {
		if c.Owner == identityID {
			out = append(out, *c)
		}
	}
	return out
}
