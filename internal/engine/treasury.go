package engine

import (
	"citadel_backend/internal/domain"
	"citadel_backend/internal/events"
)

// The treasury is the singleton currency reserve; it also keeps the
// per-identity wallets that reward distribution funds and mill fees drain.
// All mutations run under the treasury lock so the exactly-once check and
// both transfers of a reward distribution commit as one indivisible unit.

type wallet struct {
	currency  int64
	fragments int64
}

func (t *treasuryStore) wallet(identityID string) *wallet {
	w, ok := t.wallets[identityID]
	if !ok {
		w = &wallet{}
		t.wallets[identityID] = w
	}
	return w
}

// Deposit unconditionally increases the primary-currency balance.
func (e *Engine) Deposit(amount int64, purpose domain.DepositPurpose) int64 {
	e.treasury.mu.Lock()
	e.treasury.currency += amount
	balance := e.treasury.currency
	e.treasury.mu.Unlock()

	e.emit(events.FundsDeposited, "treasury", map[string]any{
		"amount":  amount,
		"purpose": string(purpose),
		"balance": balance,
	})
	return balance
}

// Withdraw removes amount from the primary balance. Privileged. The
// balance never goes negative.
func (e *Engine) Withdraw(token string, amount int64) (int64, error) {
	if _, err := e.Authorize(token); err != nil {
		return 0, err
	}
	e.treasury.mu.Lock()
	if amount > e.treasury.currency {
		e.treasury.mu.Unlock()
		return 0, domain.ErrInsufficientBalance
	}
	e.treasury.currency -= amount
	balance := e.treasury.currency
	e.treasury.mu.Unlock()

	e.emit(events.FundsWithdrawn, "treasury", map[string]any{
		"amount":  amount,
		"balance": balance,
	})
	return balance, nil
}

// Balances returns a snapshot of both treasury balances.
func (e *Engine) Balances() domain.TreasuryBalances {
	e.treasury.mu.Lock()
	defer e.treasury.mu.Unlock()
	return domain.TreasuryBalances{
		Currency:  e.treasury.currency,
		Fragments: e.treasury.fragments,
	}
}

// WalletBalances returns the identity's currency and fragment balances.
func (e *Engine) WalletBalances(identityID string) (currency, fragments int64) {
	e.treasury.mu.Lock()
	defer e.treasury.mu.Unlock()
	w := e.treasury.wallet(identityID)
	return w.currency, w.fragments
}

// payCurrency moves amount from the identity's wallet into the treasury.
func (e *Engine) payCurrency(identityID string, amount int64) error {
	e.treasury.mu.Lock()
	defer e.treasury.mu.Unlock()
	w := e.treasury.wallet(identityID)
	if w.currency < amount {
		return domain.ErrInsufficientBalance
	}
	w.currency -= amount
	e.treasury.currency += amount
	return nil
}

// payFragments moves amount of synthesis currency into the treasury.
func (e *Engine) payFragments(identityID string, amount int64) error {
	e.treasury.mu.Lock()
	defer e.treasury.mu.Unlock()
	w := e.treasury.wallet(identityID)
	if w.fragments < amount {
		return domain.ErrInsufficientBalance
	}
	w.fragments -= amount
	e.treasury.fragments += amount
	return nil
}

// transferCurrency moves amount between two wallets, owner-to-owner.
func (e *Engine) transferCurrency(from, to string, amount int64) error {
	e.treasury.mu.Lock()
	defer e.treasury.mu.Unlock()
	src := e.treasury.wallet(from)
	if src.currency < amount {
		return domain.ErrInsufficientBalance
	}
	src.currency -= amount
	e.treasury.wallet(to).currency += amount
	return nil
}

// DistributeInitialRewards mints the onboarding grant exactly once per
// identity. The anti-replay check, the fragment mint and the currency
// transfer are one unit: a replay fails with zero side effects.
func (e *Engine) DistributeInitialRewards(identityID string) error {
	e.profiles.mu.Lock()
	_, ok := e.profiles.byID[identityID]
	e.profiles.mu.Unlock()
	if !ok {
		return domain.ErrInvalidProfile
	}

	e.treasury.mu.Lock()
	if e.treasury.claimed[identityID] {
		e.treasury.mu.Unlock()
		return domain.ErrAlreadyClaimed
	}
	e.treasury.claimed[identityID] = true
	w := e.treasury.wallet(identityID)
	w.fragments += domain.InitialRewardFragments
	w.currency += domain.InitialRewardCurrency
	e.treasury.mu.Unlock()

	e.emit(events.InitialRewardsClaimed, identityID, map[string]any{
		"fragments": domain.InitialRewardFragments,
		"currency":  domain.InitialRewardCurrency,
	})
	return nil
}

// DistributeDailyRewards mints the daily fragment grant. Eligibility (the
// elapsed-time check against LastDailyClaim) is enforced at the profile
// layer, not inside the treasury mutation itself.
func (e *Engine) DistributeDailyRewards(identityID string) error {
	now := e.clock.NowMillis()

	e.profiles.mu.Lock()
	p, ok := e.profiles.byID[identityID]
	if !ok {
		e.profiles.mu.Unlock()
		return domain.ErrInvalidProfile
	}
	if p.LastDailyClaim != 0 && now-p.LastDailyClaim < dayMillis {
		e.profiles.mu.Unlock()
		return domain.ErrDailyNotElapsed
	}
	p.LastDailyClaim = now
	e.profiles.mu.Unlock()

	e.treasury.mu.Lock()
	e.treasury.wallet(identityID).fragments += domain.DailyRewardFragments
	e.treasury.mu.Unlock()

	e.emit(events.DailyRewardsClaimed, identityID, map[string]any{
		"fragments": domain.DailyRewardFragments,
	})
	return nil
}

const dayMillis = int64(24 * 60 * 60 * 1000)

// HasClaimedInitialRewards reports anti-replay membership.
func (e *Engine) HasClaimedInitialRewards(identityID string) bool {
	e.treasury.mu.Lock()
	defer e.treasury.mu.Unlock()
	return e.treasury.claimed[identityID]
}
