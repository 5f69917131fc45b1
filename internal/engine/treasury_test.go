package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"citadel_backend/internal/domain"
)

func TestDepositWithdraw(t *testing.T) {
	e, _ := newTestEngine()

	balance := e.Deposit(300, domain.PurposeGeneric)
	require.Equal(t, int64(300), balance)

	balance, err := e.Withdraw(testRootToken, 100)
	require.NoError(t, err)
	require.Equal(t, int64(200), balance)

	_, err = e.Withdraw(testRootToken, 500)
	require.ErrorIs(t, err, domain.ErrInsufficientBalance)
	require.Equal(t, int64(200), e.Balances().Currency)

	_, err = e.Withdraw("bogus", 1)
	require.ErrorIs(t, err, domain.ErrNotAuthorized)
}

func TestInitialRewardsOnce(t *testing.T) {
	e, _ := newTestEngine()
	_, err := e.RegisterProfile("alice", "Alice", "")
	require.NoError(t, err)

	require.NoError(t, e.DistributeInitialRewards("alice"))
	currency, fragments := e.WalletBalances("alice")
	require.Equal(t, int64(domain.InitialRewardCurrency), currency)
	require.Equal(t, int64(domain.InitialRewardFragments), fragments)
	require.True(t, e.HasClaimedInitialRewards("alice"))

	// Replay fails with zero side effects.
	err = e.DistributeInitialRewards("alice")
	require.ErrorIs(t, err, domain.ErrAlreadyClaimed)
	currency, fragments = e.WalletBalances("alice")
	require.Equal(t, int64(domain.InitialRewardCurrency), currency)
	require.Equal(t, int64(domain.InitialRewardFragments), fragments)
}

func TestInitialRewardsUnknownProfile(t *testing.T) {
	e, _ := newTestEngine()
	require.ErrorIs(t, e.DistributeInitialRewards("ghost"), domain.ErrInvalidProfile)
}

func TestDailyRewards(t *testing.T) {
	e, c := newTestEngine()
	_, err := e.RegisterProfile("alice", "Alice", "")
	require.NoError(t, err)

	require.NoError(t, e.DistributeDailyRewards("alice"))
	_, fragments := e.WalletBalances("alice")
	require.Equal(t, int64(domain.DailyRewardFragments), fragments)

	// Same day: rejected.
	require.ErrorIs(t, e.DistributeDailyRewards("alice"), domain.ErrDailyNotElapsed)

	// One hour short: still rejected.
	c.Advance(23 * time.Hour)
	require.ErrorIs(t, e.DistributeDailyRewards("alice"), domain.ErrDailyNotElapsed)

	c.Advance(time.Hour)
	require.NoError(t, e.DistributeDailyRewards("alice"))
	_, fragments = e.WalletBalances("alice")
	require.Equal(t, int64(2*domain.DailyRewardFragments), fragments)
}
