package domain

// Reward and pricing constants. These are authoritative balance numbers,
// not tunables; changing them changes the economy.
const (
	InitialRewardCurrency  = int64(500)
	InitialRewardFragments = int64(50)
	DailyRewardFragments   = int64(10)

	DrawPrice  = int64(100)
	CombineFee = int64(50)
)

// UpgradeFees is indexed by the card's current level.
var UpgradeFees = [3]int64{30, 60, 90}

// TreasuryBalances is a read-only snapshot of the singleton treasury.
type TreasuryBalances struct {
	Currency  int64 `json:"currency"`
	Fragments int64 `json:"fragments"`
}

// DepositPurpose tags what a treasury deposit paid for.
type DepositPurpose string

const (
	PurposeDraw    DepositPurpose = "draw"
	PurposeCombine DepositPurpose = "combine"
	PurposeUpgrade DepositPurpose = "upgrade"
	PurposeGeneric DepositPurpose = "deposit"
)
