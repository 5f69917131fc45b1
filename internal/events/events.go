package events

// Event types emitted by the engine. Naming: <Noun><PastTenseVerb>.
const (
	ProfileRegistered = "ProfileRegistered"
	ProfileUpdated    = "ProfileUpdated"
	WinRecorded       = "WinRecorded"
	LossRecorded      = "LossRecorded"
	RatingSet         = "RatingSet"

	AdminCreated = "AdminCreated"
	AdminRevoked = "AdminRevoked"

	FundsDeposited        = "FundsDeposited"
	FundsWithdrawn        = "FundsWithdrawn"
	InitialRewardsClaimed = "InitialRewardsClaimed"
	DailyRewardsClaimed   = "DailyRewardsClaimed"

	CardCreated     = "CardCreated"
	CardBurned      = "CardBurned"
	CardSynthesized = "CardSynthesized"
	CardUpgraded    = "CardUpgraded"

	LobbyCreated = "LobbyCreated"
	LobbyJoined  = "LobbyJoined"
	LobbyModeSet = "LobbyModeSet"
	QueueJoined  = "QueueJoined"
	MatchCreated = "MatchCreated"
	MatchStarted = "MatchStarted"

	CardAssigned      = "CardAssigned"
	CardPlayed        = "CardPlayed"
	MatchStateChanged = "MatchStateChanged"
	WinnerSet         = "WinnerSet"
	TurnChanged       = "TurnChanged"
	PlayerDefeated    = "PlayerDefeated"
	MatchEnded        = "MatchEnded"

	RentalCreated = "RentalCreated"
	CardRented    = "CardRented"
	RentalUsed    = "RentalUsed"
	RentalEnded   = "RentalEnded"

	FriendRequestSent     = "FriendRequestSent"
	FriendRequestAccepted = "FriendRequestAccepted"
	FriendRequestRejected = "FriendRequestRejected"
	FriendRemoved         = "FriendRemoved"
)

// Event is one entry of the append-only notification log. Fields carries
// the changed values of the mutated resource.
type Event struct {
	Type       string         `json:"type"`
	ResourceID string         `json:"resource_id"`
	Fields     map[string]any `json:"fields,omitempty"`
	Timestamp  int64          `json:"timestamp"`
}
