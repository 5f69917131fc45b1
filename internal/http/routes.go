package http

import (
	"time"

	"citadel_backend/internal/config"
	"citadel_backend/internal/engine"
	"citadel_backend/internal/http/handlers"
	"citadel_backend/internal/http/middleware"
	"citadel_backend/internal/repository"
	"citadel_backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegisterRoutes wires the whole HTTP surface: public endpoints, JWT-gated
// player endpoints, capability-gated referee endpoints, and the websocket
// event stream. db may be nil when history persistence is disabled.
func RegisterRoutes(r *gin.Engine, e *engine.Engine, db *pgxpool.Pool, cfg *config.Config, version string) {
	var historyRepo *repository.MatchHistoryRepository
	if db != nil {
		historyRepo = repository.NewMatchHistoryRepository(db)
	}
	h := handlers.NewHandler(e, historyRepo)
	healthHandler := handlers.NewHealthHandler(db, version)

	apiWindow := time.Duration(cfg.APIRateWindow) * time.Second
	authWindow := time.Duration(cfg.AuthRateWindow) * time.Second
	playWindow := time.Duration(cfg.PlayRateWindow) * time.Second

	// Health checks, never rate limited.
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(cfg.APIRateLimit, apiWindow))

	// Auth
	v1.POST("/auth", middleware.RedisRateLimit(cfg.AuthRateLimit, authWindow), h.Auth)

	// Profile
	v1.GET("/me", middleware.JWT(), h.Me)
	v1.POST("/me/avatar", middleware.JWT(), h.SetAvatar)
	v1.GET("/me/matches", middleware.JWT(), h.MyMatches)
	v1.GET("/profile/:id", h.Profile)
	v1.GET("/leaderboard", h.Leaderboard)

	// Rewards
	v1.POST("/rewards/initial", middleware.JWT(), h.ClaimInitialRewards)
	v1.POST("/rewards/daily", middleware.JWT(), h.ClaimDailyRewards)

	// Cards and the mill. Economy actions carry the per-identity limiter.
	playRL := middleware.PlayRateLimit(cfg.PlayRateLimit, playWindow)
	v1.GET("/catalogue", h.Catalogue)
	v1.GET("/cards", middleware.JWT(), h.MyCards)
	v1.GET("/cards/:id", h.GetCard)
	v1.POST("/cards/draw", middleware.JWT(), playRL, h.Draw)
	v1.POST("/cards/combine", middleware.JWT(), playRL, h.Combine)
	v1.POST("/cards/:id/upgrade", middleware.JWT(), playRL, h.Upgrade)
	v1.DELETE("/cards/:id", middleware.JWT(), h.Burn)

	// Lobbies and matchmaking
	v1.POST("/lobbies", middleware.JWT(), h.CreateLobby)
	v1.GET("/lobbies/:id", h.GetLobby)
	v1.POST("/lobbies/:id/join", middleware.JWT(), h.JoinLobby)
	v1.POST("/lobbies/:id/mode", middleware.JWT(), h.SetLobbyMode)
	v1.POST("/lobbies/:id/start", middleware.JWT(), h.StartLobbyMatch)
	v1.POST("/queue", middleware.JWT(), h.JoinQueue)
	v1.GET("/queue", h.QueueStatus)

	// Matches (public read)
	v1.GET("/matches/:id", h.GetMatch)

	// Treasury
	v1.GET("/treasury", h.TreasuryBalances)
	v1.POST("/treasury/deposit", h.Deposit)

	// Rentals
	v1.POST("/rentals", middleware.JWT(), h.CreateRental)
	v1.GET("/rentals/:id", h.GetRental)
	v1.POST("/rentals/:id/rent", middleware.JWT(), h.Rent)
	v1.POST("/rentals/:id/use", middleware.JWT(), h.UseRental)
	v1.POST("/rentals/:id/end", middleware.JWT(), h.EndRental)

	// Friends
	v1.POST("/friends/requests", middleware.JWT(), h.SendFriendRequest)
	v1.POST("/friends/requests/:identity/accept", middleware.JWT(), h.AcceptFriendRequest)
	v1.POST("/friends/requests/:identity/reject", middleware.JWT(), h.RejectFriendRequest)
	v1.DELETE("/friends/:identity", middleware.JWT(), h.Unfriend)
	v1.GET("/friends", middleware.JWT(), h.ListFriends)

	// Referee operations. The capability travels in X-Admin-Token and is
	// validated by the engine on every call.
	admin := v1.Group("/admin")
	{
		admin.POST("/matches/dequeue", h.DequeueMatch)
		admin.POST("/matches/:id/assign", h.AssignCard)
		admin.POST("/matches/:id/pile-draw", h.DrawFromPile)
		admin.POST("/matches/:id/deal", h.SetDrawPileSize)
		admin.POST("/matches/:id/turn", h.SetTurnState)
		admin.POST("/matches/:id/play", h.PlayCard)
		admin.POST("/matches/:id/defeat", h.MarkDefeated)
		admin.POST("/matches/:id/winner", h.SetWinner)
		admin.POST("/matches/:id/state", h.UpdateMatchState)

		admin.POST("/treasury/withdraw", h.Withdraw)

		admin.POST("/profiles/:identity/win", h.RecordWin)
		admin.POST("/profiles/:identity/loss", h.RecordLoss)
		admin.POST("/profiles/:identity/rating", h.SetRating)

		admin.POST("/admins", h.CreateAdmin)
		admin.DELETE("/admins/:identity", h.RevokeAdmin)
	}

	// Websocket event stream
	hub := ws.NewHub(e.Events())
	go hub.Run()
	r.GET("/ws", h.WS(hub))
}
