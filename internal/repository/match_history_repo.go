package repository

import (
	"context"
	"encoding/json"

	"citadel_backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type MatchHistoryRepository struct {
	db *pgxpool.Pool
}

func NewMatchHistoryRepository(db *pgxpool.Pool) *MatchHistoryRepository {
	return &MatchHistoryRepository{db: db}
}

// Create persists a terminal match snapshot.
func (r *MatchHistoryRepository) Create(ctx context.Context, h *domain.MatchHistory) error {
	resultsJSON, err := json.Marshal(h.Results)
	if err != nil {
		resultsJSON = []byte("[]")
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO match_history (match_id, winner, results, ended_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (match_id) DO NOTHING`,
		h.MatchID, h.Winner, resultsJSON, h.EndedAt,
	)
	return err
}

// GetByIdentity returns snapshots whose results involve the identity,
// newest first.
func (r *MatchHistoryRepository) GetByIdentity(ctx context.Context, identityID string, limit int) ([]*domain.MatchHistory, error) {
	if limit <= 0 {
		limit = 100
	}

	needle, err := json.Marshal([]map[string]string{{"identity_id": identityID}})
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT match_id, winner, results, ended_at
		 FROM match_history
		 WHERE results @> $1::jsonb
		 ORDER BY ended_at DESC
		 LIMIT $2`,
		string(needle), limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.MatchHistory
	for rows.Next() {
		var (
			h           domain.MatchHistory
			resultsJSON []byte
		)
		if err := rows.Scan(&h.MatchID, &h.Winner, &resultsJSON, &h.EndedAt); err != nil {
			return nil, err
		}
		if len(resultsJSON) > 0 {
			_ = json.Unmarshal(resultsJSON, &h.Results)
		}
		out = append(out, &h)
	}
	return out, rows.Err()
}

// Get returns one snapshot by match id.
func (r *MatchHistoryRepository) Get(ctx context.Context, matchID string) (*domain.MatchHistory, error) {
	var (
		h           domain.MatchHistory
		resultsJSON []byte
	)
	err := r.db.QueryRow(ctx,
		`SELECT match_id, winner, results, ended_at
		 FROM match_history
		 WHERE match_id = $1`,
		matchID,
	).Scan(&h.MatchID, &h.Winner, &resultsJSON, &h.EndedAt)
	if err != nil {
		return nil, err
	}
	if len(resultsJSON) > 0 {
		_ = json.Unmarshal(resultsJSON, &h.Results)
	}
	return &h, nil
}
