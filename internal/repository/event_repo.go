package repository

import (
	"context"
	"encoding/json"

	"citadel_backend/internal/events"

	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository struct {
	db *pgxpool.Pool
}

func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// Create persists one engine event.
func (r *EventRepository) Create(ctx context.Context, ev *events.Event) error {
	fieldsJSON, err := json.Marshal(ev.Fields)
	if err != nil {
		fieldsJSON = []byte("{}")
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO engine_events (event_type, resource_id, fields, emitted_at)
		 VALUES ($1, $2, $3, $4)`,
		ev.Type, ev.ResourceID, fieldsJSON, ev.Timestamp,
	)
	return err
}

// GetByResource returns the persisted events of one resource, oldest first.
func (r *EventRepository) GetByResource(ctx context.Context, resourceID string, limit int) ([]*events.Event, error) {
	if limit <= 0 {
		limit = 500
	}

	rows, err := r.db.Query(ctx,
		`SELECT event_type, resource_id, fields, emitted_at
		 FROM engine_events
		 WHERE resource_id = $1
		 ORDER BY id ASC
		 LIMIT $2`,
		resourceID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*events.Event
	for rows.Next() {
		var (
			ev         events.Event
			fieldsJSON []byte
		)
		if err := rows.Scan(&ev.Type, &ev.ResourceID, &fieldsJSON, &ev.Timestamp); err != nil {
			return nil, err
		}
		if len(fieldsJSON) > 0 {
			_ = json.Unmarshal(fieldsJSON, &ev.Fields)
		}
		out = append(out, &ev)
	}
	return out, rows.Err()
}
