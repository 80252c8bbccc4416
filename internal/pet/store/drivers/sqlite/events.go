package sqlite

import (
	"context"
	"database/sql"

	"github.com/moodachu/moodachu/internal/pet/domain"
)

type eventsRepo struct {
	db dbtx
}

const eventColumns = `id, pair_id, seq, event_type, mood, created_at`

func scanEvent(row interface{ Scan(...any) error }) (domain.Event, error) {
	var (
		ev   domain.Event
		mood sql.NullInt64
	)
	err := row.Scan(&ev.ID, &ev.PairID, &ev.Seq, &ev.Type, &mood, &ev.Timestamp)
	if err != nil {
		return domain.Event{}, mapNotFound(err)
	}
	if mood.Valid {
		m := domain.MoodState(mood.Int64)
		ev.Mood = &m
	}
	return ev, nil
}

// AppendEvent assigns the next per-pair sequence number inside the insert
// itself. Callers append inside the same transaction as the pair mutation, so
// the subquery cannot race.
func (r *eventsRepo) AppendEvent(ctx context.Context, ev domain.Event) (domain.Event, error) {
	var mood sql.NullInt64
	if ev.Mood != nil {
		mood = sql.NullInt64{Int64: int64(*ev.Mood), Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO events (id, pair_id, seq, event_type, mood, created_at)
		 VALUES (?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM events WHERE pair_id = ?), ?, ?, ?)`,
		ev.ID, ev.PairID, ev.PairID, ev.Type, mood, ev.Timestamp)
	if err != nil {
		return domain.Event{}, mapConstraint(err)
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT seq FROM events WHERE id = ?`, ev.ID)
	if err := row.Scan(&ev.Seq); err != nil {
		return domain.Event{}, err
	}
	return ev, nil
}

func (r *eventsRepo) ListEventsByPair(ctx context.Context, pairID string) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM events WHERE pair_id = ? ORDER BY seq ASC`,
		pairID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
