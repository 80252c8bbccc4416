package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/moodachu/moodachu/internal/pet/domain"
	"github.com/moodachu/moodachu/internal/pet/store"
)

type pairsRepo struct {
	db dbtx
}

const pairColumns = `id, mood_state, update_count, participant_a, participant_b, pet_label, created_at, last_update`

func scanPair(row interface{ Scan(...any) error }) (domain.Pair, error) {
	var p domain.Pair
	err := row.Scan(&p.ID, &p.MoodState, &p.UpdateCount,
		&p.ParticipantA, &p.ParticipantB, &p.PetLabel,
		&p.CreatedAt, &p.LastUpdate)
	if err != nil {
		return domain.Pair{}, mapNotFound(err)
	}
	return p, nil
}

func (r *pairsRepo) GetPair(ctx context.Context, id string) (domain.Pair, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+pairColumns+` FROM pairs WHERE id = ?`, id)
	return scanPair(row)
}

func (r *pairsRepo) CreatePair(ctx context.Context, p domain.Pair) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO pairs (id, mood_state, update_count, participant_a, participant_b, pet_label, created_at, last_update)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.MoodState, p.UpdateCount, p.ParticipantA, p.ParticipantB,
		p.PetLabel, p.CreatedAt, p.LastUpdate)
	return mapConstraint(err)
}

// UpdateMood records a verified mood mutation. The counter increment and
// timestamp refresh happen in the same statement as the mood write so a
// partially applied update is impossible.
func (r *pairsRepo) UpdateMood(ctx context.Context, id string, mood domain.MoodState, now time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE pairs
		 SET mood_state = ?, update_count = update_count + 1, last_update = ?
		 WHERE id = ?`,
		mood, now, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *pairsRepo) ListByParticipant(ctx context.Context, username string) ([]domain.Pair, error) {
	needle := strings.ToLower(strings.TrimSpace(username))
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+pairColumns+` FROM pairs
		 WHERE lower(participant_a) = ? OR lower(participant_b) = ?
		 ORDER BY created_at ASC, id ASC`,
		needle, needle)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pairs []domain.Pair
	for rows.Next() {
		p, err := scanPair(rows)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, rows.Err()
}
