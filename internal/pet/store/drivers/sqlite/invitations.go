package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/moodachu/moodachu/internal/pet/domain"
	"github.com/moodachu/moodachu/internal/pet/store"
)

type invitationsRepo struct {
	db dbtx
}

const invitationColumns = `id, from_user_id, from_username, to_username, pet_label, accepted, created_at, updated_at`

func scanInvitation(row interface{ Scan(...any) error }) (domain.Invitation, error) {
	var inv domain.Invitation
	err := row.Scan(&inv.ID, &inv.FromUserID, &inv.FromUsername, &inv.ToUsername,
		&inv.PetLabel, &inv.Accepted, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO invitations (id, from_user_id, from_username, to_username, pet_label, accepted, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.FromUserID, inv.FromUsername, inv.ToUsername,
		inv.PetLabel, inv.Accepted, inv.CreatedAt, inv.UpdatedAt)
	return mapConstraint(err)
}

func (r *invitationsRepo) GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE id = ?`, id)
	return scanInvitation(row)
}

func (r *invitationsRepo) ListPendingForUsername(ctx context.Context, username string) ([]domain.Invitation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+invitationColumns+` FROM invitations
		 WHERE to_username = ? AND accepted = 0
		 ORDER BY created_at ASC, id ASC`,
		strings.ToLower(strings.TrimSpace(username)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invs []domain.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		invs = append(invs, inv)
	}
	return invs, rows.Err()
}

// MarkAccepted only matches pending rows, so a second concurrent accept sees
// zero rows affected and reports ErrNotFound instead of double-accepting.
func (r *invitationsRepo) MarkAccepted(ctx context.Context, id string, now time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invitations SET accepted = 1, updated_at = ?
		 WHERE id = ? AND accepted = 0`,
		now, id)
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
