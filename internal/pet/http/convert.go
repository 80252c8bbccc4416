package http

import (
	"github.com/moodachu/moodachu/internal/pet/domain"
	"github.com/moodachu/moodachu/pkg/petsdk"
)

func toUserResponse(u domain.User) petsdk.UserResponse {
	return petsdk.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}

func toPairResponse(p domain.Pair) petsdk.PairResponse {
	return petsdk.PairResponse{
		ID:           p.ID,
		MoodState:    uint8(p.MoodState),
		Mood:         p.MoodState.String(),
		UpdateCount:  p.UpdateCount,
		ParticipantA: p.ParticipantA,
		ParticipantB: p.ParticipantB,
		PetLabel:     p.PetLabel,
		CreatedAt:    p.CreatedAt,
		LastUpdate:   p.LastUpdate,
	}
}

func toEventResponse(ev domain.Event) petsdk.EventResponse {
	resp := petsdk.EventResponse{
		ID:        ev.ID,
		PairID:    ev.PairID,
		Seq:       ev.Seq,
		Type:      string(ev.Type),
		Timestamp: ev.Timestamp,
	}
	if ev.Mood != nil {
		m := uint8(*ev.Mood)
		resp.Mood = &m
	}
	return resp
}

func toEventResponses(events []domain.Event) []petsdk.EventResponse {
	out := make([]petsdk.EventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, toEventResponse(ev))
	}
	return out
}

func toInvitationResponse(inv domain.Invitation) petsdk.InvitationResponse {
	return petsdk.InvitationResponse{
		ID:           inv.ID,
		FromUsername: inv.FromUsername,
		ToUsername:   inv.ToUsername,
		PetLabel:     inv.PetLabel,
		Accepted:     inv.Accepted,
		CreatedAt:    inv.CreatedAt,
	}
}
