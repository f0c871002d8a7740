package model

import "nox/shared/model"

const (
	TableName  = "artist_invitations"
	EntityName = "invitation"

	FieldID       = "id"
	FieldClubID   = "club_id"
	FieldArtistID = "artist_id"
	FieldEventID  = "event_id"
	FieldMessage  = "message"
	FieldStatus   = "status"
)

const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusDeclined  = "declined"
	StatusWithdrawn = "withdrawn"
)

type Invitation struct {
	ID       string  `db:"id"`
	ClubID   string  `db:"club_id"`
	ArtistID string  `db:"artist_id"`
	EventID  *string `db:"event_id"`
	Message  string  `db:"message"`
	Status   string  `db:"status"`
	model.Metadata
}
