package model

import (
	"nox/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "feedback"
	EntityName = "feedback"

	FieldID      = "id"
	FieldEventID = "event_id"
	FieldUserID  = "user_id"
	FieldRating  = "rating"
	FieldComment = "comment"
	FieldPhotos  = "photos"
)

type Feedback struct {
	ID      string         `db:"id"`
	EventID string         `db:"event_id"`
	UserID  string         `db:"user_id"`
	Rating  int            `db:"rating"`
	Comment string         `db:"comment"`
	Photos  pq.StringArray `db:"photos"`
	model.Metadata
}
