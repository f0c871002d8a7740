package model

import "nox/shared/model"

const (
	TableName  = "artists"
	EntityName = "artist"

	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldName      = "name"
	FieldGenre     = "genre"
	FieldBio       = "bio"
	FieldCity      = "city"
	FieldRate      = "rate"
	FieldImage     = "image"
	FieldAvailable = "available"
)

type Artist struct {
	ID        string  `db:"id"`
	UserID    *string `db:"user_id"`
	Name      string  `db:"name"`
	Genre     string  `db:"genre"`
	Bio       string  `db:"bio"`
	City      string  `db:"city"`
	Rate      float64 `db:"rate"`
	Image     string  `db:"image"`
	Available bool    `db:"available"`
	model.Metadata
}
