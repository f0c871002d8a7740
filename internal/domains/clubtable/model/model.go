package model

import "nox/shared/model"

const (
	TableName  = "club_tables"
	EntityName = "club_table"

	FieldID        = "id"
	FieldClubID    = "club_id"
	FieldLabel     = "label"
	FieldCapacity  = "capacity"
	FieldPrice     = "price"
	FieldAvailable = "available"
)

type ClubTable struct {
	ID        string  `db:"id"`
	ClubID    string  `db:"club_id"`
	Label     string  `db:"label"`
	Capacity  int     `db:"capacity"`
	Price     float64 `db:"price"`
	Available bool    `db:"available"`
	model.Metadata
}
