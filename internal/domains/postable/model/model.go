package model

import "nox/shared/model"

const (
	TableName  = "pos_tables"
	EntityName = "pos_table"

	FieldID     = "id"
	FieldClubID = "club_id"
	FieldNumber = "number"
	FieldSeats  = "seats"
	FieldStatus = "status"
)

const (
	StatusAvailable = "available"
	StatusOccupied  = "occupied"
	StatusReserved  = "reserved"
	StatusCleaning  = "cleaning"
)

type PosTable struct {
	ID     string `db:"id"`
	ClubID string `db:"club_id"`
	Number int    `db:"number"`
	Seats  int    `db:"seats"`
	Status string `db:"status"`
	model.Metadata
}
