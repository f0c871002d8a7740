package model

import (
	"time"

	"nox/shared/model"
)

const (
	TableName  = "event_reserved_tables"
	EntityName = "reservation"

	FieldID         = "id"
	FieldEventID    = "event_id"
	FieldTableID    = "table_id"
	FieldReservedBy = "reserved_by"
	FieldStatus     = "status"
	FieldReleasedAt = "released_at"
)

const (
	StatusActive   = "active"
	StatusReleased = "released"
)

type Reservation struct {
	ID         string     `db:"id"`
	EventID    string     `db:"event_id"`
	TableID    string     `db:"table_id"`
	ReservedBy string     `db:"reserved_by"`
	Status     string     `db:"status"`
	ReleasedAt *time.Time `db:"released_at"`
	model.Metadata
}
