package model

import "nox/shared/model"

const (
	TableName  = "ticket_types"
	EntityName = "ticket_type"

	FieldID       = "id"
	FieldEventID  = "event_id"
	FieldName     = "name"
	FieldPrice    = "price"
	FieldCapacity = "capacity"
	FieldSold     = "sold"
)

type TicketType struct {
	ID       string  `db:"id"`
	EventID  string  `db:"event_id"`
	Name     string  `db:"name"`
	Price    float64 `db:"price"`
	Capacity int     `db:"capacity"`
	Sold     int     `db:"sold"`
	model.Metadata
}
