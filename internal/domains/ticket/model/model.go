package model

import "nox/shared/model"

const (
	TableName  = "tickets"
	EntityName = "ticket"

	FieldID           = "id"
	FieldEventID      = "event_id"
	FieldUserID       = "user_id"
	FieldTicketTypeID = "ticket_type_id"
	FieldPrice        = "price"
	FieldStatus       = "status"
)

const (
	StatusPurchased = "purchased"
	StatusUsed      = "used"
	StatusRefunded  = "refunded"
)

type Ticket struct {
	ID           string  `db:"id"`
	EventID      string  `db:"event_id"`
	UserID       string  `db:"user_id"`
	TicketTypeID string  `db:"ticket_type_id"`
	Price        float64 `db:"price"`
	Status       string  `db:"status"`
	model.Metadata
}
