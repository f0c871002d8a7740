package model

import "nox/shared/model"

const (
	TableName  = "orders"
	EntityName = "order"

	FieldID         = "id"
	FieldPosTableID = "pos_table_id"
	FieldClubID     = "club_id"
	FieldStatus     = "status"
	FieldTotal      = "total"
)

const (
	ItemTableName  = "order_items"
	ItemEntityName = "order_item"

	FieldItemID        = "id"
	FieldItemOrderID   = "order_id"
	FieldItemName      = "name"
	FieldItemQuantity  = "quantity"
	FieldItemUnitPrice = "unit_price"
)

const (
	StatusNew       = "new"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// transitions holds the legal moves of the order state machine.
var transitions = map[string][]string{
	StatusNew:       {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady, StatusCancelled},
	StatusReady:     {StatusCompleted},
}

// CanTransition reports whether from can legally move to to.
func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

// OpenStatuses lists the statuses in which an order still holds its table.
func OpenStatuses() []string {
	return []string{StatusNew, StatusPreparing, StatusReady}
}

type Order struct {
	ID         string  `db:"id"`
	PosTableID string  `db:"pos_table_id"`
	ClubID     string  `db:"club_id"`
	Status     string  `db:"status"`
	Total      float64 `db:"total"`
	model.Metadata
}

type OrderItem struct {
	ID        string  `db:"id"`
	OrderID   string  `db:"order_id"`
	Name      string  `db:"name"`
	Quantity  int     `db:"quantity"`
	UnitPrice float64 `db:"unit_price"`
	model.Metadata
}
