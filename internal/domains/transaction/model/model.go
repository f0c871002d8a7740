package model

import "nox/shared/model"

const (
	TableName  = "transactions"
	EntityName = "transaction"

	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldOrderID   = "order_id"
	FieldTicketID  = "ticket_id"
	FieldAmount    = "amount"
	FieldType      = "type"
	FieldStatus    = "status"
	FieldReference = "reference"
)

const (
	TypeTicketPurchase = "ticket_purchase"
	TypeOrderPayment   = "order_payment"
	TypeRefund         = "refund"
	TypeTableDeposit   = "table_deposit"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

type Transaction struct {
	ID        string  `db:"id"`
	UserID    string  `db:"user_id"`
	OrderID   *string `db:"order_id"`
	TicketID  *string `db:"ticket_id"`
	Amount    float64 `db:"amount"`
	Type      string  `db:"type"`
	Status    string  `db:"status"`
	Reference string  `db:"reference"`
	model.Metadata
}
