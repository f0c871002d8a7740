package dto

import (
	"nox/internal/domains/transaction/model"
	"nox/shared"
	gDto "nox/shared/dto"
	gModel "nox/shared/model"
	"nox/shared/timezone"

	"github.com/google/uuid"
)

type CreateTransactionRequest struct {
	UserID    string  `json:"user_id"   validate:"required,uuid"`
	OrderID   *string `json:"order_id"  validate:"omitempty,uuid"`
	TicketID  *string `json:"ticket_id" validate:"omitempty,uuid"`
	Amount    float64 `json:"amount"    validate:"required"`
	Type      string  `json:"type"      validate:"required,oneof=ticket_purchase order_payment refund table_deposit"`
	Reference string  `json:"reference" validate:"omitempty,max=255"`
}

func (c *CreateTransactionRequest) ToModel(user string) model.Transaction {
	return model.Transaction{
		ID:        uuid.NewString(),
		UserID:    c.UserID,
		OrderID:   c.OrderID,
		TicketID:  c.TicketID,
		Amount:    c.Amount,
		Type:      c.Type,
		Status:    model.StatusPending,
		Reference: c.Reference,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type SettleTransactionRequest struct {
	Status string `json:"status" validate:"required,oneof=completed failed"`
}

type TransactionResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	OrderID   *string `json:"order_id"`
	TicketID  *string `json:"ticket_id"`
	Amount    float64 `json:"amount"`
	Type      string  `json:"type"`
	Status    string  `json:"status"`
	Reference string  `json:"reference"`
	gDto.Metadata
}

func (t *TransactionResponse) FromModel(model model.Transaction) {
	t.ID = model.ID
	t.UserID = model.UserID
	t.OrderID = model.OrderID
	t.TicketID = model.TicketID
	t.Amount = model.Amount
	t.Type = model.Type
	t.Status = model.Status
	t.Reference = model.Reference
	t.Metadata.FromModel(model.Metadata)
}

type GetTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (g *GetTransactionsResponse) FromModels(models []model.Transaction, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Transactions = make([]TransactionResponse, len(models))
	for i, mod := range models {
		g.Transactions[i].FromModel(mod)
	}
}
