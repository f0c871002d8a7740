package dto

import (
	"nox/internal/domains/ticket/model"
	"nox/shared"
	gDto "nox/shared/dto"
	gModel "nox/shared/model"
	"nox/shared/timezone"

	"github.com/google/uuid"
)

type PurchaseTicketRequest struct {
	EventID      string `json:"event_id"       validate:"required,uuid"`
	TicketTypeID string `json:"ticket_type_id" validate:"required,uuid"`
}

func (p *PurchaseTicketRequest) ToModel(user string, price float64) model.Ticket {
	return model.Ticket{
		ID:           uuid.NewString(),
		EventID:      p.EventID,
		UserID:       user,
		TicketTypeID: p.TicketTypeID,
		Price:        price,
		Status:       model.StatusPurchased,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type TicketResponse struct {
	ID           string  `json:"id"`
	EventID      string  `json:"event_id"`
	UserID       string  `json:"user_id"`
	TicketTypeID string  `json:"ticket_type_id"`
	Price        float64 `json:"price"`
	Status       string  `json:"status"`
	gDto.Metadata
}

func (t *TicketResponse) FromModel(model model.Ticket) {
	t.ID = model.ID
	t.EventID = model.EventID
	t.UserID = model.UserID
	t.TicketTypeID = model.TicketTypeID
	t.Price = model.Price
	t.Status = model.Status
	t.Metadata.FromModel(model.Metadata)
}

type GetTicketsResponse struct {
	Tickets   []TicketResponse `json:"tickets"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (g *GetTicketsResponse) FromModels(models []model.Ticket, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Tickets = make([]TicketResponse, len(models))
	for i, mod := range models {
		g.Tickets[i].FromModel(mod)
	}
}
