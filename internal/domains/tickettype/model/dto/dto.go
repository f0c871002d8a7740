package dto

import (
	"nox/internal/domains/tickettype/model"
	"nox/shared"
	gDto "nox/shared/dto"
	gModel "nox/shared/model"
	"nox/shared/timezone"

	"github.com/google/uuid"
)

type CreateTicketTypeRequest struct {
	EventID  string  `json:"event_id" validate:"required,uuid"`
	Name     string  `json:"name"     validate:"required,max=100"`
	Price    float64 `json:"price"    validate:"omitempty,min=0"`
	Capacity int     `json:"capacity" validate:"required,min=1"`
}

func (c *CreateTicketTypeRequest) ToModel(user string) model.TicketType {
	return model.TicketType{
		ID:       uuid.NewString(),
		EventID:  c.EventID,
		Name:     c.Name,
		Price:    c.Price,
		Capacity: c.Capacity,
		Sold:     0,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// Capacity may only grow through a patch: shrinking below sold would corrupt
// the sold counter guard.
type UpdateTicketTypeRequest struct {
	Name     string   `db:"name"     json:"name"     validate:"omitempty,max=100"`
	Price    *float64 `db:"price"    json:"price"    validate:"omitempty,min=0"`
	Capacity *int     `db:"capacity" json:"capacity" validate:"omitempty,min=1"`
}

type TicketTypeResponse struct {
	ID       string  `json:"id"`
	EventID  string  `json:"event_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Capacity int     `json:"capacity"`
	Sold     int     `json:"sold"`
	gDto.Metadata
}

func (t *TicketTypeResponse) FromModel(model model.TicketType) {
	t.ID = model.ID
	t.EventID = model.EventID
	t.Name = model.Name
	t.Price = model.Price
	t.Capacity = model.Capacity
	t.Sold = model.Sold
	t.Metadata.FromModel(model.Metadata)
}

type GetTicketTypesResponse struct {
	TicketTypes []TicketTypeResponse `json:"ticket_types"`
	TotalPage   int                  `json:"total_page"`
	TotalData   int                  `json:"total_data"`
}

func (g *GetTicketTypesResponse) FromModels(models []model.TicketType, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.TicketTypes = make([]TicketTypeResponse, len(models))
	for i, mod := range models {
		g.TicketTypes[i].FromModel(mod)
	}
}
