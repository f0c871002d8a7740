package dto

import (
	"nox/internal/domains/order/model"
	"nox/shared"
	gDto "nox/shared/dto"
	gModel "nox/shared/model"
	"nox/shared/timezone"

	"github.com/google/uuid"
)

type CreateOrderItemRequest struct {
	Name      string  `json:"name"       validate:"required,max=150"`
	Quantity  int     `json:"quantity"   validate:"required,min=1"`
	UnitPrice float64 `json:"unit_price" validate:"required,min=0"`
}

type CreateOrderRequest struct {
	PosTableID string                   `json:"pos_table_id" validate:"required,uuid"`
	ClubID     string                   `json:"club_id"      validate:"required,uuid"`
	Items      []CreateOrderItemRequest `json:"items"        validate:"required,min=1,dive"`
}

// ToModels builds the order and its items. The total is computed here, never
// taken from the client.
func (c *CreateOrderRequest) ToModels(user string) (model.Order, []model.OrderItem) {
	orderID := uuid.NewString()

	total := 0.0
	items := make([]model.OrderItem, len(c.Items))

	for i, item := range c.Items {
		total += float64(item.Quantity) * item.UnitPrice

		items[i] = model.OrderItem{
			ID:        uuid.NewString(),
			OrderID:   orderID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	order := model.Order{
		ID:         orderID,
		PosTableID: c.PosTableID,
		ClubID:     c.ClubID,
		Status:     model.StatusNew,
		Total:      total,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	return order, items
}

type TransitionOrderRequest struct {
	Status string `json:"status" validate:"required,oneof=preparing ready completed cancelled"`
}

type OrderItemResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

func (o *OrderItemResponse) FromModel(model model.OrderItem) {
	o.ID = model.ID
	o.Name = model.Name
	o.Quantity = model.Quantity
	o.UnitPrice = model.UnitPrice
}

type OrderResponse struct {
	ID         string              `json:"id"`
	PosTableID string              `json:"pos_table_id"`
	ClubID     string              `json:"club_id"`
	Status     string              `json:"status"`
	Total      float64             `json:"total"`
	Items      []OrderItemResponse `json:"items,omitempty"`
	gDto.Metadata
}

func (o *OrderResponse) FromModel(model model.Order) {
	o.ID = model.ID
	o.PosTableID = model.PosTableID
	o.ClubID = model.ClubID
	o.Status = model.Status
	o.Total = model.Total
	o.Metadata.FromModel(model.Metadata)
}

func (o *OrderResponse) WithItems(items []model.OrderItem) {
	o.Items = make([]OrderItemResponse, len(items))
	for i, item := range items {
		o.Items[i].FromModel(item)
	}
}

type GetOrdersResponse struct {
	Orders    []OrderResponse `json:"orders"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (g *GetOrdersResponse) FromModels(models []model.Order, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Orders = make([]OrderResponse, len(models))
	for i, mod := range models {
		g.Orders[i].FromModel(mod)
	}
}
