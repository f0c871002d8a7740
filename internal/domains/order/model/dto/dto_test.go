package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nox/internal/domains/order/model"
	"nox/internal/domains/order/model/dto"
)

func TestCreateOrderRequest_ToModels(t *testing.T) {
	req := dto.CreateOrderRequest{
		PosTableID: "table-id-123",
		ClubID:     "club-id-123",
		Items: []dto.CreateOrderItemRequest{
			{Name: "Gin Tonic", Quantity: 2, UnitPrice: 12},
			{Name: "Still Water", Quantity: 1, UnitPrice: 4.5},
		},
	}

	order, items := req.ToModels("user-id-123")

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "table-id-123", order.PosTableID)
	assert.Equal(t, "club-id-123", order.ClubID)
	assert.Equal(t, model.StatusNew, order.Status)
	assert.Equal(t, "user-id-123", order.Metadata.CreatedBy)

	// total is computed from the items, never taken from the request
	assert.InDelta(t, 28.5, order.Total, 0.001)

	assert.Len(t, items, 2)
	for _, item := range items {
		assert.NotEmpty(t, item.ID)
		assert.Equal(t, order.ID, item.OrderID)
		assert.Equal(t, "user-id-123", item.Metadata.CreatedBy)
	}

	assert.Equal(t, "Gin Tonic", items[0].Name)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "Still Water", items[1].Name)
}

func TestOrderResponse_FromModel(t *testing.T) {
	ord := model.Order{
		ID:         "order-id-123",
		PosTableID: "table-id-123",
		ClubID:     "club-id-123",
		Status:     model.StatusPreparing,
		Total:      42,
	}

	var response dto.OrderResponse
	response.FromModel(ord)

	assert.Equal(t, "order-id-123", response.ID)
	assert.Equal(t, model.StatusPreparing, response.Status)
	assert.Equal(t, 42.0, response.Total)
	assert.Empty(t, response.Items)
}

func TestOrderResponse_WithItems(t *testing.T) {
	var response dto.OrderResponse
	response.WithItems([]model.OrderItem{
		{ID: "item-id-1", Name: "Gin Tonic", Quantity: 2, UnitPrice: 12},
	})

	assert.Len(t, response.Items, 1)
	assert.Equal(t, "item-id-1", response.Items[0].ID)
	assert.Equal(t, "Gin Tonic", response.Items[0].Name)
	assert.Equal(t, 2, response.Items[0].Quantity)
	assert.Equal(t, 12.0, response.Items[0].UnitPrice)
}

func TestGetOrdersResponse_FromModels(t *testing.T) {
	models := []model.Order{
		{ID: "order-id-1", Status: model.StatusNew},
		{ID: "order-id-2", Status: model.StatusReady},
	}

	var response dto.GetOrdersResponse
	response.FromModels(models, 12, 5)

	assert.Equal(t, 12, response.TotalData)
	assert.Equal(t, 3, response.TotalPage)
	assert.Len(t, response.Orders, 2)
	assert.Equal(t, "order-id-1", response.Orders[0].ID)
	assert.Equal(t, model.StatusReady, response.Orders[1].Status)
}
