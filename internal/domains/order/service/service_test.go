package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"nox/config"
	kafkaMocks "nox/infras/kafka/mocks"
	"nox/infras/otel/mocks"
	orderMocks "nox/internal/domains/order/mocks"
	"nox/internal/domains/order/model"
	"nox/internal/domains/order/model/dto"
	"nox/internal/domains/order/service"
	postableMocks "nox/internal/domains/postable/mocks"
	postableModel "nox/internal/domains/postable/model"
	transactionMocks "nox/internal/domains/transaction/mocks"
	"nox/shared/constant"
	"nox/shared/failure"
)

type orderFixture struct {
	repo            *orderMocks.MockOrder
	posTableRepo    *postableMocks.MockPosTable
	transactionRepo *transactionMocks.MockTransaction
	kafka           *kafkaMocks.MockClient
	svc             service.Order
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &orderFixture{
		repo:            orderMocks.NewMockOrder(ctrl),
		posTableRepo:    postableMocks.NewMockPosTable(ctrl),
		transactionRepo: transactionMocks.NewMockTransaction(ctrl),
		kafka:           kafkaMocks.NewMockClient(ctrl),
	}

	// Publishing is fire and forget, so the goroutine may or may not land
	// before the test finishes.
	f.kafka.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	cfg := &config.Config{}
	cfg.Kafka.Topics.Orders = "orders"

	f.svc = service.New(f.repo, f.posTableRepo, f.transactionRepo, cfg, mocks.NewOtel(), f.kafka)

	return f
}

func (f *orderFixture) passthroughTransact() {
	f.repo.EXPECT().
		Transact(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		})
}

func testContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func TestOrderService_Create(t *testing.T) {
	availableTable := postableModel.PosTable{
		ID:     "pos-table-id-123",
		ClubID: "club-id-123",
		Number: 7,
		Seats:  4,
		Status: postableModel.StatusAvailable,
	}

	req := dto.CreateOrderRequest{
		PosTableID: "pos-table-id-123",
		ClubID:     "club-id-123",
		Items: []dto.CreateOrderItemRequest{
			{Name: "Gin Tonic", Quantity: 2, UnitPrice: 12.5},
			{Name: "Nachos", Quantity: 1, UnitPrice: 9},
		},
	}

	t.Run("successful creation occupies the table", func(t *testing.T) {
		f := newOrderFixture(t)

		f.posTableRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(availableTable, nil)

		f.passthroughTransact()

		f.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		f.repo.EXPECT().
			InsertItemsTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		f.posTableRepo.EXPECT().
			TransitionTx(gomock.Any(), gomock.Any(), "pos-table-id-123", postableModel.StatusAvailable, postableModel.StatusOccupied, "test-user-id").
			Return(true, nil)

		res, err := f.svc.Create(testContext(), req)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusNew, res.Status)
		assert.Equal(t, float64(34), res.Total)
		assert.Len(t, res.Items, 2)
	})

	t.Run("occupied table stays occupied", func(t *testing.T) {
		f := newOrderFixture(t)

		occupied := availableTable
		occupied.Status = postableModel.StatusOccupied

		f.posTableRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(occupied, nil)

		f.passthroughTransact()

		f.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		f.repo.EXPECT().
			InsertItemsTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := f.svc.Create(testContext(), req)

		assert.NoError(t, err)
	})

	t.Run("table in another club", func(t *testing.T) {
		f := newOrderFixture(t)

		foreign := availableTable
		foreign.ClubID = "other-club-id"

		f.posTableRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(foreign, nil)

		_, err := f.svc.Create(testContext(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("table being cleaned", func(t *testing.T) {
		f := newOrderFixture(t)

		cleaning := availableTable
		cleaning.Status = postableModel.StatusCleaning

		f.posTableRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(cleaning, nil)

		_, err := f.svc.Create(testContext(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestOrderService_Transition(t *testing.T) {
	readyOrder := model.Order{
		ID:         "order-id-123",
		PosTableID: "pos-table-id-123",
		ClubID:     "club-id-123",
		Status:     model.StatusReady,
		Total:      34,
	}

	t.Run("completing appends payment and frees the table", func(t *testing.T) {
		f := newOrderFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(readyOrder, nil)

		f.passthroughTransact()

		f.repo.EXPECT().
			TransitionTx(gomock.Any(), gomock.Any(), "order-id-123", model.StatusReady, model.StatusCompleted, "test-user-id").
			Return(true, nil)

		f.transactionRepo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		f.repo.EXPECT().
			CountOpenForTableTx(gomock.Any(), gomock.Any(), "pos-table-id-123", "order-id-123").
			Return(0, nil)

		f.posTableRepo.EXPECT().
			TransitionTx(gomock.Any(), gomock.Any(), "pos-table-id-123", postableModel.StatusOccupied, postableModel.StatusAvailable, "test-user-id").
			Return(true, nil)

		err := f.svc.Transition(testContext(), "order-id-123", dto.TransitionOrderRequest{Status: model.StatusCompleted})

		assert.NoError(t, err)
	})

	t.Run("table stays occupied while other orders remain open", func(t *testing.T) {
		f := newOrderFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(readyOrder, nil)

		f.passthroughTransact()

		f.repo.EXPECT().
			TransitionTx(gomock.Any(), gomock.Any(), "order-id-123", model.StatusReady, model.StatusCompleted, "test-user-id").
			Return(true, nil)

		f.transactionRepo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		f.repo.EXPECT().
			CountOpenForTableTx(gomock.Any(), gomock.Any(), "pos-table-id-123", "order-id-123").
			Return(2, nil)

		err := f.svc.Transition(testContext(), "order-id-123", dto.TransitionOrderRequest{Status: model.StatusCompleted})

		assert.NoError(t, err)
	})

	t.Run("illegal transition", func(t *testing.T) {
		f := newOrderFixture(t)

		newOrder := readyOrder
		newOrder.Status = model.StatusNew

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(newOrder, nil)

		err := f.svc.Transition(testContext(), "order-id-123", dto.TransitionOrderRequest{Status: model.StatusCompleted})

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("lost the transition race", func(t *testing.T) {
		f := newOrderFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(readyOrder, nil)

		f.passthroughTransact()

		f.repo.EXPECT().
			TransitionTx(gomock.Any(), gomock.Any(), "order-id-123", model.StatusReady, model.StatusCompleted, "test-user-id").
			Return(false, nil)

		err := f.svc.Transition(testContext(), "order-id-123", dto.TransitionOrderRequest{Status: model.StatusCompleted})

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("order not found", func(t *testing.T) {
		f := newOrderFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Order{}, nil)

		err := f.svc.Transition(testContext(), "order-id-123", dto.TransitionOrderRequest{Status: model.StatusPreparing})

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestOrderService_Delete(t *testing.T) {
	t.Run("open order is refused", func(t *testing.T) {
		f := newOrderFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Order{ID: "order-id-123", Status: model.StatusPreparing}, nil)

		err := f.svc.Delete(testContext(), "order-id-123")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("cancelled order is deleted with its items", func(t *testing.T) {
		f := newOrderFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Order{ID: "order-id-123", Status: model.StatusCancelled}, nil)

		f.passthroughTransact()

		f.repo.EXPECT().
			DeleteItemsTx(gomock.Any(), gomock.Any(), "order-id-123").
			Return(nil)

		f.repo.EXPECT().
			DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, f.svc.Delete(testContext(), "order-id-123"))
	})
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{model.StatusNew, model.StatusPreparing, true},
		{model.StatusNew, model.StatusCancelled, true},
		{model.StatusPreparing, model.StatusReady, true},
		{model.StatusPreparing, model.StatusCancelled, true},
		{model.StatusReady, model.StatusCompleted, true},
		{model.StatusNew, model.StatusCompleted, false},
		{model.StatusReady, model.StatusCancelled, false},
		{model.StatusCompleted, model.StatusCancelled, false},
		{model.StatusCancelled, model.StatusPreparing, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+" to "+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CanTransition(tt.from, tt.to))
		})
	}
}
