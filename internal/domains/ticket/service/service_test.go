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
	eventMocks "nox/internal/domains/event/mocks"
	eventModel "nox/internal/domains/event/model"
	ticketMocks "nox/internal/domains/ticket/mocks"
	"nox/internal/domains/ticket/model"
	"nox/internal/domains/ticket/model/dto"
	"nox/internal/domains/ticket/service"
	tickettypeMocks "nox/internal/domains/tickettype/mocks"
	tickettypeModel "nox/internal/domains/tickettype/model"
	transactionMocks "nox/internal/domains/transaction/mocks"
	"nox/shared/constant"
	"nox/shared/failure"
)

type ticketFixture struct {
	repo            *ticketMocks.MockTicket
	ticketTypeRepo  *tickettypeMocks.MockTicketType
	eventRepo       *eventMocks.MockEvent
	transactionRepo *transactionMocks.MockTransaction
	kafka           *kafkaMocks.MockClient
	svc             service.Ticket
}

func newTicketFixture(t *testing.T) *ticketFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &ticketFixture{
		repo:            ticketMocks.NewMockTicket(ctrl),
		ticketTypeRepo:  tickettypeMocks.NewMockTicketType(ctrl),
		eventRepo:       eventMocks.NewMockEvent(ctrl),
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
	cfg.Kafka.Topics.Transactions = "transactions"

	f.svc = service.New(f.repo, f.ticketTypeRepo, f.eventRepo, f.transactionRepo, cfg, mocks.NewOtel(), f.kafka)

	return f
}

func (f *ticketFixture) passthroughTransact() {
	f.repo.EXPECT().
		Transact(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		})
}

func testContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func TestTicketService_Purchase(t *testing.T) {
	upcomingEvent := eventModel.Event{
		ID:     "event-id-123",
		Status: eventModel.StatusUpcoming,
	}

	ticketType := tickettypeModel.TicketType{
		ID:       "ticket-type-id-123",
		EventID:  "event-id-123",
		Name:     "General",
		Price:    25,
		Capacity: 100,
		Sold:     40,
	}

	req := dto.PurchaseTicketRequest{
		EventID:      "event-id-123",
		TicketTypeID: "ticket-type-id-123",
	}

	t.Run("successful purchase", func(t *testing.T) {
		f := newTicketFixture(t)

		f.eventRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(upcomingEvent, nil)

		f.ticketTypeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(ticketType, nil)

		f.passthroughTransact()

		f.ticketTypeRepo.EXPECT().
			SellOneTx(gomock.Any(), gomock.Any(), "ticket-type-id-123", "test-user-id").
			Return(true, nil)

		f.repo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		f.transactionRepo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := f.svc.Purchase(testContext(), req)

		assert.NoError(t, err)
		assert.Equal(t, "event-id-123", res.EventID)
		assert.Equal(t, float64(25), res.Price)
		assert.Equal(t, model.StatusPurchased, res.Status)
	})

	t.Run("sold out", func(t *testing.T) {
		f := newTicketFixture(t)

		f.eventRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(upcomingEvent, nil)

		f.ticketTypeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(ticketType, nil)

		f.passthroughTransact()

		f.ticketTypeRepo.EXPECT().
			SellOneTx(gomock.Any(), gomock.Any(), "ticket-type-id-123", "test-user-id").
			Return(false, nil)

		_, err := f.svc.Purchase(testContext(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("cancelled event", func(t *testing.T) {
		f := newTicketFixture(t)

		cancelled := upcomingEvent
		cancelled.Status = eventModel.StatusCancelled

		f.eventRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(cancelled, nil)

		_, err := f.svc.Purchase(testContext(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("ticket type belongs to another event", func(t *testing.T) {
		f := newTicketFixture(t)

		foreign := ticketType
		foreign.EventID = "other-event-id"

		f.eventRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(upcomingEvent, nil)

		f.ticketTypeRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(foreign, nil)

		_, err := f.svc.Purchase(testContext(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("event not found", func(t *testing.T) {
		f := newTicketFixture(t)

		f.eventRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(eventModel.Event{}, nil)

		_, err := f.svc.Purchase(testContext(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestTicketService_Use(t *testing.T) {
	t.Run("successful use", func(t *testing.T) {
		f := newTicketFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		f.passthroughTransact()

		f.repo.EXPECT().
			TransitionTx(gomock.Any(), gomock.Any(), "ticket-id-123", model.StatusPurchased, model.StatusUsed, "test-user-id").
			Return(true, nil)

		assert.NoError(t, f.svc.Use(testContext(), "ticket-id-123"))
	})

	t.Run("already used", func(t *testing.T) {
		f := newTicketFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		f.passthroughTransact()

		f.repo.EXPECT().
			TransitionTx(gomock.Any(), gomock.Any(), "ticket-id-123", model.StatusPurchased, model.StatusUsed, "test-user-id").
			Return(false, nil)

		err := f.svc.Use(testContext(), "ticket-id-123")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestTicketService_Refund(t *testing.T) {
	purchased := model.Ticket{
		ID:           "ticket-id-123",
		EventID:      "event-id-123",
		UserID:       "buyer-id-123",
		TicketTypeID: "ticket-type-id-123",
		Price:        25,
		Status:       model.StatusPurchased,
	}

	t.Run("successful refund", func(t *testing.T) {
		f := newTicketFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(purchased, nil)

		f.passthroughTransact()

		f.repo.EXPECT().
			TransitionTx(gomock.Any(), gomock.Any(), "ticket-id-123", model.StatusPurchased, model.StatusRefunded, "test-user-id").
			Return(true, nil)

		f.ticketTypeRepo.EXPECT().
			ReturnOneTx(gomock.Any(), gomock.Any(), "ticket-type-id-123", "test-user-id").
			Return(nil)

		f.transactionRepo.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, f.svc.Refund(testContext(), "ticket-id-123"))
	})

	t.Run("not purchased anymore", func(t *testing.T) {
		f := newTicketFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(purchased, nil)

		f.passthroughTransact()

		f.repo.EXPECT().
			TransitionTx(gomock.Any(), gomock.Any(), "ticket-id-123", model.StatusPurchased, model.StatusRefunded, "test-user-id").
			Return(false, nil)

		err := f.svc.Refund(testContext(), "ticket-id-123")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestTicketService_Delete(t *testing.T) {
	t.Run("purchased ticket is refused", func(t *testing.T) {
		f := newTicketFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Ticket{ID: "ticket-id-123", Status: model.StatusPurchased}, nil)

		err := f.svc.Delete(testContext(), "ticket-id-123")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("refunded ticket is deleted", func(t *testing.T) {
		f := newTicketFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Ticket{ID: "ticket-id-123", Status: model.StatusRefunded}, nil)

		f.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, f.svc.Delete(testContext(), "ticket-id-123"))
	})
}
