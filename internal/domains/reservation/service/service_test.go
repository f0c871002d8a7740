package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"nox/config"
	"nox/infras/otel/mocks"
	clubtableMocks "nox/internal/domains/clubtable/mocks"
	clubtableModel "nox/internal/domains/clubtable/model"
	eventMocks "nox/internal/domains/event/mocks"
	eventModel "nox/internal/domains/event/model"
	reservationMocks "nox/internal/domains/reservation/mocks"
	"nox/internal/domains/reservation/model"
	"nox/internal/domains/reservation/model/dto"
	"nox/internal/domains/reservation/service"
	"nox/shared/constant"
	"nox/shared/failure"
)

func testContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func TestReservationService_Reserve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockTableRepo := clubtableMocks.NewMockClubTable(ctrl)
	mockEventRepo := eventMocks.NewMockEvent(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockTableRepo, mockEventRepo, cfg, mockOtel)

	upcomingEvent := eventModel.Event{
		ID:     "event-id-123",
		ClubID: "club-id-123",
		Status: eventModel.StatusUpcoming,
	}

	freeTable := clubtableModel.ClubTable{
		ID:        "table-id-123",
		ClubID:    "club-id-123",
		Label:     "VIP-1",
		Available: true,
	}

	req := dto.CreateReservationRequest{
		EventID: "event-id-123",
		TableID: "table-id-123",
	}

	passthroughTransact := func() {
		mockRepo.EXPECT().
			Transact(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
				return fn(nil)
			})
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful reservation",
			setupMock: func() {
				mockEventRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(upcomingEvent, nil)

				mockTableRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(freeTable, nil)

				passthroughTransact()

				mockTableRepo.EXPECT().
					SetAvailabilityTx(gomock.Any(), gomock.Any(), "table-id-123", true, false, "test-user-id").
					Return(true, nil)

				mockRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "table already reserved",
			setupMock: func() {
				mockEventRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(upcomingEvent, nil)

				mockTableRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(freeTable, nil)

				passthroughTransact()

				mockTableRepo.EXPECT().
					SetAvailabilityTx(gomock.Any(), gomock.Any(), "table-id-123", true, false, "test-user-id").
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "event not found",
			setupMock: func() {
				mockEventRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(eventModel.Event{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "cancelled event",
			setupMock: func() {
				cancelled := upcomingEvent
				cancelled.Status = eventModel.StatusCancelled

				mockEventRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "table not found",
			setupMock: func() {
				mockEventRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(upcomingEvent, nil)

				mockTableRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(clubtableModel.ClubTable{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "table of another club",
			setupMock: func() {
				foreignTable := freeTable
				foreignTable.ClubID = "other-club-id"

				mockEventRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(upcomingEvent, nil)

				mockTableRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(foreignTable, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Reserve(testContext(), req)

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			}
		})
	}
}

func TestReservationService_Release(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockTableRepo := clubtableMocks.NewMockClubTable(ctrl)
	mockEventRepo := eventMocks.NewMockEvent(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockTableRepo, mockEventRepo, cfg, mockOtel)

	activeReservation := model.Reservation{
		ID:         "reservation-id-123",
		EventID:    "event-id-123",
		TableID:    "table-id-123",
		ReservedBy: "test-user-id",
		Status:     model.StatusActive,
	}

	passthroughTransact := func() {
		mockRepo.EXPECT().
			Transact(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
				return fn(nil)
			})
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful release",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeReservation, nil)

				passthroughTransact()

				mockRepo.EXPECT().
					ReleaseTx(gomock.Any(), gomock.Any(), "reservation-id-123", "test-user-id").
					Return(true, nil)

				mockTableRepo.EXPECT().
					SetAvailabilityTx(gomock.Any(), gomock.Any(), "table-id-123", false, true, "test-user-id").
					Return(true, nil)
			},
			wantErr: false,
		},
		{
			name: "already released",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeReservation, nil)

				passthroughTransact()

				mockRepo.EXPECT().
					ReleaseTx(gomock.Any(), gomock.Any(), "reservation-id-123", "test-user-id").
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "reservation not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Release(testContext(), "reservation-id-123")

			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			}
		})
	}
}

func TestReservationService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockTableRepo := clubtableMocks.NewMockClubTable(ctrl)
	mockEventRepo := eventMocks.NewMockEvent(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockTableRepo, mockEventRepo, cfg, mockOtel)

	t.Run("active reservation is refused", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{ID: "reservation-id-123", Status: model.StatusActive}, nil)

		err := svc.Delete(testContext(), "reservation-id-123")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("released reservation is deleted", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{ID: "reservation-id-123", Status: model.StatusReleased}, nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Delete(testContext(), "reservation-id-123")

		assert.NoError(t, err)
	})
}
