package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"nox/config"
	"nox/infras/otel/mocks"
	clubtableMocks "nox/internal/domains/clubtable/mocks"
	"nox/internal/domains/clubtable/model"
	"nox/internal/domains/clubtable/model/dto"
	"nox/internal/domains/clubtable/service"
	"nox/shared/constant"
	gDto "nox/shared/dto"
	"nox/shared/failure"
)

func testContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func intPtr(i int) *int {
	return &i
}

func TestClubTableService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := clubtableMocks.NewMockClubTable(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	req := dto.CreateClubTableRequest{
		ClubID:   "club-id-123",
		Label:    "VIP-1",
		Capacity: 6,
		Price:    300,
	}

	t.Run("successful creation", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, table model.ClubTable) error {
				assert.Equal(t, "club-id-123", table.ClubID)
				assert.Equal(t, "VIP-1", table.Label)
				assert.True(t, table.Available)
				assert.Equal(t, "test-user-id", table.Metadata.CreatedBy)

				return nil
			})

		err := svc.Create(testContext(), req)
		assert.NoError(t, err)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		err := svc.Create(testContext(), req)
		assert.Error(t, err)
	})
}

func TestClubTableService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := clubtableMocks.NewMockClubTable(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	t.Run("table found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.ClubTable{
				ID:       "table-id-123",
				ClubID:   "club-id-123",
				Label:    "VIP-1",
				Capacity: 6,
			}, nil)

		res, err := svc.Get(testContext(), "table-id-123")
		assert.NoError(t, err)
		assert.Equal(t, "table-id-123", res.ID)
		assert.Equal(t, "VIP-1", res.Label)
	})

	t.Run("table not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.ClubTable{}, nil)

		_, err := svc.Get(testContext(), "missing-id")
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestClubTableService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := clubtableMocks.NewMockClubTable(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), params, gomock.Any()).
		Return([]model.ClubTable{
			{ID: "table-id-1", Label: "VIP-1"},
			{ID: "table-id-2", Label: "VIP-2"},
		}, nil)

	res, err := svc.GetAll(testContext(), params, gDto.FilterGroup{})
	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
	assert.Len(t, res.Tables, 2)
}

func TestClubTableService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := clubtableMocks.NewMockClubTable(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	t.Run("successful update", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "Stage Left", fields["label"])
				assert.Equal(t, intPtr(8), fields["capacity"])
				assert.Equal(t, "test-user-id", fields[constant.FieldModifiedBy])

				return nil
			})

		err := svc.Update(testContext(), dto.UpdateClubTableRequest{
			Label:    "Stage Left",
			Capacity: intPtr(8),
		}, "table-id-123")
		assert.NoError(t, err)
	})

	t.Run("empty patch is rejected before touching the repository", func(t *testing.T) {
		err := svc.Update(testContext(), dto.UpdateClubTableRequest{}, "table-id-123")
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("table not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Update(testContext(), dto.UpdateClubTableRequest{Label: "Stage Left"}, "missing-id")
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestClubTableService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := clubtableMocks.NewMockClubTable(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, &config.Config{}, mockOtel)

	t.Run("successful deletion", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Delete(testContext(), "table-id-123")
		assert.NoError(t, err)
	})

	t.Run("table not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(testContext(), "missing-id")
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
