package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shareit/infras/otel/mocks"
	itemMocks "shareit/internal/domains/item/mocks"
	itemModel "shareit/internal/domains/item/model"
	requestMocks "shareit/internal/domains/request/mocks"
	"shareit/internal/domains/request/model"
	"shareit/internal/domains/request/model/dto"
	"shareit/internal/domains/request/service"
	userMocks "shareit/internal/domains/user/mocks"
	"shareit/shared/clock"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
	gModel "shareit/shared/model"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T) (service.Request, *requestMocks.MockRequest, *itemMocks.MockItem, *userMocks.MockUser) {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := requestMocks.NewMockRequest(ctrl)
	items := itemMocks.NewMockItem(ctrl)
	users := userMocks.NewMockUser(ctrl)

	return service.New(repo, items, users, clock.NewMockClock(now), mocks.NewOtel()), repo, items, users
}

func ptr(v int64) *int64 {
	return &v
}

func TestRequestService_Create(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *requestMocks.MockRequest, users *userMocks.MockUser)
		wantCode  int
	}{
		{
			name: "successful creation",
			setupMock: func(repo *requestMocks.MockRequest, users *userMocks.MockUser) {
				users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().
					InsertReturningID(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, request model.Request) (int64, error) {
						assert.Equal(t, int64(2), request.RequesterID)
						assert.Equal(t, now, request.CreatedAt)

						return 6, nil
					})
			},
		},
		{
			name: "unknown requester",
			setupMock: func(_ *requestMocks.MockRequest, users *userMocks.MockUser) {
				users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			setupMock: func(repo *requestMocks.MockRequest, users *userMocks.MockUser) {
				users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().InsertReturningID(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, users := newService(t)
			tt.setupMock(repo, users)

			res, err := svc.Create(context.Background(), 2, dto.CreateRequest{Description: "Need a ladder"})

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(6), res.ID)
			assert.Empty(t, res.Items)
		})
	}
}

func TestRequestService_GetOwn(t *testing.T) {
	svc, repo, items, users := newService(t)

	users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	repo.EXPECT().
		GetAll(gomock.Any(), gDto.QueryParams{SortBy: "item_requests.created_at", SortDir: gDto.SortDirDesc}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Request, error) {
			where, _ := filter.GetWhereClause()
			assert.Equal(t, "(item_requests.requester_id = :requester_id)", where)

			return []model.Request{{ID: 2}, {ID: 1}}, nil
		})
	items.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]itemModel.Item{{ID: 5, RequestID: ptr(1)}, {ID: 6, RequestID: ptr(1)}}, nil)

	res, err := svc.GetOwn(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, int64(2), res[0].ID)
	assert.Empty(t, res[0].Items)
	assert.Len(t, res[1].Items, 2)
}

func TestRequestService_GetAll(t *testing.T) {
	t.Run("requests of other users", func(t *testing.T) {
		svc, repo, _, users := newService(t)

		users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().
			GetAll(gomock.Any(), gDto.QueryParams{Page: 1, Limit: 10, SortBy: "item_requests.created_at", SortDir: gDto.SortDirDesc}, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Request, error) {
				where, _ := filter.GetWhereClause()
				assert.Equal(t, "(item_requests.requester_id != :requester_id)", where)

				return nil, nil
			})

		res, err := svc.GetAll(context.Background(), 2, gDto.NewPageRequest(0, 10))

		require.NoError(t, err)
		assert.NotNil(t, res)
		assert.Empty(t, res)
	})

	t.Run("invalid size", func(t *testing.T) {
		svc, _, _, _ := newService(t)

		_, err := svc.GetAll(context.Background(), 2, gDto.NewPageRequest(0, 0))

		assert.ErrorIs(t, err, failure.InvalidSizeParam)
	})
}

func TestRequestService_Get(t *testing.T) {
	t.Run("found with items", func(t *testing.T) {
		svc, repo, items, users := newService(t)

		users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Request{ID: 3, Description: "Tent", Metadata: gModel.Metadata{CreatedAt: now}}, nil)
		items.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]itemModel.Item{{ID: 8, Name: "Tent", RequestID: ptr(3)}}, nil)

		res, err := svc.Get(context.Background(), 2, 3)

		require.NoError(t, err)
		assert.Equal(t, "Tent", res.Description)
		require.Len(t, res.Items, 1)
		assert.Equal(t, int64(8), res.Items[0].ID)
	})

	t.Run("missing request", func(t *testing.T) {
		svc, repo, _, users := newService(t)

		users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Request{}, nil)

		_, err := svc.Get(context.Background(), 2, 3)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.EqualError(t, err, "Request id=3 not found")
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, _, _, users := newService(t)

		users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.Get(context.Background(), 2, 3)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
