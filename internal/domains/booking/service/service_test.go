package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shareit/config"
	kafkaMocks "shareit/infras/kafka/mocks"
	"shareit/infras/otel/mocks"
	bookingMocks "shareit/internal/domains/booking/mocks"
	"shareit/internal/domains/booking/model"
	"shareit/internal/domains/booking/model/dto"
	"shareit/internal/domains/booking/service"
	itemMocks "shareit/internal/domains/item/mocks"
	itemModel "shareit/internal/domains/item/model"
	userMocks "shareit/internal/domains/user/mocks"
	"shareit/shared"
	"shareit/shared/clock"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
)

const (
	ownerID  int64 = 1
	bookerID int64 = 2
	itemID   int64 = 5
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type deps struct {
	repo      *bookingMocks.MockBooking
	itemRepo  *itemMocks.MockItem
	userRepo  *userMocks.MockUser
	publisher *kafkaMocks.MockClient
	clock     *clock.MockClock
}

func newService(t *testing.T) (service.Booking, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)

	d := deps{
		repo:      bookingMocks.NewMockBooking(ctrl),
		itemRepo:  itemMocks.NewMockItem(ctrl),
		userRepo:  userMocks.NewMockUser(ctrl),
		publisher: kafkaMocks.NewMockClient(ctrl),
		clock:     clock.NewMockClock(now),
	}

	cfg := &config.Config{}
	cfg.Kafka.Topic.Booking = "shareit.booking"

	return service.New(d.repo, d.itemRepo, d.userRepo, d.publisher, d.clock, cfg, mocks.NewOtel()), d
}

func createRequest(start, end time.Time) dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		ItemID: itemID,
		Start:  start.Format(time.RFC3339),
		End:    end.Format(time.RFC3339),
	}
}

func drill(available bool) itemModel.Item {
	return itemModel.Item{ID: itemID, Name: "Drill", OwnerID: ownerID, Available: available}
}

func TestBookingService_Create(t *testing.T) {
	day := 24 * time.Hour

	tests := []struct {
		name      string
		bookerID  int64
		req       dto.CreateBookingRequest
		setupMock func(d deps)
		wantCode  int
		wantErr   string
	}{
		{
			name:     "successful creation",
			bookerID: bookerID,
			req:      createRequest(now.Add(day), now.Add(2*day)),
			setupMock: func(d deps) {
				d.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				d.itemRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(drill(true), nil)
				d.repo.EXPECT().InsertReturningID(gomock.Any(), gomock.Any()).Return(int64(12), nil)
				d.publisher.EXPECT().SendMessages(gomock.Any(), "shareit.booking", gomock.Any()).Return(nil)
			},
		},
		{
			name:      "end before start",
			bookerID:  bookerID,
			req:       createRequest(now.Add(2*day), now.Add(day)),
			setupMock: func(deps) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "start in the past",
			bookerID:  bookerID,
			req:       createRequest(now.Add(-time.Second), now.Add(day)),
			setupMock: func(deps) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "missing window",
			bookerID:  bookerID,
			req:       dto.CreateBookingRequest{ItemID: itemID},
			setupMock: func(deps) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "unparseable window",
			bookerID:  bookerID,
			req:       dto.CreateBookingRequest{ItemID: itemID, Start: "soon", End: "later"},
			setupMock: func(deps) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:     "unknown booker",
			bookerID: 99,
			req:      createRequest(now.Add(day), now.Add(2*day)),
			setupMock: func(d deps) {
				d.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
			wantErr:  "User with id=99 not found",
		},
		{
			name:     "unavailable item",
			bookerID: bookerID,
			req:      createRequest(now.Add(day), now.Add(2*day)),
			setupMock: func(d deps) {
				d.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				d.itemRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(drill(false), nil)
			},
			wantCode: http.StatusBadRequest,
			wantErr:  "Item with this id=5 not found or not available",
		},
		{
			name:     "owner books own item",
			bookerID: ownerID,
			req:      createRequest(now.Add(day), now.Add(2*day)),
			setupMock: func(d deps) {
				d.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				d.itemRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(drill(true), nil)
			},
			wantCode: http.StatusNotFound,
			wantErr:  "Owner cannot booking his item",
		},
		{
			name:     "item removed before insert",
			bookerID: bookerID,
			req:      createRequest(now.Add(day), now.Add(2*day)),
			setupMock: func(d deps) {
				d.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				d.itemRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(drill(true), nil)
				d.repo.EXPECT().InsertReturningID(gomock.Any(), gomock.Any()).Return(int64(0), &pq.Error{Code: "23503"})
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "repository error",
			bookerID: bookerID,
			req:      createRequest(now.Add(day), now.Add(2*day)),
			setupMock: func(d deps) {
				d.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				d.itemRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(drill(true), nil)
				d.repo.EXPECT().InsertReturningID(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)
			tt.setupMock(d)

			res, err := svc.Create(context.Background(), tt.bookerID, tt.req)
			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantErr != "" {
					assert.EqualError(t, err, tt.wantErr)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(12), res.ID)
			assert.Equal(t, model.StatusWaiting, res.Status)
			assert.Equal(t, dto.ItemResponse{ID: itemID, Name: "Drill"}, res.Item)
			assert.Equal(t, bookerID, res.Booker.ID)
		})
	}
}

func TestBookingService_CreateThenGet(t *testing.T) {
	svc, d := newService(t)

	var stored model.Booking

	d.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	d.itemRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(drill(true), nil)
	d.publisher.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.repo.EXPECT().
		InsertReturningID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking model.Booking) (int64, error) {
			stored = booking
			stored.ID = 12
			stored.ItemName = "Drill"
			stored.ItemOwnerID = ownerID

			return stored.ID, nil
		})
	d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, gDto.FilterGroup, ...string) (model.Booking, error) {
		return stored, nil
	})

	start := now.Add(24 * time.Hour)
	end := now.Add(48 * time.Hour)

	created, err := svc.Create(context.Background(), bookerID, createRequest(start, end))
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	fetched, err := svc.Get(context.Background(), created.ID, bookerID)
	require.NoError(t, err)

	assert.Equal(t, itemID, fetched.Item.ID)
	assert.Equal(t, shared.FormatDateTime(start), fetched.Start)
	assert.Equal(t, shared.FormatDateTime(end), fetched.End)
	assert.Equal(t, model.StatusWaiting, fetched.Status)
	assert.Equal(t, created, fetched)
}

func TestBookingService_Decide(t *testing.T) {
	waiting := model.Booking{ID: 12, ItemID: itemID, BookerID: bookerID, ItemOwnerID: ownerID, Status: model.StatusWaiting}
	approved := waiting
	approved.Status = model.StatusApproved

	tests := []struct {
		name       string
		actor      int64
		approve    bool
		setupMock  func(d deps)
		wantStatus model.Status
		wantCode   int
		wantErr    string
	}{
		{
			name:    "owner approves",
			actor:   ownerID,
			approve: true,
			setupMock: func(d deps) {
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(waiting, nil)
				d.repo.EXPECT().UpdateStatus(gomock.Any(), int64(12), model.StatusApproved, "1", now).Return(true, nil)
				d.publisher.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: model.StatusApproved,
		},
		{
			name:    "owner rejects",
			actor:   ownerID,
			approve: false,
			setupMock: func(d deps) {
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(waiting, nil)
				d.repo.EXPECT().UpdateStatus(gomock.Any(), int64(12), model.StatusRejected, "1", now).Return(true, nil)
				d.publisher.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
			},
			wantStatus: model.StatusRejected,
		},
		{
			name:  "missing booking",
			actor: ownerID,
			setupMock: func(d deps) {
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantCode: http.StatusNotFound,
			wantErr:  "Booking with id=12 not found",
		},
		{
			name:  "already decided is reported before ownership",
			actor: bookerID,
			setupMock: func(d deps) {
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(approved, nil)
			},
			wantCode: http.StatusBadRequest,
			wantErr:  "Booking status is not WAITING",
		},
		{
			name:    "non owner",
			actor:   bookerID,
			approve: true,
			setupMock: func(d deps) {
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(waiting, nil)
			},
			wantCode: http.StatusNotFound,
			wantErr:  "Booking id=12 not found",
		},
		{
			name:    "concurrent decision wins",
			actor:   ownerID,
			approve: true,
			setupMock: func(d deps) {
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(waiting, nil)
				d.repo.EXPECT().UpdateStatus(gomock.Any(), int64(12), model.StatusApproved, "1", now).Return(false, nil)
			},
			wantCode: http.StatusBadRequest,
			wantErr:  "Booking status is not WAITING",
		},
		{
			name:    "update error",
			actor:   ownerID,
			approve: true,
			setupMock: func(d deps) {
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(waiting, nil)
				d.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)
			tt.setupMock(d)

			res, err := svc.Decide(context.Background(), tt.actor, 12, tt.approve)
			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantErr != "" {
					assert.EqualError(t, err, tt.wantErr)
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
		})
	}
}

// A approves, then B tries to reject: B sees the status error whatever its relation to the item.
func TestBookingService_DecideTwice(t *testing.T) {
	svc, d := newService(t)

	booking := model.Booking{ID: 12, ItemID: itemID, BookerID: bookerID, ItemOwnerID: ownerID, Status: model.StatusWaiting}

	d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, gDto.FilterGroup, ...string) (model.Booking, error) {
		return booking, nil
	}).Times(2)
	d.repo.EXPECT().
		UpdateStatus(gomock.Any(), int64(12), model.StatusApproved, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, status model.Status, _ string, _ time.Time) (bool, error) {
			booking.Status = status

			return true, nil
		})
	d.publisher.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.Decide(context.Background(), ownerID, 12, true)
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, res.Status)
	time.Sleep(10 * time.Millisecond)

	_, err = svc.Decide(context.Background(), bookerID, 12, false)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.EqualError(t, err, "Booking status is not WAITING")
}

func TestBookingService_Get(t *testing.T) {
	booking := model.Booking{ID: 12, ItemID: itemID, BookerID: bookerID, ItemOwnerID: ownerID, Status: model.StatusWaiting}

	tests := []struct {
		name     string
		userID   int64
		stored   model.Booking
		repoErr  error
		wantCode int
	}{
		{name: "booker", userID: bookerID, stored: booking},
		{name: "owner", userID: ownerID, stored: booking},
		{name: "stranger", userID: 3, stored: booking, wantCode: http.StatusNotFound},
		{name: "missing", userID: bookerID, stored: model.Booking{}, wantCode: http.StatusNotFound},
		{name: "repository error", userID: bookerID, repoErr: errors.New("database error"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)
			d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.stored, tt.repoErr)

			res, err := svc.Get(context.Background(), 12, tt.userID)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantCode == http.StatusNotFound {
					assert.EqualError(t, err, "Booking with this id=12 not found")
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(12), res.ID)
		})
	}
}
