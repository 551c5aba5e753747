package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"shareit/config"
	"shareit/infras/kafka"
	"shareit/infras/metrics"
	"shareit/infras/otel"
	"shareit/internal/domains/booking/model"
	"shareit/internal/domains/booking/model/dto"
	"shareit/internal/domains/booking/repository"
	itemRepo "shareit/internal/domains/item/repository"
	userModel "shareit/internal/domains/user/model"
	userRepo "shareit/internal/domains/user/repository"
	"shareit/shared"
	"shareit/shared/clock"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
	gRepo "shareit/shared/repository"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	eventHeader = "event"
)

// Projection computes last and next approved bookings for a batch of items.
type Projection interface {
	ProjectLastAndNext(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]dto.LastNext, error)
}

type Booking interface {
	Projection
	Create(ctx context.Context, bookerID int64, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Decide(ctx context.Context, ownerID, bookingID int64, approve bool) (dto.BookingResponse, error)
	Get(ctx context.Context, bookingID, userID int64) (dto.BookingResponse, error)
	ListForBooker(ctx context.Context, userID int64, state string, page gDto.PageRequest) (dto.GetBookingsResponse, error)
	ListForOwner(ctx context.Context, userID int64, state string, page gDto.PageRequest) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	itemRepo itemRepo.Item
	userRepo userRepo.User
	kafka    kafka.Client
	clock    clock.Clock
	cfg      *config.Config
	otel     otel.Otel
}

func New(
	repo repository.Booking,
	itemRepo itemRepo.Item,
	userRepo userRepo.User,
	kafka kafka.Client,
	clock clock.Clock,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:     repo,
		itemRepo: itemRepo,
		userRepo: userRepo,
		kafka:    kafka,
		clock:    clock,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, bookerID int64, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := s.clock.Now()

	start, end, err := req.Window()
	if err != nil {
		log.Warn().Err(err).Msg("unparseable booking window")

		return res, failure.BadRequestFromString(invalidWindowMessage) // nolint:wrapcheck
	}

	if err = validateWindow(start, end, now); err != nil {
		metrics.IncBookingRejected(rejectReasonWindow)

		return res, err
	}

	if err = s.ensureUser(ctx, bookerID); err != nil {
		return res, err
	}

	item, err := s.admitBooking(ctx, req.ItemID, bookerID)
	if err != nil {
		return res, err
	}

	booking := req.ToModel(bookerID, start, end, now)

	booking.ID, err = s.repo.InsertReturningID(ctx, booking)
	if gRepo.IsForeignKeyViolation(err) {
		log.Warn().Err(err).Int64("itemID", req.ItemID).Msg("item or booker removed while booking")

		return res, failure.NotFoundf("Item with this id=%d not found", req.ItemID) // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	booking.ItemName = item.Name
	booking.ItemOwnerID = item.OwnerID

	metrics.IncBookingCreated(string(booking.Status))
	s.publish(ctx, model.EventBookingCreated, booking, now)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Decide(ctx context.Context, ownerID, bookingID int64, approve bool) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Decide")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := s.clock.Now()

	booking, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFoundf("Booking with id=%d not found", bookingID) // nolint:wrapcheck
	}

	if booking.Status != model.StatusWaiting {
		return res, failure.BadRequestFromString(notWaitingMessage) // nolint:wrapcheck
	}

	if booking.ItemOwnerID != ownerID {
		log.Warn().Int64("bookingID", bookingID).Int64("userID", ownerID).Msg("decision attempted by non-owner")

		return res, failure.NotFoundf("Booking id=%d not found", bookingID) // nolint:wrapcheck
	}

	status := model.Decision(approve)

	updated, err := s.repo.UpdateStatus(ctx, bookingID, status, shared.Actor(ownerID), now)
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	if !updated {
		log.Warn().Int64("bookingID", bookingID).Msg("booking decided concurrently")

		return res, failure.BadRequestFromString(notWaitingMessage) // nolint:wrapcheck
	}

	booking.Status = status
	booking.ModifiedAt = now
	booking.ModifiedBy = shared.Actor(ownerID)

	metrics.IncBookingDecision(string(status))
	s.publish(ctx, model.EventBookingDecided, booking, now)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, bookingID, userID int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	// Absent and not visible are reported the same way.
	if booking.ID == 0 || !booking.IsVisibleTo(userID) {
		return res, failure.NotFoundf("Booking with this id=%d not found", bookingID) // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) ensureUser(ctx context.Context, userID int64) error {
	exist, err := s.userRepo.Exist(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !exist {
		return failure.NotFoundf("User with id=%d not found", userID) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) publish(ctx context.Context, eventType string, booking model.Booking, now time.Time) {
	go func() {
		c, scope := s.otel.NewScope(context.WithoutCancel(ctx), constant.OtelEventScopeName, constant.OtelEventScopeName+"."+eventType)
		defer scope.End()

		message := kafka.Message{
			Key:     strconv.FormatInt(booking.ID, 10),
			Value:   model.NewEvent(eventType, booking, now),
			Headers: map[string]string{eventHeader: eventType},
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topic.Booking, message); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Int64("bookingID", booking.ID).Str("event", eventType).Msg("failed to publish booking event")
		}
	}()
}
