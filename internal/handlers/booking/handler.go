package booking

import (
	"context"
	"net/http"
	"shareit/infras/otel"
	"shareit/internal/domains/booking/model/dto"
	"shareit/internal/domains/booking/service"
	"shareit/shared"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
	"shareit/shared/validator"
	"shareit/transport/http/response"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookerBookings)
		routerGroup.Get("/owner", handler.GetOwnerBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.DecideBooking)
	})
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Request a booking of an item for a time window. The booking starts WAITING.
// @Tags Booking
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Booker ID"
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Created booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	userID := shared.UserIDFromContext(ctx)

	booking, err := handler.service.Create(ctx, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Int64("userID", userID).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created successfully by user " + shared.Actor(userID))

	response.WithJSON(writer, http.StatusCreated, booking)
}

// DecideBooking approves or rejects a waiting booking.
// @Summary Approve or reject a booking
// @Description Only the owner of the booked item may decide, and only while the booking is WAITING.
// @Tags Booking
// @Produce json
// @Param X-Sharer-User-Id header int true "Owner ID"
// @Param id path int true "Booking ID"
// @Param approved query bool true "Decision"
// @Success 200 {object} response.Data[dto.BookingResponse] "Decided booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/{id} [patch]
func (handler *Handler) DecideBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DecideBooking")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	approved := shared.ConvertStringToBool(r.URL.Query().Get(constant.RequestParamApproved))
	if approved == nil {
		err = failure.BadRequestFromString("approved must be true or false")

		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	userID := shared.UserIDFromContext(ctx)

	booking, err := handler.service.Decide(ctx, userID, id, *approved)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Int64("bookingID", id).Msg("failed to decide booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking " + strconv.FormatInt(id, 10) + " decided as " + string(booking.Status))

	response.WithJSON(w, http.StatusOK, booking)
}

// GetBookingByID retrieves a booking visible to the booker or the item owner.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param X-Sharer-User-Id header int true "User ID"
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/{id} [get]
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Get(ctx, id, shared.UserIDFromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Int64("bookingID", id).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// GetBookerBookings lists the bookings made by the caller.
// @Summary List own bookings
// @Tags Booking
// @Produce json
// @Param X-Sharer-User-Id header int true "Booker ID"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "Bookings, newest start first"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings [get]
func (handler *Handler) GetBookerBookings(w http.ResponseWriter, r *http.Request) {
	handler.list(w, r, ".GetBookerBookings", handler.service.ListForBooker)
}

// GetOwnerBookings lists the bookings of items owned by the caller.
// @Summary List bookings of own items
// @Tags Booking
// @Produce json
// @Param X-Sharer-User-Id header int true "Owner ID"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "Bookings, newest start first"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /bookings/owner [get]
func (handler *Handler) GetOwnerBookings(w http.ResponseWriter, r *http.Request) {
	handler.list(w, r, ".GetOwnerBookings", handler.service.ListForOwner)
}

type listFunc func(ctx context.Context, userID int64, state string, page gDto.PageRequest) (dto.GetBookingsResponse, error)

func (handler *Handler) list(w http.ResponseWriter, r *http.Request, spanName string, fetch listFunc) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+spanName)
	defer scope.End()

	page := gDto.PageRequest{}
	if err := page.FromRequest(r); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	state := r.URL.Query().Get(constant.RequestParamState)
	if state == "" {
		state = constant.DefaultValueState
	}

	bookings, err := fetch(ctx, shared.UserIDFromContext(ctx), state, page)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("state", state).Msg("failed to list bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}
