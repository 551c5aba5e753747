package request

import (
	"net/http"
	"shareit/infras/otel"
	"shareit/internal/domains/request/model/dto"
	"shareit/internal/domains/request/service"
	"shareit/shared"
	"shareit/shared/constant"
	gDto "shareit/shared/dto"
	"shareit/shared/validator"
	"shareit/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Request
	otel    otel.Otel
}

func New(service service.Request, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/requests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRequest)
		routerGroup.Get("/", handler.GetOwnRequests)
		routerGroup.Get("/all", handler.GetOtherRequests)
		routerGroup.Get("/{id}", handler.GetRequestByID)
	})
}

// CreateRequest asks other users for an item that is not listed yet.
// @Summary Create an item request
// @Tags Request
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Requester ID"
// @Param request body dto.CreateRequest true "Create Request"
// @Success 201 {object} response.Data[dto.RequestResponse] "Created request"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /requests [post]
func (handler *Handler) CreateRequest(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRequest")
	defer scope.End()

	req := dto.CreateRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, shared.UserIDFromContext(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to create request")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetOwnRequests lists the caller's requests, newest first, with the items offered for them.
// @Summary List own requests
// @Tags Request
// @Produce json
// @Param X-Sharer-User-Id header int true "Requester ID"
// @Success 200 {object} response.Data[dto.GetRequestsResponse] "Own requests"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /requests [get]
func (handler *Handler) GetOwnRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnRequests")
	defer scope.End()

	res, err := handler.service.GetOwn(ctx, shared.UserIDFromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to get own requests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetOtherRequests pages through the requests of other users.
// @Summary List requests of other users
// @Tags Request
// @Produce json
// @Param X-Sharer-User-Id header int true "User ID"
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} response.Data[dto.GetRequestsResponse] "Requests of other users"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /requests/all [get]
func (handler *Handler) GetOtherRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOtherRequests")
	defer scope.End()

	page := gDto.PageRequest{}
	if err := page.FromRequest(r); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetAll(ctx, shared.UserIDFromContext(ctx), page)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to get requests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetRequestByID returns one request with the items offered for it.
// @Summary Get a request by ID
// @Tags Request
// @Produce json
// @Param X-Sharer-User-Id header int true "User ID"
// @Param id path int true "Request ID"
// @Success 200 {object} response.Data[dto.RequestResponse] "Request details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /requests/{id} [get]
func (handler *Handler) GetRequestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRequestByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Get(ctx, shared.UserIDFromContext(ctx), id)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Int64("requestID", id).Msg("failed to get request by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
