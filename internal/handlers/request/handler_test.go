package request_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shareit/infras/otel/mocks"
	requestMocks "shareit/internal/domains/request/mocks"
	"shareit/internal/domains/request/model/dto"
	"shareit/internal/handlers/request"
	"shareit/permissions"
	gDto "shareit/shared/dto"
	"shareit/shared/failure"
	"shareit/transport/http/middleware"
)

func newServer(t *testing.T) (*httptest.Server, *requestMocks.MockRequestService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := requestMocks.NewMockRequestService(ctrl)

	handler := request.New(svc, mocks.NewOtel())
	identity := middleware.NewIdentityMiddleware(mocks.NewOtel(), permissions.Get())

	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Use(identity.Identify)
		handler.Router(r)
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return server, svc
}

func do(t *testing.T, server *httptest.Server, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, server.URL+path, strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("X-Sharer-User-Id", "4")

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	defer res.Body.Close()

	decoded := map[string]any{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&decoded))

	return res, decoded
}

func TestHandler_CreateRequest(t *testing.T) {
	server, svc := newServer(t)

	svc.EXPECT().
		Create(gomock.Any(), int64(4), dto.CreateRequest{Description: "Need a ladder"}).
		Return(dto.RequestResponse{ID: 1, Description: "Need a ladder", Items: []dto.OfferedItem{}}, nil)

	res, body := do(t, server, http.MethodPost, "/requests", `{"description":"Need a ladder"}`)

	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Equal(t, []any{}, body["data"].(map[string]any)["items"])

	res, _ = do(t, server, http.MethodPost, "/requests", `{"description":""}`)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestHandler_ListRequests(t *testing.T) {
	server, svc := newServer(t)

	svc.EXPECT().GetOwn(gomock.Any(), int64(4)).Return(dto.GetRequestsResponse{{ID: 2}, {ID: 1}}, nil)
	svc.EXPECT().GetAll(gomock.Any(), int64(4), gDto.PageRequest{From: 10, Size: 10}).Return(dto.GetRequestsResponse{}, nil)

	res, body := do(t, server, http.MethodGet, "/requests", "")
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, body["data"], 2)

	res, _ = do(t, server, http.MethodGet, "/requests/all?from=10", "")
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestHandler_GetRequestByID(t *testing.T) {
	server, svc := newServer(t)

	svc.EXPECT().Get(gomock.Any(), int64(4), int64(99)).Return(dto.RequestResponse{}, failure.NotFoundf("Request id=%d not found", 99))

	res, body := do(t, server, http.MethodGet, "/requests/99", "")

	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "Request id=99 not found", body["error"])
}
