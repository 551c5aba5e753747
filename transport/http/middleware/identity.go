package middleware

import (
	"context"
	"net/http"
	"shareit/infras/otel"
	"shareit/permissions"
	"shareit/shared/constant"
	"shareit/shared/failure"
	"shareit/transport/http/response"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Identity reads the acting user from X-Sharer-User-Id. There is no authentication:
// the header is trusted as is.
type Identity interface {
	Identify(next http.Handler) http.Handler
}

type identityImpl struct {
	otel       otel.Otel
	permission *permissions.PermissionData
}

func NewIdentityMiddleware(otel otel.Otel, permission *permissions.PermissionData) Identity {
	return &identityImpl{
		otel:       otel,
		permission: permission,
	}
}

func (m *identityImpl) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "identity.middleware")

		method := request.Method
		path := m.routePattern(request)

		scope.SetAttributes(map[string]any{
			"middleware.type": "identity",
			"http.path":       path,
			"http.method":     method,
		})

		header := strings.TrimSpace(request.Header.Get(constant.RequestHeaderSharerUserID))

		if header == "" {
			if m.skip(path, method) {
				scope.End()
				next.ServeHTTP(writer, request)

				return
			}

			scope.TraceError(failure.MissingSharerError)
			scope.End()
			response.WithError(writer, failure.MissingSharerError)

			return
		}

		userID, err := strconv.ParseInt(header, 10, 64)
		if err != nil || userID <= 0 {
			err := failure.BadRequestf("Invalid %s header: %s", constant.RequestHeaderSharerUserID, header)

			scope.TraceError(err)
			scope.End()
			response.WithError(writer, err)

			return
		}

		scope.SetAttribute("user.id", userID)
		scope.End()

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, userID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func (m *identityImpl) skip(path, method string) bool {
	if m.permission == nil {
		return false
	}

	return m.permission.Skip || m.permission.FindPermissions(path, method).Skip
}

func (m *identityImpl) routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return request.URL.Path
	}

	if pattern := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path); pattern != "" {
		return pattern
	}

	return request.URL.Path
}
