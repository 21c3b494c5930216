package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/barbershop-api/internal/config"
	"github.com/deppfellow/barbershop-api/internal/handler"
	"github.com/deppfellow/barbershop-api/internal/model"
	"github.com/deppfellow/barbershop-api/internal/model/booking"
	"github.com/deppfellow/barbershop-api/internal/model/catalog"
	"github.com/deppfellow/barbershop-api/internal/model/user"
	"github.com/deppfellow/barbershop-api/internal/server"
	"github.com/deppfellow/barbershop-api/static"
)

// recorder implements every service interface and counts calls.
type recorder struct {
	calls int
}

func (r *recorder) ListBookings(context.Context, int) (*booking.ListResponse, error) {
	r.calls++
	return &booking.ListResponse{Bookings: []booking.UserBooking{}}, nil
}

func (r *recorder) CreateBooking(context.Context, *booking.CreateBookingPayload) (*booking.CreateResponse, error) {
	r.calls++
	return &booking.CreateResponse{BookingID: 1, Message: "Booking created successfully"}, nil
}

func (r *recorder) UpdateStatus(context.Context, int, string) (*model.MessageResponse, error) {
	r.calls++
	return &model.MessageResponse{Message: "Booking updated successfully"}, nil
}

func (r *recorder) CancelBooking(context.Context, int) (*model.MessageResponse, error) {
	r.calls++
	return &model.MessageResponse{Message: "Booking cancelled successfully"}, nil
}

func (r *recorder) List(context.Context, *catalog.Query) (map[string]json.RawMessage, error) {
	r.calls++
	return map[string]json.RawMessage{"salons": json.RawMessage(`[]`)}, nil
}

func (r *recorder) GetUser(context.Context, *user.GetUserQuery) (any, error) {
	r.calls++
	return &user.Response{User: &user.User{ID: 1}}, nil
}

func (r *recorder) Upsert(context.Context, *user.UpsertUserPayload) (*user.Response, error) {
	r.calls++
	return &user.Response{User: &user.User{ID: 1}}, nil
}

func (r *recorder) AdjustBonusPoints(context.Context, *user.AdjustBonusPayload) (*user.Response, error) {
	r.calls++
	return &user.Response{User: &user.User{ID: 1}}, nil
}

func setup(t *testing.T) (*echo.Echo, *recorder) {
	return setupWith(t, func(*config.Config) {})
}

func setupWith(t *testing.T, configure func(cfg *config.Config)) (*echo.Echo, *recorder) {
	t.Helper()

	logger := zerolog.Nop()
	cfg := &config.Config{
		Primary:       config.Primary{Env: "test"},
		Server:        config.ServerConfig{CORSAllowedOrigins: []string{"*"}},
		RateLimit:     config.RateLimitConfig{RequestsPerSecond: 1000, Burst: 1000},
		Observability: config.DefaultObservabilityConfig(),
	}
	configure(cfg)

	s := &server.Server{
		Config: cfg,
		Logger: &logger,
	}

	rec := &recorder{}
	h := &handler.Handlers{
		Health:  handler.NewHealthHandler(s, func(context.Context) error { return nil }, nil),
		OpenAPI: handler.NewOpenAPIHandler(s, static.Files),
		Booking: handler.NewBookingHandler(s, rec),
		Catalog: handler.NewCatalogHandler(s, rec),
		User:    handler.NewUserHandler(s, rec),
	}

	return NewRouter(s, h), rec
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestRouter_PreflightNeverReachesServices(t *testing.T) {
	tests := []struct {
		path    string
		methods string
		headers string
	}{
		{"/bookings", "GET, POST, PUT, DELETE, OPTIONS", "Content-Type, X-User-Id"},
		{"/salons", "GET, OPTIONS", "Content-Type"},
		{"/users", "GET, POST, PUT, OPTIONS", "Content-Type"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			r, calls := setup(t)

			rec := serve(r, http.MethodOptions, tt.path)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Empty(t, rec.Body.String())
			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.methods, rec.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, tt.headers, rec.Header().Get("Access-Control-Allow-Headers"))
			assert.Zero(t, calls.calls)
		})
	}
}

func TestRouter_ResourceRoutes(t *testing.T) {
	r, calls := setup(t)

	rec := serve(r, http.MethodGet, "/salons")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"salons":[]}`, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = serve(r, http.MethodGet, "/bookings/?user_id=1")
	assert.Equal(t, http.StatusOK, rec.Code, "trailing slash is tolerated")

	rec = serve(r, http.MethodGet, "/users?user_id=1")
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 3, calls.calls)
}

func TestRouter_CatalogIsReadOnly(t *testing.T) {
	r, calls := setup(t)

	rec := serve(r, http.MethodPost, "/salons")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Zero(t, calls.calls)
}

func TestRouter_UnknownRoute(t *testing.T) {
	r, _ := setup(t)

	rec := serve(r, http.MethodGet, "/barbers")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Route not found", body["error"])
}

func TestRouter_SystemRoutes(t *testing.T) {
	r, _ := setup(t)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/status").Code)

	rec := serve(r, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "barbershop_http_requests_total")

	rec = serve(r, http.MethodGet, "/static/openapi.json")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"openapi"`)

	rec = serve(r, http.MethodGet, "/docs")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/static/openapi.json")
}
