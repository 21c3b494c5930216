package router

import (
	"context"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/awslabs/aws-lambda-go-api-proxy/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// responseHeader reads a header from either header map of a proxy response.
func responseHeader(resp events.APIGatewayProxyResponse, key string) string {
	if v, ok := resp.Headers[key]; ok {
		return v
	}
	return http.Header(resp.MultiValueHeaders).Get(key)
}

func gatewayRequest(method, path, body string, query map[string]string) events.APIGatewayProxyRequest {
	req := events.APIGatewayProxyRequest{
		HTTPMethod:            method,
		Path:                  path,
		QueryStringParameters: query,
		Headers:               map[string]string{"Origin": "https://booking.example.com"},
		Body:                  body,
		RequestContext: events.APIGatewayProxyRequestContext{
			Identity: events.APIGatewayRequestIdentity{SourceIP: "203.0.113.10"},
		},
	}
	if body != "" {
		req.Headers["Content-Type"] = "application/json"
	}
	return req
}

func TestLambda_ProxyResponses(t *testing.T) {
	r, calls := setup(t)
	adapter := echoadapter.New(r)

	tests := []struct {
		name       string
		req        events.APIGatewayProxyRequest
		wantStatus int
		wantBody   string
		wantMethod string
	}{
		{
			name:       "bookings preflight",
			req:        gatewayRequest(http.MethodOptions, "/bookings", "", nil),
			wantStatus: http.StatusOK,
			wantMethod: "GET, POST, PUT, DELETE, OPTIONS",
		},
		{
			name:       "salons preflight",
			req:        gatewayRequest(http.MethodOptions, "/salons", "", nil),
			wantStatus: http.StatusOK,
			wantMethod: "GET, OPTIONS",
		},
		{
			name:       "catalog listing",
			req:        gatewayRequest(http.MethodGet, "/salons", "", map[string]string{"type": "salons"}),
			wantStatus: http.StatusOK,
			wantBody:   `{"salons":[]}`,
		},
		{
			name: "booking creation",
			req: gatewayRequest(http.MethodPost, "/bookings",
				`{"user_id":1,"salon_id":2,"master_id":3,"service_id":4,"booking_date":"2026-11-02","booking_time":"10:30"}`, nil),
			wantStatus: http.StatusCreated,
			wantBody:   `{"booking_id":1,"message":"Booking created successfully"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := adapter.ProxyWithContext(context.Background(), tt.req)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.False(t, resp.IsBase64Encoded)
			assert.Equal(t, "*", responseHeader(resp, "Access-Control-Allow-Origin"))

			if tt.wantMethod != "" {
				assert.Equal(t, tt.wantMethod, responseHeader(resp, "Access-Control-Allow-Methods"))
				assert.Empty(t, resp.Body)
				return
			}
			assert.JSONEq(t, tt.wantBody, resp.Body)
		})
	}

	assert.Equal(t, 2, calls.calls)
}
