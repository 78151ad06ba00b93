package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/booknest/storefront/api/middleware"
	"github.com/booknest/storefront/internal/catalog/catalogtest"
	"github.com/booknest/storefront/internal/checkout"
	"github.com/booknest/storefront/internal/orders"
	"github.com/booknest/storefront/internal/session"
	"github.com/booknest/storefront/pkg/logger"
	"github.com/booknest/storefront/pkg/types"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func newShopper(t *testing.T) *session.Session {
	t.Helper()
	seed, err := orders.SampleHistory()
	if err != nil {
		t.Fatalf("sample history: %v", err)
	}
	s, err := session.New("shopper-1", session.Params{
		Catalog: catalogtest.Default(t),
		History: seed,
		Settler: checkout.NewSimulatedSettler(0),
		Logger:  testLogger(),
	})
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s
}

type call struct {
	method string
	target string
	body   string
	params map[string]string
}

// serve runs h with s attached as the shopper session and params installed
// as chi URL parameters. A nil session exercises the unmounted path.
func serve(t *testing.T, h http.HandlerFunc, s *session.Session, c call) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if c.body != "" {
		body = strings.NewReader(c.body)
	}
	req := httptest.NewRequest(c.method, c.target, body)
	if c.body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	ctx := req.Context()
	if len(c.params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range c.params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	if s != nil {
		ctx = middleware.WithSession(ctx, s)
	}

	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req.WithContext(ctx))
	return resp
}

func decodeData(t *testing.T, resp *httptest.ResponseRecorder, dest any) {
	t.Helper()
	envelope := struct {
		Data any `json:"data"`
	}{Data: dest}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) types.APIError {
	t.Helper()
	var envelope types.ErrorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	return envelope.Error
}

func expectStatus(t *testing.T, resp *httptest.ResponseRecorder, want int) {
	t.Helper()
	if resp.Code != want {
		t.Fatalf("expected %d got %d: %s", want, resp.Code, resp.Body.String())
	}
}

func expectErrorCode(t *testing.T, resp *httptest.ResponseRecorder, status int, code string) types.APIError {
	t.Helper()
	expectStatus(t, resp, status)
	apiErr := decodeError(t, resp)
	if apiErr.Code != code {
		t.Fatalf("expected code %s got %s (%s)", code, apiErr.Code, apiErr.Message)
	}
	return apiErr
}
