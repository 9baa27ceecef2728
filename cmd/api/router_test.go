package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xavierca1/ligue-landing/internal/entity"
	"github.com/xavierca1/ligue-landing/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-landing/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-landing/internal/mocks"
	"github.com/xavierca1/ligue-landing/internal/usecase"
)

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

func testRouter(leads *mocks.MockLeadRepository) http.Handler {
	forms := new(mocks.MockContactFormRepository)
	subs := new(mocks.MockNewsletterRepository)
	events := new(mocks.MockAnalyticsEventRepository)

	return NewRouter(Routes{
		Leads: handlers.NewLeadHandler(
			usecase.NewCreateLeadUseCase(leads, nil),
			usecase.NewGetLeadsUseCase(leads),
			usecase.NewUpdateLeadStatusUseCase(leads, nil),
		),
		Contact: handlers.NewContactFormHandler(usecase.NewCreateContactFormUseCase(leads, forms, nil, nil)),
		Newsletter: handlers.NewNewsletterHandler(
			usecase.NewCreateNewsletterSubscriptionUseCase(subs, nil),
			usecase.NewUnsubscribeNewsletterUseCase(subs, nil),
			usecase.NewGetNewsletterSubscriptionsUseCase(subs),
		),
		Analytics:   handlers.NewAnalyticsHandler(usecase.NewCreateAnalyticsEventUseCase(events)),
		Health:      handlers.NewHealthHandler(okPinger{}, nil, false, "test"),
		Logger:      zap.NewNop(),
		CORSOrigins: []string{"https://landing.example.com"},
	})
}

func TestRouter_CreateLeadRoute(t *testing.T) {
	leads := new(mocks.MockLeadRepository)
	leads.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Lead).ID = 1
	}).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/createLead", strings.NewReader(`{"email":"a@x.io"}`))
	rec := httptest.NewRecorder()
	testRouter(leads).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	router := testRouter(new(mocks.MockLeadRepository))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",path="/healthcheck",status="200"}`)
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := testRouter(new(mocks.MockLeadRepository))

	req := httptest.NewRequest(http.MethodOptions, "/createContactForm", nil)
	req.Header.Set("Origin", "https://landing.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "https://landing.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_UnknownProcedure(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter(new(mocks.MockLeadRepository)).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/deleteEverything", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
