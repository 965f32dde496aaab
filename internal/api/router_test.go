package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"debt-portal/internal/config"
	"debt-portal/internal/handlers"
	"debt-portal/internal/middleware"
	"debt-portal/internal/models"
	"debt-portal/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RouterTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockGateway *service_mocks.MockRecordGatewayInterface
	mockProber  *service_mocks.MockUpstreamProberInterface
	cfg         *config.Config
	echo        *echo.Echo
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockGateway = service_mocks.NewMockRecordGatewayInterface(s.ctrl)
	s.mockProber = service_mocks.NewMockUpstreamProberInterface(s.ctrl)
	s.cfg = &config.Config{
		Server: config.ServerConfig{CORSAllowOrigins: []string{"*"}},
		Security: config.SecurityConfig{
			BodyLimit: "1K",
		},
	}
	s.echo = s.build()
}

func (s *RouterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RouterTestSuite) build() *echo.Echo {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "router_test_total", Help: "test"}))

	return SetupRoutes(s.cfg, Handlers{
		Account: handlers.NewAccountHandler(s.mockGateway),
		Debt:    handlers.NewDebtHandler(s.mockGateway),
		Health:  handlers.NewHealthCheckHandler(s.cfg, s.mockProber, nil),
	}, registry)
}

func (s *RouterTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) TestRoutesReachHandlers() {
	s.mockProber.EXPECT().Probe(gomock.Any()).Return(models.ConnectivityResult{Reason: "CACHE_REST_ENDPOINT not configured"})
	s.mockGateway.EXPECT().GetAccount(gomock.Any(), "12345").Return(&models.AccountRecord{AccountNumber: "12345"}, nil)
	s.mockGateway.EXPECT().UpdateAccount(gomock.Any(), "12345", models.AccountUpdate{"city": "Reston"}).Return(&models.AccountRecord{AccountNumber: "12345", City: "Reston"}, nil)
	s.mockGateway.EXPECT().GetDebts(gomock.Any(), "12345").Return(models.EmptyDebtSummary(), nil)
	s.mockGateway.EXPECT().GetDebtDetail(gomock.Any(), "DEBT001").Return(&models.DebtRecord{DebtID: "DEBT001"}, nil)

	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/health", "").Code)
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/account/12345", "").Code)
	s.Equal(http.StatusOK, s.do(http.MethodPut, "/api/account/12345", `{"city":"Reston"}`).Code)
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/debts/12345", "").Code)
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/debt/DEBT001", "").Code)
}

func (s *RouterTestSuite) TestMoneyIsServedAsJSONNumbers() {
	s.mockGateway.EXPECT().GetAccount(gomock.Any(), "12345").Return(&models.AccountRecord{
		AccountNumber:  "12345",
		CurrentBalance: decimal.RequireFromString("1250.50"),
	}, nil)
	s.mockGateway.EXPECT().GetDebts(gomock.Any(), "12345").Return(&models.DebtSummary{
		Debts:     []models.DebtRecord{{DebtID: "DEBT001", Amount: decimal.RequireFromString("850.25")}},
		TotalDebt: decimal.RequireFromString("850.25"),
	}, nil)

	account := s.do(http.MethodGet, "/api/account/12345", "")
	s.Equal(http.StatusOK, account.Code)
	s.Contains(account.Body.String(), `"currentBalance":1250.5`)

	debts := s.do(http.MethodGet, "/api/debts/12345", "")
	s.Equal(http.StatusOK, debts.Code)
	s.Contains(debts.Body.String(), `"amount":850.25`)
	s.Contains(debts.Body.String(), `"totalDebt":850.25`)
}

func (s *RouterTestSuite) TestEveryResponseCarriesTraceAndSecurityHeaders() {
	rec := s.do(http.MethodGet, "/api/unknown", "")

	s.Equal(http.StatusNotFound, rec.Code)
	s.NotEmpty(rec.Header().Get(middleware.TraceIDHeader))
	s.Equal("nosniff", rec.Header().Get("X-Content-Type-Options"))
	s.Contains(rec.Body.String(), "SYSTEM_007")
}

func (s *RouterTestSuite) TestCORSPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/api/account/12345", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPut)
	rec := httptest.NewRecorder()

	s.echo.ServeHTTP(rec, req)

	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal("*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	s.Contains(rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodPut)
}

func (s *RouterTestSuite) TestBodyLimit() {
	body := `{"address1":"` + strings.Repeat("x", 2048) + `"}`

	rec := s.do(http.MethodPut, "/api/account/12345", body)

	s.Equal(http.StatusRequestEntityTooLarge, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
}

func (s *RouterTestSuite) TestMetricsEndpoint() {
	rec := s.do(http.MethodGet, "/metrics", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "router_test_total")
}

func (s *RouterTestSuite) TestRateLimitAppliesToAPI() {
	s.cfg.Security.RateLimitPerSecond = 1
	s.cfg.Security.RateLimitBurst = 1
	s.echo = s.build()

	s.mockProber.EXPECT().Probe(gomock.Any()).Return(models.ConnectivityResult{}).Times(1)

	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/health", "").Code)
	s.Equal(http.StatusTooManyRequests, s.do(http.MethodGet, "/api/health", "").Code)
	// scrape endpoint sits outside the limited group
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/metrics", "").Code)
}
