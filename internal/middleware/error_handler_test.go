package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "debt-portal/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.HTTPErrorHandler = CustomHTTPErrorHandler
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) handle(method string, err error, traceID string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(method, "/api/account/12345", nil), rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}
	CustomHTTPErrorHandler(err, c)
	return rec
}

func (s *ErrorHandlerTestSuite) decode(rec *httptest.ResponseRecorder) apierrors.ErrorResponse {
	var response apierrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError_KeepsStatusAndMessage() {
	rec := s.handle(http.MethodPut, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"), "trace-413")

	s.Equal(http.StatusRequestEntityTooLarge, rec.Code)
	response := s.decode(rec)
	s.Equal(string(apierrors.ValidationGeneral), response.Error.Code)
	s.Equal("Request Entity Too Large", response.Error.Message)
	s.Equal("trace-413", response.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestStatusToCode() {
	testCases := []struct {
		status int
		code   apierrors.ErrorCode
	}{
		{http.StatusBadRequest, apierrors.ValidationGeneral},
		{http.StatusMethodNotAllowed, apierrors.ValidationGeneral},
		{http.StatusNotFound, apierrors.SystemRouteNotFound},
		{http.StatusTooManyRequests, apierrors.SystemRateLimitExceeded},
		{http.StatusServiceUnavailable, apierrors.SystemServiceUnavailable},
		{http.StatusTeapot, apierrors.SystemUnexpectedError},
	}

	for _, tc := range testCases {
		s.Run(http.StatusText(tc.status), func() {
			rec := s.handle(http.MethodGet, echo.NewHTTPError(tc.status), "trace")

			s.Equal(tc.status, rec.Code)
			response := s.decode(rec)
			s.Equal(string(tc.code), response.Error.Code)
			s.Equal(http.StatusText(tc.status), response.Error.Message)
		})
	}
}

func (s *ErrorHandlerTestSuite) TestPlainError_HidesDetails() {
	rec := s.handle(http.MethodGet, errors.New("merge fallback account 12345: database is locked"), "")

	s.Equal(http.StatusInternalServerError, rec.Code)
	response := s.decode(rec)
	s.Equal(string(apierrors.SystemInternalError), response.Error.Code)
	s.Equal("unknown", response.Error.TraceID)
	s.NotContains(rec.Body.String(), "database is locked")
	s.Contains(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseUntouched() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	s.Require().NoError(c.JSON(http.StatusOK, map[string]string{"accountNumber": "12345"}))

	CustomHTTPErrorHandler(errors.New("late failure"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"accountNumber":"12345"}`, rec.Body.String())
}

func (s *ErrorHandlerTestSuite) TestHeadHasNoBody() {
	rec := s.handle(http.MethodHead, echo.NewHTTPError(http.StatusNotFound), "trace")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Empty(rec.Body.String())
}

func (s *ErrorHandlerTestSuite) TestUnknownRoute() {
	s.echo.Use(RequestID())
	rec := httptest.NewRecorder()

	s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	s.Equal(http.StatusNotFound, rec.Code)
	response := s.decode(rec)
	s.Equal(string(apierrors.SystemRouteNotFound), response.Error.Code)
	s.Equal(rec.Header().Get(TraceIDHeader), response.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestErrorsAreCounted() {
	counter := apiErrorsTotal.WithLabelValues(string(apierrors.SystemRateLimitExceeded), "", "429")
	before := testutil.ToFloat64(counter)

	s.handle(http.MethodGet, echo.NewHTTPError(http.StatusTooManyRequests), "trace")

	s.Equal(before+1, testutil.ToFloat64(counter))
}
