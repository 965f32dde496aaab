package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "test-trace-id-123"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_Defaults() {
	response := NewErrorResponse(AccountNotFound, s.traceID)

	s.Equal(string(AccountNotFound), response.Error.Code)
	s.Equal("Account not found", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
	s.Equal(http.StatusNotFound, response.Status())
}

func (s *ResponseTestSuite) TestNewErrorResponse_Options() {
	response := NewErrorResponse(ValidationGeneral, s.traceID,
		WithMessage("Request body must be a JSON object"),
		WithDetails("got a JSON array"))

	s.Equal("Request body must be a JSON object", response.Error.Message)
	s.Equal([]string{"got a JSON array"}, response.Error.Details)
	s.Equal(http.StatusBadRequest, response.Status())
}

func (s *ResponseTestSuite) TestWrapSystemError_NoInternalDetailsExposed() {
	internalErr := fmt.Errorf("sqlite: disk I/O error on fallback_accounts")

	response, err := WrapSystemError(internalErr, s.traceID)

	s.Equal(internalErr, err)
	s.Equal(string(SystemInternalError), response.Error.Code)
	s.NotContains(response.Error.Message, "sqlite")
	s.Equal(http.StatusInternalServerError, response.Status())
}

func (s *ResponseTestSuite) TestJSONShape() {
	data, err := json.Marshal(NewErrorResponse(DebtNotFound, s.traceID))
	s.Require().NoError(err)

	s.JSONEq(`{"error":{"code":"DEBT_001","message":"Debt not found","trace_id":"test-trace-id-123"}}`, string(data))
}
