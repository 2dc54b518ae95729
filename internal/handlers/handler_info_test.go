package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	portssvc "github.com/fxcalc/currency-calculator-api/internal/core/ports/services"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type InfoHandlerTestSuite struct {
	suite.Suite
	mockService *MockInfoService
	router      http.Handler
}

func (suite *InfoHandlerTestSuite) SetupTest() {
	suite.mockService = new(MockInfoService)
	suite.router = setupTestRouter(&portssvc.ServiceContainer{
		Exchange: new(MockExchangeService),
		Info:     suite.mockService,
	})
}

func (suite *InfoHandlerTestSuite) TestGetInfo() {
	suite.mockService.On("Version").Return("1.0.0").Once()

	req := httptest.NewRequest(http.MethodGet, "/api/info", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"version":"1.0.0"}`, w.Body.String())

	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("1.0.0", body["version"])

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *InfoHandlerTestSuite) TestHealth() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func TestInfoHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InfoHandlerTestSuite))
}
