package app

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/kinosvet/cinema-booking/api"
	"github.com/kinosvet/cinema-booking/internal/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SalesTestSuite struct {
	suite.Suite
	app       *Application
	salesGate *mocks.MockSalesGate
}

func (s *SalesTestSuite) SetupTest() {
	s.salesGate = new(mocks.MockSalesGate)

	s.app = newTestApplication(func(a *Application) {
		a.salesGate = s.salesGate
	})
}

func TestSalesSuite(t *testing.T) {
	suite.Run(t, new(SalesTestSuite))
}

func (s *SalesTestSuite) TestGetSalesStatus() {
	s.salesGate.On("IsOpen", mock.Anything).Return(false, nil)

	w := executeRequest(s.T(), s.app, http.MethodGet, "/sales", nil)

	s.Equal(http.StatusOK, w.Code)

	var resp api.SalesResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	s.Require().NoError(err)

	s.False(resp.Open)
}

func (s *SalesTestSuite) TestSetSalesStatus() {
	s.salesGate.On("SetOpen", mock.Anything, true).Return(nil)

	w := executeRequest(s.T(), s.app, http.MethodPut, "/sales", api.SetSalesRequest{Open: ptr(true)})

	s.Equal(http.StatusOK, w.Code)

	var resp api.SalesResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	s.Require().NoError(err)

	s.True(resp.Open)
	s.salesGate.AssertExpectations(s.T())
}

func (s *SalesTestSuite) TestSetSalesStatusRequiresOpenField() {
	w := executeRequest(s.T(), s.app, http.MethodPut, "/sales", map[string]any{})

	s.Equal(http.StatusUnprocessableEntity, w.Code)
	s.salesGate.AssertNotCalled(s.T(), "SetOpen", mock.Anything, mock.Anything)
}
