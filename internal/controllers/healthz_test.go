package controllers_test

import (
	"net/http"

	"github.com/envelope-zero/savings-goals/internal/controllers"
	"github.com/envelope-zero/savings-goals/internal/models"
	"github.com/envelope-zero/savings-goals/internal/store"
	"github.com/envelope-zero/savings-goals/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const healthzURL = "http://example.com/api/healthz"

func (suite *TestSuiteStandard) TestHealthz() {
	r := test.Request(suite.co, suite.T(), http.MethodGet, healthzURL, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}

func (suite *TestSuiteStandard) TestHealthzOptions() {
	r := test.Request(suite.co, suite.T(), http.MethodOptions, healthzURL, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestHealthzDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.co, suite.T(), http.MethodGet, healthzURL, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	assert.Equal(suite.T(), models.ErrGeneral.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}

func (suite *TestSuiteStandard) TestHealthzInMemory() {
	s, err := store.NewMemory(nil)
	require.Nil(suite.T(), err)

	r := test.Request(controllers.Controller{Store: s}, suite.T(), http.MethodGet, healthzURL, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
