package controllers_test

import (
	"net/http"

	"github.com/envelope-zero/savings-goals/test"
	"github.com/stretchr/testify/assert"
)

const dashboardURL = "http://example.com/"

func (suite *TestSuiteStandard) TestDashboardEmpty() {
	r := test.Request(suite.co, suite.T(), http.MethodGet, dashboardURL, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Contains(suite.T(), r.Header().Get("Content-Type"), "text/html")
	assert.Contains(suite.T(), r.Body.String(), "<h1>Savings Goals</h1>")
	assert.Contains(suite.T(), r.Body.String(), "There are no savings goals yet.")
}

func (suite *TestSuiteStandard) TestDashboardCards() {
	suite.createTestGoal(suite.T(), car())
	suite.createTestGoal(suite.T(), `{"name":"<b>House</b>","targetAmount":"250000","yearsToSave":1,"currentAmount":"300000"}`)

	r := test.Request(suite.co, suite.T(), http.MethodGet, dashboardURL, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	body := r.Body.String()

	// Car
	assert.Contains(suite.T(), body, `id="goal-1"`)
	assert.Contains(suite.T(), body, "16.7%")
	assert.Contains(suite.T(), body, "$12,000")
	assert.Contains(suite.T(), body, "$2,000")
	assert.Contains(suite.T(), body, "2 years")
	assert.Contains(suite.T(), body, "$500")

	// House, names are escaped and the bar is capped
	assert.Contains(suite.T(), body, "&lt;b&gt;House&lt;/b&gt;")
	assert.Contains(suite.T(), body, "120.0%")
	assert.Contains(suite.T(), body, "width: 100.0%")
	assert.Contains(suite.T(), body, "1 year<")
	assert.Contains(suite.T(), body, "$20,833.33")
	assert.NotContains(suite.T(), body, "There are no savings goals yet.")
}

func (suite *TestSuiteStandard) TestDashboardManyYears() {
	suite.createTestGoal(suite.T(), `{"name":"Patience","targetAmount":100,"yearsToSave":4611686018427387904,"currentAmount":0}`)

	r := test.Request(suite.co, suite.T(), http.MethodGet, dashboardURL, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.Contains(suite.T(), r.Body.String(), `id="goal-1"`)
	assert.Contains(suite.T(), r.Body.String(), "Patience")
}
