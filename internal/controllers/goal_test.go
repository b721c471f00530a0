package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/envelope-zero/savings-goals/internal/models"
	"github.com/envelope-zero/savings-goals/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goalsURL = "http://example.com/api/goals"

func goalURL(id any) string {
	return fmt.Sprintf("%s/%v", goalsURL, id)
}

func car() map[string]any {
	return map[string]any{
		"name":          "Car",
		"targetAmount":  12000,
		"yearsToSave":   2,
		"currentAmount": 2000,
	}
}

func (suite *TestSuiteStandard) createTestGoal(t *testing.T, body any, expectedStatus ...int) models.Goal {
	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(suite.co, t, http.MethodPost, goalsURL, body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var goal models.Goal
	if r.Code == http.StatusCreated {
		test.DecodeResponse(t, &r, &goal)
	}

	return goal
}

func (suite *TestSuiteStandard) TestGoalsListEmpty() {
	r := test.Request(suite.co, suite.T(), http.MethodGet, goalsURL, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.JSONEq(suite.T(), `[]`, r.Body.String())
}

func (suite *TestSuiteStandard) TestGoalsCreate() {
	r := test.Request(suite.co, suite.T(), http.MethodPost, goalsURL, car())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	assert.JSONEq(suite.T(), `{"id":1,"name":"Car","targetAmount":"12000","yearsToSave":2,"currentAmount":"2000"}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestGoalsCreateDecimalStrings() {
	goal := suite.createTestGoal(suite.T(), `{"name":"Emergency fund","targetAmount":"5000.50","yearsToSave":1,"currentAmount":"0.1"}`)

	assert.Equal(suite.T(), "5000.5", goal.TargetAmount.String())
	assert.Equal(suite.T(), "0.1", goal.CurrentAmount.String())
}

func (suite *TestSuiteStandard) TestGoalsCreateFails() {
	tests := []struct {
		name    string
		body    any
		message string
	}{
		{"Target amount zero", `{"name":"Car","targetAmount":0,"yearsToSave":2,"currentAmount":0}`, "the target amount must be larger than zero"},
		{"Target amount negative", `{"name":"Car","targetAmount":-5,"yearsToSave":2,"currentAmount":0}`, "the target amount must be larger than zero"},
		{"Years zero", `{"name":"Car","targetAmount":100,"yearsToSave":0,"currentAmount":0}`, "the number of years to save must be at least one"},
		{"Current amount negative", `{"name":"Car","targetAmount":100,"yearsToSave":1,"currentAmount":-1}`, "the current amount must not be negative"},
		{"Name empty", `{"name":"","targetAmount":100,"yearsToSave":1,"currentAmount":0}`, "the goal name must not be empty"},
		{"Missing field", `{"name":"Car","targetAmount":100,"currentAmount":0}`, "yearsToSave is required"},
		{"Null field", `{"name":null,"targetAmount":100,"yearsToSave":1,"currentAmount":0}`, "name is required"},
		{"Wrong type", `{"name":"Car","targetAmount":100,"yearsToSave":"two","currentAmount":0}`, "json: cannot unmarshal"},
		{"Broken JSON", `{"name":"Car",`, "the body of your request contains invalid or un-parseable data"},
		{"Empty body", "", "the request body must not be empty"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodPost, goalsURL, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), tt.message)
		})
	}

	// Nothing was stored
	r := test.Request(suite.co, suite.T(), http.MethodGet, goalsURL, "")
	assert.JSONEq(suite.T(), `[]`, r.Body.String())
}

func (suite *TestSuiteStandard) TestGoalsCreateKeepsName() {
	for _, name := range []string{"  Car ", " "} {
		body := car()
		body["name"] = name
		goal := suite.createTestGoal(suite.T(), body)
		assert.Equal(suite.T(), name, goal.Name)

		r := test.Request(suite.co, suite.T(), http.MethodGet, goalURL(goal.ID), "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

		var got models.Goal
		test.DecodeResponse(suite.T(), &r, &got)
		assert.Equal(suite.T(), name, got.Name)
	}
}

func (suite *TestSuiteStandard) TestGoalsListOrdered() {
	for _, name := range []string{"Car", "House", "Bike"} {
		body := car()
		body["name"] = name
		suite.createTestGoal(suite.T(), body)
	}

	r := test.Request(suite.co, suite.T(), http.MethodGet, goalsURL, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var goals []models.Goal
	test.DecodeResponse(suite.T(), &r, &goals)

	require.Len(suite.T(), goals, 3)
	for i, name := range []string{"Car", "House", "Bike"} {
		assert.Equal(suite.T(), uint64(i+1), goals[i].ID)
		assert.Equal(suite.T(), name, goals[i].Name)
	}
}

func (suite *TestSuiteStandard) TestGoalsGet() {
	goal := suite.createTestGoal(suite.T(), car())

	tests := []struct {
		name   string
		id     any
		status int
	}{
		{"Existing", goal.ID, http.StatusOK},
		{"Missing", 999, http.StatusNotFound},
		{"Zero", 0, http.StatusNotFound},
		{"Not a number", "abc", http.StatusBadRequest},
		{"Negative", -1, http.StatusNotFound},
		{"Too large", "99999999999999999999999", http.StatusNotFound},
		{"Fraction", "1.5", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodGet, goalURL(tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusOK {
				var got models.Goal
				test.DecodeResponse(t, &r, &got)
				assert.Equal(t, goal.ID, got.ID)
				assert.Equal(t, goal.Name, got.Name)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsUpdate() {
	goal := suite.createTestGoal(suite.T(), car())

	r := test.Request(suite.co, suite.T(), http.MethodPatch, goalURL(goal.ID), `{"currentAmount": 3000}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.JSONEq(suite.T(), `{"id":1,"name":"Car","targetAmount":"12000","yearsToSave":2,"currentAmount":"3000"}`, r.Body.String())

	// The update is visible on reads
	r = test.Request(suite.co, suite.T(), http.MethodGet, goalURL(goal.ID), "")
	assert.JSONEq(suite.T(), `{"id":1,"name":"Car","targetAmount":"12000","yearsToSave":2,"currentAmount":"3000"}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestGoalsUpdateEmptyPatch() {
	goal := suite.createTestGoal(suite.T(), car())

	r := test.Request(suite.co, suite.T(), http.MethodPatch, goalURL(goal.ID), `{}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var got models.Goal
	test.DecodeResponse(suite.T(), &r, &got)
	assert.Equal(suite.T(), goal.ID, got.ID)
	assert.Equal(suite.T(), goal.Name, got.Name)
	assert.True(suite.T(), goal.TargetAmount.Equal(got.TargetAmount))
	assert.True(suite.T(), goal.CurrentAmount.Equal(got.CurrentAmount))
	assert.Equal(suite.T(), goal.YearsToSave, got.YearsToSave)
}

func (suite *TestSuiteStandard) TestGoalsUpdateIgnoresID() {
	goal := suite.createTestGoal(suite.T(), car())

	r := test.Request(suite.co, suite.T(), http.MethodPatch, goalURL(goal.ID), `{"id": 42, "name": "Truck"}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var got models.Goal
	test.DecodeResponse(suite.T(), &r, &got)
	assert.Equal(suite.T(), goal.ID, got.ID)
	assert.Equal(suite.T(), "Truck", got.Name)
}

func (suite *TestSuiteStandard) TestGoalsUpdateFails() {
	goal := suite.createTestGoal(suite.T(), car())

	tests := []struct {
		name    string
		id      any
		body    string
		status  int
		message string
	}{
		{"Invalid ID", "abc", `{"name": "Truck"}`, http.StatusBadRequest, "the specified goal ID is not a valid integer"},
		{"Invalid ID before body", "abc", `{broken`, http.StatusBadRequest, "the specified goal ID is not a valid integer"},
		{"Missing goal", 999, `{"name": "Truck"}`, http.StatusNotFound, "there is no savings goal with this ID"},
		{"Invalid value before lookup", 999, `{"targetAmount": 0}`, http.StatusBadRequest, "the target amount must be larger than zero"},
		{"Years zero", goal.ID, `{"yearsToSave": 0}`, http.StatusBadRequest, "the number of years to save must be at least one"},
		{"Current negative", goal.ID, `{"currentAmount": -0.01}`, http.StatusBadRequest, "the current amount must not be negative"},
		{"Name empty", goal.ID, `{"name": ""}`, http.StatusBadRequest, "the goal name must not be empty"},
		{"Negative ID", -1, `{"name": "Truck"}`, http.StatusNotFound, "there is no savings goal with this ID"},
		{"Null", goal.ID, `{"targetAmount": null}`, http.StatusBadRequest, "targetAmount must not be null"},
		{"Broken JSON", goal.ID, `{"name": "Truck`, http.StatusBadRequest, "the body of your request contains invalid or un-parseable data"},
		{"Not an object", goal.ID, `[]`, http.StatusBadRequest, "the body of your request contains invalid or un-parseable data"},
		{"Empty body", goal.ID, ``, http.StatusBadRequest, "the request body must not be empty"},
		{"Wrong type", goal.ID, `{"yearsToSave": "2"}`, http.StatusBadRequest, "json: cannot unmarshal"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodPatch, goalURL(tt.id), tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Contains(t, test.DecodeError(t, r.Body.Bytes()), tt.message)
		})
	}

	// The goal is unchanged
	r := test.Request(suite.co, suite.T(), http.MethodGet, goalURL(goal.ID), "")
	assert.JSONEq(suite.T(), `{"id":1,"name":"Car","targetAmount":"12000","yearsToSave":2,"currentAmount":"2000"}`, r.Body.String())
}

func (suite *TestSuiteStandard) TestGoalsDelete() {
	goal := suite.createTestGoal(suite.T(), car())

	r := test.Request(suite.co, suite.T(), http.MethodDelete, goalURL(goal.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Empty(suite.T(), r.Body.String())

	// Deleting again is not an error
	r = test.Request(suite.co, suite.T(), http.MethodDelete, goalURL(goal.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.co, suite.T(), http.MethodGet, goalURL(goal.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.co, suite.T(), http.MethodDelete, goalURL("abc"), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// Integers that no goal can have are treated like missing goals
	r = test.Request(suite.co, suite.T(), http.MethodDelete, goalURL(-1), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "the specified goal ID is not a valid integer", test.DecodeError(suite.T(), r.Body.Bytes()))

	// IDs are not reused
	next := suite.createTestGoal(suite.T(), car())
	assert.Equal(suite.T(), goal.ID+1, next.ID)
}

func (suite *TestSuiteStandard) TestGoalsOptions() {
	tests := []struct {
		name   string
		url    string
		status int
		allow  string
	}{
		{"Collection", goalsURL, http.StatusNoContent, "OPTIONS, GET, POST"},
		{"Detail", goalURL(7), http.StatusNoContent, "OPTIONS, GET, PATCH, DELETE"},
		{"Invalid ID", goalURL("abc"), http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodOptions, tt.url, "")
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestGoalsMethodNotAllowed() {
	r := test.Request(suite.co, suite.T(), http.MethodPut, goalURL(1), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusMethodNotAllowed)
	assert.NotEmpty(suite.T(), test.DecodeError(suite.T(), r.Body.Bytes()))
}

// TestGoalsLifecycle walks through the lifecycle of a single goal.
func (suite *TestSuiteStandard) TestGoalsLifecycle() {
	t := suite.T()

	goal := suite.createTestGoal(t, car())
	assert.Equal(t, "16.67", goal.ProgressPercent().Round(2).String())
	assert.Equal(t, "500", goal.MonthlyTarget().String())

	r := test.Request(suite.co, t, http.MethodPatch, goalURL(goal.ID), `{"currentAmount": 3000}`)
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var updated models.Goal
	test.DecodeResponse(t, &r, &updated)
	assert.Equal(t, "25", updated.ProgressPercent().String())

	r = test.Request(suite.co, t, http.MethodDelete, goalURL(goal.ID), "")
	test.AssertHTTPStatus(t, &r, http.StatusNoContent)

	r = test.Request(suite.co, t, http.MethodGet, goalsURL, "")
	assert.JSONEq(t, `[]`, r.Body.String())
}

// TestGoalsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestGoalsDBClosed() {
	goal := suite.createTestGoal(suite.T(), car())

	tests := []struct {
		name   string
		method string
		url    string
		body   any
	}{
		{"Creation fails", http.MethodPost, goalsURL, car()},
		{"Update fails", http.MethodPatch, goalURL(goal.ID), `{"name": "Truck"}`},
		{"Deletion fails", http.MethodDelete, goalURL(goal.ID), ""},
	}

	suite.CloseDB()

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, tt.method, tt.url, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
			assert.Equal(t, models.ErrGeneral.Error(), test.DecodeError(t, r.Body.Bytes()))
		})
	}

	// The in-memory state is unchanged
	r := test.Request(suite.co, suite.T(), http.MethodGet, goalsURL, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.JSONEq(suite.T(), `[{"id":1,"name":"Car","targetAmount":"12000","yearsToSave":2,"currentAmount":"2000"}]`, r.Body.String())
}
