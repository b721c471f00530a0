package controllers

import (
	"net/http"

	"github.com/envelope-zero/savings-goals/internal/httputil"
	"github.com/envelope-zero/savings-goals/internal/models"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterGoalRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsGoals)
		r.GET("", co.GetGoals)
		r.POST("", co.CreateGoal)
	}
	{
		r.OPTIONS("/:id", co.OptionsGoalDetail)
		r.GET("/:id", co.GetGoal)
		r.PATCH("/:id", co.UpdateGoal)
		r.DELETE("/:id", co.DeleteGoal)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Router			/goals [options]
func (co Controller) OptionsGoals(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Param			id	path		int	true	"ID of the goal"
// @Router			/goals/{id} [options]
func (co Controller) OptionsGoalDetail(c *gin.Context) {
	_, err := httputil.ParseID(c, "id")
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Get goals
// @Description	Returns all goals ordered by ID
// @Tags			Goals
// @Produce		json
// @Success		200	{array}	models.Goal
// @Router			/goals [get]
func (co Controller) GetGoals(c *gin.Context) {
	c.JSON(http.StatusOK, co.Store.List())
}

// @Summary		Create goal
// @Description	Creates a new goal. All fields are required.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		201		{object}	models.Goal
// @Failure		400		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			goal	body		GoalCreate	true	"Goal"
// @Router			/goals [post]
func (co Controller) CreateGoal(c *gin.Context) {
	var data GoalCreate
	err := httputil.BindData(c, &data)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	goal, err := co.Store.Create(data.model())
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// @Summary		Get goal
// @Description	Returns a specific goal
// @Tags			Goals
// @Produce		json
// @Success		200	{object}	models.Goal
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		int	true	"ID of the goal"
// @Router			/goals/{id} [get]
func (co Controller) GetGoal(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	goal, ok := co.Store.Get(id)
	if !ok {
		httputil.ErrorHandler(c, models.ErrGoalNotFound)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// @Summary		Update goal
// @Description	Updates an existing goal. Only values to be updated need to be specified.
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		200		{object}	models.Goal
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			id		path		int			true	"ID of the goal"
// @Param			goal	body		GoalUpdate	true	"Goal"
// @Router			/goals/{id} [patch]
func (co Controller) UpdateGoal(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	// null is not a valid value for any field
	err = httputil.CheckBodyFields(c, GoalUpdate{})
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	var data GoalUpdate
	err = httputil.BindData(c, &data)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	// Invalid values are rejected before the goal is looked up
	patch := data.model()
	err = patch.Validate()
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	goal, err := co.Store.Update(id, patch)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// @Summary		Delete goal
// @Description	Deletes a goal. Deleting a goal that does not exist is not an error.
// @Tags			Goals
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		int	true	"ID of the goal"
// @Router			/goals/{id} [delete]
func (co Controller) DeleteGoal(c *gin.Context) {
	id, err := httputil.ParseID(c, "id")
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	err = co.Store.Delete(id)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
