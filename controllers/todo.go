package controllers

import (
	"net/http"

	"ClinicDesk/util"

	"github.com/gin-gonic/gin"
)

type todoForm struct {
	Text string `form:"text" json:"text"`
}

func (h *Controller) Todo(router *gin.Engine) {
	router.POST("/todos", h.CreateTodo)
	router.PUT("/todos/:id", h.ToggleTodo)
	router.DELETE("/todos/:id", h.DeleteTodo)
}

func (h *Controller) CreateTodo(c *gin.Context) {
	var form todoForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, err)
		return
	}
	todo, err := h.svc.CreateTodo(c.Request.Context(), form.Text)
	if err != nil {
		fail(c, err, util.TODO_NOT_FOUND)
		return
	}
	c.JSON(http.StatusCreated, todo)
}

func (h *Controller) ToggleTodo(c *gin.Context) {
	todo, err := h.svc.ToggleTodo(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, util.TODO_NOT_FOUND)
		return
	}
	c.JSON(http.StatusOK, todo)
}

func (h *Controller) DeleteTodo(c *gin.Context) {
	if err := h.svc.DeleteTodo(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err, util.TODO_NOT_FOUND)
		return
	}
	c.Status(http.StatusNoContent)
}
