package controllers

import (
	"net/http"
	"testing"

	"ClinicDesk/models"
	"ClinicDesk/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodos(t *testing.T) {
	app := newTestApp(t)

	w := app.sendJSON(http.MethodPost, "/todos", gin.H{"text": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"`+util.TEXT_IS_REQUIRED+`"}`, w.Body.String())

	w = app.sendJSON(http.MethodPost, "/todos", gin.H{"text": "Call the lab"})
	require.Equal(t, http.StatusCreated, w.Code)
	var todo models.Todo
	decode(t, w.Body.Bytes(), &todo)
	assert.Equal(t, "Call the lab", todo.Text)
	assert.False(t, todo.Done)
	id := todo.ID.Hex()

	w = app.do(newRequest(http.MethodPut, "/todos/"+id))
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w.Body.Bytes(), &todo)
	assert.True(t, todo.Done)

	w = app.do(newRequest(http.MethodDelete, "/todos/"+id))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = app.do(newRequest(http.MethodPut, "/todos/"+id))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
