package controllers

import (
	"net/http"
	"testing"

	"ClinicDesk/models"
	"ClinicDesk/services"
	"ClinicDesk/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviews_CounterResetsOnPageVisit(t *testing.T) {
	app := newTestApp(t)

	w := app.sendJSON(http.MethodPost, "/rate", gin.H{"formData": gin.H{
		"rating": 4, "name": "Maya", "profession": "Engineer", "city": "Haifa", "review": "Great care",
	}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"`+util.REVIEW_SAVED+`"}`, w.Body.String())

	w = app.get("/reviews/count")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":1}`, w.Body.String())

	view, data := page(t, app.get("/reviews"))
	assert.Equal(t, "reviews", view)
	var inactive []models.RatedReview
	decode(t, data["inactiveReviews"], &inactive)
	require.Len(t, inactive, 1)
	assert.Equal(t, services.Stars(4), inactive[0].Stars)

	assert.JSONEq(t, `{"count":0}`, app.get("/reviews/count").Body.String())

	w = app.do(newRequest(http.MethodPost, "/active-review/"+inactive[0].ID.Hex()))
	require.Equal(t, http.StatusOK, w.Code)
	_, data = page(t, app.get("/reviews"))
	var active []models.RatedReview
	decode(t, data["activeReviews"], &active)
	assert.Len(t, active, 1)

	w = app.do(newRequest(http.MethodDelete, "/delete-review/"+inactive[0].ID.Hex()))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReviews_Rejected(t *testing.T) {
	app := newTestApp(t)

	w := app.sendJSON(http.MethodPost, "/rate", gin.H{"formData": gin.H{"rating": 4, "name": "Maya"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.sendJSON(http.MethodPost, "/rate", gin.H{"formData": gin.H{
		"rating": 9, "name": "Maya", "profession": "Engineer", "city": "Haifa", "review": "Great care",
	}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"`+util.INVALID_RATING+`"}`, w.Body.String())

	w = app.do(newRequest(http.MethodPost, "/active-review/"+missingID))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"`+util.REVIEW_NOT_FOUND+`"}`, w.Body.String())
}

func TestContacts_Lifecycle(t *testing.T) {
	app := newTestApp(t)

	w := app.sendJSON(http.MethodPost, "/contact", gin.H{"formData": gin.H{
		"name": "Avi", "email": "avi@example.com", "tel": "052", "message": "Call me",
	}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"`+util.CONTACT_SAVED+`"}`, w.Body.String())
	assert.JSONEq(t, `{"count":1}`, app.get("/contacts/count").Body.String())

	view, data := page(t, app.get("/contact-requests"))
	assert.Equal(t, "contactRequests", view)
	var open []models.Contact
	decode(t, data["personsToContact"], &open)
	require.Len(t, open, 1)
	assert.JSONEq(t, `{"count":0}`, app.get("/contacts/count").Body.String())

	w = app.do(newRequest(http.MethodPost, "/contact-person/"+open[0].ID.Hex()))
	require.Equal(t, http.StatusOK, w.Code)
	_, data = page(t, app.get("/contact-requests"))
	var contacted []models.Contact
	decode(t, data["contactedPersons"], &contacted)
	assert.Len(t, contacted, 1)

	w = app.do(newRequest(http.MethodDelete, "/delete-contact/"+open[0].ID.Hex()))
	assert.Equal(t, http.StatusOK, w.Code)
	w = app.do(newRequest(http.MethodDelete, "/delete-contact/"+open[0].ID.Hex()))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
