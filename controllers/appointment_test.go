package controllers

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"ClinicDesk/models"
	"ClinicDesk/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnlineBooking_ThenApprove(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	w := app.sendJSON(http.MethodPost, "/online-appointment-booking", gin.H{"formData": gin.H{
		"idNumber": "305", "fName": "Dana", "lName": "Levi", "service": "Physio", "date": "2024-05-12", "time": "10:00",
	}})
	require.Equal(t, http.StatusOK, w.Code)
	var msg map[string]interface{}
	decode(t, w.Body.Bytes(), &msg)
	assert.Equal(t, util.APPOINTMENT_SAVED, msg["message"])

	pending, err := app.svc.Store().Appointments.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	id := pending[0].ID.Hex()

	w = app.get("/api/appointments/" + id)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched models.Appointment
	decode(t, w.Body.Bytes(), &fetched)
	assert.Equal(t, "Dana", fetched.FName)

	w = app.form(http.MethodPost, "/approve-appointment", url.Values{"appointmentID": {id}, "time": {"11:00"}})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/book-appointment", w.Header().Get("Location"))

	view, data := page(t, app.get("/book-appointment"))
	assert.Equal(t, "book-appointment", view)
	var approved []models.PastAppointment
	decode(t, data["foundApprovedAppointments"], &approved)
	require.Len(t, approved, 1)
	assert.Equal(t, "11:00", approved[0].Time)
	assert.JSONEq(t, `[]`, string(data["foundAppointments"]))
}

func TestOnlineBooking_RequiresIDNumber(t *testing.T) {
	app := newTestApp(t)
	w := app.sendJSON(http.MethodPost, "/online-appointment-booking", gin.H{"formData": gin.H{"fName": "Dana"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelAppointment_MissingIsFailurePayload(t *testing.T) {
	app := newTestApp(t)
	w := app.do(newRequest(http.MethodDelete, "/delete-appointment/"+missingID))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"`+util.APPOINTMENT_NOT_FOUND+`"}`, w.Body.String())

	w = app.do(newRequest(http.MethodDelete, "/del-past-appointment/"+missingID))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCancelAppointment_MovesToCanceled(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	require.NoError(t, app.svc.BookAppointment(ctx, models.Appointment{IDNumber: "77", FName: "Noa"}))
	pending, err := app.svc.Store().Appointments.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	w := app.do(newRequest(http.MethodDelete, "/delete-appointment/"+pending[0].ID.Hex()))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	_, data := page(t, app.get("/canceled-appointments"))
	var canceled []models.PastAppointment
	decode(t, data["foundCanceledAppointments"], &canceled)
	require.Len(t, canceled, 1)
	assert.Equal(t, "Noa", canceled[0].FName)
}
