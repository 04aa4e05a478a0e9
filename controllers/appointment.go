package controllers

import (
	"net/http"

	"ClinicDesk/models"
	"ClinicDesk/util"

	"github.com/gin-gonic/gin"
)

func (h *Controller) Appointment(router *gin.Engine) {
	router.GET("/book-appointment", h.private(h.BookAppointmentPage)...)
	router.GET("/approved-appointments", h.private(h.ApprovedAppointmentsPage)...)
	router.GET("/canceled-appointments", h.private(h.CanceledAppointmentsPage)...)
	router.GET("/api/appointments/:id", h.FetchAppointment)

	router.POST("/book-appointment", h.BookAppointment)
	router.POST("/online-appointment-booking", h.BookOnline)
	router.POST("/update-appointment", h.UpdateAppointment)
	router.POST("/approve-appointment", h.ApproveAppointment)
	router.DELETE("/delete-appointment/:appointmentID", h.CancelAppointment)
	router.DELETE("/del-past-appointment/:appointmentID", h.DeletePastAppointment)
}

func (h *Controller) BookAppointmentPage(c *gin.Context) {
	board, err := h.svc.AppointmentBoard(c.Request.Context())
	if err != nil {
		failPage(c, err, util.APPOINTMENT_NOT_FOUND)
		return
	}
	h.views.Page(c, "book-appointment", gin.H{
		"foundAppointments":         board.Pending,
		"foundApprovedAppointments": board.Approved,
		"foundCanceledAppointments": board.Canceled,
		"hoursList":                 board.HoursList,
	})
}

func (h *Controller) ApprovedAppointmentsPage(c *gin.Context) {
	board, err := h.svc.AppointmentBoard(c.Request.Context())
	if err != nil {
		failPage(c, err, util.APPOINTMENT_NOT_FOUND)
		return
	}
	h.views.Page(c, "approved-appointment", gin.H{"foundApprovedAppointments": board.Approved})
}

func (h *Controller) CanceledAppointmentsPage(c *gin.Context) {
	board, err := h.svc.AppointmentBoard(c.Request.Context())
	if err != nil {
		failPage(c, err, util.APPOINTMENT_NOT_FOUND)
		return
	}
	h.views.Page(c, "canceled-appointments", gin.H{"foundCanceledAppointments": board.Canceled})
}

func (h *Controller) FetchAppointment(c *gin.Context) {
	a, err := h.svc.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, util.APPOINTMENT_NOT_FOUND)
		return
	}
	c.JSON(http.StatusOK, a)
}

/*
* Bind the booking form
* Upsert it by idNumber and go back to the booking page
 */
func (h *Controller) BookAppointment(c *gin.Context) {
	var a models.Appointment
	if err := c.ShouldBind(&a); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.svc.BookAppointment(c.Request.Context(), a); err != nil {
		fail(c, err, util.APPOINTMENT_NOT_FOUND)
		return
	}
	c.Redirect(http.StatusFound, "/book-appointment")
}

func (h *Controller) BookOnline(c *gin.Context) {
	var body formData[models.Appointment]
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.svc.BookAppointment(c.Request.Context(), body.FormData); err != nil {
		fail(c, err, util.APPOINTMENT_NOT_FOUND)
		return
	}
	c.JSON(http.StatusOK, util.SuccessMessage(util.APPOINTMENT_SAVED))
}

func (h *Controller) UpdateAppointment(c *gin.Context) {
	var form models.ApprovalForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.svc.UpdateAppointment(c.Request.Context(), form); err != nil {
		fail(c, err, util.APPOINTMENT_NOT_FOUND)
		return
	}
	c.Redirect(http.StatusFound, "/book-appointment")
}

func (h *Controller) ApproveAppointment(c *gin.Context) {
	var form models.ApprovalForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.svc.ApproveAppointment(c.Request.Context(), form); err != nil {
		fail(c, err, util.APPOINTMENT_NOT_FOUND)
		return
	}
	c.Redirect(http.StatusFound, "/book-appointment")
}

func (h *Controller) CancelAppointment(c *gin.Context) {
	if err := h.svc.CancelAppointment(c.Request.Context(), c.Param("appointmentID")); err != nil {
		fail(c, err, util.APPOINTMENT_NOT_FOUND)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(nil))
}

func (h *Controller) DeletePastAppointment(c *gin.Context) {
	if err := h.svc.DeletePastAppointment(c.Request.Context(), c.Param("appointmentID")); err != nil {
		fail(c, err, util.APPOINTMENT_NOT_FOUND)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(nil))
}
