package controllers

import (
	"ClinicDesk/authorization"

	"github.com/gin-gonic/gin"
)

func (h *Controller) Pages(router *gin.Engine) {
	router.GET("/", h.public(h.LandingPage)...)
	router.GET("/dashboard", h.private(h.Dashboard)...)
	router.GET("/doctor-profile", h.private(h.DoctorProfile)...)
}

func (h *Controller) LandingPage(c *gin.Context) {
	page, err := h.svc.LandingPage(c.Request.Context())
	if err != nil {
		failPage(c, err, "Page not found")
		return
	}
	h.views.Page(c, "landing-page", gin.H{
		"hoursList":              page.HoursList,
		"foundAppointments":      page.FoundAppointments,
		"activeReviewsWithStars": page.ActiveReviewsWithStars,
	})
}

func (h *Controller) Dashboard(c *gin.Context) {
	h.views.Page(c, "index", gin.H{"username": authorization.Username(c)})
}

func (h *Controller) DoctorProfile(c *gin.Context) {
	h.views.Page(c, "doctorProfile", nil)
}
