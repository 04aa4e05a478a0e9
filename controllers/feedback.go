package controllers

import (
	"net/http"

	"ClinicDesk/models"
	"ClinicDesk/util"

	"github.com/gin-gonic/gin"
)

func (h *Controller) Feedback(router *gin.Engine) {
	router.POST("/rate", h.SubmitReview)
	router.POST("/contact", h.SubmitContact)

	router.GET("/reviews", h.private(h.ReviewsPage)...)
	router.GET("/reviews/count", h.ReviewCount)
	router.POST("/active-review/:reviewID", h.ToggleReview)
	router.DELETE("/delete-review/:reviewID", h.DeleteReview)

	router.GET("/contact-requests", h.private(h.ContactsPage)...)
	router.GET("/contacts/count", h.ContactCount)
	router.POST("/contact-person/:personID", h.ToggleContacted)
	router.DELETE("/delete-contact/:contactID", h.DeleteContact)
}

func (h *Controller) SubmitReview(c *gin.Context) {
	var body formData[models.ReviewForm]
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	if _, err := h.svc.SubmitReview(c.Request.Context(), body.FormData); err != nil {
		fail(c, err, util.REVIEW_NOT_FOUND)
		return
	}
	c.JSON(http.StatusOK, util.SuccessMessage(util.REVIEW_SAVED))
}

func (h *Controller) ReviewsPage(c *gin.Context) {
	page, err := h.svc.ReviewsPage(c.Request.Context())
	if err != nil {
		failPage(c, err, util.REVIEW_NOT_FOUND)
		return
	}
	h.views.Page(c, "reviews", gin.H{
		"activeReviews":   page.ActiveReviews,
		"inactiveReviews": page.InactiveReviews,
	})
}

func (h *Controller) ReviewCount(c *gin.Context) {
	n, err := h.svc.ReviewCount(c.Request.Context())
	if err != nil {
		fail(c, err, util.REVIEW_NOT_FOUND)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

func (h *Controller) ToggleReview(c *gin.Context) {
	if err := h.svc.ToggleReview(c.Request.Context(), c.Param("reviewID")); err != nil {
		fail(c, err, util.REVIEW_NOT_FOUND)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(nil))
}

func (h *Controller) DeleteReview(c *gin.Context) {
	if err := h.svc.DeleteReview(c.Request.Context(), c.Param("reviewID")); err != nil {
		fail(c, err, util.REVIEW_NOT_FOUND)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(nil))
}

func (h *Controller) SubmitContact(c *gin.Context) {
	var body formData[models.ContactForm]
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	if _, err := h.svc.SubmitContact(c.Request.Context(), body.FormData); err != nil {
		fail(c, err, util.CONTACT_NOT_FOUND)
		return
	}
	c.JSON(http.StatusOK, util.SuccessMessage(util.CONTACT_SAVED))
}

func (h *Controller) ContactsPage(c *gin.Context) {
	page, err := h.svc.ContactsPage(c.Request.Context())
	if err != nil {
		failPage(c, err, util.CONTACT_NOT_FOUND)
		return
	}
	h.views.Page(c, "contactRequests", gin.H{
		"personsToContact": page.PersonsToContact,
		"contactedPersons": page.ContactedPersons,
	})
}

func (h *Controller) ContactCount(c *gin.Context) {
	n, err := h.svc.ContactCount(c.Request.Context())
	if err != nil {
		fail(c, err, util.CONTACT_NOT_FOUND)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

func (h *Controller) ToggleContacted(c *gin.Context) {
	if err := h.svc.ToggleContacted(c.Request.Context(), c.Param("personID")); err != nil {
		fail(c, err, util.CONTACT_NOT_FOUND)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(nil))
}

func (h *Controller) DeleteContact(c *gin.Context) {
	if err := h.svc.DeleteContact(c.Request.Context(), c.Param("contactID")); err != nil {
		fail(c, err, util.CONTACT_NOT_FOUND)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(nil))
}
