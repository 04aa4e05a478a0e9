package controllers

import (
	"net/http"

	"ClinicDesk/models"
	"ClinicDesk/util"

	"github.com/gin-gonic/gin"
)

func (h *Controller) Patient(router *gin.Engine) {
	router.GET("/patients", h.private(h.PatientsPage)...)
	router.GET("/add-patient", h.private(h.AddPatientPage)...)
	router.GET("/patient-profile", h.private(h.PatientProfilePage)...)
	router.GET("/api/patients/:id", h.FetchPatient)

	router.POST("/add-patient", h.AddPatient)
	router.POST("/patient-profile", h.UpdatePatientProfile)
	router.POST("/patients/:id/lastvisit", h.AddLastVisit)
	router.POST("/patients/:id/updateStatus", h.UpdatePatientStatus)
	router.DELETE("/delete-patient/:patientID", h.DeletePatient)
}

func (h *Controller) PatientsPage(c *gin.Context) {
	patients, err := h.svc.ListPatients(c.Request.Context())
	if err != nil {
		failPage(c, err, util.PATIENT_NOT_FOUND)
		return
	}
	h.views.Page(c, "patients", gin.H{"foundPatients": patients})
}

func (h *Controller) AddPatientPage(c *gin.Context) {
	h.views.Page(c, "add-patient", nil)
}

func (h *Controller) PatientProfilePage(c *gin.Context) {
	profile, err := h.svc.PatientProfile(c.Request.Context(), c.Query("id"))
	if err != nil {
		failPage(c, err, util.PATIENT_NOT_FOUND)
		return
	}
	patient := models.PatientWithInvoices{Patient: profile.Patient, InvoiceDocs: profile.Invoices}
	h.views.Page(c, "patient-profile", gin.H{
		"patient":              patient,
		"lastInvoice":          profile.LastInvoice,
		"lastVisits":           profile.LastVisits,
		"hoursList":            profile.HoursList,
		"foundAppointments":    profile.FoundAppointments,
		"Appointments":         profile.Appointments,
		"approvedAppointments": profile.ApprovedAppointments,
		"deletedAppointments":  profile.DeletedAppointments,
	})
}

func (h *Controller) FetchPatient(c *gin.Context) {
	p, err := h.svc.GetPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, util.PATIENT_NOT_FOUND)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Controller) AddPatient(c *gin.Context) {
	var form models.AddPatientForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, err)
		return
	}
	if _, err := h.svc.AddPatient(c.Request.Context(), form.Patient()); err != nil {
		fail(c, err, util.PATIENT_NOT_FOUND)
		return
	}
	c.Redirect(http.StatusFound, "/patients")
}

/*
* Bind the full intake form
* Overwrite the profile, keeping visits, invoices and status
 */
func (h *Controller) UpdatePatientProfile(c *gin.Context) {
	var form models.PatientProfileForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.svc.UpdatePatientProfile(c.Request.Context(), form); err != nil {
		fail(c, err, util.PATIENT_NOT_FOUND)
		return
	}
	c.Redirect(http.StatusFound, "/patients")
}

func (h *Controller) AddLastVisit(c *gin.Context) {
	var body formData[models.LastVisit]
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	if _, err := h.svc.AddLastVisit(c.Request.Context(), c.Param("id"), body.FormData); err != nil {
		fail(c, err, util.PATIENT_NOT_FOUND)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(nil))
}

type statusForm struct {
	Status string `form:"status" json:"status"`
}

func (h *Controller) UpdatePatientStatus(c *gin.Context) {
	var form statusForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.svc.UpdatePatientStatus(c.Request.Context(), c.Param("id"), form.Status); err != nil {
		fail(c, err, util.PATIENT_NOT_FOUND)
		return
	}
	c.String(http.StatusOK, util.PATIENT_STATUS_UPDATED)
}

func (h *Controller) DeletePatient(c *gin.Context) {
	if err := h.svc.DeletePatient(c.Request.Context(), c.Param("patientID")); err != nil {
		fail(c, err, util.PATIENT_NOT_FOUND)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(nil))
}
