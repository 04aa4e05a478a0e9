package controllers

import (
	"net/http"

	"ClinicDesk/models"
	"ClinicDesk/util"

	"github.com/gin-gonic/gin"
)

func (h *Controller) Drug(router *gin.Engine) {
	router.GET("/drugs", h.private(h.DrugsPage)...)
	router.GET("/add-drug", h.private(h.AddDrugPage)...)
	router.GET("/api/drug/:id", h.FetchDrug)

	router.POST("/add-drug", h.SaveDrug)
	router.DELETE("/delete-drug/:drugID", h.DeleteDrug)
}

func (h *Controller) DrugsPage(c *gin.Context) {
	drugs, err := h.svc.ListDrugs(c.Request.Context())
	if err != nil {
		failPage(c, err, util.DRUG_NOT_FOUND)
		return
	}
	h.views.Page(c, "drugs", gin.H{"foundDrugs": drugs})
}

func (h *Controller) AddDrugPage(c *gin.Context) {
	h.views.Page(c, "addDrug", nil)
}

func (h *Controller) FetchDrug(c *gin.Context) {
	drug, err := h.svc.GetDrug(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, util.DRUG_NOT_FOUND)
		return
	}
	c.JSON(http.StatusOK, drug)
}

func (h *Controller) SaveDrug(c *gin.Context) {
	var form models.DrugForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, err)
		return
	}
	if _, err := h.svc.SaveDrug(c.Request.Context(), form); err != nil {
		fail(c, err, util.DRUG_NOT_FOUND)
		return
	}
	c.Redirect(http.StatusFound, "/drugs")
}

func (h *Controller) DeleteDrug(c *gin.Context) {
	if err := h.svc.DeleteDrug(c.Request.Context(), c.Param("drugID")); err != nil {
		fail(c, err, util.DRUG_NOT_FOUND)
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(nil))
}
