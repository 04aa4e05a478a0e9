package controllers

import (
	"net/http"

	"ClinicDesk/models"
	"ClinicDesk/repository"
	"ClinicDesk/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const settingsNotFound = "Settings not found"

func (h *Controller) Settings(router *gin.Engine) {
	router.GET("/account-settings", h.private(h.AccountSettingsPage)...)
	router.POST("/clinic-info", h.SaveClinic)
	router.POST("/doctor-info", h.SaveDoctor)
	router.POST("/social-media", h.SetSocialMedia)
	router.POST("/doctor-photos", h.UploadPhoto(repository.DoctorPhoto, "doctorPhoto"))
	router.POST("/clinic-photos", h.UploadPhoto(repository.ClinicPhoto, "clinicPhoto"))

	router.GET("/user/theme", h.Theme)
	router.POST("/update-theme", h.UpdateTheme)
	router.POST("/update-sidebar", h.UpdateSidebar)
	router.POST("/user-prefrences", h.SavePreferences)
	router.POST("/user-preferences", h.SavePreferences)
	router.GET("/switch-language/:lang", h.SwitchLanguage)
}

func (h *Controller) AccountSettingsPage(c *gin.Context) {
	h.views.Page(c, "accountSettings", nil)
}

func (h *Controller) SaveClinic(c *gin.Context) {
	var clinic models.Clinic
	if err := c.ShouldBind(&clinic); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.svc.SaveClinic(c.Request.Context(), clinic); err != nil {
		fail(c, err, settingsNotFound)
		return
	}
	c.Redirect(http.StatusFound, "/account-settings")
}

func (h *Controller) SaveDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBind(&doctor); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.svc.SaveDoctor(c.Request.Context(), doctor); err != nil {
		fail(c, err, settingsNotFound)
		return
	}
	c.Redirect(http.StatusFound, "/account-settings")
}

func (h *Controller) SetSocialMedia(c *gin.Context) {
	var sm models.SocialMedia
	if err := c.ShouldBind(&sm); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.svc.SetSocialMedia(c.Request.Context(), sm); err != nil {
		fail(c, err, settingsNotFound)
		return
	}
	c.Redirect(http.StatusFound, "/account-settings")
}

// UploadPhoto stores the multipart file posted under field as the latest
// photo of kind.
func (h *Controller) UploadPhoto(kind repository.PhotoKind, field string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header, err := c.FormFile(field)
		if err != nil {
			badRequest(c, err)
			return
		}
		file, err := header.Open()
		if err != nil {
			log.Error().Err(err).Msg("Error opening uploaded photo")
			c.JSON(http.StatusInternalServerError, util.FailedMessage(util.INTERNAL_SERVER_ERROR))
			return
		}
		defer file.Close()

		if _, err := h.svc.SavePhoto(c.Request.Context(), kind, header.Filename, file); err != nil {
			fail(c, err, settingsNotFound)
			return
		}
		c.Redirect(http.StatusFound, "/account-settings")
	}
}

func (h *Controller) Theme(c *gin.Context) {
	prefs, err := h.svc.Preferences(c.Request.Context())
	if err != nil {
		fail(c, err, settingsNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"theme": prefs})
}

type themeForm struct {
	ThemeValue string `form:"themeValue" json:"themeValue"`
}

func (h *Controller) UpdateTheme(c *gin.Context) {
	var form themeForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, err)
		return
	}
	out, err := h.svc.UpdateTheme(c.Request.Context(), form.ThemeValue)
	if err != nil {
		fail(c, err, settingsNotFound)
		return
	}
	c.JSON(http.StatusOK, out)
}

type sidebarForm struct {
	SidebarMini string `form:"sidebarMini" json:"sidebarMini"`
}

func (h *Controller) UpdateSidebar(c *gin.Context) {
	var form sidebarForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, err)
		return
	}
	prefs, err := h.svc.UpdateSidebar(c.Request.Context(), form.SidebarMini == "true")
	if err != nil {
		fail(c, err, settingsNotFound)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func (h *Controller) SavePreferences(c *gin.Context) {
	var form models.PreferencesForm
	if err := c.ShouldBind(&form); err != nil {
		badRequest(c, err)
		return
	}
	if _, err := h.svc.SavePreferences(c.Request.Context(), form); err != nil {
		fail(c, err, settingsNotFound)
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

// SwitchLanguage always lands back on the dashboard, even when saving failed.
func (h *Controller) SwitchLanguage(c *gin.Context) {
	if err := h.svc.SwitchLanguage(c.Request.Context(), c.Param("lang")); err != nil {
		log.Error().Err(err).Str("lang", c.Param("lang")).Msg("Error switching language")
	}
	c.Redirect(http.StatusFound, "/dashboard")
}
