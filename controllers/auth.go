package controllers

import (
	"errors"
	"net/http"

	"ClinicDesk/authorization"
	"ClinicDesk/models"
	"ClinicDesk/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const loginFailed = "Incorrect email or password"

func (h *Controller) Auth(router *gin.Engine) {
	router.GET("/login", h.public(h.LoginPage)...)
	router.POST("/login", h.Login)
	router.GET("/logout", h.Logout)
}

func (h *Controller) LoginPage(c *gin.Context) {
	msg := ""
	if c.Query("error") != "" {
		msg = loginFailed
	}
	h.views.Page(c, "sign-in", gin.H{"errorMessage": msg})
}

/*
* Bind the credentials, anything missing goes back to the login page
* Verify them and store the session token in a cookie
 */
func (h *Controller) Login(c *gin.Context) {
	var form models.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusFound, "/login?error=1")
		return
	}
	token, err := h.svc.Login(c.Request.Context(), form)
	if errors.Is(err, services.ErrUnauthorized) {
		c.Redirect(http.StatusFound, "/login?error=1")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("Error from Login")
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authorization.CookieName, token, h.svc.SessionTTLSeconds(), "/", "", h.secureCookies, true)
	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *Controller) Logout(c *gin.Context) {
	c.SetCookie(authorization.CookieName, "", -1, "/", "", h.secureCookies, true)
	c.Redirect(http.StatusFound, "/")
}
