// Package controllers binds HTTP requests to the clinic services.
package controllers

import (
	"errors"
	"net/http"

	"ClinicDesk/repository"
	"ClinicDesk/services"
	"ClinicDesk/util"
	"ClinicDesk/views"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	svc    *services.Service
	views  *views.Renderer
	guard  gin.HandlerFunc
	locals gin.HandlerFunc
	// secureCookies marks the session cookie Secure outside development.
	secureCookies bool
}

type Options struct {
	Views         *views.Renderer
	Guard         gin.HandlerFunc
	Locals        gin.HandlerFunc
	SecureCookies bool
}

func New(svc *services.Service, opts Options) *Controller {
	pass := func(c *gin.Context) { c.Next() }
	if opts.Guard == nil {
		opts.Guard = pass
	}
	if opts.Locals == nil {
		opts.Locals = pass
	}
	if opts.Views == nil {
		opts.Views = views.JSON()
	}
	return &Controller{
		svc:           svc,
		views:         opts.Views,
		guard:         opts.Guard,
		locals:        opts.Locals,
		secureCookies: opts.SecureCookies,
	}
}

// private chains the session guard and the layout data in front of a page.
func (h *Controller) private(handler gin.HandlerFunc) []gin.HandlerFunc {
	return []gin.HandlerFunc{h.guard, h.locals, handler}
}

// public pages still need the layout data.
func (h *Controller) public(handler gin.HandlerFunc) []gin.HandlerFunc {
	return []gin.HandlerFunc{h.locals, handler}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(err error, notFound string) string {
	switch statusFor(err) {
	case http.StatusNotFound:
		return notFound
	case http.StatusInternalServerError:
		return util.INTERNAL_SERVER_ERROR
	default:
		return err.Error()
	}
}

/*
* Map the error to its status
* Answer with the failure envelope
 */
func fail(c *gin.Context, err error, notFound string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	}
	c.JSON(status, util.FailedMessage(messageFor(err, notFound)))
}

// failPage answers page routes with plain text, as browsers get them.
func failPage(c *gin.Context, err error, notFound string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Page failed")
	}
	c.String(status, messageFor(err, notFound))
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, util.FailedResponse(err))
}

// formData is the {"formData": {...}} envelope the public site posts.
type formData[T any] struct {
	FormData T `json:"formData" binding:"required"`
}
