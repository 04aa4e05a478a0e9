// Package views renders the back-office pages and prepares the layout data
// every page shares.
package views

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const localsKey = "locals"

// Renderer writes pages through gin's HTML templates. Without templates on
// disk it answers with the view name and its data as JSON, which is what
// the API clients and the tests see.
type Renderer struct {
	html bool
}

// Load parses <dir>/*.html into the engine when any template exists.
func Load(r *gin.Engine, dir string) *Renderer {
	matches, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil || len(matches) == 0 {
		log.Warn().Str("dir", dir).Msg("No view templates found, rendering JSON")
		return &Renderer{}
	}
	r.LoadHTMLGlob(filepath.Join(dir, "*.html"))
	return &Renderer{html: true}
}

// JSON returns a renderer that never uses templates.
func JSON() *Renderer {
	return &Renderer{}
}

func (v *Renderer) Page(c *gin.Context, view string, data gin.H) {
	v.PageStatus(c, http.StatusOK, view, data)
}

func (v *Renderer) PageStatus(c *gin.Context, status int, view string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if !v.html {
		c.JSON(status, gin.H{"view": view, "data": data})
		return
	}
	page := gin.H{}
	if locals, ok := c.Get(localsKey); ok {
		for k, val := range locals.(gin.H) {
			page[k] = val
		}
	}
	for k, val := range data {
		page[k] = val
	}
	c.HTML(status, view+".html", page)
}

// LocalsFrom returns the layout data stored by the Locals middleware.
func LocalsFrom(c *gin.Context) gin.H {
	if locals, ok := c.Get(localsKey); ok {
		return locals.(gin.H)
	}
	return gin.H{}
}
