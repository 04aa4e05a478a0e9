package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ClinicDesk/controllers"
	"ClinicDesk/mailer"
	"ClinicDesk/notify"
	"ClinicDesk/repository"
	"ClinicDesk/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRoutes_RegistersEverySection(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := services.New(repository.NewMemoryStore(), notify.NewHub(), mailer.LogMailer{}, services.Options{UploadsDir: t.TempDir()})
	r := gin.New()
	Routes(r, controllers.New(svc, controllers.Options{}), []string{"*"})

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}
	for _, want := range []string{
		"GET /login", "GET /", "GET /sse", "GET /book-appointment", "GET /patient-profile",
		"POST /patients/:id/invoices", "POST /add-drug", "POST /rate", "POST /user-prefrences",
		"DELETE /todos/:id", "GET /sse/contacts/count",
	} {
		assert.True(t, registered[want], want)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/todos", nil)
	req.Header.Set("Origin", "http://other.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestAllowsAny(t *testing.T) {
	assert.True(t, allowsAny([]string{"https://a.example", "*"}))
	assert.False(t, allowsAny([]string{"https://a.example"}))
}

func TestRoutes_ExplicitOriginsAllowCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := services.New(repository.NewMemoryStore(), notify.NewHub(), mailer.LogMailer{}, services.Options{UploadsDir: t.TempDir()})
	r := gin.New()
	Routes(r, controllers.New(svc, controllers.Options{}), []string{"https://clinic.example"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/todos", nil)
	req.Header.Set("Origin", "https://clinic.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://clinic.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodOptions, "/todos", nil)
	req.Header.Set("Origin", "http://other.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
