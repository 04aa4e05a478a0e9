package views

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"ClinicDesk/models"
	"ClinicDesk/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLayout struct {
	layout services.Layout
	err    error
}

func (s stubLayout) Layout(context.Context) (services.Layout, error) {
	return s.layout, s.err
}

func writeTranslation(t *testing.T, dir, lang, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, lang), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, lang, "translation.json"), []byte(body), 0o644))
}

func TestLoadTranslation(t *testing.T) {
	dir := t.TempDir()
	writeTranslation(t, dir, "en", `{"hello":"Hello"}`)

	tr, err := LoadTranslation(dir, "en")
	require.NoError(t, err)
	assert.Equal(t, "Hello", tr["hello"])

	_, err = LoadTranslation(dir, "fr")
	assert.Error(t, err)

	writeTranslation(t, dir, "bad", `{`)
	_, err = LoadTranslation(dir, "bad")
	assert.Error(t, err)
}

func TestLocals(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	writeTranslation(t, dir, "he", `{"hello":"שלום"}`)

	prefs := models.DefaultPreferences()
	prefs.Language = "he"
	r := gin.New()
	r.Use(Locals(stubLayout{layout: services.Layout{UserPreferences: &prefs, LastUploadedDoctorPhoto: "a%20b.png"}}, dir))
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, LocalsFrom(c))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "he", body["currentLanguage"])
	assert.Equal(t, "a%20b.png", body["lastUploadedDoctorPhoto"])
	assert.Equal(t, map[string]interface{}{"hello": "שלום"}, body["translation"])
}

func TestLocals_Failure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Locals(stubLayout{err: errors.New("db down")}, t.TempDir()))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRenderer_JSONFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	v := Load(r, t.TempDir())
	r.GET("/", func(c *gin.Context) { v.Page(c, "reviews", gin.H{"activeReviews": []string{}}) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"view":"reviews","data":{"activeReviews":[]}}`, w.Body.String())
}

func TestRenderer_Templates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sign-in.html"), []byte(`hi {{.errorMessage}} {{.currentLanguage}}`), 0o644))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(localsKey, gin.H{"currentLanguage": "en"})
		c.Next()
	})
	v := Load(r, dir)
	r.GET("/", func(c *gin.Context) { v.Page(c, "sign-in", gin.H{"errorMessage": "nope"}) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hi nope en", w.Body.String())
}
