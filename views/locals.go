package views

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"ClinicDesk/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// LayoutSource is what the Locals middleware needs from the services.
type LayoutSource interface {
	Layout(ctx context.Context) (services.Layout, error)
}

// LoadTranslation reads <dir>/<lang>/translation.json.
func LoadTranslation(dir, lang string) (map[string]interface{}, error) {
	path := filepath.Join(dir, filepath.Base(lang), "translation.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	out := map[string]interface{}{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return out, nil
}

/*
* Load the shared layout data, a failure answers 500
* Load the translation for the preferred language, a missing file leaves it empty
* Store both for the page renderer
 */
func Locals(src LayoutSource, localesDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		layout, err := src.Layout(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("Error from Layout")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
			return
		}
		translation, err := LoadTranslation(localesDir, layout.Language())
		if err != nil {
			log.Error().Err(err).Str("lang", layout.Language()).Msg("Error handling translation file")
			translation = map[string]interface{}{}
		}
		c.Set(localsKey, gin.H{
			"lastUploadedDoctorPhoto": layout.LastUploadedDoctorPhoto,
			"lastUploadedClinicPhoto": layout.LastUploadedClinicPhoto,
			"doctor":                  layout.Doctor,
			"clinic":                  layout.Clinic,
			"settingSocialMedia":      layout.SettingSocialMedia,
			"userPrefrences":          layout.UserPreferences,
			"patients":                layout.Patients,
			"invoices":                layout.Invoices,
			"drugs":                   layout.Drugs,
			"todos":                   layout.Todos,
			"currentLanguage":         layout.Language(),
			"translation":             translation,
		})
		c.Next()
	}
}
