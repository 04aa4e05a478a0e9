package routes

import (
	"ClinicDesk/controllers"
	"ClinicDesk/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine, h *controllers.Controller, origins []string) {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(logger.Middleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: !allowsAny(origins),
	}))

	//public
	h.Auth(r)
	h.Pages(r)
	h.Stream(r)
	//pages behind the session guard are marked per route
	h.Appointment(r)
	h.Patient(r)
	h.Invoice(r)
	h.Drug(r)
	h.Feedback(r)
	h.Settings(r)
	h.Todo(r)
}

// cors refuses credentials together with a wildcard origin.
func allowsAny(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
