package services

import (
	"context"

	"ClinicDesk/models"

	"github.com/rs/zerolog/log"
)

type LandingPage struct {
	HoursList              []string             `json:"hoursList"`
	FoundAppointments      []models.Appointment `json:"foundAppointments"`
	ActiveReviewsWithStars []models.RatedReview `json:"activeReviewsWithStars"`
}

// LandingPage gathers the public page: bookable hours, the pending
// appointments used to grey out taken slots and the active testimonials.
func (s *Service) LandingPage(ctx context.Context) (LandingPage, error) {
	page := LandingPage{HoursList: HoursList}
	var err error
	if page.FoundAppointments, err = s.store.Appointments.FindAll(ctx); err != nil {
		log.Error().Err(err).Msg("Error from FindAll appointments")
		return page, err
	}
	if page.ActiveReviewsWithStars, err = s.ActiveReviews(ctx); err != nil {
		return page, err
	}
	return page, nil
}
