package services

import (
	"context"
	"strings"

	"ClinicDesk/models"
	"ClinicDesk/notify"
	"ClinicDesk/util"

	"github.com/rs/zerolog/log"
)

const maxRating = 5

// Stars renders rating as five filled or empty star entities.
func Stars(rating int) string {
	var b strings.Builder
	for i := 1; i <= maxRating; i++ {
		if i <= rating {
			b.WriteString("&#9733; ")
		} else {
			b.WriteString("&#9734; ")
		}
	}
	return b.String()
}

func withStars(reviews []models.Review) []models.RatedReview {
	out := make([]models.RatedReview, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, models.RatedReview{Review: r, Stars: Stars(r.Rating)})
	}
	return out
}

type ReviewsPage struct {
	ActiveReviews   []models.RatedReview `json:"activeReviews"`
	InactiveReviews []models.RatedReview `json:"inactiveReviews"`
}

type ContactsPage struct {
	PersonsToContact []models.Contact `json:"personsToContact"`
	ContactedPersons []models.Contact `json:"contactedPersons"`
}

// publish logs and swallows broker errors; a lost live update must not fail
// the write that caused it.
func (s *Service) publish(ctx context.Context, topic notify.Topic, v interface{}) {
	if err := notify.PublishJSON(ctx, s.broker, topic, v); err != nil {
		log.Error().Err(err).Str("topic", string(topic)).Msg("Error from PublishJSON")
	}
}

/*
* Validate the rating
* Persist the review
* Publish it and the new unviewed count
 */
func (s *Service) SubmitReview(ctx context.Context, form models.ReviewForm) (models.Review, error) {
	rating, err := form.Rating.Int64()
	if err != nil || rating < 1 || rating > maxRating {
		return models.Review{}, invalid(util.INVALID_RATING)
	}
	r := models.Review{
		Rating:     int(rating),
		Name:       form.Name,
		Profession: form.Profession,
		City:       form.City,
		Review:     form.Review,
		CreatedAt:  s.now(),
	}
	if err := s.store.Reviews.Create(ctx, &r); err != nil {
		log.Error().Err(err).Msg("Error from Create review")
		return r, err
	}
	s.publish(ctx, notify.TopicReviews, r)
	s.publishReviewCount(ctx)
	return r, nil
}

func (s *Service) publishReviewCount(ctx context.Context) {
	n, err := s.store.Reviews.CountUnviewed(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error from CountUnviewed reviews")
		return
	}
	s.publish(ctx, notify.TopicReviewsCount, notify.Count{Count: n})
}

// ReviewsPage marks every review viewed and splits them by activation.
func (s *Service) ReviewsPage(ctx context.Context) (ReviewsPage, error) {
	var page ReviewsPage
	if err := s.store.Reviews.MarkAllViewed(ctx); err != nil {
		log.Error().Err(err).Msg("Error from MarkAllViewed reviews")
		return page, err
	}
	s.publishReviewCount(ctx)

	active, err := s.store.Reviews.FindByActive(ctx, true)
	if err != nil {
		log.Error().Err(err).Msg("Error from FindByActive reviews")
		return page, err
	}
	inactive, err := s.store.Reviews.FindByActive(ctx, false)
	if err != nil {
		log.Error().Err(err).Msg("Error from FindByActive reviews")
		return page, err
	}
	page.ActiveReviews = withStars(active)
	page.InactiveReviews = withStars(inactive)
	return page, nil
}

// ActiveReviews feeds the testimonials on the landing page and dashboard.
func (s *Service) ActiveReviews(ctx context.Context) ([]models.RatedReview, error) {
	active, err := s.store.Reviews.FindByActive(ctx, true)
	if err != nil {
		log.Error().Err(err).Msg("Error from FindByActive reviews")
		return nil, err
	}
	return withStars(active), nil
}

func (s *Service) ReviewCount(ctx context.Context) (int64, error) {
	n, err := s.store.Reviews.CountUnviewed(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error from CountUnviewed reviews")
	}
	return n, err
}

func (s *Service) ToggleReview(ctx context.Context, id string) error {
	r, err := s.store.Reviews.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("Error from FindByID review")
		return err
	}
	if err := s.store.Reviews.SetActive(ctx, id, !r.Active); err != nil {
		log.Error().Err(err).Msg("Error from SetActive")
		return err
	}
	return nil
}

func (s *Service) DeleteReview(ctx context.Context, id string) error {
	if err := s.store.Reviews.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("Error from Delete review")
		return err
	}
	return nil
}

func (s *Service) SubmitContact(ctx context.Context, form models.ContactForm) (models.Contact, error) {
	c := models.Contact{
		Name:      form.Name,
		Email:     form.Email,
		Tel:       form.Tel,
		Message:   form.Message,
		CreatedAt: s.now(),
	}
	if err := s.store.Contacts.Create(ctx, &c); err != nil {
		log.Error().Err(err).Msg("Error from Create contact")
		return c, err
	}
	s.publish(ctx, notify.TopicContacts, c)
	s.publishContactCount(ctx)
	return c, nil
}

func (s *Service) publishContactCount(ctx context.Context) {
	n, err := s.store.Contacts.CountUnviewed(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error from CountUnviewed contacts")
		return
	}
	s.publish(ctx, notify.TopicContactsCount, notify.Count{Count: n})
}

func (s *Service) ContactsPage(ctx context.Context) (ContactsPage, error) {
	var page ContactsPage
	if err := s.store.Contacts.MarkAllViewed(ctx); err != nil {
		log.Error().Err(err).Msg("Error from MarkAllViewed contacts")
		return page, err
	}
	s.publishContactCount(ctx)

	var err error
	if page.PersonsToContact, err = s.store.Contacts.FindByContacted(ctx, false); err != nil {
		log.Error().Err(err).Msg("Error from FindByContacted")
		return page, err
	}
	if page.ContactedPersons, err = s.store.Contacts.FindByContacted(ctx, true); err != nil {
		log.Error().Err(err).Msg("Error from FindByContacted")
		return page, err
	}
	return page, nil
}

func (s *Service) ContactCount(ctx context.Context) (int64, error) {
	n, err := s.store.Contacts.CountUnviewed(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error from CountUnviewed contacts")
	}
	return n, err
}

func (s *Service) ToggleContacted(ctx context.Context, id string) error {
	c, err := s.store.Contacts.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("Error from FindByID contact")
		return err
	}
	if err := s.store.Contacts.SetContacted(ctx, id, !c.Contacted); err != nil {
		log.Error().Err(err).Msg("Error from SetContacted")
		return err
	}
	return nil
}

func (s *Service) DeleteContact(ctx context.Context, id string) error {
	if err := s.store.Contacts.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("Error from Delete contact")
		return err
	}
	return nil
}
