package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"regexp"

	"ClinicDesk/models"
	"ClinicDesk/repository"
	"ClinicDesk/util"

	"github.com/rs/zerolog/log"
)

var imageName = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif)$`)

// Layout is the data every rendered page receives.
type Layout struct {
	Doctor                  *models.Doctor              `json:"doctor"`
	Clinic                  *models.Clinic              `json:"clinic"`
	SettingSocialMedia      *models.SocialMediaSettings `json:"settingSocialMedia"`
	UserPreferences         *models.UserPreferences     `json:"userPrefrences"`
	LastUploadedDoctorPhoto string                      `json:"lastUploadedDoctorPhoto"`
	LastUploadedClinicPhoto string                      `json:"lastUploadedClinicPhoto"`
	Patients                []models.Patient            `json:"patients"`
	Invoices                []models.Invoice            `json:"invoices"`
	Drugs                   []models.Drug               `json:"drugs"`
	Todos                   []models.Todo               `json:"todos"`
}

// optional turns a missing single document into nil.
func optional[T any](v T, err error) (*T, error) {
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *Service) latestPhotoName(ctx context.Context, kind repository.PhotoKind) (string, error) {
	p, err := s.store.Settings.LatestPhoto(ctx, kind)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return url.PathEscape(filepath.Base(p.Path)), nil
}

/*
* Load the single settings documents, any of them may be missing
* Resolve the latest uploaded photos to escaped file names
* Load the lists shown in the sidebar widgets
 */
func (s *Service) Layout(ctx context.Context) (Layout, error) {
	var l Layout
	var err error
	if l.Doctor, err = optional(s.store.Settings.Doctor(ctx)); err != nil {
		log.Error().Err(err).Msg("Error from Doctor")
		return l, err
	}
	if l.Clinic, err = optional(s.store.Settings.Clinic(ctx)); err != nil {
		log.Error().Err(err).Msg("Error from Clinic")
		return l, err
	}
	if l.SettingSocialMedia, err = optional(s.store.Settings.SocialMedia(ctx)); err != nil {
		log.Error().Err(err).Msg("Error from SocialMedia")
		return l, err
	}
	if l.UserPreferences, err = optional(s.store.Settings.Preferences(ctx)); err != nil {
		log.Error().Err(err).Msg("Error from Preferences")
		return l, err
	}
	if l.LastUploadedDoctorPhoto, err = s.latestPhotoName(ctx, repository.DoctorPhoto); err != nil {
		log.Error().Err(err).Msg("Error from LatestPhoto doctor")
		return l, err
	}
	if l.LastUploadedClinicPhoto, err = s.latestPhotoName(ctx, repository.ClinicPhoto); err != nil {
		log.Error().Err(err).Msg("Error from LatestPhoto clinic")
		return l, err
	}
	if l.Patients, err = s.store.Patients.FindAll(ctx); err != nil {
		log.Error().Err(err).Msg("Error from FindAll patients")
		return l, err
	}
	if l.Invoices, err = s.store.Invoices.FindAll(ctx, 0); err != nil {
		log.Error().Err(err).Msg("Error from FindAll invoices")
		return l, err
	}
	if l.Drugs, err = s.store.Drugs.FindAll(ctx); err != nil {
		log.Error().Err(err).Msg("Error from FindAll drugs")
		return l, err
	}
	if l.Todos, err = s.ListTodos(ctx); err != nil {
		return l, err
	}
	return l, nil
}

// Language is the preferred interface language, "en" until one is saved.
func (l Layout) Language() string {
	if l.UserPreferences == nil || l.UserPreferences.Language == "" {
		return models.DefaultPreferences().Language
	}
	return l.UserPreferences.Language
}

func (s *Service) SaveClinic(ctx context.Context, c models.Clinic) error {
	if c.IDNumber == "" {
		return invalid("idNumber is required")
	}
	if err := s.store.Settings.SaveClinic(ctx, c); err != nil {
		log.Error().Err(err).Msg("Error from SaveClinic")
		return err
	}
	return nil
}

func (s *Service) SaveDoctor(ctx context.Context, d models.Doctor) error {
	if err := s.store.Settings.ReplaceDoctor(ctx, d); err != nil {
		log.Error().Err(err).Msg("Error from ReplaceDoctor")
		return err
	}
	return nil
}

func (s *Service) SetSocialMedia(ctx context.Context, sm models.SocialMedia) error {
	if err := s.store.Settings.SetSocialMedia(ctx, sm); err != nil {
		log.Error().Err(err).Msg("Error from SetSocialMedia")
		return err
	}
	return nil
}

/*
* Only image extensions are accepted
* Write the upload as <unix millis>-<original name> under the uploads dir
* Record the stored path
 */
func (s *Service) SavePhoto(ctx context.Context, kind repository.PhotoKind, name string, src io.Reader) (string, error) {
	name = filepath.Base(name)
	if !imageName.MatchString(name) {
		return "", invalid(util.UNSUPPORTED_IMAGE)
	}
	if err := os.MkdirAll(s.opts.UploadsDir, 0o755); err != nil {
		log.Error().Err(err).Msg("Error creating uploads dir")
		return "", err
	}
	path := filepath.Join(s.opts.UploadsDir, fmt.Sprintf("%d-%s", s.now().UnixMilli(), name))
	dst, err := os.Create(path)
	if err != nil {
		log.Error().Err(err).Msg("Error creating upload file")
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		log.Error().Err(err).Msg("Error writing upload file")
		return "", err
	}
	if err := dst.Close(); err != nil {
		return "", err
	}
	if err := s.store.Settings.AddPhoto(ctx, kind, path); err != nil {
		log.Error().Err(err).Msg("Error from AddPhoto")
		return "", err
	}
	return path, nil
}
