package services

import (
	"context"
	"errors"

	"ClinicDesk/models"
	"ClinicDesk/repository"

	"github.com/rs/zerolog/log"
)

// currentPreferences returns the stored preferences, or the defaults and
// false when none were saved yet.
func (s *Service) currentPreferences(ctx context.Context) (models.UserPreferences, bool, error) {
	p, err := s.store.Settings.Preferences(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return models.DefaultPreferences(), false, nil
	}
	if err != nil {
		log.Error().Err(err).Msg("Error from Preferences")
		return p, false, err
	}
	return p, true, nil
}

func (s *Service) savePreferences(ctx context.Context, p models.UserPreferences) (models.UserPreferences, error) {
	if err := s.store.Settings.SavePreferences(ctx, p); err != nil {
		log.Error().Err(err).Msg("Error from SavePreferences")
		return p, err
	}
	return s.store.Settings.Preferences(ctx)
}

// Preferences returns nil when nothing has been saved.
func (s *Service) Preferences(ctx context.Context) (*models.UserPreferences, error) {
	p, ok, err := s.currentPreferences(ctx)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

// UpdateTheme stores themeValue. When it already matches, nothing is
// written and the unchanged value is returned as the string itself.
func (s *Service) UpdateTheme(ctx context.Context, themeValue string) (interface{}, error) {
	p, ok, err := s.currentPreferences(ctx)
	if err != nil {
		return nil, err
	}
	if ok && p.ThemeValue == themeValue {
		return p.ThemeValue, nil
	}
	p.ThemeValue = themeValue
	return s.savePreferences(ctx, p)
}

func (s *Service) UpdateSidebar(ctx context.Context, sidebarMini bool) (models.UserPreferences, error) {
	p, _, err := s.currentPreferences(ctx)
	if err != nil {
		return p, err
	}
	p.SidebarMini = sidebarMini
	return s.savePreferences(ctx, p)
}

/*
* Every toggle is true only for the literal "true"
* A blank pic or themeValue keeps the stored one
 */
func (s *Service) SavePreferences(ctx context.Context, form models.PreferencesForm) (models.UserPreferences, error) {
	p, _, err := s.currentPreferences(ctx)
	if err != nil {
		return p, err
	}
	isTrue := func(v string) bool { return v == "true" }

	p.Theme = form.Theme
	p.Font = form.Font
	if form.ThemeValue != "" {
		p.ThemeValue = form.ThemeValue
	}
	if form.Pic != "" {
		p.Pic = form.Pic
	}
	p.ThemeRtl = isTrue(form.ThemeRtl)
	p.HMenu = isTrue(form.HMenu)
	p.HeaderFixed = isTrue(form.HeaderFixed)
	p.HeaderDarkMode = isTrue(form.HeaderDarkMode)
	p.BorderRadios = isTrue(form.BorderRadios)
	p.SidebarDark = isTrue(form.SidebarDark)
	p.CheckImage = isTrue(form.CheckImage)
	p.FluidLayout = isTrue(form.FluidLayout)
	p.CardShadow = isTrue(form.CardShadow)
	return s.savePreferences(ctx, p)
}

// SwitchLanguage only changes existing preferences.
func (s *Service) SwitchLanguage(ctx context.Context, lang string) error {
	p, ok, err := s.currentPreferences(ctx)
	if err != nil || !ok {
		return err
	}
	p.Language = lang
	_, err = s.savePreferences(ctx, p)
	return err
}
