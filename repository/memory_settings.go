package repository

import (
	"context"
	"sync"
	"time"

	"ClinicDesk/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memSettings struct {
	mu          sync.RWMutex
	doctor      *models.Doctor
	clinic      *models.Clinic
	social      *models.SocialMediaSettings
	preferences *models.UserPreferences
	photos      map[PhotoKind][]models.Photo
}

func newMemSettings() *memSettings {
	return &memSettings{photos: map[PhotoKind][]models.Photo{}}
}

func (r *memSettings) Doctor(_ context.Context) (models.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.doctor == nil {
		return models.Doctor{}, ErrNotFound
	}
	return *r.doctor, nil
}

func (r *memSettings) ReplaceDoctor(_ context.Context, d models.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.doctor != nil {
		d.ID = r.doctor.ID
	} else {
		d.ID = primitive.NewObjectID()
	}
	r.doctor = &d
	return nil
}

func (r *memSettings) Clinic(_ context.Context) (models.Clinic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.clinic == nil {
		return models.Clinic{}, ErrNotFound
	}
	return *r.clinic, nil
}

// SaveClinic keeps at most one clinic, so storing one replaces any other.
func (r *memSettings) SaveClinic(_ context.Context, c models.Clinic) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.clinic != nil && r.clinic.IDNumber == c.IDNumber {
		c.ID = r.clinic.ID
	} else {
		c.ID = primitive.NewObjectID()
	}
	r.clinic = &c
	return nil
}

func (r *memSettings) SocialMedia(_ context.Context) (models.SocialMediaSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.social == nil {
		return models.SocialMediaSettings{}, ErrNotFound
	}
	return *r.social, nil
}

func (r *memSettings) SetSocialMedia(_ context.Context, s models.SocialMedia) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.social == nil {
		r.social = &models.SocialMediaSettings{ID: primitive.NewObjectID()}
	}
	r.social.SocialMedia = s
	return nil
}

func (r *memSettings) Preferences(_ context.Context) (models.UserPreferences, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.preferences == nil {
		return models.UserPreferences{}, ErrNotFound
	}
	return *r.preferences, nil
}

func (r *memSettings) SavePreferences(_ context.Context, p models.UserPreferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	if r.preferences != nil {
		p.ID = r.preferences.ID
		p.CreatedAt = r.preferences.CreatedAt
	} else {
		p.ID = primitive.NewObjectID()
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	r.preferences = &p
	return nil
}

func (r *memSettings) AddPhoto(_ context.Context, kind PhotoKind, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.photos[kind] = append(r.photos[kind], models.Photo{ID: primitive.NewObjectID(), Path: path, CreatedAt: time.Now()})
	return nil
}

func (r *memSettings) LatestPhoto(_ context.Context, kind PhotoKind) (models.Photo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.photos[kind]
	if len(list) == 0 {
		return models.Photo{}, ErrNotFound
	}
	return list[len(list)-1], nil
}

type memAccounts struct {
	mu      sync.RWMutex
	account *models.Account
}

func (r *memAccounts) FindByUsername(_ context.Context, username string) (models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.account == nil || r.account.Username != username {
		return models.Account{}, ErrNotFound
	}
	return *r.account, nil
}

func (r *memAccounts) Replace(_ context.Context, a models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = primitive.NewObjectID()
	a.CreatedAt = time.Now()
	r.account = &a
	return nil
}
