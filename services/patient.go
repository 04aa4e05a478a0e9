package services

import (
	"context"
	"fmt"

	"ClinicDesk/models"

	"github.com/rs/zerolog/log"
)

type PatientProfile struct {
	Patient              models.Patient           `json:"patient"`
	Invoices             []models.Invoice         `json:"invoices"`
	LastInvoice          *models.Invoice          `json:"lastInvoice"`
	LastVisits           []models.LastVisit       `json:"lastVisits"`
	HoursList            []string                 `json:"hoursList"`
	FoundAppointments    []models.Appointment     `json:"foundAppointments"`
	Appointments         []models.Appointment     `json:"Appointments"`
	ApprovedAppointments []models.PastAppointment `json:"approvedAppointments"`
	DeletedAppointments  []models.PastAppointment `json:"deletedAppointments"`
}

func (s *Service) AddPatient(ctx context.Context, p models.Patient) (models.Patient, error) {
	if p.IDNumber == "" {
		return p, invalid("idNumber is required")
	}
	if err := s.store.Patients.Create(ctx, &p); err != nil {
		log.Error().Err(err).Msg("Error from Create patient")
		return p, err
	}
	return p, nil
}

func (s *Service) GetPatient(ctx context.Context, id string) (models.Patient, error) {
	p, err := s.store.Patients.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("Error from FindByID patient")
	}
	return p, err
}

func (s *Service) ListPatients(ctx context.Context) ([]models.Patient, error) {
	list, err := s.store.Patients.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error from FindAll patients")
	}
	return list, err
}

/*
* Find the patient, not found ends here
* Resolve its invoices and pick the most recent
* Collect pending, approved and canceled appointments for its idNumber
 */
func (s *Service) PatientProfile(ctx context.Context, id string) (PatientProfile, error) {
	var out PatientProfile
	p, err := s.store.Patients.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("Error from FindByID patient")
		return out, err
	}
	out.Patient = p
	out.HoursList = HoursList

	if out.Invoices, err = s.invoicesInOrder(ctx, p); err != nil {
		return out, err
	}
	if n := len(out.Invoices); n > 0 {
		out.LastInvoice = &out.Invoices[n-1]
	}
	if out.LastVisits, err = s.store.LastVisits.FindByPatient(ctx, id); err != nil {
		log.Error().Err(err).Msg("Error from FindByPatient last visits")
		return out, err
	}
	if out.FoundAppointments, err = s.store.Appointments.FindAll(ctx); err != nil {
		log.Error().Err(err).Msg("Error from FindAll appointments")
		return out, err
	}
	if out.Appointments, err = s.store.Appointments.FindByIDNumber(ctx, p.IDNumber); err != nil {
		log.Error().Err(err).Msg("Error from FindByIDNumber appointments")
		return out, err
	}
	if out.ApprovedAppointments, err = s.store.Approved.FindByIDNumber(ctx, p.IDNumber); err != nil {
		log.Error().Err(err).Msg("Error from FindByIDNumber approved")
		return out, err
	}
	if out.DeletedAppointments, err = s.store.Deleted.FindByIDNumber(ctx, p.IDNumber); err != nil {
		log.Error().Err(err).Msg("Error from FindByIDNumber deleted")
		return out, err
	}
	return out, nil
}

// invoicesInOrder resolves the patient's invoice references, keeping the
// order in which they were attached.
func (s *Service) invoicesInOrder(ctx context.Context, p models.Patient) ([]models.Invoice, error) {
	found, err := s.store.Invoices.FindByIDs(ctx, p.Invoices)
	if err != nil {
		log.Error().Err(err).Msg("Error from FindByIDs invoices")
		return nil, err
	}
	byID := make(map[string]models.Invoice, len(found))
	for _, inv := range found {
		byID[inv.ID.Hex()] = inv
	}
	ordered := make([]models.Invoice, 0, len(found))
	for _, ref := range p.Invoices {
		if inv, ok := byID[ref.Hex()]; ok {
			ordered = append(ordered, inv)
		}
	}
	return ordered, nil
}

func (s *Service) UpdatePatientProfile(ctx context.Context, form models.PatientProfileForm) error {
	if err := s.store.Patients.UpdateProfile(ctx, form.PatientID, form.Patient); err != nil {
		log.Error().Err(err).Str("id", form.PatientID).Msg("Error from UpdateProfile")
		return err
	}
	return nil
}

/*
* Push the visit onto the patient, not found ends here
* Keep a copy in the visits collection
 */
func (s *Service) AddLastVisit(ctx context.Context, patientID string, v models.LastVisit) (models.LastVisit, error) {
	v.PatientID = patientID
	v.CreatedAt = s.now()
	if err := s.store.Patients.PushLastVisit(ctx, patientID, v); err != nil {
		log.Error().Err(err).Str("id", patientID).Msg("Error from PushLastVisit")
		return v, err
	}
	if err := s.store.LastVisits.Create(ctx, &v); err != nil {
		log.Error().Err(err).Msg("Error from Create last visit")
		return v, fmt.Errorf("record last visit: %w", err)
	}
	return v, nil
}

func (s *Service) UpdatePatientStatus(ctx context.Context, id, status string) error {
	if err := s.store.Patients.SetStatus(ctx, id, status); err != nil {
		log.Error().Err(err).Str("id", id).Msg("Error from SetStatus")
		return err
	}
	return nil
}

func (s *Service) DeletePatient(ctx context.Context, id string) error {
	if err := s.store.Patients.Delete(ctx, id); err != nil {
		log.Error().Err(err).Str("id", id).Msg("Error from Delete patient")
		return err
	}
	return nil
}
