package services

import (
	"context"
	"errors"
	"fmt"

	"ClinicDesk/models"
	"ClinicDesk/repository"

	"github.com/rs/zerolog/log"
)

const PatientPending = "Pending"

// HoursList is the set of bookable slots offered by the booking forms.
var HoursList = []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"}

type AppointmentBoard struct {
	Pending   []models.Appointment     `json:"appointments"`
	Approved  []models.PastAppointment `json:"approvedAppointments"`
	Canceled  []models.PastAppointment `json:"deletedAppointments"`
	HoursList []string                 `json:"hoursList"`
}

/*
* Upsert the pending appointment by idNumber
 */
func (s *Service) BookAppointment(ctx context.Context, a models.Appointment) error {
	if a.IDNumber == "" {
		return invalid("idNumber is required")
	}
	if err := s.store.Appointments.UpsertByIDNumber(ctx, a); err != nil {
		log.Error().Err(err).Msg("Error from UpsertByIDNumber")
		return err
	}
	return nil
}

/*
* Find the pending appointment
* Apply the corrected values from the form
* Save
 */
func (s *Service) UpdateAppointment(ctx context.Context, form models.ApprovalForm) error {
	current, err := s.store.Appointments.FindByID(ctx, form.AppointmentID)
	if err != nil {
		log.Error().Err(err).Msg("Error from FindByID while updating appointment")
		return err
	}
	if err := s.store.Appointments.Update(ctx, form.Merge(current)); err != nil {
		log.Error().Err(err).Msg("Error from Update")
		return err
	}
	return nil
}

/*
* Find the pending appointment and merge the form values over it
* Upsert the patient by idNumber with status Pending
* Upsert the approved record keyed by the pending id
* Delete the pending appointment
* Every step can be repeated, so a retry after a failure converges
 */
func (s *Service) ApproveAppointment(ctx context.Context, form models.ApprovalForm) error {
	current, err := s.store.Appointments.FindByID(ctx, form.AppointmentID)
	if err != nil {
		log.Error().Err(err).Msg("Error from FindByID while approving appointment")
		return err
	}
	a := form.Merge(current)
	if a.IDNumber == "" {
		return invalid("idNumber is required")
	}

	if err := s.store.Patients.UpsertFromAppointment(ctx, a, PatientPending); err != nil {
		log.Error().Err(err).Msg("Error from UpsertFromAppointment")
		return fmt.Errorf("upsert patient: %w", err)
	}
	if err := s.store.Approved.UpsertBySource(ctx, a.Past()); err != nil {
		log.Error().Err(err).Msg("Error from UpsertBySource approved")
		return fmt.Errorf("record approval: %w", err)
	}
	if err := s.store.Appointments.Delete(ctx, a.ID.Hex()); err != nil && !errors.Is(err, repository.ErrNotFound) {
		log.Error().Err(err).Msg("Error from Delete pending appointment")
		return fmt.Errorf("remove pending appointment: %w", err)
	}
	return nil
}

/*
* Find the pending appointment
* Upsert the canceled record keyed by the pending id
* Delete the pending appointment
 */
func (s *Service) CancelAppointment(ctx context.Context, id string) error {
	current, err := s.store.Appointments.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("Error from FindByID while canceling appointment")
		return err
	}
	if err := s.store.Deleted.UpsertBySource(ctx, current.Past()); err != nil {
		log.Error().Err(err).Msg("Error from UpsertBySource deleted")
		return fmt.Errorf("record cancellation: %w", err)
	}
	if err := s.store.Appointments.Delete(ctx, id); err != nil && !errors.Is(err, repository.ErrNotFound) {
		log.Error().Err(err).Msg("Error from Delete pending appointment")
		return fmt.Errorf("remove pending appointment: %w", err)
	}
	return nil
}

// DeletePastAppointment removes the record from whichever of the approved
// and canceled lists holds it.
func (s *Service) DeletePastAppointment(ctx context.Context, id string) error {
	errApproved := s.store.Approved.Delete(ctx, id)
	errDeleted := s.store.Deleted.Delete(ctx, id)
	for _, err := range []error{errApproved, errDeleted} {
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			log.Error().Err(err).Msg("Error from Delete past appointment")
			return err
		}
	}
	if errApproved != nil && errDeleted != nil {
		return repository.ErrNotFound
	}
	return nil
}

func (s *Service) GetAppointment(ctx context.Context, id string) (models.Appointment, error) {
	a, err := s.store.Appointments.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("Error from FindByID appointment")
	}
	return a, err
}

// AppointmentBoard gathers the three lifecycle lists for the booking pages.
func (s *Service) AppointmentBoard(ctx context.Context) (AppointmentBoard, error) {
	board := AppointmentBoard{HoursList: HoursList}
	var err error
	if board.Pending, err = s.store.Appointments.FindAll(ctx); err != nil {
		log.Error().Err(err).Msg("Error from FindAll appointments")
		return board, err
	}
	if board.Approved, err = s.store.Approved.FindAll(ctx); err != nil {
		log.Error().Err(err).Msg("Error from FindAll approved")
		return board, err
	}
	if board.Canceled, err = s.store.Deleted.FindAll(ctx); err != nil {
		log.Error().Err(err).Msg("Error from FindAll deleted")
		return board, err
	}
	return board, nil
}
