package service

import (
	"errors"
	"slices"
	"strconv"
	"time"

	"bloodlink/internal/middleware"
	"bloodlink/internal/models"
	"bloodlink/internal/repository"

	"go.uber.org/zap"
)

const appointmentDateLayout = "2006-01-02"

// AppointmentInput carries caller-writable appointment fields. On update,
// empty fields keep their stored values; Status is honoured only for
// admin callers.
type AppointmentInput struct {
	DonorName    string
	DonorContact string
	Date         string
	Time         string
	Location     string
	Notes        string
	Status       string
}

type AppointmentService interface {
	Create(caller middleware.Identity, in AppointmentInput) (*models.Appointment, error)
	List(caller middleware.Identity) ([]models.Appointment, error)
	Get(caller middleware.Identity, id int64) (*models.Appointment, error)
	Update(caller middleware.Identity, id int64, in AppointmentInput) (*models.Appointment, error)
	UpdateStatus(id int64, status string) (*models.Appointment, error)
	Delete(caller middleware.Identity, id int64) error
}

type appointmentService struct {
	appointments repository.AppointmentRepository
	logger       *zap.Logger
}

func NewAppointmentService(appointments repository.AppointmentRepository, logger *zap.Logger) AppointmentService {
	return &appointmentService{appointments: appointments, logger: logger}
}

func (s *appointmentService) Create(caller middleware.Identity, in AppointmentInput) (*models.Appointment, error) {
	ownerID, err := strconv.ParseInt(caller.ID, 10, 64)
	if err != nil {
		return nil, ErrForbidden
	}
	date, err := time.Parse(appointmentDateLayout, in.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	appt := &models.Appointment{
		UserID:       ownerID,
		DonorName:    in.DonorName,
		DonorContact: in.DonorContact,
		Date:         date,
		Time:         in.Time,
		Location:     in.Location,
		Notes:        in.Notes,
		Status:       models.AppointmentStatusPending,
	}
	if err := s.appointments.Create(appt); err != nil {
		s.logger.Error("Failed to create appointment", zap.Error(err))
		return nil, err
	}
	return appt, nil
}

func (s *appointmentService) List(caller middleware.Identity) ([]models.Appointment, error) {
	if caller.IsAdmin() {
		return s.appointments.ListAll()
	}
	return s.appointments.ListByOwner(caller.ID)
}

func (s *appointmentService) Get(caller middleware.Identity, id int64) (*models.Appointment, error) {
	appt, err := s.appointments.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !caller.Owns(appt.UserID) {
		return nil, ErrForbidden
	}
	return appt, nil
}

// Update overlays the provided fields onto the stored row. A non-admin
// caller's Status field is ignored; status only moves through the admin
// status endpoint or an admin update.
func (s *appointmentService) Update(caller middleware.Identity, id int64, in AppointmentInput) (*models.Appointment, error) {
	appt, err := s.appointments.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !caller.Owns(appt.UserID) {
		return nil, ErrForbidden
	}

	if in.DonorName != "" {
		appt.DonorName = in.DonorName
	}
	if in.DonorContact != "" {
		appt.DonorContact = in.DonorContact
	}
	if in.Date != "" {
		date, err := time.Parse(appointmentDateLayout, in.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		appt.Date = date
	}
	if in.Time != "" {
		appt.Time = in.Time
	}
	if in.Location != "" {
		appt.Location = in.Location
	}
	if in.Notes != "" {
		appt.Notes = in.Notes
	}
	if in.Status != "" && caller.IsAdmin() {
		if !slices.Contains(models.AppointmentStatuses, in.Status) {
			return nil, ErrInvalidStatus
		}
		appt.Status = in.Status
	}

	if err := s.appointments.Update(appt); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return appt, nil
}

func (s *appointmentService) UpdateStatus(id int64, status string) (*models.Appointment, error) {
	if !slices.Contains(models.AppointmentStatuses, status) {
		return nil, ErrInvalidStatus
	}
	appt, err := s.appointments.UpdateStatus(id, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return appt, nil
}

func (s *appointmentService) Delete(caller middleware.Identity, id int64) error {
	appt, err := s.appointments.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !caller.Owns(appt.UserID) {
		return ErrForbidden
	}
	if err := s.appointments.Delete(id); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return nil
}
