package service

import (
	"strconv"
	"testing"
	"time"

	"bloodlink/internal/models"
	"bloodlink/internal/repository"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAppointmentRepo struct {
	rows   []*models.Appointment
	nextID int64
}

func (f *fakeAppointmentRepo) Create(appt *models.Appointment) error {
	f.nextID++
	appt.ID = f.nextID
	clone := *appt
	f.rows = append(f.rows, &clone)
	return nil
}

func (f *fakeAppointmentRepo) ListAll() ([]models.Appointment, error) {
	out := []models.Appointment{}
	for _, row := range f.rows {
		out = append(out, *row)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ListByOwner(ownerID string) ([]models.Appointment, error) {
	out := []models.Appointment{}
	for _, row := range f.rows {
		if strconv.FormatInt(row.UserID, 10) == ownerID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) GetByID(id int64) (*models.Appointment, error) {
	for _, row := range f.rows {
		if row.ID == id {
			clone := *row
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAppointmentRepo) Update(appt *models.Appointment) error {
	for i, row := range f.rows {
		if row.ID == appt.ID {
			clone := *appt
			f.rows[i] = &clone
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeAppointmentRepo) UpdateStatus(id int64, status string) (*models.Appointment, error) {
	for _, row := range f.rows {
		if row.ID == id {
			row.Status = status
			clone := *row
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAppointmentRepo) Delete(id int64) error {
	for i, row := range f.rows {
		if row.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

var apptInput = AppointmentInput{
	DonorName: "D",
	Date:      "2026-10-01",
	Time:      "10:30",
	Location:  "Clinic",
}

func newAppointmentFixture() (AppointmentService, *fakeAppointmentRepo) {
	repo := &fakeAppointmentRepo{}
	return NewAppointmentService(repo, zap.NewNop()), repo
}

func TestAppointmentCreate(t *testing.T) {
	svc, _ := newAppointmentFixture()

	created, err := svc.Create(userFive, apptInput)
	require.NoError(t, err)
	require.Equal(t, int64(5), created.UserID)
	require.Equal(t, models.AppointmentStatusPending, created.Status)
	require.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), created.Date)
}

func TestAppointmentCreateBadDate(t *testing.T) {
	svc, _ := newAppointmentFixture()

	bad := apptInput
	bad.Date = "01/10/2026"
	_, err := svc.Create(userFive, bad)
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestAppointmentPartialUpdateKeepsFields(t *testing.T) {
	svc, _ := newAppointmentFixture()

	created, err := svc.Create(userFive, apptInput)
	require.NoError(t, err)

	updated, err := svc.Update(userFive, created.ID, AppointmentInput{Notes: "bring ID"})
	require.NoError(t, err)
	require.Equal(t, "bring ID", updated.Notes)
	require.Equal(t, "D", updated.DonorName)
	require.Equal(t, "10:30", updated.Time)
	require.Equal(t, "Clinic", updated.Location)
}

func TestAppointmentNonAdminCannotChangeStatus(t *testing.T) {
	svc, _ := newAppointmentFixture()

	created, err := svc.Create(userFive, apptInput)
	require.NoError(t, err)

	updated, err := svc.Update(userFive, created.ID, AppointmentInput{Status: models.AppointmentStatusConfirmed})
	require.NoError(t, err)
	require.Equal(t, models.AppointmentStatusPending, updated.Status)

	updated, err = svc.Update(adminOne, created.ID, AppointmentInput{Status: models.AppointmentStatusConfirmed})
	require.NoError(t, err)
	require.Equal(t, models.AppointmentStatusConfirmed, updated.Status)
}

func TestAppointmentUpdateOwnership(t *testing.T) {
	svc, _ := newAppointmentFixture()

	created, err := svc.Create(userFive, apptInput)
	require.NoError(t, err)

	_, err = svc.Update(userNine, created.ID, AppointmentInput{Notes: "x"})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestAppointmentStatusVocabulary(t *testing.T) {
	svc, _ := newAppointmentFixture()

	created, err := svc.Create(userFive, apptInput)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(created.ID, "done")
	require.ErrorIs(t, err, ErrInvalidStatus)

	updated, err := svc.UpdateStatus(created.ID, models.AppointmentStatusCancelled)
	require.NoError(t, err)
	require.Equal(t, models.AppointmentStatusCancelled, updated.Status)
}

func TestAppointmentListScoping(t *testing.T) {
	svc, _ := newAppointmentFixture()

	_, err := svc.Create(userFive, apptInput)
	require.NoError(t, err)
	_, err = svc.Create(userNine, apptInput)
	require.NoError(t, err)

	all, err := svc.List(adminOne)
	require.NoError(t, err)
	require.Len(t, all, 2)

	own, err := svc.List(userNine)
	require.NoError(t, err)
	require.Len(t, own, 1)
	require.Equal(t, int64(9), own[0].UserID)
}
