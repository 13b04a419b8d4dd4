package repository

import (
	"database/sql"
	"errors"

	"bloodlink/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type AppointmentRepository interface {
	Create(appt *models.Appointment) error
	ListAll() ([]models.Appointment, error)
	ListByOwner(ownerID string) ([]models.Appointment, error)
	GetByID(id int64) (*models.Appointment, error)
	Update(appt *models.Appointment) error
	UpdateStatus(id int64, status string) (*models.Appointment, error)
	Delete(id int64) error
}

type appointmentRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewAppointmentRepository(db *sqlx.DB, log *zap.Logger) AppointmentRepository {
	return &appointmentRepository{db: db, log: log}
}

const appointmentColumns = `id, user_id, donor_name, donor_contact, date, time, location, notes, status, created_at, updated_at`

func (r *appointmentRepository) Create(appt *models.Appointment) error {
	query := `INSERT INTO appointments (user_id, donor_name, donor_contact, date, time, location, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`
	return r.db.QueryRowx(query,
		appt.UserID, appt.DonorName, appt.DonorContact, appt.Date, appt.Time,
		appt.Location, appt.Notes, appt.Status).
		Scan(&appt.ID, &appt.CreatedAt, &appt.UpdatedAt)
}

func (r *appointmentRepository) ListAll() ([]models.Appointment, error) {
	appts := []models.Appointment{}
	err := r.db.Select(&appts, `SELECT `+appointmentColumns+` FROM appointments ORDER BY date, time`)
	if err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *appointmentRepository) ListByOwner(ownerID string) ([]models.Appointment, error) {
	appts := []models.Appointment{}
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE CAST(user_id AS TEXT) = $1 ORDER BY date, time`
	if err := r.db.Select(&appts, query, ownerID); err != nil {
		return nil, err
	}
	return appts, nil
}

func (r *appointmentRepository) GetByID(id int64) (*models.Appointment, error) {
	var appt models.Appointment
	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE id = $1`
	if err := r.db.Get(&appt, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &appt, nil
}

func (r *appointmentRepository) Update(appt *models.Appointment) error {
	query := `UPDATE appointments
		SET donor_name = $1, donor_contact = $2, date = $3, time = $4, location = $5, notes = $6, status = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING updated_at`
	err := r.db.QueryRowx(query,
		appt.DonorName, appt.DonorContact, appt.Date, appt.Time,
		appt.Location, appt.Notes, appt.Status, appt.ID).
		Scan(&appt.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (r *appointmentRepository) UpdateStatus(id int64, status string) (*models.Appointment, error) {
	var appt models.Appointment
	query := `UPDATE appointments SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING ` + appointmentColumns
	if err := r.db.Get(&appt, query, status, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &appt, nil
}

func (r *appointmentRepository) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
