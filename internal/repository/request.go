package repository

import (
	"database/sql"
	"errors"

	"bloodlink/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type RequestRepository interface {
	Create(request *models.Request) error
	ListAll() ([]models.Request, error)
	ListByOwner(ownerID string) ([]models.Request, error)
	GetByID(id int64) (*models.Request, error)
	UpdateStatus(id int64, status string) (*models.Request, error)
	Delete(id int64) error
}

type requestRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRequestRepository(db *sqlx.DB, log *zap.Logger) RequestRepository {
	return &requestRepository{db: db, log: log}
}

const requestColumns = `id, user_id, patient_name, required_blood_group, hospital, location, contact_number, urgency, status, created_at, updated_at`

func (r *requestRepository) Create(request *models.Request) error {
	query := `INSERT INTO requests (user_id, patient_name, required_blood_group, hospital, location, contact_number, urgency, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`
	return r.db.QueryRowx(query,
		request.UserID, request.PatientName, request.RequiredBloodGroup, request.Hospital,
		request.Location, request.ContactNumber, request.Urgency, request.Status).
		Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
}

func (r *requestRepository) ListAll() ([]models.Request, error) {
	requests := []models.Request{}
	err := r.db.Select(&requests, `SELECT `+requestColumns+` FROM requests ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// ListByOwner compares user_id as text so the scoping rule matches the
// ownership check regardless of how the caller id was carried.
func (r *requestRepository) ListByOwner(ownerID string) ([]models.Request, error) {
	requests := []models.Request{}
	query := `SELECT ` + requestColumns + ` FROM requests WHERE CAST(user_id AS TEXT) = $1 ORDER BY created_at DESC`
	if err := r.db.Select(&requests, query, ownerID); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepository) GetByID(id int64) (*models.Request, error) {
	var request models.Request
	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`
	if err := r.db.Get(&request, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) UpdateStatus(id int64, status string) (*models.Request, error) {
	var request models.Request
	query := `UPDATE requests SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING ` + requestColumns
	if err := r.db.Get(&request, query, status, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
