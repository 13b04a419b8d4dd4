package repository

import (
	"database/sql"
	"errors"

	"bloodlink/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type DonorRepository interface {
	Create(donor *models.Donor) error
	List() ([]models.Donor, error)
	GetByID(id int64) (*models.Donor, error)
	Update(donor *models.Donor) error
	Delete(id int64) error
}

type donorRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewDonorRepository(db *sqlx.DB, log *zap.Logger) DonorRepository {
	return &donorRepository{db: db, log: log}
}

func (r *donorRepository) Create(donor *models.Donor) error {
	query := `INSERT INTO donors (user_id, name, bloodgroup, location, phone)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowx(query, donor.UserID, donor.Name, donor.BloodGroup, donor.Location, donor.Phone).
		Scan(&donor.ID)
}

func (r *donorRepository) List() ([]models.Donor, error) {
	donors := []models.Donor{}
	err := r.db.Select(&donors, `SELECT id, user_id, name, bloodgroup, location, phone FROM donors ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	return donors, nil
}

func (r *donorRepository) GetByID(id int64) (*models.Donor, error) {
	var donor models.Donor
	query := `SELECT id, user_id, name, bloodgroup, location, phone FROM donors WHERE id = $1`
	if err := r.db.Get(&donor, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &donor, nil
}

func (r *donorRepository) Update(donor *models.Donor) error {
	query := `UPDATE donors SET name = $1, bloodgroup = $2, location = $3, phone = $4 WHERE id = $5`
	res, err := r.db.Exec(query, donor.Name, donor.BloodGroup, donor.Location, donor.Phone, donor.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *donorRepository) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM donors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
