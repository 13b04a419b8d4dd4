package service

import (
	"errors"
	"strconv"

	"bloodlink/internal/middleware"
	"bloodlink/internal/models"
	"bloodlink/internal/repository"

	"go.uber.org/zap"
)

// DonorInput carries the writable fields of a donor registry entry.
type DonorInput struct {
	Name       string
	BloodGroup string
	Location   string
	Phone      string
}

type DonorService interface {
	Create(caller middleware.Identity, in DonorInput) (*models.Donor, error)
	// List returns every registry entry; donors are a shared lookup table,
	// not scoped per owner.
	List() ([]models.Donor, error)
	Get(id int64) (*models.Donor, error)
	Update(caller middleware.Identity, id int64, in DonorInput) (*models.Donor, error)
	Delete(caller middleware.Identity, id int64) error
}

type donorService struct {
	donors repository.DonorRepository
	logger *zap.Logger
}

func NewDonorService(donors repository.DonorRepository, logger *zap.Logger) DonorService {
	return &donorService{donors: donors, logger: logger}
}

func (s *donorService) Create(caller middleware.Identity, in DonorInput) (*models.Donor, error) {
	ownerID, err := strconv.ParseInt(caller.ID, 10, 64)
	if err != nil {
		return nil, ErrForbidden
	}

	donor := &models.Donor{
		UserID:     ownerID,
		Name:       in.Name,
		BloodGroup: in.BloodGroup,
		Location:   in.Location,
		Phone:      in.Phone,
	}
	if err := s.donors.Create(donor); err != nil {
		s.logger.Error("Failed to create donor", zap.Error(err))
		return nil, err
	}
	return donor, nil
}

func (s *donorService) List() ([]models.Donor, error) {
	return s.donors.List()
}

func (s *donorService) Get(id int64) (*models.Donor, error) {
	donor, err := s.donors.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return donor, nil
}

func (s *donorService) Update(caller middleware.Identity, id int64, in DonorInput) (*models.Donor, error) {
	donor, err := s.donors.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !caller.Owns(donor.UserID) {
		return nil, ErrForbidden
	}

	donor.Name = in.Name
	donor.BloodGroup = in.BloodGroup
	donor.Location = in.Location
	donor.Phone = in.Phone
	if err := s.donors.Update(donor); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return donor, nil
}

func (s *donorService) Delete(caller middleware.Identity, id int64) error {
	donor, err := s.donors.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !caller.Owns(donor.UserID) {
		return ErrForbidden
	}
	if err := s.donors.Delete(id); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return nil
}
