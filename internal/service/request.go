package service

import (
	"errors"
	"slices"
	"strconv"

	"bloodlink/internal/middleware"
	"bloodlink/internal/models"
	"bloodlink/internal/repository"

	"go.uber.org/zap"
)

// RequestInput carries the caller-writable fields of a blood request.
type RequestInput struct {
	PatientName        string
	RequiredBloodGroup string
	Hospital           string
	Location           string
	ContactNumber      string
	Urgency            string
}

type RequestService interface {
	Create(caller middleware.Identity, in RequestInput) (*models.Request, error)
	// List scopes server-side: admins see the whole table, everyone else
	// only rows they own.
	List(caller middleware.Identity) ([]models.Request, error)
	Get(caller middleware.Identity, id int64) (*models.Request, error)
	// UpdateStatus is admin-gated at the route; here only the status
	// vocabulary is validated. No transition ordering is enforced.
	UpdateStatus(id int64, status string) (*models.Request, error)
	Delete(caller middleware.Identity, id int64) error
}

type requestService struct {
	requests repository.RequestRepository
	logger   *zap.Logger
}

func NewRequestService(requests repository.RequestRepository, logger *zap.Logger) RequestService {
	return &requestService{requests: requests, logger: logger}
}

func (s *requestService) Create(caller middleware.Identity, in RequestInput) (*models.Request, error) {
	ownerID, err := strconv.ParseInt(caller.ID, 10, 64)
	if err != nil {
		return nil, ErrForbidden
	}

	urgency := in.Urgency
	if urgency == "" {
		urgency = models.RequestUrgencyDefault
	}

	request := &models.Request{
		UserID:             ownerID,
		PatientName:        in.PatientName,
		RequiredBloodGroup: in.RequiredBloodGroup,
		Hospital:           in.Hospital,
		Location:           in.Location,
		ContactNumber:      in.ContactNumber,
		Urgency:            urgency,
		Status:             models.RequestStatusPending,
	}
	if err := s.requests.Create(request); err != nil {
		s.logger.Error("Failed to create request", zap.Error(err))
		return nil, err
	}
	return request, nil
}

func (s *requestService) List(caller middleware.Identity) ([]models.Request, error) {
	if caller.IsAdmin() {
		return s.requests.ListAll()
	}
	return s.requests.ListByOwner(caller.ID)
}

func (s *requestService) Get(caller middleware.Identity, id int64) (*models.Request, error) {
	request, err := s.requests.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !caller.Owns(request.UserID) {
		return nil, ErrForbidden
	}
	return request, nil
}

func (s *requestService) UpdateStatus(id int64, status string) (*models.Request, error) {
	if !slices.Contains(models.RequestStatuses, status) {
		return nil, ErrInvalidStatus
	}
	request, err := s.requests.UpdateStatus(id, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return request, nil
}

func (s *requestService) Delete(caller middleware.Identity, id int64) error {
	request, err := s.requests.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !caller.Owns(request.UserID) {
		return ErrForbidden
	}
	if err := s.requests.Delete(id); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return nil
}
