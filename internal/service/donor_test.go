package service

import (
	"testing"

	"bloodlink/internal/models"
	"bloodlink/internal/repository"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDonorRepo struct {
	rows   []*models.Donor
	nextID int64
}

func (f *fakeDonorRepo) Create(donor *models.Donor) error {
	f.nextID++
	donor.ID = f.nextID
	clone := *donor
	f.rows = append(f.rows, &clone)
	return nil
}

func (f *fakeDonorRepo) List() ([]models.Donor, error) {
	out := []models.Donor{}
	for _, row := range f.rows {
		out = append(out, *row)
	}
	return out, nil
}

func (f *fakeDonorRepo) GetByID(id int64) (*models.Donor, error) {
	for _, row := range f.rows {
		if row.ID == id {
			clone := *row
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeDonorRepo) Update(donor *models.Donor) error {
	for i, row := range f.rows {
		if row.ID == donor.ID {
			clone := *donor
			f.rows[i] = &clone
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeDonorRepo) Delete(id int64) error {
	for i, row := range f.rows {
		if row.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

var donorInput = DonorInput{Name: "D", BloodGroup: "A+", Location: "City", Phone: "555"}

func newDonorFixture() (DonorService, *fakeDonorRepo) {
	repo := &fakeDonorRepo{}
	return NewDonorService(repo, zap.NewNop()), repo
}

func TestDonorCreateRecordsOwner(t *testing.T) {
	svc, _ := newDonorFixture()

	created, err := svc.Create(userFive, donorInput)
	require.NoError(t, err)
	require.Equal(t, int64(5), created.UserID)
}

func TestDonorListIsShared(t *testing.T) {
	svc, _ := newDonorFixture()

	_, err := svc.Create(userFive, donorInput)
	require.NoError(t, err)
	_, err = svc.Create(userNine, donorInput)
	require.NoError(t, err)

	// The registry is a shared lookup table; any caller sees all rows.
	all, err := svc.List()
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestDonorMutationsAreOwnerOrAdmin(t *testing.T) {
	svc, repo := newDonorFixture()

	created, err := svc.Create(userFive, donorInput)
	require.NoError(t, err)

	_, err = svc.Update(userNine, created.ID, donorInput)
	require.ErrorIs(t, err, ErrForbidden)
	require.ErrorIs(t, svc.Delete(userNine, created.ID), ErrForbidden)

	changed := donorInput
	changed.Location = "Elsewhere"
	updated, err := svc.Update(userFive, created.ID, changed)
	require.NoError(t, err)
	require.Equal(t, "Elsewhere", updated.Location)

	require.NoError(t, svc.Delete(adminOne, created.ID))
	require.Empty(t, repo.rows)
}

func TestDonorGetNotFound(t *testing.T) {
	svc, _ := newDonorFixture()
	_, err := svc.Get(404)
	require.ErrorIs(t, err, ErrNotFound)
}
