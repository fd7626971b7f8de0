package hospital

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/model"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/repository"
	apperrors "github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/pkg/errors"
)

type fakeHospitalRepo struct {
	hospitals map[uuid.UUID]*model.Hospital
}

func newFakeHospitalRepo() *fakeHospitalRepo {
	return &fakeHospitalRepo{hospitals: make(map[uuid.UUID]*model.Hospital)}
}

func (r *fakeHospitalRepo) Create(_ context.Context, h *model.Hospital) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	for _, existing := range r.hospitals {
		if existing.Email == h.Email {
			return repository.ErrDuplicate
		}
	}
	r.hospitals[h.ID] = h
	return nil
}

func (r *fakeHospitalRepo) Get(_ context.Context, id uuid.UUID) (*model.Hospital, error) {
	h, ok := r.hospitals[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return h, nil
}

func (r *fakeHospitalRepo) GetByName(_ context.Context, name string) (*model.Hospital, error) {
	for _, h := range r.hospitals {
		if h.Name == name {
			return h, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeHospitalRepo) GetByEmail(_ context.Context, email string) (*model.Hospital, error) {
	for _, h := range r.hospitals {
		if h.Email == email {
			return h, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeHospitalRepo) Update(_ context.Context, h *model.Hospital) error {
	if _, ok := r.hospitals[h.ID]; !ok {
		return repository.ErrNotFound
	}
	r.hospitals[h.ID] = h
	return nil
}

func (r *fakeHospitalRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.hospitals[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.hospitals, id)
	return nil
}

func (r *fakeHospitalRepo) List(_ context.Context) ([]*model.Hospital, error) {
	var hospitals []*model.Hospital
	for _, h := range r.hospitals {
		hospitals = append(hospitals, h)
	}
	return hospitals, nil
}

func (r *fakeHospitalRepo) ListWithSummary(_ context.Context) ([]*model.HospitalSummary, error) {
	var summaries []*model.HospitalSummary
	for _, h := range r.hospitals {
		summaries = append(summaries, &model.HospitalSummary{Hospital: *h})
	}
	return summaries, nil
}

func (r *fakeHospitalRepo) ListDoneSummary(_ context.Context) ([]*model.HospitalSummary, error) {
	return r.ListWithSummary(context.Background())
}

func createRequest(name, email string) *model.CreateHospitalRequest {
	return &model.CreateHospitalRequest{
		Name:       name,
		Email:      email,
		Phone:      "080-2345678",
		AdminName:  "Ravi Patel",
		AdminPhone: "9876543210",
	}
}

func TestCreateHospital(t *testing.T) {
	svc := NewService(newFakeHospitalRepo())

	hospital, err := svc.CreateHospital(context.Background(), createRequest("City Care", "citycare@example.com"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, hospital.ID)
	assert.Equal(t, "City Care", hospital.Name)
}

func TestCreateHospitalDuplicateEmail(t *testing.T) {
	svc := NewService(newFakeHospitalRepo())

	_, err := svc.CreateHospital(context.Background(), createRequest("City Care", "citycare@example.com"))
	require.NoError(t, err)

	_, err = svc.CreateHospital(context.Background(), createRequest("Other Care", "citycare@example.com"))
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrConflict, appErr.Code)
}

func TestUpdateHospital(t *testing.T) {
	repo := newFakeHospitalRepo()
	svc := NewService(repo)

	hospital, err := svc.CreateHospital(context.Background(), createRequest("City Care", "citycare@example.com"))
	require.NoError(t, err)

	updated, err := svc.UpdateHospital(context.Background(), hospital.ID, &model.UpdateHospitalRequest{
		Name:       "City Care Multispecialty",
		Email:      "citycare@example.com",
		Phone:      "080-9999999",
		AdminName:  "Ravi Patel",
		AdminPhone: "9876543210",
	})
	require.NoError(t, err)
	assert.Equal(t, "City Care Multispecialty", updated.Name)
	assert.Equal(t, "080-9999999", updated.Phone)
}

func TestUpdateHospitalNotFound(t *testing.T) {
	svc := NewService(newFakeHospitalRepo())

	_, err := svc.UpdateHospital(context.Background(), uuid.New(), &model.UpdateHospitalRequest{
		Name:       "Ghost",
		Email:      "ghost@example.com",
		Phone:      "0",
		AdminName:  "Nobody",
		AdminPhone: "0",
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestUpdateHospitalEmailTaken(t *testing.T) {
	svc := NewService(newFakeHospitalRepo())

	first, err := svc.CreateHospital(context.Background(), createRequest("City Care", "citycare@example.com"))
	require.NoError(t, err)
	_, err = svc.CreateHospital(context.Background(), createRequest("Lake View", "lakeview@example.com"))
	require.NoError(t, err)

	_, err = svc.UpdateHospital(context.Background(), first.ID, &model.UpdateHospitalRequest{
		Name:       "City Care",
		Email:      "lakeview@example.com",
		Phone:      "080-2345678",
		AdminName:  "Ravi Patel",
		AdminPhone: "9876543210",
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrConflict, appErr.Code)
}

func TestDeleteHospitalNotFound(t *testing.T) {
	svc := NewService(newFakeHospitalRepo())

	err := svc.DeleteHospital(context.Background(), uuid.New())
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}
