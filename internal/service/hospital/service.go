package hospital

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/model"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/repository"
	apperrors "github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/pkg/errors"
)

type Service struct {
	repo repository.HospitalRepository
}

func NewService(repo repository.HospitalRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateHospital(ctx context.Context, req *model.CreateHospitalRequest) (*model.Hospital, error) {
	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.Conflict("hospital with this email already exists")
	}

	hospital := &model.Hospital{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		AdminName:  req.AdminName,
		AdminPhone: req.AdminPhone,
	}

	if err := s.repo.Create(ctx, hospital); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.Conflict("hospital with this email already exists")
		}
		return nil, fmt.Errorf("failed to create hospital: %w", err)
	}
	return hospital, nil
}

// UpdateHospital replaces every mutable field.
func (s *Service) UpdateHospital(ctx context.Context, id uuid.UUID, req *model.UpdateHospitalRequest) (*model.Hospital, error) {
	hospital, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("hospital")
		}
		return nil, fmt.Errorf("failed to get hospital: %w", err)
	}

	if req.Email != hospital.Email {
		if existing, err := s.repo.GetByEmail(ctx, req.Email); err == nil && existing.ID != id {
			return nil, apperrors.Conflict("hospital with this email already exists")
		}
	}

	hospital.Name = req.Name
	hospital.Email = req.Email
	hospital.Phone = req.Phone
	hospital.AdminName = req.AdminName
	hospital.AdminPhone = req.AdminPhone

	if err := s.repo.Update(ctx, hospital); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.Conflict("hospital with this email already exists")
		}
		return nil, fmt.Errorf("failed to update hospital: %w", err)
	}
	return hospital, nil
}

func (s *Service) DeleteHospital(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("hospital")
		}
		return fmt.Errorf("failed to delete hospital: %w", err)
	}
	return nil
}

// ListHospitals returns hospitals with billing totals derived from their
// schedules at read time.
func (s *Service) ListHospitals(ctx context.Context) ([]*model.HospitalSummary, error) {
	summaries, err := s.repo.ListWithSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list hospitals: %w", err)
	}
	return summaries, nil
}

// ListDoneScheduleSummary restricts the derived totals to Done schedules.
func (s *Service) ListDoneScheduleSummary(ctx context.Context) ([]*model.HospitalSummary, error) {
	summaries, err := s.repo.ListDoneSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list done schedule summary: %w", err)
	}
	return summaries, nil
}
