package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/model"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/repository"
	apperrors "github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/pkg/errors"
)

const dayLayout = "2006-01-02"

type Service struct {
	repo         repository.ScheduleRepository
	userRepo     repository.UserRepository
	hospitalRepo repository.HospitalRepository
}

func NewService(repo repository.ScheduleRepository, userRepo repository.UserRepository, hospitalRepo repository.HospitalRepository) *Service {
	return &Service{
		repo:         repo,
		userRepo:     userRepo,
		hospitalRepo: hospitalRepo,
	}
}

// resolveDoctor parses and loads a user id, requiring the Doctor role.
func (s *Service) resolveDoctor(ctx context.Context, doctorID string) (*model.User, error) {
	id, err := uuid.Parse(doctorID)
	if err != nil {
		return nil, apperrors.BadRequest("invalid doctor ID")
	}

	doctor, err := s.userRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("doctor")
		}
		return nil, fmt.Errorf("failed to look up doctor: %w", err)
	}
	if doctor.Role != model.RoleDoctor {
		return nil, apperrors.NotFound("doctor")
	}
	return doctor, nil
}

func (s *Service) resolveHospital(ctx context.Context, name string) (*model.Hospital, error) {
	hospital, err := s.hospitalRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("hospital")
		}
		return nil, fmt.Errorf("failed to look up hospital: %w", err)
	}
	return hospital, nil
}

// CreateSchedule validates the day-of-week (deriving it from the start time
// when omitted), resolves the doctor and hospital, and persists an Upcoming
// schedule.
func (s *Service) CreateSchedule(ctx context.Context, req *model.CreateScheduleRequest) (*model.ScheduleRow, error) {
	day := req.Day
	if day == "" {
		day = req.StartTime.Weekday().String()
	}
	if !model.ValidDay(day) {
		return nil, apperrors.BadRequest("invalid day provided, must be Sunday to Saturday")
	}

	doctor, err := s.resolveDoctor(ctx, req.DoctorID)
	if err != nil {
		return nil, err
	}
	hospital, err := s.resolveHospital(ctx, req.HospitalName)
	if err != nil {
		return nil, err
	}

	schedule := &model.Schedule{
		DoctorID:      doctor.ID,
		HospitalID:    hospital.ID,
		PatientName:   req.PatientName,
		SurgeryType:   req.SurgeryType,
		Day:           day,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Status:        model.ScheduleStatusUpcoming,
		PaymentAmount: req.PaymentAmount,
		PaymentStatus: model.SchedulePaymentPending,
	}

	if err := s.repo.Create(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}

	return s.row(schedule, doctor.FullName, hospital.Name), nil
}

// UpdateSchedule merges the provided fields with the same validation as
// create.
func (s *Service) UpdateSchedule(ctx context.Context, id uuid.UUID, req *model.UpdateScheduleRequest) (*model.ScheduleRow, error) {
	schedule, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Day != nil {
		if !model.ValidDay(*req.Day) {
			return nil, apperrors.BadRequest("invalid day provided, must be Sunday to Saturday")
		}
		schedule.Day = *req.Day
	}
	if req.DoctorID != nil {
		doctor, err := s.resolveDoctor(ctx, *req.DoctorID)
		if err != nil {
			return nil, err
		}
		schedule.DoctorID = doctor.ID
	}
	if req.HospitalName != nil {
		hospital, err := s.resolveHospital(ctx, *req.HospitalName)
		if err != nil {
			return nil, err
		}
		schedule.HospitalID = hospital.ID
	}
	if req.PatientName != nil {
		schedule.PatientName = *req.PatientName
	}
	if req.SurgeryType != nil {
		schedule.SurgeryType = *req.SurgeryType
	}
	if req.StartTime != nil {
		schedule.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		schedule.EndTime = *req.EndTime
	}
	if req.PaymentAmount != nil {
		schedule.PaymentAmount = *req.PaymentAmount
	}
	if !schedule.EndTime.After(schedule.StartTime) {
		return nil, apperrors.BadRequest("end time must be after start time")
	}

	if err := s.repo.Update(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}
	return s.repo.GetRow(ctx, id)
}

func (s *Service) DeleteSchedule(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("schedule")
		}
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	return nil
}

func (s *Service) ListSchedules(ctx context.Context) ([]*model.ScheduleRow, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListSchedulesByStatus(ctx context.Context, status model.ScheduleStatus) ([]*model.ScheduleRow, error) {
	if !status.Valid() {
		return nil, apperrors.BadRequest("invalid status")
	}
	return s.repo.ListByStatus(ctx, status)
}

func (s *Service) ListTransferred(ctx context.Context) ([]*model.ScheduleRow, error) {
	return s.repo.ListTransferred(ctx)
}

// ListSchedulesByDateRange matches schedules whose interval overlaps the
// inclusive day window in any of the three overlap modes.
func (s *Service) ListSchedulesByDateRange(ctx context.Context, startDate, endDate string) ([]*model.ScheduleRow, error) {
	start, end, err := parseDayRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByDateRange(ctx, start, end)
}

func (s *Service) ListTransferredByDateRange(ctx context.Context, startDate, endDate string) ([]*model.ScheduleRow, error) {
	start, end, err := parseDayRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	return s.repo.ListTransferredByDateRange(ctx, start, end)
}

// SetStatus overwrites the schedule status with a member of the enum.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status model.ScheduleStatus) (*model.ScheduleRow, error) {
	if !status.Valid() {
		return nil, apperrors.BadRequest("invalid status, must be Upcoming, Done or Not Available")
	}

	schedule, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	schedule.Status = status
	if err := s.repo.Update(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to update schedule status: %w", err)
	}
	return s.repo.GetRow(ctx, id)
}

// Transfer reassigns the doctor and/or hospital and marks the schedule as
// transferred. At least one reassignment is required.
func (s *Service) Transfer(ctx context.Context, id uuid.UUID, req *model.TransferScheduleRequest) (*model.ScheduleRow, error) {
	if req.DoctorID == nil && req.HospitalName == nil {
		return nil, apperrors.BadRequest("doctorId or hospitalName is required")
	}

	schedule, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DoctorID != nil {
		doctor, err := s.resolveDoctor(ctx, *req.DoctorID)
		if err != nil {
			return nil, err
		}
		schedule.DoctorID = doctor.ID
	}
	if req.HospitalName != nil {
		hospital, err := s.resolveHospital(ctx, *req.HospitalName)
		if err != nil {
			return nil, err
		}
		schedule.HospitalID = hospital.ID
	}

	schedule.IsTransferred = true
	if err := s.repo.Update(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to transfer schedule: %w", err)
	}

	log.Info().Str("schedule_id", id.String()).Msg("schedule transferred")
	return s.repo.GetRow(ctx, id)
}

// Retake clears the transfer flag, optionally reassigning the doctor and/or
// hospital. It is rejected when the schedule was never transferred.
func (s *Service) Retake(ctx context.Context, id uuid.UUID, req *model.RetakeScheduleRequest) (*model.ScheduleRow, error) {
	schedule, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !schedule.IsTransferred {
		return nil, apperrors.BadRequest("schedule is not transferred")
	}

	if req.DoctorID != nil {
		doctor, err := s.resolveDoctor(ctx, *req.DoctorID)
		if err != nil {
			return nil, err
		}
		schedule.DoctorID = doctor.ID
	}
	if req.HospitalName != nil {
		hospital, err := s.resolveHospital(ctx, *req.HospitalName)
		if err != nil {
			return nil, err
		}
		schedule.HospitalID = hospital.ID
	}

	schedule.IsTransferred = false
	if err := s.repo.Update(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to retake schedule: %w", err)
	}
	return s.repo.GetRow(ctx, id)
}

// UpdatePayment adds an incremental payment to the cumulative received
// amount. The payment status flips to Done exactly when the due amount
// reaches zero.
func (s *Service) UpdatePayment(ctx context.Context, id uuid.UUID, req *model.UpdatePaymentRequest) (*model.ScheduleRow, error) {
	if req.AmountReceived <= 0 {
		return nil, apperrors.BadRequest("amountReceived must be greater than zero")
	}

	schedule, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	schedule.ApplyPayment(req.AmountReceived, req.PaymentMethod, req.DocumentProofNo)
	if err := s.repo.Update(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to update payment details: %w", err)
	}
	return s.repo.GetRow(ctx, id)
}

func (s *Service) get(ctx context.Context, id uuid.UUID) (*model.Schedule, error) {
	schedule, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("schedule")
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	return schedule, nil
}

func (s *Service) row(schedule *model.Schedule, doctorName, hospitalName string) *model.ScheduleRow {
	return &model.ScheduleRow{
		Schedule:     *schedule,
		DoctorName:   doctorName,
		HospitalName: hospitalName,
		Due:          schedule.DueAmount(),
	}
}

func parseDayRange(startDate, endDate string) (time.Time, time.Time, error) {
	if startDate == "" || endDate == "" {
		return time.Time{}, time.Time{}, apperrors.BadRequest("start date and end date are required")
	}
	start, err := time.Parse(dayLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.BadRequest("invalid date format, use YYYY-MM-DD")
	}
	end, err := time.Parse(dayLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.BadRequest("invalid date format, use YYYY-MM-DD")
	}
	end = end.Add(24*time.Hour - time.Nanosecond)
	return start, end, nil
}
