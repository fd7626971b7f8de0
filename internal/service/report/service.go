package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/model"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/repository"
	apperrors "github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/pkg/errors"
)

// dateTimeLayout matches the display format used by the API for combined
// surgery intervals, e.g. "2 Jan,2006 3:04 PM - 5:00 PM".
const (
	dateTimeLayout = "2 Jan,2006 3:04 PM"
	timeOnlyLayout = "3:04 PM"
	dayLayout      = "2006-01-02"
)

type Service struct {
	repo         repository.ReportRepository
	hospitalRepo repository.HospitalRepository
}

func NewService(repo repository.ReportRepository, hospitalRepo repository.HospitalRepository) *Service {
	return &Service{
		repo:         repo,
		hospitalRepo: hospitalRepo,
	}
}

// ParseDateTimeRange splits a combined "start - end" range where the end
// carries only a clock time on the start's date.
func ParseDateTimeRange(value string) (time.Time, time.Time, error) {
	parts := strings.SplitN(value, " - ", 2)
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("expected \"start - end\" format")
	}

	start, err := time.Parse(dateTimeLayout, strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start time: %w", err)
	}

	endClock, err := time.Parse(timeOnlyLayout, strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end time: %w", err)
	}

	end := time.Date(start.Year(), start.Month(), start.Day(),
		endClock.Hour(), endClock.Minute(), 0, 0, start.Location())
	return start, end, nil
}

// FormatDateTimeRange renders the stored interval back into the combined
// display format.
func FormatDateTimeRange(start, end time.Time) string {
	return fmt.Sprintf("%s - %s", start.Format(dateTimeLayout), end.Format(timeOnlyLayout))
}

func (s *Service) CreateReport(ctx context.Context, req *model.CreateReportRequest) (*model.ReportRow, error) {
	start, end, err := ParseDateTimeRange(req.DateTime)
	if err != nil {
		return nil, apperrors.BadRequest(fmt.Sprintf("invalid dateTime: %v", err))
	}

	hospital, err := s.hospitalRepo.GetByName(ctx, req.HospitalName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("hospital")
		}
		return nil, fmt.Errorf("failed to look up hospital: %w", err)
	}

	paymentStatus := req.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = model.ReportPaymentDone
	}

	report := &model.Report{
		HospitalID:    hospital.ID,
		SurgeryType:   req.SurgeryType,
		PatientName:   req.PatientName,
		StartTime:     start,
		EndTime:       end,
		Payment:       req.Payment,
		PaymentStatus: paymentStatus,
	}

	if err := s.repo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	return &model.ReportRow{Report: *report, HospitalName: hospital.Name}, nil
}

// UpdateReport merges only the provided fields.
func (s *Service) UpdateReport(ctx context.Context, id uuid.UUID, req *model.UpdateReportRequest) (*model.ReportRow, error) {
	report, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("report")
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	if req.DateTime != nil {
		start, end, err := ParseDateTimeRange(*req.DateTime)
		if err != nil {
			return nil, apperrors.BadRequest(fmt.Sprintf("invalid dateTime: %v", err))
		}
		report.StartTime = start
		report.EndTime = end
	}
	if req.SurgeryType != nil {
		report.SurgeryType = *req.SurgeryType
	}
	if req.PatientName != nil {
		report.PatientName = *req.PatientName
	}
	if req.Payment != nil {
		report.Payment = *req.Payment
	}
	if req.PaymentStatus != nil {
		report.PaymentStatus = *req.PaymentStatus
	}

	hospitalName := ""
	if req.HospitalName != nil {
		hospital, err := s.hospitalRepo.GetByName(ctx, *req.HospitalName)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, apperrors.NotFound("hospital")
			}
			return nil, fmt.Errorf("failed to look up hospital: %w", err)
		}
		report.HospitalID = hospital.ID
		hospitalName = hospital.Name
	}

	if err := s.repo.Update(ctx, report); err != nil {
		return nil, fmt.Errorf("failed to update report: %w", err)
	}

	if hospitalName == "" {
		hospital, err := s.hospitalRepo.Get(ctx, report.HospitalID)
		if err == nil {
			hospitalName = hospital.Name
		}
	}
	return &model.ReportRow{Report: *report, HospitalName: hospitalName}, nil
}

func (s *Service) DeleteReport(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("report")
		}
		return fmt.Errorf("failed to delete report: %w", err)
	}
	return nil
}

func (s *Service) ListReports(ctx context.Context) ([]*model.ReportRow, error) {
	reports, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

// ListReportsByDateRange filters on start time with inclusive day bounds.
func (s *Service) ListReportsByDateRange(ctx context.Context, startDate, endDate string) ([]*model.ReportRow, error) {
	start, err := time.Parse(dayLayout, startDate)
	if err != nil {
		return nil, apperrors.BadRequest("invalid date format, use YYYY-MM-DD")
	}
	end, err := time.Parse(dayLayout, endDate)
	if err != nil {
		return nil, apperrors.BadRequest("invalid date format, use YYYY-MM-DD")
	}

	// start of the first day through the end of the last day
	end = end.Add(24*time.Hour - time.Nanosecond)

	reports, err := s.repo.ListByDateRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports by date range: %w", err)
	}
	return reports, nil
}
