package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/model"
)

// Sentinel errors shared by all repository implementations.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// All repository interfaces in one file
type (
	UserRepository interface {
		Create(ctx context.Context, user *model.User) error
		Get(ctx context.Context, id uuid.UUID) (*model.User, error)
		GetByEmail(ctx context.Context, email string) (*model.User, error)
		GetByResetToken(ctx context.Context, token string) (*model.User, error)
		Update(ctx context.Context, user *model.User) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.User, error)
	}

	HospitalRepository interface {
		Create(ctx context.Context, hospital *model.Hospital) error
		Get(ctx context.Context, id uuid.UUID) (*model.Hospital, error)
		GetByName(ctx context.Context, name string) (*model.Hospital, error)
		GetByEmail(ctx context.Context, email string) (*model.Hospital, error)
		Update(ctx context.Context, hospital *model.Hospital) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.Hospital, error)
		// ListWithSummary joins schedules to derive per-hospital billing totals.
		ListWithSummary(ctx context.Context) ([]*model.HospitalSummary, error)
		// ListDoneSummary derives the same totals over Done schedules only.
		ListDoneSummary(ctx context.Context) ([]*model.HospitalSummary, error)
	}

	ReportRepository interface {
		Create(ctx context.Context, report *model.Report) error
		Get(ctx context.Context, id uuid.UUID) (*model.Report, error)
		Update(ctx context.Context, report *model.Report) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.ReportRow, error)
		// ListByDateRange matches reports whose start time falls inside the
		// inclusive bounds.
		ListByDateRange(ctx context.Context, start, end time.Time) ([]*model.ReportRow, error)
	}

	ScheduleRepository interface {
		Create(ctx context.Context, schedule *model.Schedule) error
		Get(ctx context.Context, id uuid.UUID) (*model.Schedule, error)
		GetRow(ctx context.Context, id uuid.UUID) (*model.ScheduleRow, error)
		Update(ctx context.Context, schedule *model.Schedule) error
		Delete(ctx context.Context, id uuid.UUID) error
		List(ctx context.Context) ([]*model.ScheduleRow, error)
		ListByStatus(ctx context.Context, status model.ScheduleStatus) ([]*model.ScheduleRow, error)
		ListTransferred(ctx context.Context) ([]*model.ScheduleRow, error)
		// ListByDateRange matches schedules whose interval overlaps the window:
		// starts inside, ends inside, or spans it fully.
		ListByDateRange(ctx context.Context, start, end time.Time) ([]*model.ScheduleRow, error)
		ListTransferredByDateRange(ctx context.Context, start, end time.Time) ([]*model.ScheduleRow, error)
	}
)
