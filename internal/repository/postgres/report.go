package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/model"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/repository"
)

const reportRowColumns = `
	r.id, r.hospital_id, r.surgery_type, r.patient_name, r.start_time,
	r.end_time, r.payment, r.payment_status, r.created_at, r.updated_at,
	h.name AS hospital_name
`

func (r *reportRepository) Create(ctx context.Context, report *model.Report) error {
	query := `
		INSERT INTO reports (
			id, hospital_id, surgery_type, patient_name, start_time, end_time,
			payment, payment_status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	report.ID = uuid.New()
	report.CreatedAt = time.Now()
	report.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		report.ID,
		report.HospitalID,
		report.SurgeryType,
		report.PatientName,
		report.StartTime,
		report.EndTime,
		report.Payment,
		report.PaymentStatus,
		report.CreatedAt,
		report.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", translateError(err))
	}
	return nil
}

func (r *reportRepository) Get(ctx context.Context, id uuid.UUID) (*model.Report, error) {
	query := `
		SELECT id, hospital_id, surgery_type, patient_name, start_time,
			   end_time, payment, payment_status, created_at, updated_at
		FROM reports
		WHERE id = $1
	`
	var report model.Report
	if err := r.db.GetContext(ctx, &report, query, id); err != nil {
		return nil, translateError(err)
	}
	return &report, nil
}

func (r *reportRepository) Update(ctx context.Context, report *model.Report) error {
	query := `
		UPDATE reports
		SET hospital_id = $1, surgery_type = $2, patient_name = $3,
			start_time = $4, end_time = $5, payment = $6, payment_status = $7,
			updated_at = $8
		WHERE id = $9
	`
	report.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		report.HospitalID,
		report.SurgeryType,
		report.PatientName,
		report.StartTime,
		report.EndTime,
		report.Payment,
		report.PaymentStatus,
		report.UpdatedAt,
		report.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update report: %w", translateError(err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *reportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *reportRepository) List(ctx context.Context) ([]*model.ReportRow, error) {
	query := `
		SELECT ` + reportRowColumns + `
		FROM reports r
		JOIN hospitals h ON h.id = r.hospital_id
		ORDER BY r.start_time DESC
	`
	var reports []*model.ReportRow
	if err := r.db.SelectContext(ctx, &reports, query); err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

func (r *reportRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]*model.ReportRow, error) {
	query := `
		SELECT ` + reportRowColumns + `
		FROM reports r
		JOIN hospitals h ON h.id = r.hospital_id
		WHERE r.start_time >= $1 AND r.start_time <= $2
		ORDER BY r.start_time ASC
	`
	var reports []*model.ReportRow
	if err := r.db.SelectContext(ctx, &reports, query, start, end); err != nil {
		return nil, fmt.Errorf("failed to list reports by date range: %w", err)
	}
	return reports, nil
}
