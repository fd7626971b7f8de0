package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/model"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/repository"
)

const scheduleColumns = `
	id, doctor_id, hospital_id, patient_name, surgery_type, day, start_time,
	end_time, status, is_transferred, payment_amount, amount_received,
	payment_method, document_proof_no, payment_status, created_at, updated_at
`

const scheduleRowSelect = `
	SELECT s.id, s.doctor_id, s.hospital_id, s.patient_name, s.surgery_type,
		   s.day, s.start_time, s.end_time, s.status, s.is_transferred,
		   s.payment_amount, s.amount_received, s.payment_method,
		   s.document_proof_no, s.payment_status, s.created_at, s.updated_at,
		   u.full_name AS doctor_name,
		   h.name AS hospital_name,
		   GREATEST(s.payment_amount - s.amount_received, 0) AS due_amount
	FROM schedules s
	JOIN users u ON u.id = s.doctor_id
	JOIN hospitals h ON h.id = s.hospital_id
`

func (r *scheduleRepository) Create(ctx context.Context, schedule *model.Schedule) error {
	query := `
		INSERT INTO schedules (` + scheduleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`
	schedule.ID = uuid.New()
	schedule.CreatedAt = time.Now()
	schedule.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		schedule.ID,
		schedule.DoctorID,
		schedule.HospitalID,
		schedule.PatientName,
		schedule.SurgeryType,
		schedule.Day,
		schedule.StartTime,
		schedule.EndTime,
		schedule.Status,
		schedule.IsTransferred,
		schedule.PaymentAmount,
		schedule.AmountReceived,
		schedule.PaymentMethod,
		schedule.DocumentProofNo,
		schedule.PaymentStatus,
		schedule.CreatedAt,
		schedule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create schedule: %w", translateError(err))
	}
	return nil
}

func (r *scheduleRepository) Get(ctx context.Context, id uuid.UUID) (*model.Schedule, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = $1`

	var schedule model.Schedule
	if err := r.db.GetContext(ctx, &schedule, query, id); err != nil {
		return nil, translateError(err)
	}
	return &schedule, nil
}

func (r *scheduleRepository) GetRow(ctx context.Context, id uuid.UUID) (*model.ScheduleRow, error) {
	query := scheduleRowSelect + ` WHERE s.id = $1`

	var row model.ScheduleRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

func (r *scheduleRepository) Update(ctx context.Context, schedule *model.Schedule) error {
	query := `
		UPDATE schedules
		SET doctor_id = $1, hospital_id = $2, patient_name = $3,
			surgery_type = $4, day = $5, start_time = $6, end_time = $7,
			status = $8, is_transferred = $9, payment_amount = $10,
			amount_received = $11, payment_method = $12,
			document_proof_no = $13, payment_status = $14, updated_at = $15
		WHERE id = $16
	`
	schedule.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		schedule.DoctorID,
		schedule.HospitalID,
		schedule.PatientName,
		schedule.SurgeryType,
		schedule.Day,
		schedule.StartTime,
		schedule.EndTime,
		schedule.Status,
		schedule.IsTransferred,
		schedule.PaymentAmount,
		schedule.AmountReceived,
		schedule.PaymentMethod,
		schedule.DocumentProofNo,
		schedule.PaymentStatus,
		schedule.UpdatedAt,
		schedule.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update schedule: %w", translateError(err))
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

func (r *scheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
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

func (r *scheduleRepository) List(ctx context.Context) ([]*model.ScheduleRow, error) {
	query := scheduleRowSelect + ` ORDER BY s.start_time ASC`

	var schedules []*model.ScheduleRow
	if err := r.db.SelectContext(ctx, &schedules, query); err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	return schedules, nil
}

func (r *scheduleRepository) ListByStatus(ctx context.Context, status model.ScheduleStatus) ([]*model.ScheduleRow, error) {
	query := scheduleRowSelect + ` WHERE s.status = $1 ORDER BY s.start_time ASC`

	var schedules []*model.ScheduleRow
	if err := r.db.SelectContext(ctx, &schedules, query, status); err != nil {
		return nil, fmt.Errorf("failed to list schedules by status: %w", err)
	}
	return schedules, nil
}

func (r *scheduleRepository) ListTransferred(ctx context.Context) ([]*model.ScheduleRow, error) {
	query := scheduleRowSelect + ` WHERE s.is_transferred ORDER BY s.start_time ASC`

	var schedules []*model.ScheduleRow
	if err := r.db.SelectContext(ctx, &schedules, query); err != nil {
		return nil, fmt.Errorf("failed to list transferred schedules: %w", err)
	}
	return schedules, nil
}

// Overlap matches schedules that start inside the window, end inside it, or
// span it fully.
const scheduleOverlap = `
	((s.start_time >= $1 AND s.start_time <= $2)
		OR (s.end_time >= $1 AND s.end_time <= $2)
		OR (s.start_time <= $1 AND s.end_time >= $2))
`

func (r *scheduleRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]*model.ScheduleRow, error) {
	query := scheduleRowSelect + ` WHERE ` + scheduleOverlap + ` ORDER BY s.start_time ASC`

	var schedules []*model.ScheduleRow
	if err := r.db.SelectContext(ctx, &schedules, query, start, end); err != nil {
		return nil, fmt.Errorf("failed to list schedules by date range: %w", err)
	}
	return schedules, nil
}

func (r *scheduleRepository) ListTransferredByDateRange(ctx context.Context, start, end time.Time) ([]*model.ScheduleRow, error) {
	query := scheduleRowSelect + ` WHERE s.is_transferred AND ` + scheduleOverlap + ` ORDER BY s.start_time ASC`

	var schedules []*model.ScheduleRow
	if err := r.db.SelectContext(ctx, &schedules, query, start, end); err != nil {
		return nil, fmt.Errorf("failed to list transferred schedules by date range: %w", err)
	}
	return schedules, nil
}
