package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/model"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/repository"
)

const hospitalColumns = `
	id, name, email, phone, admin_name, admin_phone, created_at, updated_at
`

func (r *hospitalRepository) Create(ctx context.Context, hospital *model.Hospital) error {
	query := `
		INSERT INTO hospitals (
			id, name, email, phone, admin_name, admin_phone, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	hospital.ID = uuid.New()
	hospital.CreatedAt = time.Now()
	hospital.UpdatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		hospital.ID,
		hospital.Name,
		hospital.Email,
		hospital.Phone,
		hospital.AdminName,
		hospital.AdminPhone,
		hospital.CreatedAt,
		hospital.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create hospital: %w", translateError(err))
	}
	return nil
}

func (r *hospitalRepository) Get(ctx context.Context, id uuid.UUID) (*model.Hospital, error) {
	query := `SELECT ` + hospitalColumns + ` FROM hospitals WHERE id = $1`

	var hospital model.Hospital
	if err := r.db.GetContext(ctx, &hospital, query, id); err != nil {
		return nil, translateError(err)
	}
	return &hospital, nil
}

func (r *hospitalRepository) GetByName(ctx context.Context, name string) (*model.Hospital, error) {
	query := `SELECT ` + hospitalColumns + ` FROM hospitals WHERE name = $1`

	var hospital model.Hospital
	if err := r.db.GetContext(ctx, &hospital, query, name); err != nil {
		return nil, translateError(err)
	}
	return &hospital, nil
}

func (r *hospitalRepository) GetByEmail(ctx context.Context, email string) (*model.Hospital, error) {
	query := `SELECT ` + hospitalColumns + ` FROM hospitals WHERE email = $1`

	var hospital model.Hospital
	if err := r.db.GetContext(ctx, &hospital, query, email); err != nil {
		return nil, translateError(err)
	}
	return &hospital, nil
}

func (r *hospitalRepository) Update(ctx context.Context, hospital *model.Hospital) error {
	query := `
		UPDATE hospitals
		SET name = $1, email = $2, phone = $3, admin_name = $4,
			admin_phone = $5, updated_at = $6
		WHERE id = $7
	`
	hospital.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		hospital.Name,
		hospital.Email,
		hospital.Phone,
		hospital.AdminName,
		hospital.AdminPhone,
		hospital.UpdatedAt,
		hospital.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update hospital: %w", translateError(err))
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

func (r *hospitalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM hospitals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete hospital: %w", err)
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

func (r *hospitalRepository) List(ctx context.Context) ([]*model.Hospital, error) {
	query := `SELECT ` + hospitalColumns + ` FROM hospitals ORDER BY name ASC`

	var hospitals []*model.Hospital
	if err := r.db.SelectContext(ctx, &hospitals, query); err != nil {
		return nil, fmt.Errorf("failed to list hospitals: %w", err)
	}
	return hospitals, nil
}

func (r *hospitalRepository) ListWithSummary(ctx context.Context) ([]*model.HospitalSummary, error) {
	query := `
		SELECT h.id, h.name, h.email, h.phone, h.admin_name, h.admin_phone,
			   h.created_at, h.updated_at,
			   COALESCE(SUM(s.payment_amount), 0) AS total_schedule_payment,
			   COALESCE(SUM(s.amount_received), 0) AS total_amount_received,
			   COUNT(s.id) FILTER (WHERE s.status = 'Done') AS done_schedule_count,
			   COALESCE(SUM(GREATEST(s.payment_amount - s.amount_received, 0)), 0) AS total_due_amount
		FROM hospitals h
		LEFT JOIN schedules s ON s.hospital_id = h.id
		GROUP BY h.id
		ORDER BY h.name ASC
	`
	var summaries []*model.HospitalSummary
	if err := r.db.SelectContext(ctx, &summaries, query); err != nil {
		return nil, fmt.Errorf("failed to list hospital summaries: %w", err)
	}
	return summaries, nil
}

func (r *hospitalRepository) ListDoneSummary(ctx context.Context) ([]*model.HospitalSummary, error) {
	query := `
		SELECT h.id, h.name, h.email, h.phone, h.admin_name, h.admin_phone,
			   h.created_at, h.updated_at,
			   COALESCE(SUM(s.payment_amount), 0) AS total_schedule_payment,
			   COALESCE(SUM(s.amount_received), 0) AS total_amount_received,
			   COUNT(s.id) AS done_schedule_count,
			   COALESCE(SUM(GREATEST(s.payment_amount - s.amount_received, 0)), 0) AS total_due_amount
		FROM hospitals h
		LEFT JOIN schedules s ON s.hospital_id = h.id AND s.status = 'Done'
		GROUP BY h.id
		ORDER BY h.name ASC
	`
	var summaries []*model.HospitalSummary
	if err := r.db.SelectContext(ctx, &summaries, query); err != nil {
		return nil, fmt.Errorf("failed to list done schedule summaries: %w", err)
	}
	return summaries, nil
}
