package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/model"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/repository"
	apperrors "github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/pkg/errors"
)

type fakeScheduleRepo struct {
	schedules map[uuid.UUID]*model.Schedule
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: make(map[uuid.UUID]*model.Schedule)}
}

func (r *fakeScheduleRepo) Create(_ context.Context, s *model.Schedule) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	copied := *s
	r.schedules[s.ID] = &copied
	return nil
}

func (r *fakeScheduleRepo) Get(_ context.Context, id uuid.UUID) (*model.Schedule, error) {
	s, ok := r.schedules[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeScheduleRepo) GetRow(ctx context.Context, id uuid.UUID) (*model.ScheduleRow, error) {
	s, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.ScheduleRow{Schedule: *s, Due: s.DueAmount()}, nil
}

func (r *fakeScheduleRepo) Update(_ context.Context, s *model.Schedule) error {
	if _, ok := r.schedules[s.ID]; !ok {
		return repository.ErrNotFound
	}
	copied := *s
	r.schedules[s.ID] = &copied
	return nil
}

func (r *fakeScheduleRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.schedules[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.schedules, id)
	return nil
}

func (r *fakeScheduleRepo) List(_ context.Context) ([]*model.ScheduleRow, error) {
	var rows []*model.ScheduleRow
	for _, s := range r.schedules {
		rows = append(rows, &model.ScheduleRow{Schedule: *s, Due: s.DueAmount()})
	}
	return rows, nil
}

func (r *fakeScheduleRepo) ListByStatus(_ context.Context, status model.ScheduleStatus) ([]*model.ScheduleRow, error) {
	var rows []*model.ScheduleRow
	for _, s := range r.schedules {
		if s.Status == status {
			rows = append(rows, &model.ScheduleRow{Schedule: *s, Due: s.DueAmount()})
		}
	}
	return rows, nil
}

func (r *fakeScheduleRepo) ListTransferred(_ context.Context) ([]*model.ScheduleRow, error) {
	var rows []*model.ScheduleRow
	for _, s := range r.schedules {
		if s.IsTransferred {
			rows = append(rows, &model.ScheduleRow{Schedule: *s, Due: s.DueAmount()})
		}
	}
	return rows, nil
}

func (r *fakeScheduleRepo) ListByDateRange(_ context.Context, start, end time.Time) ([]*model.ScheduleRow, error) {
	var rows []*model.ScheduleRow
	for _, s := range r.schedules {
		startsWithin := !s.StartTime.Before(start) && !s.StartTime.After(end)
		endsWithin := !s.EndTime.Before(start) && !s.EndTime.After(end)
		spans := s.StartTime.Before(start) && s.EndTime.After(end)
		if startsWithin || endsWithin || spans {
			rows = append(rows, &model.ScheduleRow{Schedule: *s, Due: s.DueAmount()})
		}
	}
	return rows, nil
}

func (r *fakeScheduleRepo) ListTransferredByDateRange(ctx context.Context, start, end time.Time) ([]*model.ScheduleRow, error) {
	rows, _ := r.ListByDateRange(ctx, start, end)
	var out []*model.ScheduleRow
	for _, row := range rows {
		if row.IsTransferred {
			out = append(out, row)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users  map[uuid.UUID]*model.User
	getErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Get(_ context.Context, id uuid.UUID) (*model.User, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByResetToken(_ context.Context, token string) (*model.User, error) {
	for _, u := range r.users {
		if u.ResetToken != nil && *u.ResetToken == token {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*model.User, error) {
	var users []*model.User
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}

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
	r.hospitals[h.ID] = h
	return nil
}

func (r *fakeHospitalRepo) Delete(_ context.Context, id uuid.UUID) error {
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
	return nil, nil
}

func (r *fakeHospitalRepo) ListDoneSummary(_ context.Context) ([]*model.HospitalSummary, error) {
	return nil, nil
}

type fixture struct {
	svc      *Service
	repo     *fakeScheduleRepo
	users    *fakeUserRepo
	doctor   *model.User
	hospital *model.Hospital
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	scheduleRepo := newFakeScheduleRepo()
	userRepo := newFakeUserRepo()
	hospitalRepo := newFakeHospitalRepo()

	doctor := &model.User{FullName: "Dr. Mehta", Email: "mehta@example.com", Role: model.RoleDoctor}
	require.NoError(t, userRepo.Create(context.Background(), doctor))

	hospital := &model.Hospital{Name: "City Care", Email: "citycare@example.com"}
	require.NoError(t, hospitalRepo.Create(context.Background(), hospital))

	return &fixture{
		svc:      NewService(scheduleRepo, userRepo, hospitalRepo),
		repo:     scheduleRepo,
		users:    userRepo,
		doctor:   doctor,
		hospital: hospital,
	}
}

func (f *fixture) createSchedule(t *testing.T) *model.ScheduleRow {
	t.Helper()

	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	row, err := f.svc.CreateSchedule(context.Background(), &model.CreateScheduleRequest{
		DoctorID:      f.doctor.ID.String(),
		HospitalName:  f.hospital.Name,
		PatientName:   "Asha Rao",
		SurgeryType:   "Knee Replacement",
		StartTime:     start,
		EndTime:       start.Add(2 * time.Hour),
		PaymentAmount: 5000,
	})
	require.NoError(t, err)
	return row
}

func TestCreateSchedule(t *testing.T) {
	f := newFixture(t)

	row := f.createSchedule(t)
	assert.Equal(t, model.ScheduleStatusUpcoming, row.Status)
	assert.Equal(t, model.SchedulePaymentPending, row.PaymentStatus)
	assert.Equal(t, "Monday", row.Day, "day derived from the start time when omitted")
	assert.Equal(t, 5000.0, row.Due)
	assert.False(t, row.IsTransferred)
}

func TestCreateScheduleInvalidDay(t *testing.T) {
	f := newFixture(t)

	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	_, err := f.svc.CreateSchedule(context.Background(), &model.CreateScheduleRequest{
		DoctorID:     f.doctor.ID.String(),
		HospitalName: f.hospital.Name,
		PatientName:  "Asha Rao",
		SurgeryType:  "Knee Replacement",
		Day:          "Funday",
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
}

func TestCreateScheduleDoctorMustHaveDoctorRole(t *testing.T) {
	f := newFixture(t)

	manager := &model.User{FullName: "Priya Shah", Email: "priya@example.com", Role: model.RoleManager}
	require.NoError(t, f.svc.userRepo.Create(context.Background(), manager))

	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	_, err := f.svc.CreateSchedule(context.Background(), &model.CreateScheduleRequest{
		DoctorID:     manager.ID.String(),
		HospitalName: f.hospital.Name,
		PatientName:  "Asha Rao",
		SurgeryType:  "Knee Replacement",
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestCreateScheduleUnknownHospital(t *testing.T) {
	f := newFixture(t)

	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	_, err := f.svc.CreateSchedule(context.Background(), &model.CreateScheduleRequest{
		DoctorID:     f.doctor.ID.String(),
		HospitalName: "Nowhere General",
		PatientName:  "Asha Rao",
		SurgeryType:  "Knee Replacement",
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}

func TestCreateScheduleDoctorLookupErrorSurfaces(t *testing.T) {
	f := newFixture(t)
	f.users.getErr = errors.New("connection refused")

	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	_, err := f.svc.CreateSchedule(context.Background(), &model.CreateScheduleRequest{
		DoctorID:     f.doctor.ID.String(),
		HospitalName: f.hospital.Name,
		PatientName:  "Asha Rao",
		SurgeryType:  "Knee Replacement",
		StartTime:    start,
		EndTime:      start.Add(2 * time.Hour),
	})

	require.Error(t, err)
	_, ok := apperrors.AsAppError(err)
	assert.False(t, ok, "repository failures must not read as doctor not found")
}

func TestUpdateScheduleRejectsZeroLengthInterval(t *testing.T) {
	f := newFixture(t)
	row := f.createSchedule(t)

	end := row.StartTime
	_, err := f.svc.UpdateSchedule(context.Background(), row.ID, &model.UpdateScheduleRequest{EndTime: &end})

	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
	assert.Equal(t, "end time must be after start time", appErr.Message)
}

func TestSetStatus(t *testing.T) {
	f := newFixture(t)
	row := f.createSchedule(t)

	updated, err := f.svc.SetStatus(context.Background(), row.ID, model.ScheduleStatusDone)
	require.NoError(t, err)
	assert.Equal(t, model.ScheduleStatusDone, updated.Status)

	_, err = f.svc.SetStatus(context.Background(), row.ID, "Cancelled")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
}

func TestTransferRequiresTarget(t *testing.T) {
	f := newFixture(t)
	row := f.createSchedule(t)

	_, err := f.svc.Transfer(context.Background(), row.ID, &model.TransferScheduleRequest{})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
}

func TestTransferAndRetake(t *testing.T) {
	f := newFixture(t)
	row := f.createSchedule(t)

	other := &model.User{FullName: "Dr. Iyer", Email: "iyer@example.com", Role: model.RoleDoctor}
	require.NoError(t, f.svc.userRepo.Create(context.Background(), other))

	doctorID := other.ID.String()
	transferred, err := f.svc.Transfer(context.Background(), row.ID, &model.TransferScheduleRequest{DoctorID: &doctorID})
	require.NoError(t, err)
	assert.True(t, transferred.IsTransferred)
	assert.Equal(t, other.ID, transferred.DoctorID)

	retaken, err := f.svc.Retake(context.Background(), row.ID, &model.RetakeScheduleRequest{})
	require.NoError(t, err)
	assert.False(t, retaken.IsTransferred)
}

func TestRetakeRejectedWhenNotTransferred(t *testing.T) {
	f := newFixture(t)
	row := f.createSchedule(t)

	_, err := f.svc.Retake(context.Background(), row.ID, &model.RetakeScheduleRequest{})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrBadRequest, appErr.Code)
	assert.Equal(t, "schedule is not transferred", appErr.Message)
}

func TestUpdatePaymentAccumulates(t *testing.T) {
	f := newFixture(t)
	row := f.createSchedule(t)

	partial, err := f.svc.UpdatePayment(context.Background(), row.ID, &model.UpdatePaymentRequest{
		AmountReceived: 2000,
		PaymentMethod:  "UPI",
	})
	require.NoError(t, err)
	assert.Equal(t, 2000.0, partial.AmountReceived)
	assert.Equal(t, 3000.0, partial.Due)
	assert.Equal(t, model.SchedulePaymentPending, partial.PaymentStatus)

	settled, err := f.svc.UpdatePayment(context.Background(), row.ID, &model.UpdatePaymentRequest{
		AmountReceived: 3000,
	})
	require.NoError(t, err)
	assert.Equal(t, 5000.0, settled.AmountReceived)
	assert.Equal(t, 0.0, settled.Due)
	assert.Equal(t, model.SchedulePaymentDone, settled.PaymentStatus)
}

func TestUpdatePaymentOverpaymentClampsDue(t *testing.T) {
	f := newFixture(t)
	row := f.createSchedule(t)

	settled, err := f.svc.UpdatePayment(context.Background(), row.ID, &model.UpdatePaymentRequest{
		AmountReceived: 6000,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, settled.Due)
	assert.Equal(t, model.SchedulePaymentDone, settled.PaymentStatus)
}

func TestListSchedulesByStatus(t *testing.T) {
	f := newFixture(t)
	row := f.createSchedule(t)

	upcoming, err := f.svc.ListSchedulesByStatus(context.Background(), model.ScheduleStatusUpcoming)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)

	_, err = f.svc.SetStatus(context.Background(), row.ID, model.ScheduleStatusDone)
	require.NoError(t, err)

	upcoming, err = f.svc.ListSchedulesByStatus(context.Background(), model.ScheduleStatusUpcoming)
	require.NoError(t, err)
	assert.Empty(t, upcoming)

	done, err := f.svc.ListSchedulesByStatus(context.Background(), model.ScheduleStatusDone)
	require.NoError(t, err)
	assert.Len(t, done, 1)
}

func TestListSchedulesByDateRange(t *testing.T) {
	f := newFixture(t)
	f.createSchedule(t)

	rows, err := f.svc.ListSchedulesByDateRange(context.Background(), "2025-06-01", "2025-06-03")
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	rows, err = f.svc.ListSchedulesByDateRange(context.Background(), "2025-07-01", "2025-07-03")
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = f.svc.ListSchedulesByDateRange(context.Background(), "junk", "2025-07-03")
	require.Error(t, err)
}

func TestDeleteScheduleNotFound(t *testing.T) {
	f := newFixture(t)

	err := f.svc.DeleteSchedule(context.Background(), uuid.New())
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrNotFound, appErr.Code)
}
