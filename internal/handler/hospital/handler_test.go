package hospital

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/handler"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/model"
	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/repository"
	hospitalservice "github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/service/hospital"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeHospitalRepo struct {
	hospitals map[uuid.UUID]*model.Hospital
}

func (r *fakeHospitalRepo) Create(_ context.Context, h *model.Hospital) error {
	for _, existing := range r.hospitals {
		if existing.Email == h.Email {
			return repository.ErrDuplicate
		}
	}
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
	return nil, nil
}

func newTestEngine(t *testing.T) (*gin.Engine, *fakeHospitalRepo) {
	t.Helper()

	repo := &fakeHospitalRepo{hospitals: make(map[uuid.UUID]*model.Hospital)}
	h := NewHandler(hospitalservice.NewService(repo))

	engine := gin.New()
	h.RegisterRoutes(engine.Group("/api"))
	return engine, repo
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, payload interface{}) (*httptest.ResponseRecorder, *handler.Response) {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	var resp handler.Response
	if len(rec.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, &resp
}

func hospitalPayload() gin.H {
	return gin.H{
		"name":       "City Care",
		"email":      "admin@citycare.example.com",
		"phone":      "9876543210",
		"adminName":  "Priya Nair",
		"adminPhone": "9876500000",
	}
}

func TestCreateHospitalRoute(t *testing.T) {
	engine, repo := newTestEngine(t)

	rec, resp := doJSON(t, engine, http.MethodPost, "/api/hospitals/add", hospitalPayload())

	require.Equal(t, http.StatusCreated, rec.Code, resp.Message)
	assert.Equal(t, "hospital added successfully", resp.Message)
	assert.Len(t, repo.hospitals, 1)
}

func TestCreateHospitalRouteDuplicateEmail(t *testing.T) {
	engine, _ := newTestEngine(t)

	rec, _ := doJSON(t, engine, http.MethodPost, "/api/hospitals/add", hospitalPayload())
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, resp := doJSON(t, engine, http.MethodPost, "/api/hospitals/add", hospitalPayload())

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "hospital with this email already exists", resp.Message)
}

func TestUpdateHospitalRouteUnknownID(t *testing.T) {
	engine, _ := newTestEngine(t)

	rec, resp := doJSON(t, engine, http.MethodPut, "/api/hospitals/update/"+uuid.NewString(), hospitalPayload())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "hospital not found", resp.Message)
}

func TestDeleteHospitalRouteInvalidID(t *testing.T) {
	engine, _ := newTestEngine(t)

	rec, resp := doJSON(t, engine, http.MethodDelete, "/api/hospitals/delete/nope", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid hospital ID", resp.Message)
}

func TestListHospitalsRoute(t *testing.T) {
	engine, _ := newTestEngine(t)

	rec, _ := doJSON(t, engine, http.MethodPost, "/api/hospitals/add", hospitalPayload())
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, resp := doJSON(t, engine, http.MethodGet, "/api/hospitals", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	hospitals, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, hospitals, 1)
}
