package model

import (
	"time"

	"github.com/google/uuid"
)

type ScheduleStatus string

const (
	ScheduleStatusUpcoming     ScheduleStatus = "Upcoming"
	ScheduleStatusDone         ScheduleStatus = "Done"
	ScheduleStatusNotAvailable ScheduleStatus = "Not Available"
)

// Valid reports whether s is a member of the status enum.
func (s ScheduleStatus) Valid() bool {
	switch s {
	case ScheduleStatusUpcoming, ScheduleStatusDone, ScheduleStatusNotAvailable:
		return true
	}
	return false
}

// Schedule payment status constants
const (
	SchedulePaymentPending = "Pending"
	SchedulePaymentDone    = "Done"
)

var weekDays = map[string]bool{
	"Sunday": true, "Monday": true, "Tuesday": true, "Wednesday": true,
	"Thursday": true, "Friday": true, "Saturday": true,
}

// ValidDay reports whether day is one of the seven weekday names.
func ValidDay(day string) bool {
	return weekDays[day]
}

// Schedule represents a planned surgery assignment between a doctor and a
// hospital, carrying its payment lifecycle.
type Schedule struct {
	Base
	DoctorID        uuid.UUID      `json:"doctorId" db:"doctor_id"`
	HospitalID      uuid.UUID      `json:"hospitalId" db:"hospital_id"`
	PatientName     string         `json:"patientName" db:"patient_name"`
	SurgeryType     string         `json:"surgeryType" db:"surgery_type"`
	Day             string         `json:"day" db:"day"`
	StartTime       time.Time      `json:"startTime" db:"start_time"`
	EndTime         time.Time      `json:"endTime" db:"end_time"`
	Status          ScheduleStatus `json:"status" db:"status"`
	IsTransferred   bool           `json:"isTransferred" db:"is_transferred"`
	PaymentAmount   float64        `json:"paymentAmount" db:"payment_amount"`
	AmountReceived  float64        `json:"amountReceived" db:"amount_received"`
	PaymentMethod   *string        `json:"paymentMethod" db:"payment_method"`
	DocumentProofNo *string        `json:"documentProofNo" db:"document_proof_no"`
	PaymentStatus   string         `json:"paymentStatus" db:"payment_status"`
}

// DueAmount is the outstanding balance, never negative.
func (s *Schedule) DueAmount() float64 {
	due := s.PaymentAmount - s.AmountReceived
	if due < 0 {
		return 0
	}
	return due
}

// ApplyPayment adds an incremental payment and settles the payment status.
// PaymentStatus becomes Done exactly when the cumulative received amount
// covers the payment amount.
func (s *Schedule) ApplyPayment(amount float64, method, proofNo string) {
	s.AmountReceived += amount
	if method != "" {
		s.PaymentMethod = &method
	}
	if proofNo != "" {
		s.DocumentProofNo = &proofNo
	}
	if s.AmountReceived >= s.PaymentAmount {
		s.PaymentStatus = SchedulePaymentDone
	} else {
		s.PaymentStatus = SchedulePaymentPending
	}
}

// ScheduleRow is a schedule joined with doctor and hospital names, plus the
// derived due amount.
type ScheduleRow struct {
	Schedule
	DoctorName   string  `json:"doctorName" db:"doctor_name"`
	HospitalName string  `json:"hospitalName" db:"hospital_name"`
	Due          float64 `json:"dueAmount" db:"due_amount"`
}

type CreateScheduleRequest struct {
	DoctorID      string    `json:"doctorId" binding:"required"`
	HospitalName  string    `json:"hospitalName" binding:"required"`
	PatientName   string    `json:"patientName" binding:"required"`
	SurgeryType   string    `json:"surgeryType" binding:"required"`
	Day           string    `json:"day"`
	StartTime     time.Time `json:"startTime" binding:"required"`
	EndTime       time.Time `json:"endTime" binding:"required,gtfield=StartTime"`
	PaymentAmount float64   `json:"paymentAmount" binding:"omitempty,gte=0"`
}

type UpdateScheduleRequest struct {
	DoctorID      *string    `json:"doctorId"`
	HospitalName  *string    `json:"hospitalName"`
	PatientName   *string    `json:"patientName"`
	SurgeryType   *string    `json:"surgeryType"`
	Day           *string    `json:"day"`
	StartTime     *time.Time `json:"startTime"`
	EndTime       *time.Time `json:"endTime"`
	PaymentAmount *float64   `json:"paymentAmount" binding:"omitempty,gte=0"`
}

type ToggleStatusRequest struct {
	Status ScheduleStatus `json:"status" binding:"required"`
}

// TransferScheduleRequest reassigns the doctor and/or hospital.
type TransferScheduleRequest struct {
	DoctorID     *string `json:"doctorId"`
	HospitalName *string `json:"hospitalName"`
}

// RetakeScheduleRequest optionally reassigns while clearing the transfer flag.
type RetakeScheduleRequest struct {
	DoctorID     *string `json:"doctorId"`
	HospitalName *string `json:"hospitalName"`
}

type UpdatePaymentRequest struct {
	AmountReceived  float64 `json:"amountReceived" binding:"required,gt=0"`
	PaymentMethod   string  `json:"paymentMethod"`
	DocumentProofNo string  `json:"documentProofNo"`
}
