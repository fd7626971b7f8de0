package model

import (
	"time"

	"github.com/google/uuid"
)

// Report payment status constants
const (
	ReportPaymentDone    = "Done"
	ReportPaymentPending = "Pending"
)

// Report records a performed surgery and its payment.
type Report struct {
	Base
	HospitalID    uuid.UUID `json:"hospitalId" db:"hospital_id"`
	SurgeryType   string    `json:"surgeryType" db:"surgery_type"`
	PatientName   string    `json:"patientName" db:"patient_name"`
	StartTime     time.Time `json:"startTime" db:"start_time"`
	EndTime       time.Time `json:"endTime" db:"end_time"`
	Payment       float64   `json:"payment" db:"payment"`
	PaymentStatus string    `json:"paymentStatus" db:"payment_status"`
}

// ReportRow is a report joined with its hospital name.
type ReportRow struct {
	Report
	HospitalName string `json:"hospitalName" db:"hospital_name"`
}

// CreateReportRequest accepts the combined free-text dateTime range, e.g.
// "2 Jan,2006 3:04 PM - 5:00 PM".
type CreateReportRequest struct {
	HospitalName  string  `json:"hospitalName" binding:"required"`
	SurgeryType   string  `json:"surgeryType" binding:"required"`
	PatientName   string  `json:"patientName" binding:"required"`
	DateTime      string  `json:"dateTime" binding:"required"`
	Payment       float64 `json:"payment" binding:"required,gt=0"`
	PaymentStatus string  `json:"paymentStatus" binding:"omitempty,oneof=Done Pending"`
}

type UpdateReportRequest struct {
	HospitalName  *string  `json:"hospitalName"`
	SurgeryType   *string  `json:"surgeryType"`
	PatientName   *string  `json:"patientName"`
	DateTime      *string  `json:"dateTime"`
	Payment       *float64 `json:"payment" binding:"omitempty,gt=0"`
	PaymentStatus *string  `json:"paymentStatus" binding:"omitempty,oneof=Done Pending"`
}
