package model

// Hospital represents a partner hospital.
type Hospital struct {
	Base
	Name       string `json:"name" db:"name"`
	Email      string `json:"email" db:"email"`
	Phone      string `json:"phone" db:"phone"`
	AdminName  string `json:"adminName" db:"admin_name"`
	AdminPhone string `json:"adminPhone" db:"admin_phone"`
}

// HospitalSummary is a hospital row joined with billing totals derived from
// its schedules at read time. Totals are never stored on the hospital record.
type HospitalSummary struct {
	Hospital
	TotalSchedulePayment float64 `json:"totalSchedulePayment" db:"total_schedule_payment"`
	TotalAmountReceived  float64 `json:"totalAmountReceived" db:"total_amount_received"`
	DoneScheduleCount    int     `json:"doneScheduleCount" db:"done_schedule_count"`
	TotalDueAmount       float64 `json:"totalDueAmount" db:"total_due_amount"`
}

type CreateHospitalRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	AdminName  string `json:"adminName" binding:"required"`
	AdminPhone string `json:"adminPhone" binding:"required"`
}

// UpdateHospitalRequest replaces every mutable field; all are required.
type UpdateHospitalRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	AdminName  string `json:"adminName" binding:"required"`
	AdminPhone string `json:"adminPhone" binding:"required"`
}
