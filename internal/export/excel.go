package export

import (
	"fmt"
	"time"

	"github.com/360EntSecGroup-Skylar/excelize"

	"github.com/surajmendhe5573/Doctors-Appointment-Booking-CRM/internal/model"
)

// ContentType is the Office Open XML spreadsheet MIME type.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const dateTimeFormat = "2 Jan,2006 3:04 PM"

// Users builds a workbook with one row per user.
func Users(users []*model.User) *excelize.File {
	file, sheet := newSheet("Users", []string{
		"Full Name", "Email ID", "Phone No", "Address", "Role", "Photo",
	})

	for i, u := range users {
		photo := "No photo available"
		if u.Photo != nil {
			photo = *u.Photo
		}
		setRow(file, sheet, i, u.FullName, u.Email, u.Phone, u.Address, u.Role, photo)
	}
	return file
}

// Hospitals builds a workbook with derived billing totals per hospital.
func Hospitals(hospitals []*model.HospitalSummary) *excelize.File {
	file, sheet := newSheet("Hospitals", []string{
		"Name", "Email", "Phone", "Admin Name", "Admin Phone",
		"Total Schedule Payment", "Total Amount Received", "Done Schedules", "Total Due",
	})

	for i, h := range hospitals {
		setRow(file, sheet, i, h.Name, h.Email, h.Phone, h.AdminName, h.AdminPhone,
			h.TotalSchedulePayment, h.TotalAmountReceived, h.DoneScheduleCount, h.TotalDueAmount)
	}
	return file
}

// Reports builds a workbook with one row per surgery report.
func Reports(reports []*model.ReportRow) *excelize.File {
	file, sheet := newSheet("Reports", []string{
		"Hospital", "Surgery Type", "Patient", "Date Time", "Payment", "Payment Status",
	})

	for i, r := range reports {
		dateTime := fmt.Sprintf("%s - %s",
			r.StartTime.Format(dateTimeFormat),
			r.EndTime.Format("3:04 PM"),
		)
		setRow(file, sheet, i, r.HospitalName, r.SurgeryType, r.PatientName,
			dateTime, r.Payment, r.PaymentStatus)
	}
	return file
}

// Schedules builds a workbook with one row per schedule, including the
// payment state.
func Schedules(schedules []*model.ScheduleRow) *excelize.File {
	file, sheet := newSheet("Schedules", []string{
		"Doctor", "Hospital", "Patient", "Surgery Type", "Day", "Start", "End",
		"Status", "Transferred", "Payment Amount", "Amount Received", "Due", "Payment Status",
	})

	for i, s := range schedules {
		setRow(file, sheet, i, s.DoctorName, s.HospitalName, s.PatientName,
			s.SurgeryType, s.Day,
			s.StartTime.Format(dateTimeFormat),
			s.EndTime.Format(dateTimeFormat),
			string(s.Status), s.IsTransferred,
			s.PaymentAmount, s.AmountReceived, s.Due, s.PaymentStatus)
	}
	return file
}

func newSheet(name string, headers []string) (*excelize.File, string) {
	file := excelize.NewFile()
	index := file.NewSheet(name)
	file.DeleteSheet("Sheet1")
	file.SetActiveSheet(index)

	for col, header := range headers {
		file.SetCellValue(name, axis(col, 1), header)
	}
	return file, name
}

func setRow(file *excelize.File, sheet string, index int, values ...interface{}) {
	row := index + 2
	for col, v := range values {
		if t, ok := v.(time.Time); ok {
			v = t.Format(dateTimeFormat)
		}
		file.SetCellValue(sheet, axis(col, row), v)
	}
}

func axis(col, row int) string {
	return fmt.Sprintf("%s%d", excelize.ToAlphaString(col), row)
}
