package attendance

import (
	"time"

	"github.com/wagebook/wagebook-backend-go/internal/pkg/validator"
)

type MarkAttendanceRequest struct {
	Status         string  `json:"status"`
	AttendanceDate *string `json:"attendance_date,omitempty"`
	CheckInTime    *string `json:"check_in_time,omitempty"`
	CheckOutTime   *string `json:"check_out_time,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be present or absent",
		})
	}

	if r.AttendanceDate != nil {
		if _, ok := validator.IsValidDate(*r.AttendanceDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "attendance_date",
				Message: "attendance_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.CheckInTime != nil && !validator.IsValidTimeOfDay(*r.CheckInTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in_time",
			Message: "check_in_time must be in HH:MM or HH:MM:SS format",
		})
	}

	if r.CheckOutTime != nil && !validator.IsValidTimeOfDay(*r.CheckOutTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out_time",
			Message: "check_out_time must be in HH:MM or HH:MM:SS format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Date returns the requested attendance day, defaulting to today when the
// field was omitted. Only meaningful after Validate has passed.
func (r *MarkAttendanceRequest) Date(now time.Time) time.Time {
	if r.AttendanceDate != nil {
		d, _ := validator.IsValidDate(*r.AttendanceDate)
		return d
	}
	return now.Truncate(24 * time.Hour)
}

type AttendanceResponse struct {
	ID             string    `json:"id"`
	EmployeeID     string    `json:"employee_id"`
	AttendanceDate string    `json:"attendance_date"`
	Status         Status    `json:"status"`
	CheckInTime    *string   `json:"check_in_time,omitempty"`
	CheckOutTime   *string   `json:"check_out_time,omitempty"`
	Notes          *string   `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:             a.ID,
		EmployeeID:     a.EmployeeID,
		AttendanceDate: a.Date.Format("2006-01-02"),
		Status:         a.Status,
		CheckInTime:    a.CheckInTime,
		CheckOutTime:   a.CheckOutTime,
		Notes:          a.Notes,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
